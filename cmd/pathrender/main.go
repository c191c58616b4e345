// Command pathrender parses compact path strings, prints them and renders
// them to PNG images.
//
// Usage:
//
//	pathrender [-v] render [flags] PATH
//	pathrender [-v] dump PATH
//	pathrender [-v] convert FILE.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/vasalvit/svgpath"
	"github.com/vasalvit/svgpath/cmd/pathrender/internal/config"
	"github.com/vasalvit/svgpath/raster"
)

const usage = `usage: pathrender [-v] <command> [flags] [args]

commands:
  render   render a path (or the shapes of an SVG file) to PNG
  dump     print the drawing instructions of a path, one per line
  convert  print one compact path per shape of an SVG file
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var perr *svgpath.ParseError
		if errors.As(err, &perr) {
			slog.Error("invalid path", "kind", perr.Kind.String(), "offset", perr.Offset)
		} else {
			slog.Error("pathrender failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("pathrender", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	verbose := global.Bool("v", false, "enable debug logging")
	if err := global.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if global.NArg() == 0 {
		global.Usage()
		return errors.New("missing command")
	}
	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "render":
		return runRender(rest, stderr, logger)
	case "dump":
		return runDump(rest, stdout)
	case "convert":
		return runConvert(rest, stdout, logger)
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runDump(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("dump takes exactly one path argument")
	}
	p, err := svgpath.Parse(args[0])
	if err != nil {
		return err
	}
	for _, op := range p {
		fmt.Fprintf(stdout, "%-16s %+v\n", op.Kind(), op)
	}
	return nil
}

func runConvert(args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) != 1 {
		return errors.New("convert takes exactly one SVG file")
	}
	paths, err := readSvgPaths(args[0], logger)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, svgpath.Format(p))
	}
	return nil
}

func readSvgPaths(name string, logger *slog.Logger) ([]svgpath.Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	svg, err := svgpath.ParseSvgFromReader(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	paths := svg.Paths()
	logger.Debug("read svg", "file", name, "title", svg.Title, "paths", len(paths))
	return paths, nil
}

func runRender(args []string, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.FileName, "optional YAML configuration file")
	out := fs.String("o", "out.png", "output PNG file")
	svgFile := fs.String("svg", "", "render the shapes of this SVG file instead of a path argument")
	width := fs.Int("width", 0, "image width in pixels")
	height := fs.Int("height", 0, "image height in pixels")
	stroke := fs.String("stroke", "", "stroke color, or none")
	fill := fs.String("fill", "", "fill color, or none")
	lineWidth := fs.Float64("line-width", 0, "stroke width before scaling")
	scale := fs.Float64("scale", 0, "uniform scale factor")
	tx := fs.Float64("tx", 0, "horizontal translation")
	ty := fs.Float64("ty", 0, "vertical translation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	load := config.LoadOptional
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			load = config.Load
		}
	})
	cfg, err := load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "stroke":
			cfg.Style.Stroke = *stroke
		case "fill":
			cfg.Style.Fill = *fill
		case "line-width":
			cfg.Style.LineWidth = *lineWidth
		case "scale":
			cfg.Style.Scale = *scale
		case "tx":
			cfg.Style.Translate.X = *tx
		case "ty":
			cfg.Style.Translate.Y = *ty
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	var paths []svgpath.Path
	switch {
	case *svgFile != "":
		if paths, err = readSvgPaths(*svgFile, logger); err != nil {
			return err
		}
	case fs.NArg() == 1:
		p, err := svgpath.Parse(fs.Arg(0))
		if err != nil {
			return err
		}
		paths = append(paths, p)
	default:
		return errors.New("render takes exactly one path argument or -svg")
	}

	r := raster.NewImageRenderer(cfg.Width, cfg.Height)
	for _, p := range paths {
		if err := svgpath.DrawPath(r, p, cfg.Style); err != nil {
			return err
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("rendered", "file", *out, "paths", len(paths), "width", cfg.Width, "height", cfg.Height)
	return nil
}
