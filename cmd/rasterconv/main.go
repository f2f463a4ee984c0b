// Command rasterconv converts PNG images between pixel layouts and prints
// image features.
//
// Flags go before the command.
//
// Usage:
//
//	rasterconv rgb in.png out.png
//	rasterconv gray in.png out.png
//	rasterconv -colors 16 palettize in.png out.png
//	rasterconv brightness a.png b.png
//	rasterconv -chart chart.png histogram in.png
//	rasterconv similarity a.png b.png
//	rasterconv -k 5 -method kmeans dominant in.png
//	rasterconv snapshot in.png out.rcz
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/setanarut/rasterconv"
	"github.com/setanarut/rasterconv/codec"
	"github.com/setanarut/rasterconv/features"
	"github.com/setanarut/rasterconv/render"
)

var (
	verboseFlag   = flag.Bool("v", false, "Enable debug logging")
	logFormatFlag = flag.String("log-format", "text", "Log format (text or json)")
	colorsFlag    = flag.Int("colors", 0, "Maximum palette size for palettize (default: derived from image size)")
	kFlag         = flag.Int("k", 5, "Number of dominant colors")
	methodFlag    = flag.String("method", "dominantcolor", "Dominant color method (dominantcolor or kmeans)")
	chartFlag     = flag.String("chart", "", "Also write the histogram as PNG chart to this path")
	noColorFlag   = flag.Bool("no-color", false, "Disable ANSI colors in the histogram")
	jobsFlag      = flag.Int("j", 4, "Images processed concurrently by brightness")
)

func main() {
	flag.Parse()
	logger := newLogger(*logFormatFlag, *verboseFlag)
	slog.SetDefault(logger)

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> <args...>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var err error
	switch cmd, args := strings.ToLower(flag.Arg(0)), flag.Args()[1:]; cmd {
	case "rgb":
		err = convert(args, rasterconv.ToRGB[uint8])
	case "gray", "grayscale":
		err = convert(args, rasterconv.ToGray[uint8])
	case "palettize":
		err = convert(args, func(img *rasterconv.Image[uint8]) (*rasterconv.Image[uint8], error) {
			opts := rasterconv.QuantizeOptionsFromSize(img.Pixels())
			if *colorsFlag > 0 {
				opts.MaxColors = *colorsFlag
			}
			return rasterconv.Palettize(img, opts)
		})
	case "brightness":
		err = brightness(args)
	case "histogram":
		err = histogram(args)
	case "similarity":
		err = similarity(args)
	case "dominant":
		err = dominant(args)
	case "snapshot":
		err = snapshot(args)
	default:
		err = fmt.Errorf("unsupported command %q", cmd)
	}
	if err != nil {
		fatal(err)
	}
}

func newLogger(format string, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func load(path string) (*rasterconv.Image[uint8], error) {
	img, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded image", "path", path, "image", img.String())
	return img, nil
}

func convert(args []string, fn func(*rasterconv.Image[uint8]) (*rasterconv.Image[uint8], error)) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <input> <output>, got %d arguments", len(args))
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	out, err := fn(img)
	if err != nil {
		return err
	}
	if err := codec.WriteFile(args[1], out); err != nil {
		return err
	}
	slog.Info("wrote image", "path", args[1], "layout", out.Layout, "bit_depth", codec.BitDepth(out))
	return nil
}

func brightness(paths []string) error {
	images := make([]*rasterconv.Image[uint8], len(paths))
	for i, p := range paths {
		img, err := load(p)
		if err != nil {
			return err
		}
		images[i] = img
	}
	all, err := features.ExtractAll(context.Background(), images, *jobsFlag)
	if err != nil {
		return err
	}
	for i, f := range all {
		fmt.Printf("%s\t%.4f\n", paths[i], f.Brightness)
	}
	return nil
}

func histogram(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected <input>, got %d arguments", len(args))
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	h, err := features.ColorHistogram(img)
	if err != nil {
		return err
	}
	opt := render.DefaultOptions()
	opt.NoColor = *noColorFlag
	if err := render.HistogramWithOptions(os.Stdout, h, opt); err != nil {
		return err
	}
	if *chartFlag == "" {
		return nil
	}
	f, err := os.Create(*chartFlag)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, render.HistogramImage(h, render.DefaultChartOptions()))
}

func similarity(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <a> <b>, got %d arguments", len(args))
	}
	var vectors [2][]float64
	for i, p := range args {
		img, err := load(p)
		if err != nil {
			return err
		}
		h, err := features.ColorHistogram(img)
		if err != nil {
			return err
		}
		vectors[i] = h.Vector()
	}
	sim, err := features.CosineSimilarity(vectors[0], vectors[1])
	if err != nil {
		return err
	}
	fmt.Printf("%.6f\n", sim)
	return nil
}

func dominant(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected <input>, got %d arguments", len(args))
	}
	method, ok := features.ParsePaletteMethod(*methodFlag)
	if !ok {
		return fmt.Errorf("invalid method %q specified", *methodFlag)
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	colors, err := features.DominantColors(img, *kFlag, method)
	if err != nil {
		return err
	}
	rasterconv.SortPaletteByBrightness(colors)
	for _, c := range colors {
		fmt.Println(c.Hex())
	}
	return nil
}

func snapshot(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <input> <output>, got %d arguments", len(args))
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := codec.WriteSnapshot(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	slog.Error("fatal", "err", err)
	os.Exit(1)
}
