// Command blendfx applies a compositing formula to image files.
//
//	blendfx --formula soft-mix --base a.png --overlay b.png --out c.png
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lumenfx/blendfx"
)

// pixelBytes is the in-memory size of one blendfx.Pixel.
const pixelBytes = 16

type options struct {
	formula    string
	base       string
	overlay    string
	out        string
	opacity    float32
	intensity  float32
	linear     bool
	background string
	tolerance  float32
	workers    int
	spanSize   int
	fit        bool
	progress   bool
	verbose    bool
}

func parseArgs(args []string) (options, error) {
	var o options
	names := lo.Map(blendfx.Formulas(), func(f blendfx.Formula, _ int) string {
		return f.String()
	})

	fs := flag.NewFlagSet("blendfx", flag.ContinueOnError)
	fs.StringVarP(&o.formula, "formula", "f", "", "formula: "+strings.Join(names, ", "))
	fs.StringVarP(&o.base, "base", "b", "", "base image (required)")
	fs.StringVar(&o.overlay, "overlay", "", "overlay image; omitted passes the base through")
	fs.StringVarP(&o.out, "out", "o", "", "output image; format from extension (required)")
	fs.Float32Var(&o.opacity, "opacity", 1, "blend toward the base, 0..1")
	fs.Float32Var(&o.intensity, "intensity", 1, "formula intensity (soft-mix 0..2, velvet-overlay 0..8)")
	fs.BoolVar(&o.linear, "linear", false, "composite in linear light instead of sRGB")
	fs.StringVar(&o.background, "background", "#00ff00", "color-removal background color")
	fs.Float32Var(&o.tolerance, "tolerance", 0.1, "color-removal tolerance, 0..1")
	fs.IntVarP(&o.workers, "workers", "j", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&o.spanSize, "span", 16*1024, "pixels per unit of parallel work")
	fs.BoolVar(&o.fit, "fit", false, "resize the overlay to the base size when they differ")
	fs.BoolVar(&o.progress, "progress", false, "show a progress bar")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch {
	case o.formula == "":
		return o, errors.New("--formula is required")
	case o.base == "":
		return o, errors.New("--base is required")
	case o.out == "":
		return o, errors.New("--out is required")
	case o.spanSize <= 0:
		return o, errors.New("--span must be positive")
	}
	return o, nil
}

func (o options) params() (blendfx.Params, error) {
	f, err := blendfx.ParseFormula(o.formula)
	if err != nil {
		return blendfx.Params{}, err
	}
	bg, err := blendfx.ParseHex(o.background)
	if err != nil {
		return blendfx.Params{}, err
	}

	p := blendfx.DefaultParams(f)
	p.Opacity = o.opacity
	p.Intensity = o.intensity
	p.Background = bg
	p.Tolerance = o.tolerance
	if o.linear {
		p.Space = blendfx.ColorSpaceLinear
	}
	return p, p.Validate()
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "blendfx:", err)
		os.Exit(2)
	}

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "blendfx: logger:", err)
		os.Exit(1)
	}
	if o.verbose {
		blendfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, afero.NewOsFs(), o, logger); err != nil {
		logger.With(zap.Error(err)).Error("composite failed")
		stop()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, fs afero.Fs, o options, log *zap.Logger) error {
	p, err := o.params()
	if err != nil {
		return err
	}
	log = log.With(zap.String("formula", p.Formula.String()))

	base, err := openImage(fs, o.base)
	if err != nil {
		return err
	}
	region := blendfx.Region{Rectangle: base.Bounds()}

	var overlay image.Image
	switch {
	case o.overlay == "":
		if p.Formula.DualInput() {
			log.Info("no overlay given, base passes through")
		}
	case !p.Formula.DualInput():
		log.With(zap.String("overlay", o.overlay)).Warn("formula takes a single input, overlay ignored")
	default:
		if overlay, err = openImage(fs, o.overlay); err != nil {
			return err
		}
		if overlay.Bounds().Size() != base.Bounds().Size() {
			if !o.fit {
				return fmt.Errorf("overlay is %v, base is %v (use --fit to resize)",
					overlay.Bounds().Size(), base.Bounds().Size())
			}
			log.With(
				zap.Stringer("from", overlay.Bounds().Size()),
				zap.Stringer("to", base.Bounds().Size()),
			).Debug("resizing overlay")
			overlay = imaging.Resize(overlay, region.Dx(), region.Dy(), imaging.Lanczos)
		}
	}

	baseBuf, err := blendfx.FromImage(base, region, p.Space)
	if err != nil {
		return err
	}
	var overlayBuf blendfx.Buffer
	if overlay != nil {
		if overlayBuf, err = blendfx.FromImage(overlay, blendfx.Region{Rectangle: overlay.Bounds()}, p.Space); err != nil {
			return err
		}
	}

	buffers := 1 + lo.Ternary(overlayBuf != nil, 1, 0)
	log.With(
		zap.Int("pixels", len(baseBuf)),
		zap.String("working_set", bytesize.New(float64(buffers*len(baseBuf)*pixelBytes)).String()),
		zap.String("space", p.Space.String()),
	).Debug("buffers ready")

	opts := []blendfx.CompositorOption{
		blendfx.WithWorkers(o.workers),
		blendfx.WithSpanSize(o.spanSize),
	}
	if o.progress {
		total := (len(baseBuf) + o.spanSize - 1) / o.spanSize
		bar := progressbar.Default(int64(total), "compositing")
		var mu sync.Mutex
		last := 0
		opts = append(opts, blendfx.WithProgress(func(done, _ int) {
			mu.Lock()
			defer mu.Unlock()
			// Callbacks race; keep the bar monotonic.
			if done > last {
				last = done
				_ = bar.Set(done)
			}
		}))
	}
	c := blendfx.NewCompositor(opts...)
	defer c.Close()

	if err := c.Composite(ctx, baseBuf, baseBuf, overlayBuf, p); err != nil {
		return err
	}

	out, err := blendfx.ToImage(baseBuf, region, p.Space)
	if err != nil {
		return err
	}
	if err := saveImage(fs, o.out, out); err != nil {
		return err
	}
	log.With(zap.String("out", o.out)).Info("written")
	return nil
}

func openImage(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func saveImage(fs afero.Fs, path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("output %s: %w", path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := imaging.Encode(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
