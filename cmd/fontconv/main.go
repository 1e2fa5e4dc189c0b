package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fontconv/pkg/bitmap"
	"fontconv/pkg/convert"
	"fontconv/pkg/format"
	"fontconv/pkg/input"
	"fontconv/pkg/output"
	"fontconv/pkg/remote"
)

var height = flag.Uint8P("height", "h", 0, "font height in pixels")
var width = flag.Uint8P("width", "w", 0, "font width in pixels")
var outputPath = flag.StringP("output", "o", "", "path to the output file (stdout if empty)")
var msb = flag.BoolP("msb", "m", false, "store bytes in MSB mode (default is LSB)")
var invert = flag.BoolP("invert-bits", "i", false, "invert bits in output")
var name = flag.String("name", convert.DefaultArrayName, "name of the generated array")
var remoteAddr = flag.String("remote", "", "convert on a fontconv-server at this addr")
var progress = flag.Bool("progress", false, "show progress on stderr")
var debug = flag.Bool("debug", false, "set debug")

var outputFormat = format.C

func init() {
	flag.VarP(&outputFormat, "format", "f",
		fmt.Sprintf("output source code format (%s)", strings.Join(format.Names(), ", ")))
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Converts font bitmap to array of bytes for use in embedded systems.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: fontconv [options] path-to-image")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "path-to-image is a local file or an http(s) URL.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			newLogger,
			afero.NewOsFs,
			func(fs afero.Fs, logger *zap.Logger) *input.Loader {
				return input.NewLoader(fs, logger, input.WithProgress(*progress))
			},
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !*debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("run", xid.New().String())), nil
}

func options() bitmap.Options {
	opts := bitmap.Options{InvertBits: *invert}
	if *msb {
		opts.BitNumbering = bitmap.MSB
	}
	return opts
}

func run(loader *input.Loader, fs afero.Fs, logger *zap.Logger) error {
	return execute(loader, fs, logger, flag.Arg(0))
}

// execute loads and converts location before the output is opened, so a bad
// input leaves an existing output file untouched.
func execute(loader *input.Loader, fs afero.Fs, logger *zap.Logger, location string) (err error) {
	metrics := bitmap.Metrics{Height: *height, Width: *width}
	if err := metrics.Validate(); err != nil {
		return err
	}

	log := logger.With(
		zap.String("input", location),
		zap.Stringer("format", outputFormat),
		zap.Stringer("bits", options().BitNumbering),
		zap.Bool("invert", *invert),
	)

	emit, err := lo.Ternary(*remoteAddr != "", prepareRemote, prepareLocal)(loader, location, metrics, logger)
	if err != nil {
		return err
	}

	sink, err := output.Open(fs, *outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			log.With(zap.String("size", sink.Size())).Info("done")
		}
	}()

	return emit(sink)
}

type emitter func(w io.Writer) error

func prepareLocal(loader *input.Loader, location string, metrics bitmap.Metrics, logger *zap.Logger) (emitter, error) {
	convOpts := []convert.Option{
		convert.WithArrayName(*name),
		convert.WithLogger(logger),
	}
	if *progress {
		convOpts = append(convOpts, convert.WithTracker(newTracker))
	}

	conv, err := convert.New(metrics, outputFormat, options(), convOpts...)
	if err != nil {
		return nil, err
	}

	img, err := loader.Load(location)
	if err != nil {
		return nil, err
	}

	return func(w io.Writer) error {
		return conv.Convert(img, w)
	}, nil
}

func prepareRemote(loader *input.Loader, location string, metrics bitmap.Metrics, logger *zap.Logger) (emitter, error) {
	bs, err := loader.Fetch(location)
	if err != nil {
		return nil, err
	}

	client, err := remote.New(*remoteAddr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = client.Close()
	}()

	resp, err := client.Convert(&remote.ConvertRequest{
		Image:  bs,
		Height: metrics.Height,
		Width:  metrics.Width,
		Format: outputFormat.String(),
		MSB:    *msb,
		Invert: *invert,
		Name:   *name,
	})
	if err != nil {
		return nil, err
	}

	logger.With(zap.String("remote", *remoteAddr), zap.Int("glyphs", resp.Glyphs)).Debug("converted remotely")

	return func(w io.Writer) error {
		_, err := w.Write(resp.Source)
		return errors.Wrap(err, "write output failed")
	}, nil
}

func newTracker(total int) convert.Tracker {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Packing glyphs"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
