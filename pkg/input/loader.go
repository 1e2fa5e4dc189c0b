// Package input fetches glyph sheet images from disk or over HTTP.
package input

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"fontconv/pkg/pixel"
)

func NewLoader(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger.With(zap.String("via", "loader")),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type Option func(l *Loader)

// WithProgress draws a download bar on stderr for remote images.
func WithProgress(enabled bool) Option {
	return func(l *Loader) {
		l.progress = enabled
	}
}

type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress bool
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch returns the raw bytes stored at location, a file path on the
// loader's filesystem or an http(s) URL.
func (l *Loader) Fetch(location string) ([]byte, error) {
	bs, err := lo.Ternary(isRemote(location), l.download, l.read)(location)
	if err != nil {
		return nil, err
	}

	l.log.With(
		zap.String("location", location),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("fetched")

	return bs, nil
}

// Load fetches and decodes location.
func (l *Loader) Load(location string) (*pixel.Bitmap, error) {
	bs, err := l.Fetch(location)
	if err != nil {
		return nil, err
	}

	img, err := pixel.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", location)
	}

	l.log.With(
		zap.Uint32("width", img.Width()),
		zap.Uint32("height", img.Height()),
	).Debug("decoded")

	return img, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	bs, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read image failed")
	}
	return bs, nil
}

func (l *Loader) download(location string) ([]byte, error) {
	resp, err := l.cli.R().Get(location)
	if err != nil {
		return nil, errors.Wrap(err, "download image failed")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, fmt.Errorf("download image failed: %s", resp.Status())
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if l.progress {
		bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", location))
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, errors.Wrap(err, "download image failed")
	}

	return buf.Bytes(), nil
}
