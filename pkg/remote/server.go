package remote

import (
	"bytes"
	"context"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fontconv/pkg/bitmap"
	"fontconv/pkg/convert"
	"fontconv/pkg/format"
	"fontconv/pkg/pixel"
)

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger.With(zap.String("via", "rpc"))}
}

// NewHandler serves svc as net/rpc over HTTP.
func NewHandler(svc *Service) (http.Handler, error) {
	server := rpc.NewServer()
	if err := server.Register(svc); err != nil {
		return nil, err
	}
	return server, nil
}

func Proxy(svc *Service, srv *http.Server, lifecycle fx.Lifecycle) error {
	handler, err := NewHandler(svc)
	if err != nil {
		return err
	}
	srv.Handler = handler

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					svc.logger.With(zap.Error(err)).Fatal("listen failed")
				}
			}()
			svc.logger.With(zap.String("addr", srv.Addr)).Info("serving")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	logger *zap.Logger
}

func (s *Service) Convert(req *ConvertRequest, resp *ConvertResponse) error {
	f, err := format.Parse(req.Format)
	if err != nil {
		return err
	}

	metrics := bitmap.Metrics{Height: req.Height, Width: req.Width}
	opts := bitmap.Options{InvertBits: req.Invert}
	if req.MSB {
		opts.BitNumbering = bitmap.MSB
	}

	conv, err := convert.New(metrics, f, opts,
		convert.WithArrayName(req.Name),
		convert.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	img, err := pixel.Decode(bytes.NewReader(req.Image))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := conv.Convert(img, &buf); err != nil {
		return errors.Wrap(err, "convert failed")
	}

	resp.Source = buf.Bytes()
	resp.Glyphs = metrics.Glyphs(img)

	s.logger.With(
		zap.Stringer("format", f),
		zap.Int("glyphs", resp.Glyphs),
		zap.Int("bytes", len(resp.Source)),
	).Info("converted")

	return nil
}
