package main

import (
	"net/http"

	"github.com/rs/xid"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fontconv/pkg/remote"
)

var listen = flag.String("listen", ":9123", "listen addr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, error) {
				build := zap.NewProduction
				if *debug {
					build = zap.NewDevelopment
				}
				logger, err := build()
				if err != nil {
					return nil, err
				}
				return logger.With(zap.String("instance", xid.New().String())), nil
			},
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			remote.NewService,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
