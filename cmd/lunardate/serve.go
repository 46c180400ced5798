package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/golunar/lunardate"
	"github.com/golunar/lunardate/internal/httpapi"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Serve conversions over HTTP.

Routes:
  GET /api/v1/{calendar}/solar/{date}
  GET /api/v1/{calendar}/lunar/{date}[?leap=true]
  GET /api/v1/{calendar}/years/{year}
  GET /api/v1/{calendar}/range
  GET /health
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := c.setupLogger()
			if logger == nil {
				logger = slog.New(slog.NewTextHandler(c.stderr, nil))
			}
			conv := lunardate.New(lunardate.WithLogger(logger))
			srv := httpapi.New(conv, serveConfig(c.v), httpapi.WithLogger(logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	f := cmd.Flags()
	f.String("addr", "", "listen address")
	f.Float64("rate-limit", 0, "requests per second, 0 disables limiting")
	f.Int("burst", 0, "rate limiter burst size")
	_ = c.v.BindPFlag("serve.addr", f.Lookup("addr"))
	_ = c.v.BindPFlag("serve.rate_limit", f.Lookup("rate-limit"))
	_ = c.v.BindPFlag("serve.burst", f.Lookup("burst"))
	return cmd
}
