package main

import (
	"github.com/spf13/cobra"

	"pathshadow/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shadows, where and validate as a JSON API",
		Long: `Start an HTTP server answering:
  GET /api/shadows?show_same=false|true|only&path=...
  GET /api/where?name=foo&name=bar&path=...
  GET /api/validate?path=...
  GET /api/version
path defaults to the server's own PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, _, err := a.setup(cmd)
			if err != nil {
				return err
			}
			return web.NewServer(a.lookup, logger).ListenAndServe(cfg.Addr)
		},
	}
	cmd.Flags().String("addr", "localhost:8080", "Address to listen on")
	return cmd
}
