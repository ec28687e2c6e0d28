package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/internal/server"
	"github.com/matzehuels/geosvg/pkg/buildinfo"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dataDir string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render pipeline over HTTP.

  POST /render        {"input": "...", "style": {...}, "profile": "..."} → SVG
  POST /bbox          same body → {"viewbox": {...}, "members": n}
  GET  /files/{path}  render a file below --data (needs --data)
  GET  /healthz       liveness probe

Style profiles and document defaults come from the config file. With
--cache-url every instance shares one Redis cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			printInfo("%s listening on %s", buildinfo.Product(), addr)
			if dataDir != "" {
				printDetail("Serving files from %s", dataDir)
			}
			srv := server.New(runner, c.Logger, server.Options{Config: cfg, DataDir: dataDir})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "", "directory served by GET /files/{path}")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
