package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/geosvg/pkg/errors"
)

// renderCommand creates the render command for writing SVG documents.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		in     inputOpts
		so     styleOpts
	)

	cmd := &cobra.Command{
		Use:   "render [file|url|-]",
		Short: "Render geometries to an SVG document",
		Long: `Render GeoJSON or WKT geometries to a standalone SVG document.

The input is a file, an http(s) URL or stdin ("-" or no argument). Every
geometry is drawn with the same style, assembled from the --profile named in
the config file and overridden by style flags.

Without --output the document is written to stdout. Documents are cached
locally (or in Redis with --cache-url) keyed by input, style and document
options.`,
		Example: `  geosvg render parks.geojson -o parks.svg --fill green --stroke black
  echo 'LINESTRING (0 0, 10 10)' | geosvg render --stroke-width 2
  geosvg render https://example.com/pois.wkt --profile pois -m 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, output, &in, &so)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	in.register(cmd)
	so.register(cmd, true)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, output string, in *inputOpts, so *styleOpts) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, in.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	req, name, err := c.buildRequest(cmd, args, runner, in, so)
	if err != nil {
		return err
	}

	if output == "" {
		res, err := runner.Render(ctx, req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(res.SVG)
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s...", name))
	spinner.Start()

	res, err := runner.Render(ctx, req)
	if err != nil {
		spinner.StopWithError("Render failed")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	spinner.Stop()

	if err := os.WriteFile(output, res.SVG, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", output)
	}
	prog.done("rendered", "input", name, "members", res.Members, "cached", res.CacheHit)

	printSuccess("Rendered %s", name)
	printStats(res.Members, len(res.SVG), res.CacheHit)
	printFile(output)
	return nil
}
