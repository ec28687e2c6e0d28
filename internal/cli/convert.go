package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/geo"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/pipeline"
)

// convertCommand re-encodes the input as a GeoJSON GeometryCollection.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output string
		in     inputOpts
	)

	cmd := &cobra.Command{
		Use:   "convert [file|url|-]",
		Short: "Convert WKT or GeoJSON input to GeoJSON",
		Long: `Decode the input and write it back as a GeoJSON GeometryCollection.

Features are flattened to their geometries and properties are dropped, so the
output holds exactly what render draws.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, in.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			src, err := readSource(ctx, args, cmd.InOrStdin(), runner.Cache, in.refresh)
			if err != nil {
				return err
			}
			format := src.format
			if in.format != "" {
				if format, err = gio.ParseFormat(in.format); err != nil {
					return err
				}
			}
			gc, err := runner.Decode(ctx, pipeline.Request{Input: string(src.data), Format: format})
			if err != nil {
				return err
			}

			if output == "" {
				return gio.WriteGeoJSON[float64](geo.Geometry[float64](gc), cmd.OutOrStdout())
			}
			if err := gio.ExportGeoJSON[float64](gc, output); err != nil {
				return err
			}
			printSuccess("Converted %s", src.name)
			printDetail("%d geometries", len(gc))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	in.register(cmd)

	return cmd
}
