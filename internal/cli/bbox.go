package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/svg"
)

// bboxCommand prints the view box of the input under the selected style.
func (c *CLI) bboxCommand() *cobra.Command {
	var (
		asJSON bool
		in     inputOpts
		so     styleOpts
	)

	cmd := &cobra.Command{
		Use:   "bbox [file|url|-]",
		Short: "Print the view box of the input",
		Long: `Print the view box of the input as "min_x min_y width height", the form
of the SVG viewBox attribute.

The bound accounts for the style: stroke width pads every vertex and the
radius pads points. Empty input prints "0 0 0 0".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, in.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			req, _, err := c.buildRequest(cmd, args, runner, &in, &so)
			if err != nil {
				return err
			}
			res, err := runner.Bounds(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					ViewBox svg.ViewBox `json:"viewbox"`
					Members int         `json:"members"`
				}{res.ViewBox, res.Members})
			}
			_, err = fmt.Fprintln(out, res.ViewBox.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON with the member count")
	in.register(cmd)
	so.register(cmd, false)

	return cmd
}
