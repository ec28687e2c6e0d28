package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
	"github.com/matzehuels/geosvg/pkg/svg"
)

// memberRow summarizes one top-level geometry of the input.
type memberRow struct {
	Index    int
	Kind     string
	Vertices int
	Bounds   svg.ViewBox
	Fragment string
}

func memberRows(gc geo.GeometryCollection[float64], s style.Style) []memberRow {
	rows := make([]memberRow, len(gc))
	for i, g := range gc {
		r := svg.Of(g)
		rows[i] = memberRow{
			Index:    i,
			Kind:     g.Kind(),
			Vertices: len(geo.Coords(g)),
			Bounds:   r.ViewBox(s),
			Fragment: r.SVG(s),
		}
	}
	return rows
}

func formatBounds(vb svg.ViewBox) string {
	if vb.IsEmpty() {
		return "empty"
	}
	return vb.String()
}

// memberTable renders rows as a bordered table. cursor highlights one row;
// pass -1 for none.
func memberTable(rows []memberRow, cursor int) *table.Table {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(r.Index), r.Kind, strconv.Itoa(r.Vertices), formatBounds(r.Bounds)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Vertices", "View box").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case row < len(rows) && rows[row].Index == cursor:
				return base.Foreground(colorGreen).Bold(true)
			case col == 0 || col == 2:
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})
}

// inspectCommand lists the decoded members of the input.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		interactive bool
		in          inputOpts
		so          styleOpts
	)

	cmd := &cobra.Command{
		Use:   "inspect [file|url|-]",
		Short: "List the geometries in the input",
		Long: `List the top-level geometries decoded from the input with their kind,
vertex count and styled view box.

With --interactive, browse the members and preview each one's SVG fragment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, in.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			req, name, err := c.buildRequest(cmd, args, runner, &in, &so)
			if err != nil {
				return err
			}
			gc, err := runner.Decode(ctx, req)
			if err != nil {
				return err
			}
			rows := memberRows(gc, req.Style)

			if interactive {
				_, err := tea.NewProgram(newInspectModel(name, rows), tea.WithContext(ctx), tea.WithAltScreen()).Run()
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(name))
			if len(rows) == 0 {
				fmt.Fprintln(out, StyleDim.Render("no geometries"))
				return nil
			}
			fmt.Fprintln(out, memberTable(rows, -1).Render())
			total := svg.EmptyViewBox()
			for _, r := range rows {
				total = total.Add(r.Bounds)
			}
			fmt.Fprintln(out, StyleDim.Render(fmt.Sprintf("%d geometries · view box %s", len(rows), formatBounds(total))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse members interactively")
	in.register(cmd)
	so.register(cmd, false)

	return cmd
}
