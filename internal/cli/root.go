package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "geosvg renders GeoJSON and WKT geometries as SVG",
		Long: `geosvg turns geometry text (GeoJSON or WKT) into standalone SVG documents.

Every geometry is drawn with a style: fill, stroke, opacity and, for points,
a circle, symbol, text label or icon marker. Styles come from flags or from
named profiles in the config file. The document is sized to the union of the
geometry bounds plus an optional margin.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger, cmd.Name()))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/geosvg/config.toml)")
	root.PersistentFlags().StringVar(&c.cacheURL, "cache-url", os.Getenv(envCacheURL), "redis:// URL of a shared cache (default: local file cache)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.bboxCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
