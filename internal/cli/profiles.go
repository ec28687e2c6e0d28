package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/config"
)

// profilesCommand lists the style profiles of the config file.
func (c *CLI) profilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List style profiles from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			names := cfg.ProfileNames()
			if len(names) == 0 {
				path, _ := config.DefaultPath()
				printInfo("No profiles configured")
				printDetail("Add [profiles.<name>] tables to %s", path)
				return nil
			}
			for _, name := range names {
				s, err := cfg.Profile(name)
				if err != nil {
					return err
				}
				attrs := strings.TrimSpace(s.Attrs())
				if attrs == "" {
					attrs = "(base style)"
				}
				printKeyValue(name, attrs)
			}
			return nil
		},
	}

	cmd.AddCommand(c.profilesShowCommand())
	return cmd
}

// profilesShowCommand prints the resolved configuration as TOML.
func (c *CLI) profilesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			text, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}
