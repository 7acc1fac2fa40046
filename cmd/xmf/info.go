package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPathsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the module URLs and directories as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c.paths()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newUnitsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List discovered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range c.units.Names() {
				dir, _ := c.units.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, dir)
			}
			return tw.Flush()
		},
	}
}
