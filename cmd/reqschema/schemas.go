package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSchemasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the available schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range a.registry.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, a.registry.Description(name))
			}
			return w.Flush()
		},
	}
}
