package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/internal/render"
)

func newRouteCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two locations",
		Long: "FROM and TO are location names (case-insensitive) or indices.\n" +
			"An unreachable destination is reported, not treated as an error.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.setup(cmd)
			if err != nil {
				return err
			}
			r, err := a.router()
			if err != nil {
				return err
			}

			rt, err := r.Route(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rt)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.New(cmd.OutOrStdout()).Route(a.m, rt))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the route as JSON")

	return cmd
}
