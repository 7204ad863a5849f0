package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/internal/render"
)

func newLocationsCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the locations of the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), a.m)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.New(cmd.OutOrStdout()).Locations(a.m))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the whole map as JSON")

	return cmd
}
