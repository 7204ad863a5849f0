package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/internal/render"
)

func newTableCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the all-pairs shortest distance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.setup(cmd)
			if err != nil {
				return err
			}
			r, err := a.router()
			if err != nil {
				return err
			}
			tbl, err := r.Table(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), tbl)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.New(cmd.OutOrStdout()).Table(tbl))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")

	return cmd
}
