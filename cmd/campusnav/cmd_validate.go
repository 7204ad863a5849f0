package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errDisconnected = errors.New("campus map is disconnected")

func newValidateCmd(root *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the map file and report its connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.setup(cmd)
			if err != nil {
				return err
			}
			comps, err := a.m.Components()
			if err != nil {
				return err
			}

			diameter, err := a.m.Diameter()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "map %q: %d locations, %d roads, %d component(s), diameter %d\n",
				a.m.Name, len(a.m.Locations), len(a.m.Roads), len(comps), diameter)
			if len(comps) > 1 {
				for i, c := range comps {
					fmt.Fprintf(out, "  component %d: %s\n", i+1, strings.Join(c, ", "))
				}
				if strict {
					return fmt.Errorf("%w: %d components", errDisconnected, len(comps))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the map is not connected")

	return cmd
}
