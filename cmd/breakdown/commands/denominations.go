package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func denominationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "denominations",
		Short: "List the denominations amounts are broken into",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range a.services.Conversion.ListDenominations(cmd.Context()) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-10s %s\n", d.Value, d.Name, d.Color); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}
