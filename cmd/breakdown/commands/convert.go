package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/SscSPs/cash_breakdown/internal/apperrors"
	"github.com/SscSPs/cash_breakdown/internal/dto"
	"github.com/SscSPs/cash_breakdown/internal/presentation"
)

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Scale an amount and print its denomination breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.services.Conversion.Convert(cmd.Context(), dto.ConvertRequest{Amount: args[0]})
			if err != nil {
				scale := a.services.Conversion.ScaleFactor()
				view := a.presenter.InvalidView(scale)
				if !errors.Is(err, apperrors.ErrInvalidInput) {
					view = a.presenter.ErrorView(err, scale)
				}
				if werr := presentation.WriteView(cmd.OutOrStdout(), view); werr != nil {
					return werr
				}
				return err
			}
			return presentation.WriteView(cmd.OutOrStdout(), a.presenter.View(conv))
		},
	}
	return cmd
}
