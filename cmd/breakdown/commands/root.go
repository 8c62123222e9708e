package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/core/services"
	"github.com/SscSPs/cash_breakdown/internal/platform/config"
	"github.com/SscSPs/cash_breakdown/internal/presentation"
)

// app is what subcommands need once the root command has loaded configuration.
type app struct {
	services  *portssvc.ServiceContainer
	presenter *presentation.Presenter
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		a       app
	)

	root := &cobra.Command{
		Use:          "breakdown",
		Short:        "Break an amount into cash denominations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			var w io.Writer = io.Discard
			if verbose {
				w = cmd.ErrOrStderr()
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})))

			a.services = services.NewServiceContainer(cfg, nil)
			a.presenter = presentation.NewPresenter(cfg.MaxUnitsPerRow)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(convertCmd(&a), denominationsCmd(&a))
	return root
}
