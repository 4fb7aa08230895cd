package commands

import (
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/romanum/internal/setup"
)

// tui: interactive menu loop, the default way to use the converter.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive converter menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory()
			if err != nil {
				return err
			}
			defer log.Close()

			return setup.NewTUI(cfg, conv, log, store, logger).Run()
		},
	}
}
