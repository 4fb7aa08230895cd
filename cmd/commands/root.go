package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/romanum/config"
	"github.com/vadiminshakov/romanum/internal/services/converter"
	"github.com/vadiminshakov/romanum/internal/services/history"
	"github.com/vadiminshakov/romanum/internal/storage"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *zap.Logger
	conv    *converter.Converter
	store   *storage.FileStore
)

func Execute() error {
	root := &cobra.Command{
		Use:          "romanum",
		Short:        "Decimal and Roman numeral converter with durable history",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Get(cfgPath)
			if err != nil {
				return err
			}
			logger, err = zap.NewProduction()
			if err != nil {
				return err
			}
			conv = converter.NewConverter(cfg.AcceptLowercase)
			store = storage.NewFileStore(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to yaml config")

	root.AddCommand(convertCmd(), historyCmd(), tuiCmd())
	return root.Execute()
}

func openHistory() (*history.Log, error) {
	return history.NewLog(cfg.HistoryDir)
}
