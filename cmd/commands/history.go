package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vadiminshakov/romanum/internal/domain"
)

var format string

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect, export and import the conversion history",
	}
	cmd.PersistentFlags().StringVar(&format, "format", "csv", "history file format: csv or txt")
	cmd.AddCommand(historyListCmd(), historyClearCmd(), historyExportCmd(), historyImportCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print recorded conversions in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory()
			if err != nil {
				return err
			}
			defer log.Close()

			for _, rec := range log.List() {
				fmt.Printf("%3d. %s\n", rec.Index, rec.String())
			}
			return nil
		},
	}
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the conversion history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory()
			if err != nil {
				return err
			}
			defer log.Close()

			if err := log.Clear(); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		},
	}
}

// export [path]: write the history to a CSV or TXT file.
func historyExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the history to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory()
			if err != nil {
				return err
			}
			defer log.Close()

			path, save, err := formatTarget(args)
			if err != nil {
				return err
			}
			return save(path, log.List())
		},
	}
}

// import [path]: append records parsed from a CSV or TXT file.
func historyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Import history records from a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := openHistory()
			if err != nil {
				return err
			}
			defer log.Close()

			path, load, err := formatSource(args)
			if err != nil {
				return err
			}
			records, skipped, err := load(path)
			if err != nil {
				return err
			}
			for _, rec := range records {
				if err := log.Record(rec); err != nil {
					return err
				}
			}

			fmt.Printf("imported %d records", len(records))
			if skipped > 0 {
				fmt.Printf(", skipped %d malformed rows", skipped)
			}
			fmt.Println()
			return nil
		},
	}
}

func formatTarget(args []string) (string, func(string, []domain.ConversionRecord) error, error) {
	switch format {
	case "csv":
		return pathOrDefault(args, cfg.CSVPath), store.SaveCSV, nil
	case "txt":
		return pathOrDefault(args, cfg.TXTPath), store.SaveTXT, nil
	}
	return "", nil, fmt.Errorf("unsupported format: %q (want csv or txt)", format)
}

func formatSource(args []string) (string, func(string) ([]domain.ConversionRecord, int, error), error) {
	switch format {
	case "csv":
		return pathOrDefault(args, cfg.CSVPath), store.LoadCSV, nil
	case "txt":
		return pathOrDefault(args, cfg.TXTPath), store.LoadTXT, nil
	}
	return "", nil, fmt.Errorf("unsupported format: %q (want csv or txt)", format)
}

func pathOrDefault(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}
