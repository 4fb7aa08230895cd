package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vadiminshakov/romanum/internal/domain"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single value and record it in the history",
	}
	cmd.AddCommand(toRomanCmd(), toDecimalCmd())
	return cmd
}

// to-roman <number>: encode a decimal integer as a Roman numeral.
func toRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-roman <number>",
		Short: "Convert a decimal integer (1-3999) to a Roman numeral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(domain.DecimalToRoman, args[0])
		},
	}
}

// to-decimal <numeral>: decode a Roman numeral to a decimal integer.
func toDecimalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-decimal <numeral>",
		Short: "Convert a Roman numeral to a decimal integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(domain.RomanToDecimal, args[0])
		},
	}
}

func runConvert(direction domain.Direction, raw string) error {
	rec, err := conv.Convert(domain.ConversionRequest{Direction: direction, RawInput: raw})
	if err != nil {
		return err
	}

	log, err := openHistory()
	if err != nil {
		return err
	}
	defer log.Close()

	if err := log.Record(rec); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", rec.Input, rec.Output)
	return nil
}
