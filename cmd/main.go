// Command romanum converts between decimal integers (1-3999) and Roman
// numerals and keeps a durable, append-only history of conversions that can
// be exported to and imported from CSV and TXT files.
//
// Usage:
//
//	romanum tui
//	romanum convert to-roman 1994
//	romanum convert to-decimal MCMXCIV
//	romanum history list|clear|export|import
package main

import (
	"os"

	"github.com/vadiminshakov/romanum/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
