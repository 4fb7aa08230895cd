package setup

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vadiminshakov/romanum/config"
	"github.com/vadiminshakov/romanum/internal/domain"
	"github.com/vadiminshakov/romanum/internal/services/converter"
	"github.com/vadiminshakov/romanum/internal/services/history"
	"github.com/vadiminshakov/romanum/internal/storage"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	resultStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().Foreground(subtle)
)

const (
	menuToRoman   = "to_roman"
	menuToDecimal = "to_decimal"
	menuHistory   = "history"
	menuSaveCSV   = "save_csv"
	menuSaveTXT   = "save_txt"
	menuLoadCSV   = "load_csv"
	menuLoadTXT   = "load_txt"
	menuClear     = "clear"
	menuExit      = "exit"
)

// TUI is the interactive menu loop over the converter and the history log.
type TUI struct {
	cfg    config.Config
	conv   *converter.Converter
	log    *history.Log
	store  *storage.FileStore
	logger *zap.Logger
	stdin  *bufio.Reader
}

func NewTUI(cfg config.Config, conv *converter.Converter, log *history.Log, store *storage.FileStore, logger *zap.Logger) *TUI {
	return &TUI{
		cfg:    cfg,
		conv:   conv,
		log:    log,
		store:  store,
		logger: logger,
		stdin:  bufio.NewReader(os.Stdin),
	}
}

// Run shows the menu until the user exits. Conversion errors are displayed
// and the loop re-prompts; they never terminate the session.
func (t *TUI) Run() error {
	for {
		fmt.Print("\033[H\033[2J") // Clear screen
		fmt.Println(headerStyle.Render("ROMAN NUMERAL CONVERTER"))
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d conversions recorded this session\n", t.log.Len())))

		var choice string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select an option").
					Options(
						huh.NewOption("Decimal -> Roman", menuToRoman),
						huh.NewOption("Roman -> Decimal", menuToDecimal),
						huh.NewOption("View history", menuHistory),
						huh.NewOption("Save history (CSV)", menuSaveCSV),
						huh.NewOption("Save history (TXT)", menuSaveTXT),
						huh.NewOption("Load history (CSV)", menuLoadCSV),
						huh.NewOption("Load history (TXT)", menuLoadTXT),
						huh.NewOption("Clear history", menuClear),
						huh.NewOption("Exit", menuExit),
					).
					Value(&choice),
			),
		).Run()
		if err != nil {
			return err
		}

		switch choice {
		case menuToRoman:
			err = t.convert(domain.DecimalToRoman)
		case menuToDecimal:
			err = t.convert(domain.RomanToDecimal)
		case menuHistory:
			err = t.showHistory()
		case menuSaveCSV:
			err = t.saveFile(t.cfg.CSVPath, t.store.SaveCSV)
		case menuSaveTXT:
			err = t.saveFile(t.cfg.TXTPath, t.store.SaveTXT)
		case menuLoadCSV:
			err = t.loadFile(t.cfg.CSVPath, t.store.LoadCSV)
		case menuLoadTXT:
			err = t.loadFile(t.cfg.TXTPath, t.store.LoadTXT)
		case menuClear:
			err = t.clearHistory()
		case menuExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *TUI) convert(direction domain.Direction) error {
	title := "Enter decimal number (1-3999)"
	if direction == domain.RomanToDecimal {
		title = "Enter Roman numeral (e.g. MCMXCIV)"
	}

	var raw string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&raw).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("input cannot be empty")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	rec, err := t.conv.Convert(domain.ConversionRequest{Direction: direction, RawInput: raw})
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return t.pause()
	}

	if err := t.log.Record(rec); err != nil {
		return err
	}
	t.logger.Info("conversion recorded",
		zap.String("direction", rec.Direction.String()),
		zap.String("input", rec.Input),
		zap.String("output", rec.Output))

	fmt.Println(resultStyle.Render(fmt.Sprintf("%s = %s", rec.Input, rec.Output)))
	return t.pause()
}

func (t *TUI) showHistory() error {
	records := t.log.List()
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("history is empty"))
		return t.pause()
	}

	fmt.Println(resultStyle.Render("Conversion history:"))
	for _, rec := range records {
		fmt.Printf("%3d. %s\n", rec.Index, rec.String())
	}
	return t.pause()
}

func (t *TUI) saveFile(defaultPath string, save func(string, []domain.ConversionRecord) error) error {
	path, err := t.promptPath(defaultPath)
	if err != nil {
		return err
	}

	if err := save(path, t.log.List()); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return t.pause()
	}
	fmt.Println(resultStyle.Render("history saved to " + path))
	return t.pause()
}

func (t *TUI) loadFile(defaultPath string, load func(string) ([]domain.ConversionRecord, int, error)) error {
	path, err := t.promptPath(defaultPath)
	if err != nil {
		return err
	}

	records, skipped, err := load(path)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return t.pause()
	}
	for _, rec := range records {
		if err := t.log.Record(rec); err != nil {
			return err
		}
	}

	msg := fmt.Sprintf("loaded %d records from %s", len(records), path)
	if skipped > 0 {
		msg += fmt.Sprintf(" (%d malformed rows skipped)", skipped)
	}
	fmt.Println(resultStyle.Render(msg))
	return t.pause()
}

func (t *TUI) clearHistory() error {
	var confirm bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear %d recorded conversions?", t.log.Len())).
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := t.log.Clear(); err != nil {
		return err
	}
	fmt.Println(resultStyle.Render("history cleared"))
	return t.pause()
}

func (t *TUI) promptPath(defaultPath string) (string, error) {
	path := defaultPath
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Description("default: " + defaultPath).
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func (t *TUI) pause() error {
	fmt.Print(dimStyle.Render("press enter to continue"))
	_, _ = t.stdin.ReadString('\n')
	return nil
}
