package history

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/romanum/internal/domain"
)

// Serialization contracts for the two export formats. The log never owns
// file handles; sinks and sources are plain writers and readers supplied by
// the storage collaborator.

var csvHeader = []string{"direction", "input", "output"}

// FileFormatError reports a structurally unusable history file, e.g. a CSV
// with a missing or wrong header. Malformed individual rows are skipped and
// counted instead.
type FileFormatError struct {
	Reason string
}

func (e *FileFormatError) Error() string {
	return "bad history file: " + e.Reason
}

// EncodeCSV writes records as CSV with a `direction,input,output` header,
// one row per record in insertion order.
func EncodeCSV(w io.Writer, records []domain.ConversionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "error write csv header")
	}
	for _, rec := range records {
		if err := cw.Write([]string{rec.Direction.String(), rec.Input, rec.Output}); err != nil {
			return errors.Wrapf(err, "error write csv row %d", rec.Index)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "error flush csv")
}

// DecodeCSV parses a CSV history file. The header shape is validated;
// malformed rows are skipped and reported through the returned count.
func DecodeCSV(r io.Reader) ([]domain.ConversionRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, &FileFormatError{Reason: "missing csv header"}
	}
	if len(header) != len(csvHeader) ||
		header[0] != csvHeader[0] || header[1] != csvHeader[1] || header[2] != csvHeader[2] {
		return nil, 0, &FileFormatError{Reason: fmt.Sprintf("unexpected csv header %v", header)}
	}

	var records []domain.ConversionRecord
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		rec, ok := rowToRecord(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func rowToRecord(row []string) (domain.ConversionRecord, bool) {
	if len(row) != 3 || row[1] == "" || row[2] == "" {
		return domain.ConversionRecord{}, false
	}
	direction, err := domain.ParseDirection(row[0])
	if err != nil {
		return domain.ConversionRecord{}, false
	}
	return domain.NewConversionRecord(direction, row[1], row[2]), true
}

// EncodeTXT writes one human-readable line per record:
// `<input> -> <output> (<direction>)`.
func EncodeTXT(w io.Writer, records []domain.ConversionRecord) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s -> %s (%s)\n", rec.Input, rec.Output, rec.Direction); err != nil {
			return errors.Wrapf(err, "error write txt line %d", rec.Index)
		}
	}
	return nil
}

var txtLine = regexp.MustCompile(`^(\S+) -> (\S+) \((\S+)\)$`)

// DecodeTXT parses the human-readable format back into records. Lines that
// do not match the format are skipped and counted; blank lines are ignored.
func DecodeTXT(r io.Reader) ([]domain.ConversionRecord, int, error) {
	var records []domain.ConversionRecord
	skipped := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := txtLine.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}
		rec, ok := rowToRecord([]string{m[3], m[1], m[2]})
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, errors.Wrap(err, "error read txt history")
	}
	return records, skipped, nil
}
