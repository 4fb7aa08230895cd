package history

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/romanum/internal/domain"
)

func sampleRecords() []domain.ConversionRecord {
	return []domain.ConversionRecord{
		domain.NewConversionRecord(domain.DecimalToRoman, "5", "V"),
		domain.NewConversionRecord(domain.RomanToDecimal, "IX", "9"),
		domain.NewConversionRecord(domain.DecimalToRoman, "1994", "MCMXCIV"),
	}
}

type triple struct {
	direction domain.Direction
	input     string
	output    string
}

func triples(records []domain.ConversionRecord) []triple {
	out := make([]triple, 0, len(records))
	for _, rec := range records {
		out = append(out, triple{rec.Direction, rec.Input, rec.Output})
	}
	return out
}

func TestCSVRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "direction,input,output", lines[0])
	assert.Equal(t, "decimal_to_roman,5,V", lines[1])

	back, skipped, err := DecodeCSV(&buf)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, triples(records), triples(back))
}

func TestTXTRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, EncodeTXT(&buf, records))
	assert.Contains(t, buf.String(), "IX -> 9 (roman_to_decimal)\n")

	back, skipped, err := DecodeTXT(&buf)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, triples(records), triples(back))
}

func TestDecodeCSVValidatesHeader(t *testing.T) {
	for _, input := range []string{
		"",
		"foo,bar,baz\n",
		"input,output,direction\n",
		"direction,input\n",
	} {
		_, _, err := DecodeCSV(strings.NewReader(input))
		require.Error(t, err, "input %q", input)

		var ffe *FileFormatError
		require.ErrorAs(t, err, &ffe, "input %q", input)
	}
}

func TestDecodeCSVSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"direction,input,output",
		"decimal_to_roman,5,V",
		"not_a_direction,6,VI",
		"roman_to_decimal,IX",
		"roman_to_decimal,,9",
		"roman_to_decimal,IX,9",
	}, "\n")

	records, skipped, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "5", records[0].Input)
	assert.Equal(t, "IX", records[1].Input)
}

func TestDecodeTXTSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"5 -> V (decimal_to_roman)",
		"",
		"this is not a history line",
		"IX -> 9 (upside_down)",
		"IX -> 9 (roman_to_decimal)",
	}, "\n")

	records, skipped, err := DecodeTXT(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, domain.DecimalToRoman, records[0].Direction)
	assert.Equal(t, domain.RomanToDecimal, records[1].Direction)
}

func TestEncodeCSVEmptyHistoryStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, nil))
	assert.Equal(t, "direction,input,output\n", buf.String())
}
