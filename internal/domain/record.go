package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ConversionRequest is a single conversion to perform. RawInput is the text
// as supplied by the caller; the converter parses it according to Direction.
type ConversionRequest struct {
	Direction Direction
	RawInput  string
}

// ConversionRecord is one immutable history entry capturing a successful
// conversion. Index is assigned by the history log at append time.
type ConversionRecord struct {
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Index     uint64    `json:"index"`
}

// NewConversionRecord creates a ConversionRecord with a fresh ID. The Index
// stays zero until the record is appended to a history log.
func NewConversionRecord(direction Direction, input, output string) ConversionRecord {
	return ConversionRecord{
		ID:        uuid.New().String(),
		Direction: direction,
		Input:     input,
		Output:    output,
	}
}

func (r *ConversionRecord) String() string {
	return fmt.Sprintf("%s -> %s (%s)", r.Input, r.Output, r.Direction)
}
