// Package batch converts sequences of requests strictly sequentially.
// Failures are fail-soft per item: a bad request is reported and skipped,
// and previously recorded successes stay in the history log.
package batch

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/romanum/internal/domain"
	"github.com/vadiminshakov/romanum/internal/services/converter"
	"github.com/vadiminshakov/romanum/internal/services/history"
)

// ItemError ties a failed request to its position in the batch.
type ItemError struct {
	Position int
	Request  domain.ConversionRequest
	Err      error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("batch item %d (%q): %v", e.Position, e.Request.RawInput, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// Result holds the successfully converted records and the per-item failures
// of one batch run.
type Result struct {
	Records []domain.ConversionRecord
	Failed  []ItemError
}

type Service struct {
	converter *converter.Converter
	log       *history.Log
	logger    *zap.Logger
}

func NewService(conv *converter.Converter, log *history.Log, logger *zap.Logger) *Service {
	return &Service{converter: conv, log: log, logger: logger}
}

// Run processes requests in order. Conversion failures are collected in the
// result; a journal write failure is fatal and aborts the remainder of the
// batch, keeping everything recorded so far.
func (s *Service) Run(requests []domain.ConversionRequest) (Result, error) {
	var res Result
	for i, req := range requests {
		rec, err := s.converter.Convert(req)
		if err != nil {
			s.logger.Warn("batch item failed",
				zap.Int("position", i),
				zap.String("direction", req.Direction.String()),
				zap.String("input", req.RawInput),
				zap.Error(err))
			res.Failed = append(res.Failed, ItemError{Position: i, Request: req, Err: err})
			continue
		}

		if err := s.log.Record(rec); err != nil {
			return res, errors.Wrapf(err, "error record batch item %d", i)
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}
