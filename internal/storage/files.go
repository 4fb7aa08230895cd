// Package storage is the file-I/O collaborator for history exports. It owns
// the file handles and delegates the actual (de)serialization to the history
// package's codec functions.
package storage

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/romanum/internal/domain"
	"github.com/vadiminshakov/romanum/internal/services/history"
)

type encodeFunc func(io.Writer, []domain.ConversionRecord) error
type decodeFunc func(io.Reader) ([]domain.ConversionRecord, int, error)

// FileStore saves and loads history snapshots on the local filesystem.
type FileStore struct {
	logger *zap.Logger
}

func NewFileStore(logger *zap.Logger) *FileStore {
	return &FileStore{logger: logger}
}

// SaveCSV writes records to path in CSV format, replacing any existing file.
func (s *FileStore) SaveCSV(path string, records []domain.ConversionRecord) error {
	return s.save(path, records, history.EncodeCSV)
}

// SaveTXT writes records to path in the human-readable format.
func (s *FileStore) SaveTXT(path string, records []domain.ConversionRecord) error {
	return s.save(path, records, history.EncodeTXT)
}

// LoadCSV reads records from a CSV file, returning the number of malformed
// rows that were skipped.
func (s *FileStore) LoadCSV(path string) ([]domain.ConversionRecord, int, error) {
	return s.load(path, history.DecodeCSV)
}

// LoadTXT reads records from a human-readable file, returning the number of
// malformed lines that were skipped.
func (s *FileStore) LoadTXT(path string) ([]domain.ConversionRecord, int, error) {
	return s.load(path, history.DecodeTXT)
}

func (s *FileStore) save(path string, records []domain.ConversionRecord, encode encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error create %s", path)
	}
	if err := encode(f, records); err != nil {
		f.Close()
		return errors.Wrapf(err, "error encode history to %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "error close %s", path)
	}

	s.logger.Info("history saved",
		zap.String("path", path),
		zap.Int("records", len(records)))
	return nil
}

func (s *FileStore) load(path string, decode decodeFunc) ([]domain.ConversionRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error open %s", path)
	}
	defer f.Close()

	records, skipped, err := decode(f)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error decode history from %s", path)
	}
	if skipped > 0 {
		s.logger.Warn("skipped malformed history rows",
			zap.String("path", path),
			zap.Int("skipped", skipped))
	}
	return records, skipped, nil
}
