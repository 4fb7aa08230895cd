// Package history keeps the append-only record of conversions performed
// during a session. Every append is journalled to a write-ahead log, so the
// record survives restarts; clearing is journalled as a tombstone rather
// than rewriting segments, which keeps the log a true audit trail.
package history

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"

	"github.com/vadiminshakov/romanum/internal/domain"
)

const (
	recordKeyPrefix = "conversion_"
	clearKeyPrefix  = "clear_"
)

// Log is an ordered, append-only sequence of conversion records. It is not
// safe for concurrent use; one session owns one Log.
type Log struct {
	wal     *gowal.Wal
	records []domain.ConversionRecord
}

// NewLog opens the journal in dir and replays it to rebuild the in-memory
// history. A tombstone entry written by Clear resets the replay.
func NewLog(dir string) (*Log, error) {
	wal, err := gowal.NewWAL(gowal.Config{
		Dir:              dir,
		Prefix:           "seg_",
		SegmentThreshold: 1000,
		MaxSegments:      100,
		IsInSyncDiskMode: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error init history journal")
	}

	log := &Log{wal: wal}
	for msg := range wal.Iterator() {
		switch {
		case strings.HasPrefix(msg.Key, clearKeyPrefix):
			log.records = log.records[:0]
		case strings.HasPrefix(msg.Key, recordKeyPrefix):
			var rec domain.ConversionRecord
			if err := json.Unmarshal(msg.Value, &rec); err != nil {
				wal.Close()
				return nil, errors.Wrapf(err, "corrupt journal entry %s", msg.Key)
			}
			rec.Index = uint64(len(log.records))
			log.records = append(log.records, rec)
		}
	}
	return log, nil
}

// Record appends rec, assigning it the next sequence index. The append is
// all-or-nothing: a journal write failure leaves the in-memory history
// untouched.
func (l *Log) Record(rec domain.ConversionRecord) error {
	rec.Index = uint64(len(l.records))

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "error marshal conversion record")
	}
	key := recordKeyPrefix + rec.ID
	if err := l.wal.Write(l.wal.CurrentIndex()+1, key, data); err != nil {
		return errors.Wrap(err, "error journal conversion record")
	}

	l.records = append(l.records, rec)
	return nil
}

// List returns a snapshot of the history in insertion order. Mutating the
// returned slice does not affect the log.
func (l *Log) List() []domain.ConversionRecord {
	out := make([]domain.ConversionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports the number of recorded conversions.
func (l *Log) Len() int {
	return len(l.records)
}

// Clear empties the history. The tombstone is journalled first so a replay
// after restart sees the same empty state.
func (l *Log) Clear() error {
	key := clearKeyPrefix + uuid.New().String()
	if err := l.wal.Write(l.wal.CurrentIndex()+1, key, []byte("cleared")); err != nil {
		return errors.Wrap(err, "error journal history clear")
	}
	l.records = l.records[:0]
	return nil
}

// Close releases the journal.
func (l *Log) Close() error {
	return l.wal.Close()
}
