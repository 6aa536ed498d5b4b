package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/survey-service/internal/domain"
)

// RecordStore owns the serialized collection of survey entries. The whole
// collection lives in one blob; every read re-parses it and no copy is cached
// in memory. Append is a read-modify-write sequence and is not atomic against
// concurrent writers.
type RecordStore struct {
	blob   Blob
	logger *zap.Logger
}

// NewRecordStore constructs the store over a blob backend.
func NewRecordStore(blob Blob, logger *zap.Logger) *RecordStore {
	return &RecordStore{blob: blob, logger: logger}
}

// ReadAll returns the stored entries in insertion order, decoded and
// normalized. It never fails: an absent key, unreadable backend, corrupt
// blob, or non-array payload all degrade to an empty collection with a
// logged warning.
func (s *RecordStore) ReadAll(ctx context.Context) []domain.SurveyEntry {
	raws := s.readRaw(ctx)
	entries := make([]domain.SurveyEntry, 0, len(raws))
	for i, raw := range raws {
		var record domain.RawEntry
		if err := json.Unmarshal(raw, &record); err != nil {
			s.logger.Warn("skipping malformed stored record", zap.Int("index", i), zap.Error(err))
			continue
		}
		entry, ok := domain.DecodeEntry(record)
		if !ok {
			s.logger.Warn("skipping null stored record", zap.Int("index", i))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Append adds one entry to the end of the collection and writes the whole
// collection back. Records already stored are carried over verbatim.
func (s *RecordStore) Append(ctx context.Context, entry domain.SurveyEntry) error {
	raws := s.readRaw(ctx)

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	raws = append(raws, encoded)

	data, err := json.Marshal(raws)
	if err != nil {
		return err
	}
	return s.blob.Write(ctx, data)
}

// Clear removes the stored key entirely; a subsequent ReadAll yields an
// empty collection.
func (s *RecordStore) Clear(ctx context.Context) error {
	return s.blob.Delete(ctx)
}

// readRaw loads the blob and splits it into undecoded records. Parse
// failures degrade to an empty collection rather than propagating.
func (s *RecordStore) readRaw(ctx context.Context) []json.RawMessage {
	data, ok, err := s.blob.Read(ctx)
	if err != nil {
		s.logger.Warn("failed to read survey storage", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		s.logger.Warn("stored survey data is not a valid JSON array; treating as empty", zap.Error(err))
		return nil
	}
	return raws
}
