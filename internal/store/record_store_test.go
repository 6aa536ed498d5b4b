package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/survey-service/internal/domain"
)

// memoryBlob is an in-memory Blob for tests.
type memoryBlob struct {
	data    []byte
	present bool
	readErr error
}

func (b *memoryBlob) Read(ctx context.Context) ([]byte, bool, error) {
	if b.readErr != nil {
		return nil, false, b.readErr
	}
	return b.data, b.present, nil
}

func (b *memoryBlob) Write(ctx context.Context, data []byte) error {
	b.data = append([]byte(nil), data...)
	b.present = true
	return nil
}

func (b *memoryBlob) Delete(ctx context.Context) error {
	b.data = nil
	b.present = false
	return nil
}

func newTestStore(blob Blob) *RecordStore {
	return NewRecordStore(blob, zap.NewNop())
}

func TestReadAllEmptyWhenAbsent(t *testing.T) {
	s := newTestStore(&memoryBlob{})
	assert.Empty(t, s.ReadAll(context.Background()))
}

func TestReadAllDegradesOnCorruptBlob(t *testing.T) {
	s := newTestStore(&memoryBlob{data: []byte("not json"), present: true})
	assert.Empty(t, s.ReadAll(context.Background()))
}

func TestReadAllDegradesOnNonArrayBlob(t *testing.T) {
	s := newTestStore(&memoryBlob{data: []byte(`{"timestamp":"x"}`), present: true})
	assert.Empty(t, s.ReadAll(context.Background()))
}

func TestReadAllDegradesOnBackendError(t *testing.T) {
	s := newTestStore(&memoryBlob{readErr: errors.New("connection refused")})
	assert.Empty(t, s.ReadAll(context.Background()))
}

func TestReadAllSkipsNullElements(t *testing.T) {
	blob := &memoryBlob{
		data:    []byte(`[null,{"timestamp":"2024-06-01T10:00:00Z","department":"営業","priority":3,"issue":"a","contact":false}]`),
		present: true,
	}
	s := newTestStore(blob)

	entries := s.ReadAll(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, "営業", entries[0].Department)
}

func TestReadAllCoercesUntrustedRecords(t *testing.T) {
	blob := &memoryBlob{
		data:    []byte(`[{"timestamp":"2024-06-01T10:00:00Z","department":"営業","issue":"a"}]`),
		present: true,
	}
	s := newTestStore(blob)

	entries := s.ReadAll(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Priority)
	assert.False(t, entries[0].Contact)
	assert.Equal(t, "", entries[0].Role)
}

func TestAppendToEmptyStore(t *testing.T) {
	blob := &memoryBlob{}
	s := newTestStore(blob)
	ctx := context.Background()

	entry := domain.SurveyEntry{
		Timestamp:  "2024-06-01T10:00:00Z",
		Department: domain.DepartmentSales,
		Priority:   3,
		Issue:      "No printer ink",
	}
	require.NoError(t, s.Append(ctx, entry))

	entries := s.ReadAll(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(&memoryBlob{})
	ctx := context.Background()

	for _, issue := range []string{"first", "second", "third"} {
		require.NoError(t, s.Append(ctx, domain.SurveyEntry{
			Timestamp: "2024-06-01T10:00:00Z",
			Priority:  1,
			Issue:     issue,
		}))
	}

	entries := s.ReadAll(ctx)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Issue)
	assert.Equal(t, "third", entries[2].Issue)
}

func TestAppendCarriesExistingRecordsVerbatim(t *testing.T) {
	// unknown fields on already-stored records survive the rewrite
	blob := &memoryBlob{
		data:    []byte(`[{"timestamp":"2024-06-01T10:00:00Z","department":"営業","priority":3,"issue":"a","contact":false,"extra":"kept"}]`),
		present: true,
	}
	s := newTestStore(blob)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, domain.SurveyEntry{Timestamp: "2024-06-02T10:00:00Z", Priority: 1, Issue: "b"}))

	assert.Contains(t, string(blob.data), `"extra":"kept"`)
	assert.Len(t, s.ReadAll(ctx), 2)
}

func TestAppendOverCorruptBlobStartsFresh(t *testing.T) {
	blob := &memoryBlob{data: []byte("not json"), present: true}
	s := newTestStore(blob)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, domain.SurveyEntry{Timestamp: "2024-06-01T10:00:00Z", Priority: 1, Issue: "a"}))
	assert.Len(t, s.ReadAll(ctx), 1)
}

func TestClear(t *testing.T) {
	s := newTestStore(&memoryBlob{})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Append(ctx, domain.SurveyEntry{Timestamp: "2024-06-01T10:00:00Z", Priority: 1, Issue: "x"}))
	}
	require.Len(t, s.ReadAll(ctx), 10)

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.ReadAll(ctx))
}
