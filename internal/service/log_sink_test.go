package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"techmatch/internal/models"

	"go.uber.org/zap"
)

type fakeLogRepo struct {
	inserted []*models.RequestLog
	err      error
}

func (f *fakeLogRepo) Insert(ctx context.Context, entry *models.RequestLog) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func TestRecordTruncatesResultado(t *testing.T) {
	repo := &fakeLogRepo{}
	sink := NewLogSink(repo, zap.NewNop())

	long := strings.Repeat("é", 700)
	sink.Record(context.Background(), LogEntry{
		RequestID: "req-1",
		UserID:    "u1",
		Resultado: long,
		Status:    models.LogStatusSuccess,
	})

	if len(repo.inserted) != 1 {
		t.Fatalf("Expected 1 inserted record, got %d", len(repo.inserted))
	}
	stored := repo.inserted[0]
	if got := len([]rune(stored.Resultado)); got != 500 {
		t.Errorf("Stored resultado has %d runes, expected 500", got)
	}
	if stored.Timestamp.IsZero() {
		t.Errorf("Timestamp must be set")
	}
	if stored.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Errorf("Record ID must be generated")
	}
}

func TestRecordKeepsShortResultado(t *testing.T) {
	repo := &fakeLogRepo{}
	sink := NewLogSink(repo, zap.NewNop())

	sink.Record(context.Background(), LogEntry{
		RequestID:  "req-2",
		UserID:     "u2",
		Query:      SummaryModeLabel,
		Resultado:  "curto",
		FilesCount: 3,
		Status:     models.LogStatusError,
	})

	stored := repo.inserted[0]
	if stored.Resultado != "curto" {
		t.Errorf("Resultado = %q, expected unchanged", stored.Resultado)
	}
	if stored.Query != SummaryModeLabel {
		t.Errorf("Query = %q, expected summary mode label", stored.Query)
	}
	if stored.FilesCount != 3 || stored.Status != models.LogStatusError {
		t.Errorf("Unexpected record fields: %+v", stored)
	}
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	repo := &fakeLogRepo{err: errors.New("connection refused")}
	sink := NewLogSink(repo, zap.NewNop())

	// Must not panic and must not surface the error in any way.
	sink.Record(context.Background(), LogEntry{
		RequestID: "req-3",
		UserID:    "u3",
		Resultado: "qualquer",
		Status:    models.LogStatusSuccess,
	})
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("abc", 5); got != "abc" {
		t.Errorf("truncateRunes short input = %q", got)
	}
	if got := truncateRunes("abcdef", 3); got != "abc" {
		t.Errorf("truncateRunes = %q, expected abc", got)
	}
	if got := truncateRunes("ééééé", 2); got != "éé" {
		t.Errorf("truncateRunes must cut on rune boundaries, got %q", got)
	}
}
