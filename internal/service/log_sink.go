package service

import (
	"context"
	"time"

	"techmatch/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// resultadoLimit caps the stored result text; full replies can run to many
// kilobytes and the log only needs enough to identify the outcome.
const resultadoLimit = 500

type LogEntry struct {
	RequestID  string
	UserID     string
	Query      string
	Resultado  string
	FilesCount int
	Status     string
}

// LogSink appends request records to the log store. It is strictly
// best-effort: failures must never reach the client-visible response.
type LogSink interface {
	Record(ctx context.Context, entry LogEntry)
}

type logInserter interface {
	Insert(ctx context.Context, entry *models.RequestLog) error
}

type logSink struct {
	repo     logInserter
	location *time.Location
	logger   *zap.Logger
}

func NewLogSink(repo logInserter, logger *zap.Logger) LogSink {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		logger.Warn("Timezone data unavailable, log timestamps will be UTC", zap.Error(err))
		loc = time.UTC
	}

	return &logSink{
		repo:     repo,
		location: loc,
		logger:   logger,
	}
}

func (s *logSink) Record(ctx context.Context, entry LogEntry) {
	record := &models.RequestLog{
		ID:         uuid.New(),
		RequestID:  entry.RequestID,
		UserID:     entry.UserID,
		Timestamp:  time.Now().In(s.location),
		Query:      entry.Query,
		Resultado:  sanitizeUTF8(truncateRunes(entry.Resultado, resultadoLimit)),
		FilesCount: entry.FilesCount,
		Status:     entry.Status,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		s.logger.Warn("Failed to save request log",
			zap.String("request_id", entry.RequestID),
			zap.Error(err),
		)
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
