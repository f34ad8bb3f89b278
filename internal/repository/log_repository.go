package repository

import (
	"context"

	"techmatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLogRepository(db *pgxpool.Pool, logger *zap.Logger) *LogRepository {
	return &LogRepository{
		db:     db,
		logger: logger,
	}
}

const createRequestLogsTable = `
CREATE TABLE IF NOT EXISTS request_logs (
	id UUID PRIMARY KEY,
	request_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL,
	query TEXT NOT NULL,
	resultado TEXT NOT NULL,
	files_count INT NOT NULL,
	status TEXT NOT NULL
)`

// EnsureSchema creates the request_logs table on startup if it is missing.
func (r *LogRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, createRequestLogsTable)
	return err
}

func (r *LogRepository) Insert(ctx context.Context, entry *models.RequestLog) error {
	query := squirrel.Insert("request_logs").
		Columns("id", "request_id", "user_id", "timestamp", "query", "resultado", "files_count", "status").
		Values(entry.ID, entry.RequestID, entry.UserID, entry.Timestamp, entry.Query, entry.Resultado, entry.FilesCount, entry.Status).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
