package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogStatusSuccess = "success"
	LogStatusError   = "error"
)

// RequestLog is one append-only record per analysis request. The service
// only ever writes these rows; there is no read path.
type RequestLog struct {
	ID         uuid.UUID `db:"id"`
	RequestID  string    `db:"request_id"`
	UserID     string    `db:"user_id"`
	Timestamp  time.Time `db:"timestamp"`
	Query      string    `db:"query"`
	Resultado  string    `db:"resultado"`
	FilesCount int       `db:"files_count"`
	Status     string    `db:"status"`
}
