package store

import (
	"context"

	"github.com/me/campus/pkg/model"
)

// Store defines the persistence layer for campus sessions. Course and
// exam data live behind the backend API; only the browser sessions the
// front end issues are stored locally.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	DeleteSessionsByUserID(ctx context.Context, userID string) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
