package repository

import (
	"context"

	"github.com/oksasatya/go-user-token-api/internal/domain/entity"
)

// SessionStore keeps one active session per user.
type SessionStore interface {
	Save(ctx context.Context, s entity.Session) error
	Get(ctx context.Context, userID string) (*entity.Session, error)
}
