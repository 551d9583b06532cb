package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
)

const SessionTokenLength = 26

var ErrSessionNotFound = errors.New("session not found")

// SessionRecord is the persisted part of a State: enough to rehydrate the auth slice.
type SessionRecord struct {
	Hash   []byte
	Token  string
	User   *apiclient.User
	Expiry time.Time
}

type SessionRepository interface {
	Insert(ctx context.Context, rec *SessionRecord) error
	Get(ctx context.Context, hash []byte) (*SessionRecord, error)
	Update(ctx context.Context, rec *SessionRecord) error
	Delete(ctx context.Context, hash []byte) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type SessionModel struct {
	db *sql.DB
}

// Store hands out session States. Live states sit in the cache; the auth subset is
// written to the repository so a session survives cache expiry and restarts.
type Store struct {
	repo  SessionRepository
	cache *common.Cache
	ttl   time.Duration
}
