package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base32"
	"encoding/json"
	"errors"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
)

func NewSessionModel(db *sql.DB) *SessionModel {
	return &SessionModel{db: db}
}

func hashToken(token string) []byte {
	hash := sha256.Sum256([]byte(token))
	return hash[:]
}

func newSessionToken() (string, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes), nil
}

func (m *SessionModel) Insert(ctx context.Context, rec *SessionRecord) error {
	userData, err := marshalUser(rec.User)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (hash, api_token, user_data, expiry)
		VALUES ($1, $2, $3, $4)`

	_, err = m.db.ExecContext(ctx, query, rec.Hash, rec.Token, userData, rec.Expiry)
	return err
}

func (m *SessionModel) Get(ctx context.Context, hash []byte) (*SessionRecord, error) {
	query := `
		SELECT hash, api_token, user_data, expiry
		FROM sessions
		WHERE hash = $1 AND expiry > $2`

	var (
		rec      SessionRecord
		userData []byte
	)

	err := m.db.QueryRowContext(ctx, query, hash, time.Now()).Scan(&rec.Hash, &rec.Token, &userData, &rec.Expiry)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrSessionNotFound
		default:
			return nil, err
		}
	}

	rec.User, err = unmarshalUser(userData)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (m *SessionModel) Update(ctx context.Context, rec *SessionRecord) error {
	userData, err := marshalUser(rec.User)
	if err != nil {
		return err
	}

	query := `
		UPDATE sessions
		SET api_token = $1, user_data = $2, expiry = $3, updated_at = now()
		WHERE hash = $4`

	res, err := m.db.ExecContext(ctx, query, rec.Token, userData, rec.Expiry, rec.Hash)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (m *SessionModel) Delete(ctx context.Context, hash []byte) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM sessions WHERE hash = $1`, hash)
	return err
}

func (m *SessionModel) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM sessions WHERE expiry <= $1`, time.Now())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// marshalUser returns a NULL string for a signed-out session. jsonb is sent as text:
// lib/pq would encode a []byte argument as bytea.
func marshalUser(u *apiclient.User) (sql.NullString, error) {
	if u == nil {
		return sql.NullString{}, nil
	}

	js, err := json.Marshal(u)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(js), Valid: true}, nil
}

func unmarshalUser(data []byte) (*apiclient.User, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var u apiclient.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}

	return &u, nil
}
