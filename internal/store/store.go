package store

import (
	"context"
	"errors"
	"time"

	"github.com/sushihentaime/blogfront/internal/common"
)

func New(repo SessionRepository, cache *common.Cache, ttl time.Duration) *Store {
	return &Store{repo: repo, cache: cache, ttl: ttl}
}

// Create starts an anonymous session and returns its plain token for the cookie.
func (s *Store) Create(ctx context.Context) (string, *State, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	hash := hashToken(token)

	err = s.repo.Insert(ctx, &SessionRecord{Hash: hash, Expiry: time.Now().Add(s.ttl)})
	if err != nil {
		return "", nil, err
	}

	st := NewState()
	st.markSaved(time.Now())
	s.cache.Set(common.CacheKeySession(hash), st)

	return token, st, nil
}

// Load returns the live State for token, rehydrating it from the repository when it is not cached.
func (s *Store) Load(ctx context.Context, token string) (*State, error) {
	if len(token) != SessionTokenLength {
		return nil, ErrSessionNotFound
	}

	hash := hashToken(token)
	key := common.CacheKeySession(hash)

	if cached, ok := s.cache.Refresh(key); ok {
		if st, ok := cached.(*State); ok {
			return st, nil
		}
	}

	rec, err := s.repo.Get(ctx, hash)
	if err != nil {
		return nil, err
	}

	st := restoreState(rec.Token, rec.User, rec.Expiry.Add(-s.ttl))

	// a concurrent request may have rehydrated the same session first; keep its State
	if err := s.cache.Add(key, st); err != nil {
		if cached, ok := s.cache.Get(key); ok {
			if existing, ok := cached.(*State); ok {
				return existing, nil
			}
		}
		s.cache.Set(key, st)
	}

	return st, nil
}

// Save persists the auth subset of st when it changed. An unchanged session is written
// again once half its TTL has passed, so the stored expiry keeps up with an active session.
func (s *Store) Save(ctx context.Context, token string, st *State) error {
	apiToken, user, dirty, savedAt := st.snapshot()
	if !dirty && time.Since(savedAt) < s.ttl/2 {
		return nil
	}

	now := time.Now()

	rec := &SessionRecord{
		Hash:   hashToken(token),
		Token:  apiToken,
		User:   user,
		Expiry: now.Add(s.ttl),
	}

	err := s.repo.Update(ctx, rec)
	if err != nil {
		return err
	}

	st.markSaved(now)
	return nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	hash := hashToken(token)
	s.cache.Delete(common.CacheKeySession(hash))

	err := s.repo.Delete(ctx, hash)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}

	return nil
}

// Active counts the sessions currently held in memory.
func (s *Store) Active() int {
	return s.cache.Len()
}

// PurgeExpired removes expired sessions from the repository.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
