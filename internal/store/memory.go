package store

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps sessions in process memory. It is used when no database is
// configured; sessions do not survive a restart.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]SessionRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]SessionRecord)}
}

func (m *MemoryRepository) Insert(_ context.Context, rec *SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[string(rec.Hash)] = copyRecord(rec)
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, hash []byte) (*SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[string(hash)]
	if !ok || !rec.Expiry.After(time.Now()) {
		return nil, ErrSessionNotFound
	}

	cp := copyRecord(&rec)
	return &cp, nil
}

func (m *MemoryRepository) Update(_ context.Context, rec *SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[string(rec.Hash)]; !ok {
		return ErrSessionNotFound
	}

	m.sessions[string(rec.Hash)] = copyRecord(rec)
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, string(hash))
	return nil
}

func (m *MemoryRepository) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	now := time.Now()
	for k, rec := range m.sessions {
		if !rec.Expiry.After(now) {
			delete(m.sessions, k)
			n++
		}
	}

	return n, nil
}

func copyRecord(rec *SessionRecord) SessionRecord {
	cp := *rec
	if rec.User != nil {
		u := *rec.User
		cp.User = &u
	}

	return cp
}
