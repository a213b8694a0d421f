package mfa

import (
	"context"
	"sync"
	"time"
)

// Challenge is a pending verification code for one principal.
type Challenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Address   string    `json:"address"`
}

// ChallengeStore keeps at most one challenge per principal. Set overwrites.
// Get and Consume report ok == false when nothing is stored.
//
// Consume hands the stored challenge to decide and deletes it when decide
// returns true. Loading, deciding and deleting happen as one atomic step
// with respect to every other caller of the store, including other
// processes sharing it. decide may run more than once if the store retries.
type ChallengeStore interface {
	Get(ctx context.Context, principalID int64) (Challenge, bool, error)
	Set(ctx context.Context, principalID int64, c Challenge) error
	Delete(ctx context.Context, principalID int64) error
	Consume(ctx context.Context, principalID int64, decide func(Challenge) bool) (Challenge, bool, error)
}

// MemoryStore is the process-local ChallengeStore. Challenges do not survive
// a restart.
type MemoryStore struct {
	mu         sync.RWMutex
	challenges map[int64]Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{challenges: make(map[int64]Challenge)}
}

func (s *MemoryStore) Get(_ context.Context, principalID int64) (Challenge, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[principalID]
	return c, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, principalID int64, c Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[principalID] = c
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, principalID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, principalID)
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, principalID int64, decide func(Challenge) bool) (Challenge, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[principalID]
	if !ok {
		return Challenge{}, false, nil
	}
	if decide(c) {
		delete(s.challenges, principalID)
	}
	return c, true, nil
}

// Len returns the number of stored challenges.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.challenges)
}

// Sweep drops challenges that expired before now and returns how many were
// removed. Redis expires keys on its own; the memory store needs this to
// bound its size.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, c := range s.challenges {
		if now.After(c.ExpiresAt) {
			delete(s.challenges, id)
			removed++
		}
	}
	return removed
}
