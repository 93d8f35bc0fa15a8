package auth

import (
	"context"
	"sync"
	"time"
)

const (
	// MaxAttempts is the failed-login threshold per source address.
	MaxAttempts = 5
	// LockDuration is how long a source stays locked after the triggering
	// failure.
	LockDuration = 15 * time.Minute
)

// LockoutStore tracks failed login attempts per source key. Updates must be
// atomic per key so racing requests cannot lose increments and stretch the
// attempt budget.
type LockoutStore interface {
	// Check reports whether the key is currently locked and, if so, for how
	// much longer.
	Check(ctx context.Context, key string) (locked bool, remaining time.Duration, err error)
	// Fail records a failed attempt and returns the new failure count. The
	// lock starts when the count reaches MaxAttempts.
	Fail(ctx context.Context, key string) (int, error)
	// Reset clears the record for a key after a successful login.
	Reset(ctx context.Context, key string) error
}

type attemptRecord struct {
	count       int
	lockedUntil time.Time
	lastFailure time.Time
}

// MemoryLockoutStore is a process-local LockoutStore. Suitable only for
// single-instance deployment; a restart clears all state. Stale entries are
// swept periodically so the table stays bounded.
type MemoryLockoutStore struct {
	mu      sync.Mutex
	records map[string]*attemptRecord
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemoryLockoutStore creates a memory store and starts its sweep loop.
func NewMemoryLockoutStore() *MemoryLockoutStore {
	s := &MemoryLockoutStore{
		records: make(map[string]*attemptRecord),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go s.sweepLoop(10 * time.Minute)
	return s
}

// Check reports lock state. The transition out of Locked is lazy: once the
// window passes the record just stops counting as locked, though the failure
// count survives until the next successful login.
func (s *MemoryLockoutStore) Check(_ context.Context, key string) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	if !ok {
		return false, 0, nil
	}
	now := s.now()
	if rec.lockedUntil.After(now) {
		return true, rec.lockedUntil.Sub(now), nil
	}
	return false, 0, nil
}

// Fail increments the failure count under a single critical section.
func (s *MemoryLockoutStore) Fail(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	if !ok {
		rec = &attemptRecord{}
		s.records[key] = rec
	}
	rec.count++
	rec.lastFailure = s.now()
	if rec.count >= MaxAttempts {
		rec.lockedUntil = rec.lastFailure.Add(LockDuration)
	}
	return rec.count, nil
}

// Reset deletes the record for a key.
func (s *MemoryLockoutStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

// Close stops the sweep loop.
func (s *MemoryLockoutStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryLockoutStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep drops records that are not locked and have not failed within the
// last lock duration, keeping the table bounded without shortening any
// active lock or warning window.
func (s *MemoryLockoutStore) sweep() {
	now := s.now()
	cutoff := now.Add(-LockDuration)
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.records {
		if rec.lockedUntil.Before(now) && rec.lastFailure.Before(cutoff) {
			delete(s.records, key)
		}
	}
}
