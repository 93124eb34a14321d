package memstore

import (
	"context"
	"sync"
	"time"
)

// Locker is a process-local stand-in for the Redis lock.
type Locker struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

type heldLock struct {
	value   string
	expires time.Time
}

func NewLocker() *Locker {
	return &Locker{locks: map[string]heldLock{}, now: time.Now}
}

func (l *Locker) AcquireLock(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.expires) {
		return false, nil
	}
	l.locks[key] = heldLock{value: value, expires: now.Add(ttl)}
	return true, nil
}

// ReleaseLock only releases a lock still held with value.
func (l *Locker) ReleaseLock(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, ok := l.locks[key]; ok && held.value == value {
		delete(l.locks, key)
	}
	return nil
}
