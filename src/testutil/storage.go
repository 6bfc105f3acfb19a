package testutil

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrDiskFull   = errors.New("disk full")
	ErrUnreadable = errors.New("storage unreadable")
)

// BrokenStorage is a ledger storage whose writes fail once FailWrites is
// set and whose reads fail while FailReads is set. FailNextReads fails that
// many reads and then recovers.
type BrokenStorage struct {
	mu            sync.Mutex
	data          map[string]string
	FailWrites    bool
	FailReads     bool
	FailNextReads int
}

func NewBrokenStorage() *BrokenStorage {
	return &BrokenStorage{data: map[string]string{}}
}

func (b *BrokenStorage) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailNextReads > 0 {
		b.FailNextReads--
		return "", false, ErrUnreadable
	}
	if b.FailReads {
		return "", false, ErrUnreadable
	}
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *BrokenStorage) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWrites {
		return ErrDiskFull
	}
	b.data[key] = value
	return nil
}

// Raw returns what is stored under key.
func (b *BrokenStorage) Raw(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[key]
}

// Put stores value under key directly.
func (b *BrokenStorage) Put(key, value string) {
	b.mu.Lock()
	b.data[key] = value
	b.mu.Unlock()
}

// StaticAvailability reports a fixed availability.
type StaticAvailability bool

func (p StaticAvailability) CheckAvailability(context.Context) bool { return bool(p) }
