package inmemdb

import (
	"context"
	"sync"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

// Store keeps documents in memory; used in tests and ephemeral runs.
type Store struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ attendance.DocumentStore = (*Store)(nil) // interface compliance check

func Open() (*Store, error) {
	return &Store{table: make(map[string][]byte)}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.table[key]
	if !ok {
		return nil, attendance.ErrNoDocument
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.table[key] = cp
	return nil
}
