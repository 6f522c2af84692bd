package badgerdb

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

// Store is a BadgerDB-backed document store. It plays the part of the
// device's local storage: one blob under one key.
type Store struct {
	db *badger.DB
}

var _ attendance.DocumentStore = (*Store)(nil) // interface compliance check

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening document store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, attendance.ErrNoDocument
		}
		return nil, errors.Wrap(err, "reading document")
	}
	return val, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	return errors.Wrap(err, "writing document")
}

func (s *Store) Close() error {
	return s.db.Close()
}
