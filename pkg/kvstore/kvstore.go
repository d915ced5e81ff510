package kvstore

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// Store — минимальный контракт key-value хранилища: одна запись на
// коллекцию, значение — сериализованная JSON-коллекция целиком.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

type BadgerStore struct {
	db *badger.DB
}

// Open открывает (или создаёт) встроенную базу BadgerDB в каталоге dir.
// Запись синхронная: данные на диске до возврата из Set.
func Open(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// OpenInMemory открывает базу в памяти. Используется в тестах.
func OpenInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *BadgerStore) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
