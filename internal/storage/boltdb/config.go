package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"inkpad/internal/storage"
)

// Keys returns every stored config key.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// GetAll returns the full key/value snapshot of the settings store.
func (s *Storage) GetAll(ctx context.Context) (map[string]string, error) {
	entries := make(map[string]string)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			entries[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// SetAll writes every entry in one transaction, overwriting existing values
// for the same keys. Keys not mentioned in entries are left untouched.
func (s *Storage) SetAll(ctx context.Context, entries map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		for k, v := range entries {
			if err := bucket.Put([]byte(k), []byte(v)); err != nil {
				return fmt.Errorf("failed to set key %q: %w", k, err)
			}
		}

		return nil
	})
}

// Get returns the value for one key.
// Returns storage.ErrKeyNotFound if the key has never been set.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set writes a single value.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to set key %q: %w", key, err)
		}

		return nil
	})
}
