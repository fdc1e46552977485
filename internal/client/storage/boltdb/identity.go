package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
)

var identityKey = []byte("current")

// SaveIdentity stores the agent keypair record
func (s *Storage) SaveIdentity(ctx context.Context, identity *storage.Identity) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}

		if err := bucket.Put(identityKey, data); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}

		return nil
	})
}

// GetIdentity retrieves the stored keypair record
func (s *Storage) GetIdentity(ctx context.Context) (*storage.Identity, error) {
	var identity *storage.Identity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		data := bucket.Get(identityKey)
		if data == nil {
			return storage.ErrIdentityNotFound
		}

		// Десериализуем
		identity = &storage.Identity{}
		if err := json.Unmarshal(data, identity); err != nil {
			return fmt.Errorf("failed to unmarshal identity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return identity, nil
}

// DeleteIdentity removes the stored keypair record
func (s *Storage) DeleteIdentity(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		if bucket.Get(identityKey) == nil {
			return storage.ErrIdentityNotFound
		}

		if err := bucket.Delete(identityKey); err != nil {
			return fmt.Errorf("failed to delete identity: %w", err)
		}

		return nil
	})
}
