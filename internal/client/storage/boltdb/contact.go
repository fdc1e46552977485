package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
	"github.com/sherlockdomains/sherlock-go/internal/models"
)

var contactKey = []byte("current")

// SaveContact stores the contact profile cache
func (s *Storage) SaveContact(ctx context.Context, contact *models.Contact) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContact)
		if bucket == nil {
			return fmt.Errorf("contact bucket not found")
		}

		data, err := json.Marshal(contact)
		if err != nil {
			return fmt.Errorf("failed to marshal contact: %w", err)
		}

		if err := bucket.Put(contactKey, data); err != nil {
			return fmt.Errorf("failed to save contact: %w", err)
		}

		return nil
	})
}

// GetContact retrieves the cached contact profile
func (s *Storage) GetContact(ctx context.Context) (*models.Contact, error) {
	var contact *models.Contact

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContact)
		if bucket == nil {
			return fmt.Errorf("contact bucket not found")
		}

		data := bucket.Get(contactKey)
		if data == nil {
			return storage.ErrContactNotFound
		}

		contact = &models.Contact{}
		if err := json.Unmarshal(data, contact); err != nil {
			return fmt.Errorf("failed to unmarshal contact: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact removes the cached contact profile
func (s *Storage) DeleteContact(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContact)
		if bucket == nil {
			return fmt.Errorf("contact bucket not found")
		}

		if bucket.Get(contactKey) == nil {
			return storage.ErrContactNotFound
		}

		if err := bucket.Delete(contactKey); err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}

		return nil
	})
}
