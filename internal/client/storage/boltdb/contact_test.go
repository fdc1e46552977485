package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
	"github.com/sherlockdomains/sherlock-go/internal/models"
)

// TestContact_SaveGet проверяет сохранение и чтение кеша контакта
func TestContact_SaveGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	contact := &models.Contact{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Address:    "123 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}

	require.NoError(t, store.SaveContact(ctx, contact))

	got, err := store.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact, got)
	assert.True(t, got.IsValid())
}

// TestContact_GetNotFound проверяет ошибку при отсутствии кеша
func TestContact_GetNotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.GetContact(context.Background())
	require.ErrorIs(t, err, storage.ErrContactNotFound)
	assert.Nil(t, got)
}

// TestContact_Delete проверяет удаление кеша контакта
func TestContact_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.ErrorIs(t, store.DeleteContact(ctx), storage.ErrContactNotFound)

	require.NoError(t, store.SaveContact(ctx, &models.Contact{FirstName: "J"}))
	require.NoError(t, store.DeleteContact(ctx))

	_, err := store.GetContact(ctx)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)
}
