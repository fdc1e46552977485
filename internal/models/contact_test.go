package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeContact() Contact {
	return Contact{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Address:    "123 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}
}

// TestContact_IsValid_Complete проверяет что полный контакт валиден
func TestContact_IsValid_Complete(t *testing.T) {
	assert.True(t, completeContact().IsValid())
}

// TestContact_IsValid_SingleEmptyField проверяет что любое одно пустое поле
// делает контакт невалидным
func TestContact_IsValid_SingleEmptyField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contact)
	}{
		{"first_name", func(c *Contact) { c.FirstName = "" }},
		{"last_name", func(c *Contact) { c.LastName = "" }},
		{"email", func(c *Contact) { c.Email = "" }},
		{"address", func(c *Contact) { c.Address = "" }},
		{"city", func(c *Contact) { c.City = "" }},
		{"state", func(c *Contact) { c.State = "" }},
		{"postal_code", func(c *Contact) { c.PostalCode = "" }},
		{"country", func(c *Contact) { c.Country = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := completeContact()
			tt.mutate(&c)
			assert.False(t, c.IsValid())
		})
	}
}

// TestContact_IsValid_NoFormatChecking проверяет что формат полей не проверяется
// (осознанная мягкость: сервер отклонит некорректные данные сам)
func TestContact_IsValid_NoFormatChecking(t *testing.T) {
	c := completeContact()
	c.Email = "not-an-email"
	c.Country = "NOT_A_COUNTRY_CODE"

	assert.True(t, c.IsValid())
}

// TestContact_WireRoundtrip проверяет сериализацию в wire формат и обратно
func TestContact_WireRoundtrip(t *testing.T) {
	c := completeContact()

	w := c.ToWire()
	assert.Equal(t, "John", w.FirstName)
	assert.Equal(t, "62701", w.PostalCode)

	restored := ContactFromWire(w)
	assert.Equal(t, c, restored)
}
