package models

import "github.com/sherlockdomains/sherlock-go/pkg/api"

// Contact представляет контактные данные регистранта для покупки домена
// (ICANN contact). Все восемь полей обязательны.
type Contact struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsValid reports whether every field is non-empty. This is a shallow
// completeness check, not format validation: email, postal code and country
// code are accepted as-is and rejected server-side if malformed.
func (c Contact) IsValid() bool {
	return c.FirstName != "" &&
		c.LastName != "" &&
		c.Email != "" &&
		c.Address != "" &&
		c.City != "" &&
		c.State != "" &&
		c.PostalCode != "" &&
		c.Country != ""
}

// ToWire serializes the contact to the exact field set the API expects
func (c Contact) ToWire() api.ContactInformation {
	return api.ContactInformation{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
	}
}

// ContactFromWire restores a Contact from its wire representation
func ContactFromWire(w api.ContactInformation) Contact {
	return Contact{
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Email:      w.Email,
		Address:    w.Address,
		City:       w.City,
		State:      w.State,
		PostalCode: w.PostalCode,
		Country:    w.Country,
	}
}
