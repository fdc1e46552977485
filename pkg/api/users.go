package api

// ContactInformation представляет контактные данные регистранта (ICANN contact).
// Точный набор полей, который ожидает API; все поля обязательны для покупки.
type ContactInformation struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`       // код штата для US/CA (например 'CA') или название провинции
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"` // двухбуквенный код страны ('US', 'ES', 'FR')
}

// SetContactResponse представляет ответ на сохранение контактных данных
type SetContactResponse struct {
	Message string `json:"message,omitempty"`
}
