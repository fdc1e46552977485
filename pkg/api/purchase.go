package api

import "time"

// PurchaseRequest представляет запрос на получение офферов покупки домена.
// SearchID привязывает запрос к конкретному предыдущему поиску.
type PurchaseRequest struct {
	Domain             string             `json:"domain"`
	ContactInformation ContactInformation `json:"contact_information"`
	SearchID           string             `json:"search_id"`
}

// Offer представляет один вариант оплаты покупки домена
type Offer struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`   // например 'one-time'
	Amount         int64    `json:"amount"` // стоимость в центах USD
	Currency       string   `json:"currency"`
	PaymentMethods []string `json:"payment_methods"` // 'credit_card', 'lightning'
}

// OffersResponse представляет набор офферов, полученный со статусом 402.
// Raw хранит тело ответа как есть, если сервер вернул не-JSON payload.
type OffersResponse struct {
	Version             string  `json:"version,omitempty"` // версия протокола L402
	PaymentRequestURL   string  `json:"payment_request_url"`
	PaymentContextToken string  `json:"payment_context_token"`
	Offers              []Offer `json:"offers"`
	Raw                 []byte  `json:"-"`
}

// PaymentDetailsRequest представляет запрос платежных инструкций по офферу
type PaymentDetailsRequest struct {
	OfferID             string `json:"offer_id"`
	PaymentMethod       string `json:"payment_method"` // 'credit_card' или 'lightning'
	PaymentContextToken string `json:"payment_context_token"`
}

// PaymentDetails представляет платежные инструкции — терминальный артефакт
// переговоров о покупке. SDK сам платеж не выполняет.
type PaymentDetails struct {
	CheckoutURL      string    `json:"checkout_url,omitempty"`      // для credit_card
	LightningInvoice string    `json:"lightning_invoice,omitempty"` // для lightning
	ExpiresAt        time.Time `json:"expires_at,omitzero"`
	Raw              []byte    `json:"-"`
}
