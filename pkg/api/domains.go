package api

import "time"

// DomainOption представляет один домен в результатах поиска
type DomainOption struct {
	Name     string   `json:"name"`     // полное имя домена (example.com)
	TLD      string   `json:"tld"`      // зона без точки (com)
	Tags     []string `json:"tags"`     // маркетинговые теги сервера
	Price    int64    `json:"price"`    // цена в центах USD
	Currency string   `json:"currency"` // валюта, обычно USD
}

// SearchResponse представляет результат поиска доменов.
// SearchID нужен для последующего запроса покупки и истекает на стороне сервера.
type SearchResponse struct {
	SearchID    string         `json:"search_id"`
	Available   []DomainOption `json:"available"`
	Unavailable []DomainOption `json:"unavailable"`
}

// Domain представляет домен, принадлежащий аутентифицированному агенту
type Domain struct {
	ID          string    `json:"id"`          // UUID домена
	DomainName  string    `json:"domain_name"` // зарегистрированное имя
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	AutoRenew   bool      `json:"auto_renew"`
	Locked      bool      `json:"locked"`  // transfer lock
	Private     bool      `json:"private"` // WHOIS privacy
	Nameservers []string  `json:"nameservers"`
	Status      string    `json:"status"` // например 'active'
}

// DNSRecord представляет одну DNS запись домена
type DNSRecord struct {
	ID    string `json:"id"`    // UUID записи; меняется при обновлении
	Type  string `json:"type"`  // 'A', 'AAAA', 'CNAME', 'MX', 'TXT', ...
	Name  string `json:"name"`  // имя записи (поддомен)
	Value string `json:"value"` // значение записи
	TTL   int    `json:"ttl"`   // время жизни в секундах
}

// DNSRecordsResponse представляет список DNS записей домена
type DNSRecordsResponse struct {
	DomainID string      `json:"domain_id,omitempty"`
	Records  []DNSRecord `json:"records"`
}

// DNSRecordInput представляет запись для создания или обновления.
// ID заполняется только при обновлении существующей записи.
type DNSRecordInput struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   int    `json:"ttl"`
}

// DNSRecordsRequest представляет тело запроса создания/обновления DNS записей
type DNSRecordsRequest struct {
	Records []DNSRecordInput `json:"records"`
}
