package api

// ChallengeRequest представляет запрос на выдачу challenge для логина
type ChallengeRequest struct {
	PublicKey string `json:"public_key"` // ed25519 публичный ключ (hex-encoded, 32 bytes)
}

// ChallengeResponse представляет ответ сервера с одноразовым challenge
type ChallengeResponse struct {
	Challenge string `json:"challenge"` // одноразовое значение для подписи (hex-encoded)
}

// LoginRequest представляет запрос на логин с подписанным challenge
type LoginRequest struct {
	PublicKey string `json:"public_key"` // ed25519 публичный ключ (hex-encoded)
	Challenge string `json:"challenge"`  // challenge, полученный от сервера
	Signature string `json:"signature"`  // ed25519 подпись challenge (hex-encoded)
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	Access  string `json:"access"`  // JWT access token
	Refresh string `json:"refresh"` // refresh token
}

// MeResponse представляет информацию об аутентифицированном агенте
type MeResponse struct {
	LoggedIn  bool   `json:"logged_in"`
	Email     string `json:"email,omitempty"`
	PublicKey string `json:"public_key"`
}

// LinkEmailRequest представляет запрос на привязку email к аккаунту агента
type LinkEmailRequest struct {
	Email string `json:"email"`
}

// LinkEmailResponse представляет ответ на привязку email
type LinkEmailResponse struct {
	Message string `json:"message,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
