package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSession проверяет создание сессии и доступ к токенам
func TestSession(t *testing.T) {
	session := NewSession("access_token", "refresh_token")

	assert.Equal(t, "access_token", session.AccessToken())
	assert.Equal(t, "refresh_token", session.RefreshToken())
}

// TestAuthorizationHeader проверяет что заголовок чисто выводится из токена:
// повторные вызовы дают идентичные карты
func TestAuthorizationHeader(t *testing.T) {
	session := NewSession("tok123", "")

	first := session.AuthorizationHeader()
	second := session.AuthorizationHeader()

	assert.Equal(t, map[string]string{"Authorization": "Bearer tok123"}, first)
	assert.Equal(t, first, second)

	// Мутация результата не влияет на следующие вызовы
	first["Authorization"] = "tampered"
	assert.Equal(t, "Bearer tok123", session.AuthorizationHeader()["Authorization"])
}

// TestExpiresAt проверяет чтение exp из access токена без проверки подписи
func TestExpiresAt(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "agent",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	session := NewSession(signed, "")

	got, ok := session.ExpiresAt()
	require.True(t, ok)
	assert.True(t, expiry.Equal(got))
}

// TestExpiresAt_NotJWT проверяет поведение для непрозрачного токена
func TestExpiresAt_NotJWT(t *testing.T) {
	session := NewSession("opaque-token", "")

	_, ok := session.ExpiresAt()
	assert.False(t, ok)
}

// TestExpiresAt_NoExpClaim проверяет токен без exp
func TestExpiresAt_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "agent"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	session := NewSession(signed, "")

	_, ok := session.ExpiresAt()
	assert.False(t, ok)
}
