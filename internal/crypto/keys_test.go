package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateKeypair проверяет генерацию ключевой пары
func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	assert.Len(t, kp.PrivateHex(), SeedSize*2)
	assert.Len(t, kp.PublicHex(), 64)

	// Два вызова дают разные ключи
	kp2, err := GenerateKeypair()
	require.NoError(t, err)
	assert.NotEqual(t, kp.PrivateHex(), kp2.PrivateHex())
}

// TestKeypairFromHex_Roundtrip проверяет что публичный ключ всегда
// восстанавливается из приватного
func TestKeypairFromHex_Roundtrip(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	restored, err := KeypairFromHex(kp.PrivateHex())
	require.NoError(t, err)

	assert.Equal(t, kp.PrivateHex(), restored.PrivateHex())
	assert.Equal(t, kp.PublicHex(), restored.PublicHex())
}

// TestKeypairFromHex_Invalid проверяет обработку некорректного ключа
func TestKeypairFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		privHex string
	}{
		{name: "not hex", privHex: "zzzz"},
		{name: "empty", privHex: ""},
		{name: "too short", privHex: "deadbeef"},
		{name: "too long", privHex: hex.EncodeToString(make([]byte, 64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeypairFromHex(tt.privHex)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidKeyFormat)
		})
	}
}

// TestSignChallenge_Deterministic проверяет детерминированность подписи:
// одинаковые входы всегда дают одинаковую подпись
func TestSignChallenge_Deterministic(t *testing.T) {
	kp, err := KeypairFromHex(hex.EncodeToString(make([]byte, SeedSize)))
	require.NoError(t, err)

	challenge := hex.EncodeToString([]byte("one-time-challenge"))

	sig1, err := kp.SignChallenge(challenge)
	require.NoError(t, err)
	sig2, err := kp.SignChallenge(challenge)
	require.NoError(t, err)

	assert.Equal(t, sig1, sig2)
	assert.True(t, kp.Verify(challenge, sig1))
}

// TestSignChallenge_MalformedChallenge проверяет единственный путь ошибки
// при подписи - некорректную кодировку challenge
func TestSignChallenge_MalformedChallenge(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	_, err = kp.SignChallenge("not-a-hex-string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode challenge")
}

// TestVerify_WrongKey проверяет что подпись не проходит проверку чужим ключом
func TestVerify_WrongKey(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	other, err := GenerateKeypair()
	require.NoError(t, err)

	challenge := hex.EncodeToString([]byte("challenge"))
	sig, err := kp.SignChallenge(challenge)
	require.NoError(t, err)

	assert.True(t, kp.Verify(challenge, sig))
	assert.False(t, other.Verify(challenge, sig))
}
