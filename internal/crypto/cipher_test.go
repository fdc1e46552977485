package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSealOpenPrivateKey_Roundtrip проверяет шифрование и расшифровку ключа
func TestSealOpenPrivateKey_Roundtrip(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	sealed, err := SealPrivateKey(kp.PrivateHex(), "correct horse battery staple")
	require.NoError(t, err)
	assert.NotContains(t, sealed, kp.PrivateHex())

	opened, err := OpenPrivateKey(sealed, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateHex(), opened)
}

// TestOpenPrivateKey_WrongPassphrase проверяет что неверный passphrase дает ошибку
func TestOpenPrivateKey_WrongPassphrase(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	sealed, err := SealPrivateKey(kp.PrivateHex(), "right")
	require.NoError(t, err)

	_, err = OpenPrivateKey(sealed, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong passphrase or corrupted data")
}

// TestSealPrivateKey_UniqueOutput проверяет что соль и nonce случайны:
// два вызова дают разный шифротекст для одного ключа
func TestSealPrivateKey_UniqueOutput(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	sealed1, err := SealPrivateKey(kp.PrivateHex(), "pass")
	require.NoError(t, err)
	sealed2, err := SealPrivateKey(kp.PrivateHex(), "pass")
	require.NoError(t, err)

	assert.NotEqual(t, sealed1, sealed2)
}

// TestSealPrivateKey_EmptyInputs проверяет валидацию входных данных
func TestSealPrivateKey_EmptyInputs(t *testing.T) {
	_, err := SealPrivateKey("", "pass")
	assert.Error(t, err)

	_, err = SealPrivateKey("abcd", "")
	assert.Error(t, err)
}

// TestOpenPrivateKey_Corrupted проверяет обработку поврежденных данных
func TestOpenPrivateKey_Corrupted(t *testing.T) {
	_, err := OpenPrivateKey("not base64!!!", "pass")
	assert.Error(t, err)

	_, err = OpenPrivateKey("c2hvcnQ=", "pass") // слишком короткий payload
	assert.Error(t, err)
}
