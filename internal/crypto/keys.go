package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidKeyFormat indicates a malformed private key input (not hex or
// wrong length). Fatal, no retry.
var ErrInvalidKeyFormat = errors.New("invalid private key format")

// SeedSize - размер seed приватного ключа ed25519 в байтах
const SeedSize = ed25519.SeedSize

// Keypair holds an ed25519 signing keypair. The public key is always derived
// from the private key; the private key never leaves the process.
type Keypair struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// GenerateKeypair creates a new random ed25519 keypair
func GenerateKeypair() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return Keypair{priv: priv, pub: pub}, nil
}

// KeypairFromHex restores a keypair from a hex-encoded 32-byte seed.
// Returns ErrInvalidKeyFormat if the input is not valid hex or has the wrong length.
func KeypairFromHex(privHex string) (Keypair, error) {
	seed, err := hex.DecodeString(privHex)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}
	if len(seed) != SeedSize {
		return Keypair{}, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidKeyFormat, SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return Keypair{}, fmt.Errorf("%w: unexpected public key type", ErrInvalidKeyFormat)
	}

	return Keypair{priv: priv, pub: pub}, nil
}

// PrivateHex returns the hex-encoded 32-byte seed of the private key.
// Это формат, в котором ключ хранится в локальном хранилище.
func (k Keypair) PrivateHex() string {
	return hex.EncodeToString(k.priv.Seed())
}

// PublicHex returns the hex-encoded public key, as sent to the API
func (k Keypair) PublicHex() string {
	return hex.EncodeToString(k.pub)
}

// SignChallenge decodes a hex-encoded challenge and signs its raw bytes.
// Signing is deterministic: identical inputs always produce the identical
// signature. The only failure path is malformed challenge encoding.
func (k Keypair) SignChallenge(challengeHex string) (string, error) {
	challenge, err := hex.DecodeString(challengeHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode challenge: %w", err)
	}

	sig := ed25519.Sign(k.priv, challenge)
	return hex.EncodeToString(sig), nil
}

// Verify checks a hex-encoded signature over a hex-encoded challenge.
// Используется только в тестах протокола; сервер делает то же самое.
func (k Keypair) Verify(challengeHex, sigHex string) bool {
	challenge, err := hex.DecodeString(challengeHex)
	if err != nil {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}
	return ed25519.Verify(k.pub, challenge, sig)
}
