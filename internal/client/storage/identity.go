package storage

import "context"

//go:generate moq -out identity_mock.go . IdentityStorage

// IdentityStorage defines interface for the persisted agent identity.
// The private key is written exactly once, at generation time; the store is
// local single-process state (concurrent processes sharing one file are not
// coordinated).
type IdentityStorage interface {
	// SaveIdentity stores the agent keypair record
	SaveIdentity(ctx context.Context, identity *Identity) error

	// GetIdentity retrieves the stored keypair record.
	// Returns ErrIdentityNotFound if no identity has been generated yet.
	GetIdentity(ctx context.Context) (*Identity, error)

	// DeleteIdentity removes the stored keypair record
	DeleteIdentity(ctx context.Context) error
}

// Identity represents the persisted agent keypair record.
// PrivateKey holds the hex-encoded seed, or an AES-GCM sealed blob (base64)
// when Sealed is true. PublicKey is mirrored for display without unsealing.
type Identity struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Sealed     bool   `json:"sealed"`
	CreatedAt  int64  `json:"created_at"` // unix seconds
}
