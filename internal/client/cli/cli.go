package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sherlockdomains/sherlock-go/internal/client/api"
	"github.com/sherlockdomains/sherlock-go/internal/client/auth"
	"github.com/sherlockdomains/sherlock-go/internal/client/iocli"
	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
	"github.com/sherlockdomains/sherlock-go/internal/config"
	"github.com/sherlockdomains/sherlock-go/internal/crypto"
)

// Keys задает источники приватного ключа агента
type Keys struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	cfg         *config.Config
	apiClient   *api.Client
	authService *auth.Service
	identities  storage.IdentityStorage
	contacts    storage.ContactStorage
	io          iocli.IO
	session     *auth.Session
	keys        Keys
}

func New(cfg *config.Config, apiClient *api.Client, authService *auth.Service, identities storage.IdentityStorage, contacts storage.ContactStorage, io iocli.IO, keys Keys) *Cli {
	return &Cli{
		cfg:         cfg,
		apiClient:   apiClient,
		authService: authService,
		identities:  identities,
		contacts:    contacts,
		io:          io,
		keys:        keys,
	}
}

// getPrivateKey retrieves the agent private key from various sources
// with priority:
// 1. Environment variable SHERLOCK_PRIVATE_KEY
// 2. File specified in --key-file parameter
// 3. Command-line parameter --key
// 4. Persisted identity / generated keypair (handled by auth.Service)
func (c *Cli) getPrivateKey() (string, error) {
	// Priority 1: Environment variable
	if envKey := os.Getenv("SHERLOCK_PRIVATE_KEY"); envKey != "" {
		return envKey, nil
	}

	// Priority 2: File
	if c.keys.FromFile != "" {
		content, err := os.ReadFile(c.keys.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read key file: %w", err)
		}
		// Убираем trailing newline/whitespace
		key := strings.TrimSpace(string(content))
		if key == "" {
			return "", fmt.Errorf("key file is empty")
		}
		return key, nil
	}

	// Priority 3: CLI parameter
	if c.keys.FromArgs != "" {
		return c.keys.FromArgs, nil
	}

	// Priority 4: пустая строка — auth.Service возьмет сохраненную
	// идентичность или сгенерирует новую
	return "", nil
}

// resolveKeypair resolves the agent keypair, falling back to an interactive
// passphrase prompt when the stored key is sealed and no passphrase came from
// the environment
func (c *Cli) resolveKeypair(ctx context.Context) (crypto.Keypair, error) {
	keyHex, err := c.getPrivateKey()
	if err != nil {
		return crypto.Keypair{}, err
	}

	kp, err := c.authService.ResolveKeypair(ctx, keyHex)
	if errors.Is(err, auth.ErrPassphraseRequired) {
		passphrase, readErr := c.io.ReadPassword("Key passphrase: ")
		if readErr != nil {
			return crypto.Keypair{}, fmt.Errorf("failed to read passphrase: %w", readErr)
		}
		c.authService.SetPassphrase(passphrase)
		kp, err = c.authService.ResolveKeypair(ctx, keyHex)
	}
	if err != nil {
		return crypto.Keypair{}, fmt.Errorf("failed to resolve keypair: %w", err)
	}

	return kp, nil
}

// ensureSession authenticates once per process and caches the session.
// Tokens are never persisted: each run performs a fresh challenge-response.
func (c *Cli) ensureSession(ctx context.Context) (*auth.Session, error) {
	if c.session != nil {
		return c.session, nil
	}

	kp, err := c.resolveKeypair(ctx)
	if err != nil {
		return nil, err
	}

	session, err := c.authService.Authenticate(ctx, kp)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	c.session = session
	return session, nil
}

func PrintUsage() {
	fmt.Print(usageTemplate)
}
