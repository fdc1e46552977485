package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sherlockdomains/sherlock-go/internal/client/api"
	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
	"github.com/sherlockdomains/sherlock-go/internal/crypto"
	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

var (
	// ErrAuthenticationRejected indicates the server refused the signature or the
	// challenge (it may have expired between request and submit). Fatal for this
	// attempt; the caller must restart the whole challenge-response sequence -
	// challenges are single-use, resubmitting the same one is never correct.
	ErrAuthenticationRejected = errors.New("authentication rejected by server")

	// ErrPassphraseRequired indicates the stored private key is sealed and no
	// passphrase is configured. The caller may supply one via SetPassphrase
	// and retry.
	ErrPassphraseRequired = errors.New("stored key is sealed: passphrase required")
)

// Service выполняет протокол challenge-response и управляет ключевой парой
type Service struct {
	apiClient  *api.Client
	store      storage.IdentityStorage
	passphrase string
}

// NewService создает новый сервис аутентификации.
// passphrase включает шифрование приватного ключа в хранилище (может быть пустым).
func NewService(apiClient *api.Client, store storage.IdentityStorage, passphrase string) *Service {
	return &Service{
		apiClient:  apiClient,
		store:      store,
		passphrase: passphrase,
	}
}

// SetPassphrase supplies the sealing passphrase after construction, for the
// interactive prompt fallback when the stored key turns out to be sealed
func (s *Service) SetPassphrase(passphrase string) {
	s.passphrase = passphrase
}

// ResolveKeypair resolves the agent keypair, in priority order: an explicit
// hex private key, the persisted identity, or a newly generated keypair.
// A generated key is persisted BEFORE the keypair is returned, so a crash
// after generation never orphans an identity already used for a login.
func (s *Service) ResolveKeypair(ctx context.Context, explicitHex string) (crypto.Keypair, error) {
	// 1. Явно переданный ключ: чистая деривация, без побочных эффектов
	if explicitHex != "" {
		kp, err := crypto.KeypairFromHex(explicitHex)
		if err != nil {
			return crypto.Keypair{}, err
		}
		return kp, nil
	}

	// 2. Сохраненная идентичность
	identity, err := s.store.GetIdentity(ctx)
	if err == nil {
		return s.keypairFromIdentity(identity)
	}
	if !errors.Is(err, storage.ErrIdentityNotFound) {
		return crypto.Keypair{}, fmt.Errorf("failed to load identity: %w", err)
	}

	// 3. Генерируем новую пару и сохраняем до первого использования
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return crypto.Keypair{}, err
	}

	if err := s.persistKeypair(ctx, kp); err != nil {
		return crypto.Keypair{}, fmt.Errorf("failed to persist generated keypair: %w", err)
	}

	return kp, nil
}

// keypairFromIdentity восстанавливает ключевую пару из записи хранилища,
// расшифровывая приватный ключ при необходимости
func (s *Service) keypairFromIdentity(identity *storage.Identity) (crypto.Keypair, error) {
	privHex := identity.PrivateKey

	if identity.Sealed {
		if s.passphrase == "" {
			return crypto.Keypair{}, ErrPassphraseRequired
		}
		opened, err := crypto.OpenPrivateKey(privHex, s.passphrase)
		if err != nil {
			return crypto.Keypair{}, fmt.Errorf("failed to unseal stored key: %w", err)
		}
		privHex = opened
	}

	return crypto.KeypairFromHex(privHex)
}

// persistKeypair сохраняет приватный ключ, запечатывая его при наличии passphrase
func (s *Service) persistKeypair(ctx context.Context, kp crypto.Keypair) error {
	identity := &storage.Identity{
		PrivateKey: kp.PrivateHex(),
		PublicKey:  kp.PublicHex(),
		CreatedAt:  time.Now().Unix(),
	}

	if s.passphrase != "" {
		sealed, err := crypto.SealPrivateKey(kp.PrivateHex(), s.passphrase)
		if err != nil {
			return fmt.Errorf("failed to seal private key: %w", err)
		}
		identity.PrivateKey = sealed
		identity.Sealed = true
	}

	return s.store.SaveIdentity(ctx, identity)
}

// Authenticate executes the strict 3-step challenge-response protocol:
// request a challenge for the public key, sign it locally, submit the
// signature for a token pair. A failure at any step aborts the whole
// sequence; the caller restarts from step 1 with a fresh challenge.
func (s *Service) Authenticate(ctx context.Context, kp crypto.Keypair) (*Session, error) {
	// 1. Запрашиваем challenge
	challengeResp, err := s.apiClient.RequestChallenge(ctx, kp.PublicHex())
	if err != nil {
		return nil, err
	}

	// 2. Подписываем локально; единственная ошибка - кривая кодировка challenge
	signature, err := kp.SignChallenge(challengeResp.Challenge)
	if err != nil {
		return nil, err
	}

	// 3. Отправляем подпись
	tokens, err := s.apiClient.SubmitLogin(ctx, pkgapi.LoginRequest{
		PublicKey: kp.PublicHex(),
		Challenge: challengeResp.Challenge,
		Signature: signature,
	})
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %v", ErrAuthenticationRejected, err)
		}
		return nil, err
	}

	return NewSession(tokens.Access, tokens.Refresh), nil
}

// Login resolves the keypair and authenticates in one call
func (s *Service) Login(ctx context.Context, explicitHex string) (*Session, error) {
	kp, err := s.ResolveKeypair(ctx, explicitHex)
	if err != nil {
		return nil, err
	}
	return s.Authenticate(ctx, kp)
}
