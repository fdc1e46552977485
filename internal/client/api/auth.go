package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// RequestChallenge запрашивает одноразовый challenge для публичного ключа.
// Challenge одноразовый и короткоживущий; срок жизни контролирует сервер.
func (c *Client) RequestChallenge(ctx context.Context, publicKeyHex string) (*pkgapi.ChallengeResponse, error) {
	var resp pkgapi.ChallengeResponse
	req := pkgapi.ChallengeRequest{PublicKey: publicKeyHex}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v0/auth/challenge", "", req, &resp); err != nil {
		return nil, fmt.Errorf("challenge request failed: %w", err)
	}
	return &resp, nil
}

// SubmitLogin отправляет подписанный challenge и получает пару токенов
func (c *Client) SubmitLogin(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v0/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает информацию об аутентифицированном агенте
func (c *Client) Me(ctx context.Context, token string) (*pkgapi.MeResponse, error) {
	var resp pkgapi.MeResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v0/auth/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// LinkEmail привязывает email к аккаунту агента.
// Привязать email можно только к аккаунту без email, и каждый email
// может быть привязан только к одному аккаунту.
func (c *Client) LinkEmail(ctx context.Context, token, email string) (*pkgapi.LinkEmailResponse, error) {
	var resp pkgapi.LinkEmailResponse
	req := pkgapi.LinkEmailRequest{Email: email}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v0/auth/link-email", token, req, &resp); err != nil {
		return nil, fmt.Errorf("link email request failed: %w", err)
	}
	return &resp, nil
}
