package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// tokenSafetyMargin is subtracted from the provider-reported lifetime
// so a token is never used at the exact instant of expiry.
const tokenSafetyMargin = time.Hour

// tokenManager holds the single bearer credential for the catalog API.
// The slot is guarded by a mutex: concurrent resolutions must never
// double-refresh or read a half-updated credential.
type tokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   HTTPDoer
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func newTokenManager(clientID, clientSecret, tokenURL string, httpClient HTTPDoer) *tokenManager {
	return &tokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		httpClient:   httpClient,
		now:          time.Now,
	}
}

// Token returns a valid bearer token, refreshing eagerly when the held
// credential is missing or at/past its margin-adjusted expiry. On
// refresh failure the prior credential is left untouched and the error
// is returned; there is no internal retry.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken != "" && m.now().Before(m.expiresAt) {
		return m.accessToken, nil
	}

	return m.refreshLocked(ctx)
}

func (m *tokenManager) refreshLocked(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("client_id", m.clientID)
	params.Set("client_secret", m.clientSecret)
	params.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("token exchange decode: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token exchange returned empty token")
	}

	// Replace the credential wholesale, never field by field
	m.accessToken = payload.AccessToken
	m.expiresAt = m.now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenSafetyMargin)

	return m.accessToken, nil
}
