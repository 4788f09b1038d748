package micloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Service tokens expire quickly on the remote side; refresh well before.
const tokenTTL = 10 * time.Minute

// Account is one remote cloud account with its long-lived pass token.
type Account struct {
	ID        string
	UserID    string
	PassToken string
}

// Credential is what authenticated gallery calls need.
type Credential struct {
	UserID       string
	ServiceToken string
}

type cachedCredential struct {
	cred      Credential
	refreshed time.Time
}

// TokenManager exchanges an account's pass token for a short-lived service
// token and caches it. Concurrent refreshes of the same account collapse
// into one remote login through singleflight.
type TokenManager struct {
	httpClient  *http.Client
	baseURL     string
	accountBase string
	accounts    map[string]Account
	logger      *slog.Logger

	mu     sync.RWMutex
	cached map[string]cachedCredential
	group  singleflight.Group
}

func NewTokenManager(httpClient *http.Client, baseURL, accountBase string, accounts []Account, logger *slog.Logger) *TokenManager {
	byID := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &TokenManager{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accountBase: strings.TrimRight(accountBase, "/"),
		accounts:    byID,
		logger:      logger,
		cached:      map[string]cachedCredential{},
	}
}

// GetCredential returns a fresh enough credential for the account,
// refreshing it remotely when the cached one is stale.
func (m *TokenManager) GetCredential(ctx context.Context, accountID string) (Credential, error) {
	m.mu.RLock()
	entry, ok := m.cached[accountID]
	m.mu.RUnlock()
	if ok && time.Since(entry.refreshed) < tokenTTL {
		return entry.cred, nil
	}

	result, err, _ := m.group.Do(accountID, func() (interface{}, error) {
		// Re-check under the flight: another caller may have refreshed
		// between the fast path and here.
		m.mu.RLock()
		entry, ok := m.cached[accountID]
		m.mu.RUnlock()
		if ok && time.Since(entry.refreshed) < tokenTTL {
			return entry.cred, nil
		}

		account, ok := m.accounts[accountID]
		if !ok {
			return Credential{}, fmt.Errorf("unknown account %q", accountID)
		}

		m.logger.Info("service token stale, logging in again", "account_id", accountID)
		token, err := m.login(ctx, account)
		if err != nil {
			return Credential{}, fmt.Errorf("refresh service token for %s: %w", accountID, err)
		}

		cred := Credential{UserID: account.UserID, ServiceToken: token}
		m.mu.Lock()
		m.cached[accountID] = cachedCredential{cred: cred, refreshed: time.Now()}
		m.mu.Unlock()
		return cred, nil
	})
	if err != nil {
		return Credential{}, err
	}
	return result.(Credential), nil
}

// login walks the three-hop web login: the pre-login call yields a signed
// login URL, following it yields a redirect Location, and fetching that
// sets the serviceToken cookie.
func (m *TokenManager) login(ctx context.Context, account Account) (string, error) {
	deviceID := "wb_" + uuid.NewString()
	cookie := cookieHeader(
		"userId", account.UserID,
		"deviceId", deviceID,
		"passToken", account.PassToken,
	)

	preLoginURL := fmt.Sprintf(
		"%s/api/user/login?ts=%d&followUp=%s&_locale=zh_CN",
		m.baseURL, time.Now().UnixMilli(), "https%3A%2F%2Fi.mi.com%2F",
	)
	body, _, err := m.get(ctx, preLoginURL, cookie)
	if err != nil {
		return "", fmt.Errorf("pre-login: %w", err)
	}

	var preLogin preLoginResponse
	if err := json.Unmarshal(body, &preLogin); err != nil {
		return "", fmt.Errorf("decode pre-login response: %w", err)
	}
	if preLogin.Data.LoginURL == "" {
		return "", fmt.Errorf("pre-login response carries no login url")
	}

	_, resp, err := m.get(ctx, preLogin.Data.LoginURL, cookie)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("login response carries no Location header")
	}

	_, resp, err = m.get(ctx, location, cookie)
	if err != nil {
		return "", fmt.Errorf("follow login redirect: %w", err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "serviceToken" {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("login redirect set no serviceToken cookie")
}

func (m *TokenManager) get(ctx context.Context, url, cookie string) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cookie", cookie)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 && resp.StatusCode/100 != 3 {
		return nil, nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}
	return body, resp, nil
}

// cookieHeader renders alternating name/value pairs as a Cookie header.
func cookieHeader(pairs ...string) string {
	rendered := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		rendered = append(rendered, pairs[i]+"="+pairs[i+1])
	}
	return strings.Join(rendered, "; ")
}
