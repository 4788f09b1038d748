package micloud

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredentialLogsInOnce(t *testing.T) {
	var logins int
	var mu sync.Mutex

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie := r.Header.Get("Cookie")
		assert.Contains(t, cookie, "userId=10001")
		assert.Contains(t, cookie, "passToken=pt-secret")
		assert.Contains(t, cookie, "deviceId=wb_")

		switch r.URL.Path {
		case "/api/user/login":
			mu.Lock()
			logins++
			mu.Unlock()
			fmt.Fprintf(w, `{"data":{"loginUrl":"%s/signed-login"}}`, server.URL)
		case "/signed-login":
			w.Header().Set("Location", server.URL+"/sts")
			w.WriteHeader(http.StatusFound)
		case "/sts":
			http.SetCookie(w, &http.Cookie{Name: "serviceToken", Value: "st-abc"})
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	accounts := []Account{{ID: "acc-1", UserID: "10001", PassToken: "pt-secret"}}
	m := NewTokenManager(NewHTTPClient(5*time.Second), server.URL, server.URL, accounts, testLogger())

	// Concurrent callers collapse into a single remote login.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cred, err := m.GetCredential(context.Background(), "acc-1")
			assert.NoError(t, err)
			assert.Equal(t, Credential{UserID: "10001", ServiceToken: "st-abc"}, cred)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, logins)

	// A later call within the TTL serves the cache.
	_, err := m.GetCredential(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, logins)
}

func TestGetCredentialRefreshesStale(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			fmt.Fprintf(w, `{"data":{"loginUrl":"%s/signed-login"}}`, server.URL)
		case "/signed-login":
			w.Header().Set("Location", server.URL+"/sts")
			w.WriteHeader(http.StatusFound)
		case "/sts":
			http.SetCookie(w, &http.Cookie{Name: "serviceToken", Value: "st-new"})
		}
	}))
	defer server.Close()

	accounts := []Account{{ID: "acc-1", UserID: "10001", PassToken: "pt"}}
	m := NewTokenManager(NewHTTPClient(5*time.Second), server.URL, server.URL, accounts, testLogger())
	m.cached["acc-1"] = cachedCredential{
		cred:      Credential{UserID: "10001", ServiceToken: "st-old"},
		refreshed: time.Now().Add(-tokenTTL),
	}

	cred, err := m.GetCredential(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "st-new", cred.ServiceToken)
}

func TestGetCredentialUnknownAccount(t *testing.T) {
	m := NewTokenManager(NewHTTPClient(time.Second), "http://unused", "http://unused", nil, testLogger())
	_, err := m.GetCredential(context.Background(), "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestLoginFailsWithoutServiceToken(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			fmt.Fprintf(w, `{"data":{"loginUrl":"%s/signed-login"}}`, server.URL)
		case "/signed-login":
			w.Header().Set("Location", server.URL+"/sts")
			w.WriteHeader(http.StatusFound)
		case "/sts":
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	accounts := []Account{{ID: "acc-1", UserID: "10001", PassToken: "pt"}}
	m := NewTokenManager(NewHTTPClient(5*time.Second), server.URL, server.URL, accounts, testLogger())

	_, err := m.GetCredential(context.Background(), "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serviceToken")
}

func TestCookieHeader(t *testing.T) {
	got := cookieHeader("a", "1", "b", "2")
	assert.Equal(t, "a=1; b=2", got)
	assert.Equal(t, "", cookieHeader())
}

func TestCookieHeaderIgnoresDanglingName(t *testing.T) {
	assert.Equal(t, "a=1", cookieHeader("a", "1", "orphan"))
}
