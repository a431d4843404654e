package igdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenServer struct {
	*httptest.Server
	calls      int
	statusCode int
	expiresIn  int64
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{statusCode: http.StatusOK, expiresIn: 3600 * 4}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.calls++
		if ts.statusCode != http.StatusOK {
			w.WriteHeader(ts.statusCode)
			return
		}
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":%d}`, ts.calls, ts.expiresIn)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestTokenManager_FetchesOnceWhileValid(t *testing.T) {
	srv := newTokenServer(t)
	tm := newTokenManager("id", "secret", srv.URL, srv.Client())

	first, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	second, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", second)
	assert.Equal(t, 1, srv.calls)
}

func TestTokenManager_RefreshesWithinSafetyMargin(t *testing.T) {
	srv := newTokenServer(t)
	// Reported lifetime of 90 minutes leaves only 30 usable minutes
	// after the safety margin.
	srv.expiresIn = 90 * 60

	now := time.Now()
	tm := newTokenManager("id", "secret", srv.URL, srv.Client())
	tm.now = func() time.Time { return now }

	_, err := tm.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, srv.calls)

	// 29 minutes in: still within the usable window, no refresh.
	now = now.Add(29 * time.Minute)
	tok, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok)
	assert.Equal(t, 1, srv.calls)

	// 31 minutes in: margin-adjusted expiry has passed.
	now = now.Add(2 * time.Minute)
	tok, err = tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok)
	assert.Equal(t, 2, srv.calls)
}

func TestTokenManager_LongLivedTokenSurvivesClock(t *testing.T) {
	srv := newTokenServer(t)
	srv.expiresIn = 4 * 3600

	now := time.Now()
	tm := newTokenManager("id", "secret", srv.URL, srv.Client())
	tm.now = func() time.Time { return now }

	_, err := tm.Token(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, srv.calls)
}

func TestTokenManager_RefreshFailureKeepsPriorState(t *testing.T) {
	srv := newTokenServer(t)
	srv.expiresIn = 90 * 60

	now := time.Now()
	tm := newTokenManager("id", "secret", srv.URL, srv.Client())
	tm.now = func() time.Time { return now }

	_, err := tm.Token(context.Background())
	require.NoError(t, err)

	now = now.Add(time.Hour)
	srv.statusCode = http.StatusInternalServerError

	_, err = tm.Token(context.Background())
	require.Error(t, err)

	// The failed exchange must not have clobbered the stored credential.
	assert.Equal(t, "token-1", tm.accessToken)

	srv.statusCode = http.StatusOK
	tok, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-3", tok)
}

func TestTokenManager_ErrorsBeforeFirstToken(t *testing.T) {
	srv := newTokenServer(t)
	srv.statusCode = http.StatusForbidden

	tm := newTokenManager("id", "secret", srv.URL, srv.Client())

	_, err := tm.Token(context.Background())
	require.Error(t, err)
	assert.Empty(t, tm.accessToken)
}
