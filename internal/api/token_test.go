package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAccessToken(t *testing.T) {
	payload := `{"access_token": "token-abc", "scopes": "account team", "expires_in": 7200, "token_type": "bearer"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/site/oauth2/access_token", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		id, secret, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", id)
		assert.Equal(t, "client-secret", secret)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	urls := URLs{Web: server.URL, API: server.URL}
	token, err := FetchAccessToken(server.Client(), urls, "client-id", "client-secret", nil)
	require.NoError(t, err)

	assert.Equal(t, "token-abc", token.Token())
	assert.Equal(t, payload, token.Raw())
}

func TestFetchAccessToken_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error_description": "Invalid OAuth client credentials"}`)
	}))
	defer server.Close()

	urls := URLs{Web: server.URL, API: server.URL}
	token, err := FetchAccessToken(server.Client(), urls, "client-id", "wrong", nil)

	require.Error(t, err)
	assert.Nil(t, token)
	assert.Equal(t, KindAuth, KindOf(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Invalid OAuth client credentials")
}

func TestParseAccessToken_MissingField(t *testing.T) {
	_, err := ParseAccessToken([]byte(`{"token_type": "bearer"}`))
	require.Error(t, err)

	_, err = ParseAccessToken([]byte(`not json`))
	require.Error(t, err)
}
