package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission(t *testing.T) {
	for _, s := range []string{"read", "write", "admin", "READ", "Write"} {
		perm, err := ParsePermission(s)
		require.NoError(t, err, s)
		assert.NotEmpty(t, perm)
	}

	_, err := ParsePermission("owner")
	require.Error(t, err)
	assert.Equal(t, KindConfig, KindOf(err))
}

func TestListProjectRepos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/repositories/acme", r.URL.Path)
		assert.Equal(t, `project.key="PROJ"`, r.URL.Query().Get("q"))
		assert.Equal(t, "100", r.URL.Query().Get("pagelen"))

		fmt.Fprint(w, `{"values": [{"name": "repoA"}, {"name": "repoB"}]}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	names, err := client.ListProjectRepos("acme", "PROJ")
	require.NoError(t, err)
	assert.Equal(t, []string{"repoA", "repoB"}, names)
}

func TestGrantUserAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/!api/internal/privileges/acme/repoA/u1/", r.URL.Path)
		// The legacy privileges endpoint takes the bare level as text.
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "write", string(body))
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	require.NoError(t, client.GrantUserAccess("acme", "repoA", "u1", PermissionWrite))
}

func TestGrantGroupAccess(t *testing.T) {
	var granted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2.0/teams/acme":
			fmt.Fprintf(w, `{"uuid": "%s"}`, testTeamUUID)
		case "/!api/1.0/group-privileges/acme/repoA/" + testTeamUUID + "/developers/":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "1", r.URL.Query().Get("exclude-members"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "admin", string(body))
			granted = true
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	require.NoError(t, client.GrantGroupAccess("acme", "repoA", "developers", PermissionAdmin))
	assert.True(t, granted)
}

func TestRevokeUserAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/!api/internal/privileges/acme/repoA/u1/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	require.NoError(t, client.RevokeUserAccess("acme", "repoA", "u1"))
}

func TestRevokeUserAccess_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error": "privilege not found"}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	err := client.RevokeUserAccess("acme", "repoA", "u1")

	require.Error(t, err)
	assert.Equal(t, KindOperation, KindOf(err))
	assert.Contains(t, err.Error(), "privilege not found")
}
