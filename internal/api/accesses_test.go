package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTeamUUID = "{7343c3be-1f06-4fd1-89b4-0b6f9c943a21}"

// newStubClient builds a client whose every endpoint points at the given
// test server.
func newStubClient(t *testing.T, server *httptest.Server, session string) *Client {
	t.Helper()
	token, err := ParseAccessToken([]byte(`{"access_token": "token-abc"}`))
	require.NoError(t, err)

	client := NewClient(URLs{Web: server.URL, API: server.URL}, token, session, nil)
	client.HTTPClient = server.Client()
	return client
}

// stubTeam answers the two public endpoints of the batch workflow and
// records each internal access fetch.
func stubTeam(t *testing.T, accessPaths *[]string, perUser map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/2.0/teams/acme":
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			fmt.Fprintf(w, `{"uuid": "%s"}`, testTeamUUID)

		case r.URL.Path == "/2.0/teams/acme/members":
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			assert.Equal(t, "100", r.URL.Query().Get("pagelen"))
			fmt.Fprint(w, `{"values": [
				{"display_name": "Alice", "account_id": "u1", "username": "alice"},
				{"display_name": "Bob", "account_id": "u2", "username": "bob"}
			]}`)

		case strings.HasPrefix(r.URL.Path, "/!api/internal/user/"):
			// Internal endpoint: session cookies, no bearer token.
			assert.Empty(t, r.Header.Get("Authorization"))
			optin, err := r.Cookie("optintowebauth")
			require.NoError(t, err)
			assert.Equal(t, "1", optin.Value)
			session, err := r.Cookie("cloud.session.token")
			require.NoError(t, err)
			assert.Equal(t, "session-xyz", session.Value)

			*accessPaths = append(*accessPaths, r.URL.Path)
			userID := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
			body, ok := perUser[userID]
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error": "boom"}`)
				return
			}
			fmt.Fprint(w, body)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestListAllAccesses(t *testing.T) {
	var accessPaths []string
	perUser := map[string]string{
		"u1": `{"user": {"display_name": "Alice", "account_id": "u1"}, "repos": [{"name": "repoA"}], "groups": [{"slug": "dev"}]}`,
		"u2": `{"user": {"display_name": "Bob", "account_id": "u2"}, "repos": [{"name": "repoB"}], "groups": [{"slug": "ops"}]}`,
	}
	server := httptest.NewServer(stubTeam(t, &accessPaths, perUser))
	defer server.Close()

	client := newStubClient(t, server, "session-xyz")
	summaries, err := client.ListAllAccesses("acme", &backoff.ZeroBackOff{})
	require.NoError(t, err)

	// One internal request per member, in member-list order.
	require.Equal(t, []string{
		"/!api/internal/user/" + testTeamUUID + "/access/u1",
		"/!api/internal/user/" + testTeamUUID + "/access/u2",
	}, accessPaths)

	require.Len(t, summaries, 2)
	assert.Equal(t, AccessSummary{DisplayName: "Alice", AccountID: "u1", Repos: []string{"repoA"}, Groups: []string{"dev"}}, summaries[0])
	assert.Equal(t, AccessSummary{DisplayName: "Bob", AccountID: "u2", Repos: []string{"repoB"}, Groups: []string{"ops"}}, summaries[1])
}

func TestListMembers_RequestsLargePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/teams/acme/members", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("pagelen"))
		fmt.Fprint(w, `{"values": [{"display_name": "Alice", "account_id": "u1"}]}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	members, err := client.ListMembers("acme")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "u1", members[0].AccountID)
}

func TestGetUserAccess_SurfacesUserUUID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/!api/internal/user/"+testTeamUUID+"/access/u1", r.URL.Path)
		fmt.Fprint(w, `{"user": {"display_name": "Alice", "account_id": "u1", "uuid": "{11111111-2222-3333-4444-555555555555}"},
			"repos": [{"name": "repoA"}], "groups": [{"slug": "dev"}]}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "session-xyz")
	summary, err := client.GetUserAccess(testTeamUUID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "{11111111-2222-3333-4444-555555555555}", summary.UUID)
	assert.Equal(t, "u1", summary.AccountID)
}

func TestListAllAccesses_MemberFetchFailsBatch(t *testing.T) {
	var accessPaths []string
	// Bob's summary is missing; his fetch answers 500.
	perUser := map[string]string{
		"u1": `{"user": {"display_name": "Alice", "account_id": "u1"}, "repos": [], "groups": []}`,
	}
	server := httptest.NewServer(stubTeam(t, &accessPaths, perUser))
	defer server.Close()

	client := newStubClient(t, server, "session-xyz")
	summaries, err := client.ListAllAccesses("acme", &backoff.ZeroBackOff{})

	require.Error(t, err)
	assert.Nil(t, summaries)
	assert.Equal(t, KindOperation, KindOf(err))
	assert.Contains(t, err.Error(), "u2")
	// Alice was fetched, Bob failed, nothing after.
	assert.Len(t, accessPaths, 2)
}

func TestListAllAccesses_TeamLookupFails(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "no such team"}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "session-xyz")
	_, err := client.ListAllAccesses("nosuch", &backoff.ZeroBackOff{})

	require.Error(t, err)
	assert.Equal(t, KindLookup, KindOf(err))
	// Aborts before any member fetch.
	assert.Equal(t, 1, requests)
}

func TestGetUserAccess_RequiresSession(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	_, err := client.GetUserAccess(testTeamUUID, "u1")

	require.Error(t, err)
	assert.Equal(t, KindConfig, KindOf(err))
	assert.Zero(t, requests)
}

func TestResolveTeamUUID_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"uuid": "definitely-not-a-uuid"}`)
	}))
	defer server.Close()

	client := newStubClient(t, server, "")
	_, err := client.ResolveTeamUUID("acme")

	require.Error(t, err)
	assert.Equal(t, KindLookup, KindOf(err))
}
