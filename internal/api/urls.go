package api

import "fmt"

// AuthMode tells the client which credential domain an endpoint lives in.
// Bitbucket Cloud mixes two: OAuth bearer tokens for the public (and the
// still-working deprecated v1) API, and a browser session cookie for the
// undocumented internal endpoints.
type AuthMode int

const (
	AuthBearer AuthMode = iota
	AuthSession
)

// Endpoint is a fully resolved URL plus its declared authentication mode.
// The client picks the authorizer from here, never from the call site.
type Endpoint struct {
	URL  string
	Auth AuthMode
}

// URLs resolves Bitbucket Cloud endpoints. Web and API are overridable so
// tests can point both hosts at a stub server.
type URLs struct {
	Web string // https://bitbucket.org
	API string // https://api.bitbucket.org
}

func DefaultURLs() URLs {
	return URLs{
		Web: "https://bitbucket.org",
		API: "https://api.bitbucket.org",
	}
}

func (u URLs) Token() string {
	return u.Web + "/site/oauth2/access_token"
}

// Bitbucket Cloud API v2 does NOT have any endpoint for working with
// groups, so group management still goes through v1.0. It was said to be
// deprecated and no longer functioning, but apparently it still works.
func (u URLs) Groups(team string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/groups/%s", u.API, team), Auth: AuthBearer}
}

func (u URLs) Group(team, group string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/groups/%s/%s", u.API, team, group), Auth: AuthBearer}
}

func (u URLs) GroupMembers(team, group string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/groups/%s/%s/members", u.API, team, group), Auth: AuthBearer}
}

func (u URLs) GroupMember(team, group, user string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/groups/%s/%s/members/%s", u.API, team, group, user), Auth: AuthBearer}
}

func (u URLs) Team(team string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/2.0/teams/%s", u.API, team), Auth: AuthBearer}
}

func (u URLs) TeamMembers(team string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/2.0/teams/%s/members", u.API, team), Auth: AuthBearer}
}

func (u URLs) Repositories(team string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/2.0/repositories/%s", u.API, team), Auth: AuthBearer}
}

func (u URLs) TeamInvitations(team string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/users/%s/invitations", u.API, team), Auth: AuthBearer}
}

func (u URLs) TeamInvitation(team, email string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/1.0/users/%s/invitations/%s", u.API, team, email), Auth: AuthBearer}
}

func (u URLs) UserPrivileges(team, repo, userID string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/!api/internal/privileges/%s/%s/%s/", u.Web, team, repo, userID), Auth: AuthBearer}
}

func (u URLs) GroupPrivileges(team, repo, teamUUID, group string) Endpoint {
	return Endpoint{
		URL:  fmt.Sprintf("%s/!api/1.0/group-privileges/%s/%s/%s/%s/?exclude-members=1", u.Web, team, repo, teamUUID, group),
		Auth: AuthBearer,
	}
}

// UserAccess is the only endpoint that refuses bearer tokens and wants the
// browser session cookie instead.
func (u URLs) UserAccess(teamUUID, userID string) Endpoint {
	return Endpoint{URL: fmt.Sprintf("%s/!api/internal/user/%s/access/%s", u.Web, teamUUID, userID), Auth: AuthSession}
}
