package api

import (
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// Member of a team, as returned by the v2 members endpoint.
type Member struct {
	DisplayName string `json:"display_name"`
	AccountID   string `json:"account_id"`
	UUID        string `json:"uuid"`
	Username    string `json:"username"`
}

// AccessSummary is the set of repositories and groups one member can
// reach. Repos and Groups are never nil so the JSON formatter emits []
// instead of null for members with no access. UUID stays out of the
// JSON projection; only the single-user table shows it.
type AccessSummary struct {
	DisplayName string   `json:"display_name"`
	AccountID   string   `json:"account_id"`
	UUID        string   `json:"-"`
	Repos       []string `json:"repos"`
	Groups      []string `json:"groups"`
}

// accessSummaryResponse is the wire shape of the internal user-access
// endpoint.
type accessSummaryResponse struct {
	User struct {
		DisplayName string `json:"display_name"`
		AccountID   string `json:"account_id"`
		UUID        string `json:"uuid"`
	} `json:"user"`
	Repos []struct {
		Name string `json:"name"`
	} `json:"repos"`
	Groups []struct {
		Slug string `json:"slug"`
	} `json:"groups"`
}

func (r accessSummaryResponse) summary() AccessSummary {
	s := AccessSummary{
		DisplayName: r.User.DisplayName,
		AccountID:   r.User.AccountID,
		UUID:        r.User.UUID,
		Repos:       make([]string, 0, len(r.Repos)),
		Groups:      make([]string, 0, len(r.Groups)),
	}
	for _, repo := range r.Repos {
		s.Repos = append(s.Repos, repo.Name)
	}
	for _, group := range r.Groups {
		s.Groups = append(s.Groups, group.Slug)
	}
	return s
}

// DefaultPacer is the unconditional pause between per-member requests in
// the batch access listing. Too many requests sent in a short period of
// time trigger Bitbucket to block the subsequent ones, so the workflow
// always waits, whether or not the previous call succeeded.
func DefaultPacer() backoff.BackOff {
	return backoff.NewConstantBackOff(2 * time.Second)
}

// ResolveTeamUUID looks up the team's opaque identifier by name.
func (c *Client) ResolveTeamUUID(team string) (string, error) {
	var resp struct {
		UUID string `json:"uuid"`
	}
	if _, err := c.get(c.URLs.Team(team), KindLookup, "team "+team, &resp); err != nil {
		return "", err
	}
	// Bitbucket wraps UUIDs in braces, e.g. {7343c3be-...}.
	if _, err := uuid.Parse(strings.Trim(resp.UUID, "{}")); err != nil {
		return "", httpError(KindLookup, 0, "", "team %s has malformed uuid %q", team, resp.UUID)
	}
	return resp.UUID, nil
}

// ListMembers fetches the team's member list.
func (c *Client) ListMembers(team string) ([]Member, error) {
	ep := c.URLs.TeamMembers(team)
	// Without pagelen Bitbucket serves pages of 10.
	ep.URL += "?pagelen=100"

	var resp struct {
		Values []Member `json:"values"`
	}
	// TODO: Handle pagination; only the first page is fetched.
	if _, err := c.get(ep, KindLookup, "members of team "+team, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// GetUserAccess fetches one member's access summary from the internal
// endpoint. Requires the session cookie.
func (c *Client) GetUserAccess(teamUUID, userID string) (AccessSummary, error) {
	var resp accessSummaryResponse
	if _, err := c.get(c.URLs.UserAccess(teamUUID, userID), KindOperation, "access summary of user "+userID, &resp); err != nil {
		return AccessSummary{}, err
	}
	return resp.summary(), nil
}

// ListAllAccesses produces an access summary for every team member, in
// member-list order. Bitbucket has no bulk endpoint for this, so each
// member costs one request against the internal access endpoint, paced by
// the given pacer. Any failed per-member fetch fails the whole batch:
// a partial report would silently understate who can access what.
func (c *Client) ListAllAccesses(team string, pace backoff.BackOff) ([]AccessSummary, error) {
	if pace == nil {
		pace = DefaultPacer()
	}

	teamUUID, err := c.ResolveTeamUUID(team)
	if err != nil {
		return nil, err
	}
	members, err := c.ListMembers(team)
	if err != nil {
		return nil, err
	}

	summaries := make([]AccessSummary, 0, len(members))
	for _, member := range members {
		c.logger.Debug("fetching access summary", "member", member.DisplayName)
		summary, err := c.GetUserAccess(teamUUID, member.AccountID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
		time.Sleep(pace.NextBackOff())
	}
	return summaries, nil
}
