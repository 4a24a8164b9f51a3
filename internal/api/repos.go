package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Permission is an access level grantable on a repository.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
	PermissionAdmin Permission = "admin"
)

// Permissions are the grantable access levels, for flag validation and
// help text.
var Permissions = []Permission{PermissionRead, PermissionWrite, PermissionAdmin}

// ParsePermission validates an access level supplied on the command line.
func ParsePermission(s string) (Permission, error) {
	for _, p := range Permissions {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", ConfigError("invalid access level %q, allowed: %s", s, permissionNames())
}

func permissionNames() string {
	names := make([]string, len(Permissions))
	for i, p := range Permissions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ListProjectRepos lists the names of the repositories in a project.
func (c *Client) ListProjectRepos(team, project string) ([]string, error) {
	ep := c.URLs.Repositories(team)
	ep.URL = fmt.Sprintf("%s?q=%s&pagelen=100", ep.URL, url.QueryEscape(fmt.Sprintf("project.key=%q", project)))

	var resp struct {
		Values []struct {
			Name string `json:"name"`
		} `json:"values"`
	}
	if _, err := c.get(ep, KindLookup, "repositories in project "+project, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Values))
	for _, repo := range resp.Values {
		names = append(names, repo.Name)
	}
	return names, nil
}

// GrantUserAccess grants a user an access level on a repository. The
// legacy privileges endpoint takes the bare level as a text/plain body.
func (c *Client) GrantUserAccess(team, repo, userID string, perm Permission) error {
	c.logger.Info("grant access", "user", userID, "access", perm, "repo", repo)
	return c.putPrivilege(c.URLs.UserPrivileges(team, repo, userID), perm,
		"fail to grant %s to user %s on %s", perm, userID, repo)
}

// GrantGroupAccess grants a group an access level on a repository. The
// group-privileges endpoint additionally needs the team UUID, resolved
// here.
func (c *Client) GrantGroupAccess(team, repo, group string, perm Permission) error {
	c.logger.Info("grant access", "group", group, "access", perm, "repo", repo)
	teamUUID, err := c.ResolveTeamUUID(team)
	if err != nil {
		return err
	}
	return c.putPrivilege(c.URLs.GroupPrivileges(team, repo, teamUUID, group), perm,
		"fail to grant %s to group %s on %s", perm, group, repo)
}

// RevokeUserAccess removes a user's explicit access on a repository.
func (c *Client) RevokeUserAccess(team, repo, userID string) error {
	c.logger.Info("revoke access", "user", userID, "repo", repo)
	return c.deletePrivilege(c.URLs.UserPrivileges(team, repo, userID),
		"fail to revoke access of user %s on %s", userID, repo)
}

// RevokeGroupAccess removes a group's access on a repository.
func (c *Client) RevokeGroupAccess(team, repo, group string) error {
	c.logger.Info("revoke access", "group", group, "repo", repo)
	teamUUID, err := c.ResolveTeamUUID(team)
	if err != nil {
		return err
	}
	return c.deletePrivilege(c.URLs.GroupPrivileges(team, repo, teamUUID, group),
		"fail to revoke access of group %s on %s", group, repo)
}

func (c *Client) putPrivilege(ep Endpoint, perm Permission, format string, args ...interface{}) error {
	status, body, err := c.do(http.MethodPut, ep, "text/plain", strings.NewReader(string(perm)))
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return httpError(KindOperation, status, string(body), format, args...)
	}
	return nil
}

func (c *Client) deletePrivilege(ep Endpoint, format string, args ...interface{}) error {
	status, body, err := c.do(http.MethodDelete, ep, "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return httpError(KindOperation, status, string(body), format, args...)
	}
	return nil
}
