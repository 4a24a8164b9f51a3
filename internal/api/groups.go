package api

import (
	"net/http"
	"net/url"
	"strings"
)

// Group as returned by the v1 groups endpoint.
type Group struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Permission string `json:"permission"`
	AutoAdd    bool   `json:"auto_add"`
}

// CreateGroup adds a new group to the team and returns the raw response
// body, which the CLI prints as-is.
//
// https://confluence.atlassian.com/bitbucket/groups-endpoint-296093143.html
func (c *Client) CreateGroup(team, name string) (string, error) {
	contentType, body := form(url.Values{"name": {name}})
	status, respBody, err := c.do(http.MethodPost, c.URLs.Groups(team), contentType, body)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", httpError(KindOperation, status, string(respBody), "fail to create group %s", name)
	}
	return string(respBody), nil
}

// ListGroups lists all groups of the team.
func (c *Client) ListGroups(team string) ([]Group, error) {
	var groups []Group
	if _, err := c.get(c.URLs.Groups(team), KindOperation, "groups of team "+team, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// DeleteGroup deletes a group. The API answers 204 on success.
func (c *Client) DeleteGroup(team, group string) error {
	status, body, err := c.do(http.MethodDelete, c.URLs.Group(team, group), "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return httpError(KindOperation, status, string(body), "fail to delete group %s", group)
	}
	return nil
}

// ListGroupMembers lists the users in a group.
func (c *Client) ListGroupMembers(team, group string) ([]Member, error) {
	var members []Member
	if _, err := c.get(c.URLs.GroupMembers(team, group), KindOperation, "members of group "+group, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddGroupMember puts a user into a group. The empty JSON object body and
// its content type are required by the API.
func (c *Client) AddGroupMember(team, group, user string) error {
	status, body, err := c.do(http.MethodPut, c.URLs.GroupMember(team, group, user), "application/json", strings.NewReader("{}"))
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return httpError(KindOperation, status, string(body), "fail to add user %s into group %s", user, group)
	}
	return nil
}

// DeleteGroupMember removes a user from a group. The API answers 204 on
// success.
func (c *Client) DeleteGroupMember(team, group, user string) error {
	status, body, err := c.do(http.MethodDelete, c.URLs.GroupMember(team, group, user), "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return httpError(KindOperation, status, string(body), "fail to delete user %s from group %s", user, group)
	}
	return nil
}
