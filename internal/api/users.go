package api

import (
	"net/http"
	"net/url"
)

// Invitation is a pending team invitation.
type Invitation struct {
	Email     string `json:"email"`
	InvitedBy struct {
		DisplayName string `json:"display_name"`
	} `json:"invited_by"`
	SentOn string `json:"utc_sent_on"`
}

// InviteUser sends a team invitation to an email address, placing the
// invitee into the given group on acceptance. Bitbucket no longer allows
// adding a member directly by username, so invitations are the only way
// in.
func (c *Client) InviteUser(team, email, group string) error {
	contentType, body := form(url.Values{
		"email":      {email},
		"group_slug": {group},
	})
	status, respBody, err := c.do(http.MethodPut, c.URLs.TeamInvitations(team), contentType, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return httpError(KindOperation, status, string(respBody), "fail to invite %s into group %s", email, group)
	}
	return nil
}

// ListInvitations lists the team's pending invitations.
func (c *Client) ListInvitations(team string) ([]Invitation, error) {
	var invitations []Invitation
	if _, err := c.get(c.URLs.TeamInvitations(team), KindOperation, "invitations of team "+team, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// DeleteInvitation withdraws a pending invitation by email.
func (c *Client) DeleteInvitation(team, email string) error {
	status, body, err := c.do(http.MethodDelete, c.URLs.TeamInvitation(team, email), "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return httpError(KindOperation, status, string(body), "fail to delete invitation of %s", email)
	}
	return nil
}

// DeleteUser would remove a member from the team entirely. That requires
// walking every group membership and every explicit repository privilege
// and revoking each one, which this tool does not do. It fails up front,
// before any credentials are exchanged, so nobody mistakes it for a
// partial removal.
func DeleteUser(team, username string) error {
	return unsupportedError("deleting user %s from team %s is not implemented: remove the user from every group and revoke each repository privilege individually", username, team)
}
