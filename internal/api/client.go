package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Authorizer attaches credentials to an outgoing request.
type Authorizer interface {
	Authorize(req *http.Request)
}

// BearerAuth authorizes requests with the OAuth access token.
type BearerAuth struct {
	Token *AccessToken
}

func (b BearerAuth) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+b.Token.Token())
}

// SessionAuth authorizes requests against the internal endpoints, which
// reject bearer tokens. The optintowebauth cookie opts the request in to
// browser-session authentication.
type SessionAuth struct {
	Session string
}

func (s SessionAuth) Authorize(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: "optintowebauth", Value: "1"})
	req.AddCookie(&http.Cookie{Name: "cloud.session.token", Value: s.Session})
}

// Client for the Bitbucket Cloud APIs. It holds one authorizer per
// credential domain and picks between them based on the endpoint's
// declared auth mode.
type Client struct {
	URLs       URLs
	HTTPClient *http.Client

	bearer  Authorizer
	session Authorizer
	logger  hclog.Logger
}

// NewClient constructor. The session cookie may be empty; calls against
// internal endpoints then fail with a configuration error.
func NewClient(urls URLs, token *AccessToken, session string, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Client{
		URLs:       urls,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		bearer:     BearerAuth{Token: token},
		logger:     logger,
	}
	if session != "" {
		c.session = SessionAuth{Session: session}
	}
	return c
}

func (c *Client) authorizer(ep Endpoint) (Authorizer, error) {
	switch ep.Auth {
	case AuthSession:
		if c.session == nil {
			return nil, ConfigError("endpoint %s requires BITBUCKET_CLOUD_SESSION to be set", ep.URL)
		}
		return c.session, nil
	default:
		return c.bearer, nil
	}
}

// do issues a single request against an endpoint and returns the response
// status and body. Giving the caller the raw status keeps the differing
// success conventions (200 for reads, 204 for deletions) out of this
// helper.
func (c *Client) do(method string, ep Endpoint, contentType string, body io.Reader) (int, []byte, error) {
	auth, err := c.authorizer(ep)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(method, ep.URL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("request creation error: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	auth.Authorize(req)

	c.logger.Debug("request", "method", method, "url", ep.URL)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request execution error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("API response read error: %w", err)
	}
	c.logger.Debug("response", "status", resp.StatusCode, "url", ep.URL)

	return resp.StatusCode, respBody, nil
}

// get issues a GET and treats anything but 200 as a failure of the given
// kind, then decodes the JSON body into out (unless out is nil).
func (c *Client) get(ep Endpoint, kind Kind, what string, out interface{}) ([]byte, error) {
	status, body, err := c.do(http.MethodGet, ep, "", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, httpError(kind, status, string(body), "fail to fetch %s", what)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("failed to decode %s JSON: %w. Response start: %s", what, err, snippet(body, 150))
		}
	}
	return body, nil
}

// form builds an URL-encoded request body.
func form(values url.Values) (string, io.Reader) {
	return "application/x-www-form-urlencoded", strings.NewReader(values.Encode())
}

func snippet(body []byte, max int) string {
	s := string(body)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
