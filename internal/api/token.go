package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// AccessToken represents an access token obtained from the Bitbucket
// Cloud token endpoint. It keeps the raw payload so the diagnostic
// 'tokens' command can print it untouched.
//
// https://developer.atlassian.com/cloud/bitbucket/oauth-2/
type AccessToken struct {
	raw     []byte
	payload struct {
		AccessToken string `json:"access_token"`
	}
}

// ParseAccessToken wraps a token-endpoint response payload.
func ParseAccessToken(raw []byte) (*AccessToken, error) {
	t := &AccessToken{raw: raw}
	if err := json.Unmarshal(raw, &t.payload); err != nil {
		return nil, fmt.Errorf("failed to decode access token JSON: %w", err)
	}
	if t.payload.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint response has no access_token field")
	}
	return t, nil
}

// Token returns the bare token string for the Authorization header.
func (t *AccessToken) Token() string {
	return t.payload.AccessToken
}

// Raw returns the token endpoint's response payload as received.
func (t *AccessToken) Raw() string {
	return string(t.raw)
}

// FetchAccessToken obtains an access token using the client-credentials
// grant. The client id and secret of the OAuth consumer are enough; no
// account username or password is involved.
func FetchAccessToken(httpClient *http.Client, urls URLs, clientID, clientSecret string, logger hclog.Logger) (*AccessToken, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	data := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest(http.MethodPost, urls.Token(), strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("request creation error: %w", err)
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	logger.Debug("request", "method", http.MethodPost, "url", urls.Token())
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request execution error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("token response read error: %w", err)
	}
	logger.Debug("response", "status", resp.StatusCode, "url", urls.Token())

	if resp.StatusCode != http.StatusOK {
		return nil, httpError(KindAuth, resp.StatusCode, string(body), "fail to get access token")
	}
	return ParseAccessToken(body)
}
