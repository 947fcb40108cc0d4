// Package hosting is a minimal GitHub v3 REST client covering the two
// things ginit needs: minting an access token from basic credentials and
// creating a repository. Every call is a single request with no retries.
package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

type Descriptor struct {
	Name        string
	Description string
	Private     bool
}

type Client struct {
	// BaseURL points at the API root without a trailing slash.
	// Tests override it with an httptest server URL.
	BaseURL    string
	HTTPClient *http.Client

	username string
	password string
	token    string
}

func NewClient() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTPClient: http.DefaultClient}
}

// AuthenticateBasic retains username/password for the token-minting call.
func (c *Client) AuthenticateBasic(username, password string) {
	c.username = username
	c.password = password
	c.token = ""
}

// AuthenticateToken retains a previously minted token for API calls.
func (c *Client) AuthenticateToken(token string) {
	c.token = strings.TrimSpace(token)
	c.username = ""
	c.password = ""
}

// CreateToken exchanges the basic credentials for a long-lived token.
func (c *Client) CreateToken(ctx context.Context, scopes []string, note, fingerprint string) (string, error) {
	body := map[string]interface{}{
		"scopes":      scopes,
		"note":        note,
		"fingerprint": fingerprint,
	}

	resp, err := c.post(ctx, "/authorizations", body)
	if err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized:
		return "", &AuthError{Kind: AuthUnauthorized, Message: errorMessage(resp)}
	case http.StatusUnprocessableEntity:
		return "", &AuthError{Kind: AuthTokenExists, Message: errorMessage(resp)}
	default:
		return "", fmt.Errorf("create token: %s", errorMessage(resp))
	}

	var respDoc struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respDoc); err != nil {
		return "", fmt.Errorf("create token: parsing response: %w", err)
	}
	if respDoc.Token == "" {
		return "", fmt.Errorf("create token: response contained no token")
	}

	return respDoc.Token, nil
}

// Verify checks that the authenticated context is usable. A stale or
// revoked token only shows up here or on CreateRepository.
func (c *Client) Verify(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return &RepoError{Kind: RepoUnauthorized, Message: errorMessage(resp)}
	default:
		return fmt.Errorf("verify token: %s", errorMessage(resp))
	}
}

// CreateRepository creates the remote repository and returns its clone URL.
func (c *Client) CreateRepository(ctx context.Context, d Descriptor) (string, error) {
	body := map[string]interface{}{
		"name":    d.Name,
		"private": d.Private,
	}
	if d.Description != "" {
		body["description"] = d.Description
	}

	resp, err := c.post(ctx, "/user/repos", body)
	if err != nil {
		return "", fmt.Errorf("create repository %q: %w", d.Name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", &RepoError{Kind: RepoUnauthorized, Message: errorMessage(resp)}
	case http.StatusUnprocessableEntity:
		return "", &RepoError{Kind: RepoNameConflict, Message: errorMessage(resp)}
	default:
		return "", fmt.Errorf("create repository %q: %s", d.Name, errorMessage(resp))
	}

	var respDoc struct {
		SSHURL   string `json:"ssh_url"`
		CloneURL string `json:"clone_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respDoc); err != nil {
		return "", fmt.Errorf("create repository %q: parsing response: %w", d.Name, err)
	}
	if respDoc.SSHURL != "" {
		return respDoc.SSHURL, nil
	}

	return respDoc.CloneURL, nil
}

func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	return c.HTTPClient.Do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var reader *bytes.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "ginit")
	req.Header.Set("Accept", acceptHeader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	return req, nil
}

// errorMessage extracts the API's message field when the response carries
// JSON, falling back to the HTTP status line.
func errorMessage(resp *http.Response) string {
	t, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || t != "application/json" {
		return fmt.Sprintf("GitHub API HTTP %s", resp.Status)
	}

	var payload struct {
		Message string
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
		return fmt.Sprintf("GitHub API HTTP %s", resp.Status)
	}

	return payload.Message
}
