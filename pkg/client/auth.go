package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/caseboard/caseboard-go/internal/htmlform"
)

// csrfFieldID is the DOM id of the hidden form field carrying the login token.
const csrfFieldID = "csrf_token"

// login performs the session handshake: GET the server root, scrape the CSRF
// token from the login form, then POST the credentials to /login/. The server
// answers the login POST with a session cookie, which the client's cookie jar
// persists for all later requests.
func (c *Client) login(ctx context.Context, username, password string) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.hostURI, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching login page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	token, err := htmlform.Value(resp.Body, csrfFieldID)
	if err != nil {
		return fmt.Errorf("extracting CSRF token: %w", err)
	}
	c.csrfToken = token

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	loginReq, err := c.newRequest(ctx, http.MethodPost, c.hostURI+"/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginResp, err := c.httpClient.Do(loginReq)
	if err != nil {
		return fmt.Errorf("posting credentials: %w", err)
	}
	defer loginResp.Body.Close()

	if loginResp.StatusCode >= 400 {
		return fmt.Errorf("login failed: %w", parseError(loginResp))
	}

	return nil
}
