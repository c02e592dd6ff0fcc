package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/caseboard/caseboard-go/internal/cache"
)

// apiBasePath is appended to the host URI to form the API root.
const apiBasePath = "/api/v1"

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client is a Caseboard API client. It holds one authenticated session; the
// session's CSRF token and cookies are applied to every request.
//
// A Client is not safe for concurrent use: session headers and the lazy
// resource caches on Sketch, View and Timeline handles are written without
// synchronization.
type Client struct {
	hostURI    string
	apiRoot    string
	httpClient *http.Client
	userAgent  string
	csrfToken  string

	timeout     time.Duration
	insecureTLS bool
	cacheSize   int
	resources   *cache.ResourceCache
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A cookie jar is installed if the
// client has none, since the session relies on cookie persistence.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout on the default HTTP client. Ignored when a
// custom client is supplied via WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithInsecureTLS disables server certificate verification. Intended for
// development servers with self-signed certificates.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.insecureTLS = true
	}
}

// WithResourceCache enables a client-level LRU cache of raw resource payloads,
// keyed by resource path and holding at most maxItems entries. Cached payloads
// are never invalidated, matching the never-refreshed lazy caches on the
// resource handles themselves.
func WithResourceCache(maxItems int) Option {
	return func(c *Client) {
		c.cacheSize = maxItems
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Caseboard API client and authenticates it against hostURI
// using the login handshake described in the auth docs: fetch the login page,
// scrape the CSRF token, then POST the credentials. The returned client
// carries the session cookie and token on all subsequent requests.
func New(ctx context.Context, hostURI, username, password string, opts ...Option) (*Client, error) {
	hostURI = strings.TrimSuffix(hostURI, "/")

	c := &Client{
		hostURI: hostURI,
		apiRoot: hostURI + apiBasePath,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport := &http.Transport{}
		if c.insecureTLS {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: transport,
		}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}

	if c.cacheSize > 0 {
		rc, err := cache.NewResourceCache(c.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating resource cache: %w", err)
		}
		c.resources = rc
	}

	if err := c.login(ctx, username, password); err != nil {
		return nil, err
	}

	return c, nil
}

// HostURI returns the server base URI the client was created with.
func (c *Client) HostURI() string {
	return c.hostURI
}

// newRequest builds a request carrying the session headers.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.csrfToken != "" {
		req.Header.Set("X-CSRFToken", c.csrfToken)
	}
	req.Header.Set("Referer", c.hostURI)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// fetchResource performs a GET against apiRoot + "/" + path and returns the
// raw JSON body. When a resource cache is configured, payloads are served
// from it on repeat fetches of the same path.
func (c *Client) fetchResource(ctx context.Context, path string) (json.RawMessage, error) {
	if c.resources != nil {
		if cached, ok := c.resources.Get(path); ok {
			return cached, nil
		}
	}

	start := time.Now()

	req, err := c.newRequest(ctx, http.MethodGet, c.apiRoot+"/"+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", "GET"),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := parseError(resp)
		slog.Debug("HTTP request returned error",
			slog.String("method", "GET"),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	slog.Debug("HTTP request completed",
		slog.String("method", "GET"),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if c.resources != nil {
		c.resources.Put(path, body)
	}

	return body, nil
}

// fetchInto fetches a resource and decodes it into result.
func (c *Client) fetchInto(ctx context.Context, path string, result any) error {
	body, err := c.fetchResource(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// postJSON performs a POST with a JSON body against apiRoot + "/" + path and
// decodes the JSON response into result when result is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	start := time.Now()

	req, err := c.newRequest(ctx, http.MethodPost, c.apiRoot+"/"+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", "POST"),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := parseError(resp)
		slog.Debug("HTTP request returned error",
			slog.String("method", "POST"),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return apiErr
	}

	slog.Debug("HTTP request completed",
		slog.String("method", "POST"),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// parseError extracts an APIError from an error response.
func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
}
