package mapbox

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client is a shared Mapbox HTTP client used by the Geocoder and Router
// adapters. The access token is injected at construction; an empty token
// puts the client in a disabled state where every call short-circuits to
// its soft failure value without network I/O.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	token   string
	baseURL string
}

func NewClient(token string) *Client {
	token = strings.TrimSpace(token)
	if token == "" {
		log.Println("[WARNING] MAPBOX_TOKEN not configured; geocoding and routing are disabled")
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: "https://api.mapbox.com",
	}
}

// Disabled reports whether the client has no credential and cannot make calls.
func (c *Client) Disabled() bool { return c.token == "" }

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(req *http.Request) *http.Request {
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("access_token", c.token)
	req.URL.RawQuery = q.Encode()

	return req
}

// do executes a single attempt. Failed calls are not retried here: a quote
// is request-scoped, and the next user action is the retry.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(c.newRequest(req))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
