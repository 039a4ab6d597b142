// Package rest implements the backend gateways over HTTP. One base client
// carries the cross-cutting concerns: JSON headers, the bearer blob, request
// IDs, duration metrics, the HTTP-to-domain error mapping, and the global
// 401/403 interceptor that tears the session down from any endpoint except
// login.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/metrics"
)

const (
	routeLogin    = "/auth/login"
	routeRegister = "/auth/register"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// TokenSource supplies the encoded session blob for the Authorization
// header, or an empty string when logged out. It is consulted per request,
// mirroring how a browser client reads storage on every call.
type TokenSource func(ctx context.Context) string

// Options configures the base client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Token   TokenSource
	// OnAuthFailure fires when any endpoint except login answers 401 or
	// 403. The session manager hooks its teardown here.
	OnAuthFailure func()
	Log           zerolog.Logger
}

// Client is the shared transport under every gateway.
type Client struct {
	baseURL       string
	http          *http.Client
	token         TokenSource
	onAuthFailure func()
	log           zerolog.Logger
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		http:          &http.Client{Timeout: timeout},
		token:         opts.Token,
		onAuthFailure: opts.OnAuthFailure,
		log:           opts.Log,
	}
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out when non-nil. route is the path template used as the
// metric label; path carries the concrete identifiers.
func (c *Client) doJSON(ctx context.Context, method, route, path string, query url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, query, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, route, out)
}

// newRequest builds a request against the configured base URL with the
// ambient headers attached.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != nil {
		if blob := c.token(ctx); blob != "" {
			req.Header.Set("Authorization", "Bearer "+blob)
		}
	}
	return req, nil
}

// send executes the request, records its duration, and maps the response
// status to the domain error taxonomy.
func (c *Client) send(req *http.Request, route string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Debug().Err(err).Str("route", route).Msg("request failed")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrNetwork, err)
		}
		return nil
	}

	msg := apiMessage(resp.Body)
	c.log.Debug().Int("status", resp.StatusCode).Str("route", route).Str("detail", msg).Msg("backend rejected request")

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		// The login call reports its own failure; everywhere else an auth
		// failure means the session is dead and the interceptor fires.
		if route == routeLogin {
			if resp.StatusCode == http.StatusUnauthorized {
				return wrap(domain.ErrInvalidCredentials, msg)
			}
			return wrap(domain.ErrAccountBanned, msg)
		}
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return wrap(domain.ErrUnauthenticated, msg)
	case http.StatusNotFound:
		return wrap(domain.ErrNotFound, msg)
	case http.StatusConflict:
		return wrap(domain.ErrUserExists, msg)
	case http.StatusRequestEntityTooLarge:
		return domain.ErrUploadTooLarge
	default:
		return wrap(domain.ErrNetwork, fmt.Sprintf("%s (status %d)", msg, resp.StatusCode))
	}
}

// apiMessage extracts the human-readable detail from an error body. The
// backend answers either {"message": "..."}, {"error": "..."}, or plain
// text.
func apiMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	var plain string
	if json.Unmarshal(raw, &plain) == nil && plain != "" {
		return plain
	}
	return strings.TrimSpace(string(raw))
}

func wrap(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
