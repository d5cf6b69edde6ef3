// Package httpclient is the single configured HTTP client of the gallery.
//
// Every request passes two hooks:
//
//   - outbound: attaches "Authorization: Bearer <credential>" read from the
//     session on each call (never a cached copy) plus a request id;
//   - inbound: classifies failures. A 401 outside the login screen notifies
//     the user once, logs the session out and forces navigation to /login.
//     Other failures notify with the server message when there is one.
//
// Global handling is a side effect only: the error always reaches the caller.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/logging"
	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// Session is what the hooks need from the session store.
type Session interface {
	Credential() string
	Logout(ctx context.Context) error
}

// Navigator is what the inbound hook needs from the router.
type Navigator interface {
	Current() string
	Redirect(ctx context.Context, path string)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL   string
	http      *http.Client
	session   Session
	nav       Navigator
	notifier  Notifier
	log       logging.Logger
	requestID func() string
	loginPath string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is
// overwritten by Config.Timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestID overrides the request id generator.
func WithRequestID(gen func() string) Option {
	return func(c *Client) { c.requestID = gen }
}

// New builds the client. session and nav are required; they are injected
// explicitly instead of being looked up globally.
func New(cfg Config, session Session, nav Navigator, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}
	if session == nil || nav == nil {
		return nil, errors.New("httpclient: session and navigator are required")
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      &http.Client{},
		session:   session,
		nav:       nav,
		notifier:  nopNotifier{},
		log:       logging.Nop{},
		requestID: uuid.NewString,
		loginPath: "/login",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = cfg.Timeout
	c.log = c.log.With("component", "httpclient")

	return c, nil
}

type requestOptions struct {
	query url.Values
	quiet bool
}

type RequestOption func(*requestOptions)

// WithQuery appends query parameters.
func WithQuery(v url.Values) RequestOption {
	return func(o *requestOptions) { o.query = v }
}

// Quiet suppresses the user notice for non-401 failures. The failure is still
// logged and returned; 401 handling is unaffected.
func Quiet() RequestOption {
	return func(o *requestOptions) { o.quiet = true }
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body Body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body Body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Do sends one request. A 2xx body is decoded into out when out is non-nil
// and the body is not empty.
func (c *Client) Do(ctx context.Context, method, path string, body Body, out any, opts ...RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	req, err := c.newRequest(ctx, method, path, body, o)
	if err != nil {
		return err
	}

	c.outbound(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	log := c.log.With("method", method, "path", path, "request_id", req.Header.Get(requestIDHeader))
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "elapsed", time.Since(start))
		return c.inboundTransportError(ctx, err, o)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.inboundStatusError(ctx, resp.StatusCode, raw, o)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.inboundTransportError(ctx, err, o)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body Body, o requestOptions) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(o.query) > 0 {
		target += "?" + o.query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		r, ct, err := body.Encode()
		if err != nil {
			return nil, err
		}
		reader, contentType = r, ct
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
