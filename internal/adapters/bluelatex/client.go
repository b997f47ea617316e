// Package bluelatex is the HTTP client for the blue-latex REST backend.
package bluelatex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/observability/metrics"
	"github.com/bluelatex/blue-web/internal/observability/statsd"
	"github.com/bluelatex/blue-web/internal/ports"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 4 << 10
	maxResponseBody = 8 << 20
)

// Config configures the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// PapersProjection is a JMESPath expression mapping the user papers
	// response onto [{id, title, role, date}]. Empty uses the default.
	PapersProjection string
	// HTTPClient overrides the transport; its Jar is ignored.
	HTTPClient *http.Client
	Metrics    statsd.Sink
	Logger     *slog.Logger
}

// Client talks to one blue-latex backend. It holds no per-user state:
// credentials travel with each call.
type Client struct {
	base       *url.URL
	http       *http.Client
	projection *projection
	metrics    statsd.Sink
	logger     *slog.Logger
}

var (
	_ ports.SessionBackend = (*Client)(nil)
	_ ports.PaperBackend   = (*Client)(nil)
	_ ports.UserBackend    = (*Client)(nil)
)

// NewClient validates cfg and builds a client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url must be http(s): %q", raw)
	}

	proj, err := newProjection(cfg.PapersProjection)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		hc = &http.Client{Transport: cfg.HTTPClient.Transport, Timeout: cfg.HTTPClient.Timeout}
		if hc.Timeout <= 0 {
			hc.Timeout = timeout
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{base: base, http: hc, projection: proj, metrics: cfg.Metrics, logger: logger}, nil
}

// request describes one backend call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	form   url.Values
	json   any
	accept string
	creds  ports.Credentials
}

// endpoint joins an already escaped path onto the base URL.
func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.RawPath = strings.TrimRight(c.base.EscapedPath(), "/") + path
	if p, err := url.PathUnescape(u.RawPath); err == nil {
		u.Path = p
	}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	var body io.Reader
	contentType := ""
	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.json != nil:
		b, err := json.Marshal(r.json)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", r.op, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", r.op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	for _, ck := range r.creds.Cookies {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	return req, nil
}

// send performs the request and returns the response when the status is 2xx.
// Non-2xx statuses become *apperrors.AppError carrying the status.
func (c *Client) send(ctx context.Context, hc *http.Client, r request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.sendOnce(ctx, hc, r)
	metrics.EmitBackendCall(c.metrics, metrics.BackendCall{Operation: r.op, Duration: time.Since(start), Err: err})
	if err != nil {
		c.logger.DebugContext(ctx, "backend call failed", "operation", r.op, "status", apperrors.StatusOf(err), "error", err)
	}
	return resp, err
}

func (c *Client) sendOnce(ctx context.Context, hc *http.Client, r request) (*http.Response, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, transportError(r.op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}
	return resp, nil
}

// transportError tags timeouts and cancellations so callers can tell them from
// an unreachable backend. None of them carry a status.
func transportError(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return apperrors.Wrapf(err, apperrors.ErrCodeCanceled, "%s request canceled", op)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.Wrapf(err, apperrors.ErrCodeTimeout, "%s request timed out", op)
	}
	return fmt.Errorf("%s request failed: %w", op, err)
}

// do performs the request and decodes a JSON response into dst when dst is non-nil.
func (c *Client) do(ctx context.Context, r request, dst any) error {
	resp, err := c.send(ctx, c.http, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dst == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(dst); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s response", r.op)
	}
	return nil
}

// statusError converts a non-2xx response into the error taxonomy, using the
// backend's {"name","message"} body when present.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := ""
	var payload struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		msg = strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = strings.TrimSpace(payload.Name)
		}
	}
	return apperrors.FromStatus(resp.StatusCode, msg)
}

// ackResponse is the backend's {"response": bool} acknowledgement.
type ackResponse struct {
	Response bool `json:"response"`
}

// decodeAck accepts both {"response": bool} and a bare JSON boolean.
func decodeAck(raw json.RawMessage) (bool, error) {
	var ack ackResponse
	if err := json.Unmarshal(raw, &ack); err == nil {
		return ack.Response, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("unexpected acknowledgement %q", string(raw))
	}
	return b, nil
}
