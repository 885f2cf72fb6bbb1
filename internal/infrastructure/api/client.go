package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
	"github.com/doeshing/tams-go/internal/version"
)

const dialTimeout = 3 * time.Second

// Client is the HTTP adapter for ports.Gateway.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	recorder   ports.CallRecorder
	logger     ports.Logger
	newID      func() string
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithRecorder journals every completed call.
func WithRecorder(r ports.CallRecorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithLogger routes request diagnostics to l.
func WithLogger(l ports.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient replaces the default transport (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient builds a gateway for the portal at baseURL. A non-positive timeout
// falls back to domain.DefaultRequestTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultRequestTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}).DialContext
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized portal address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProbeHealth implements ports.Gateway. Every failure is reported as "offline".
func (c *Client) ProbeHealth(ctx context.Context) domain.Outcome[domain.HealthStatus] {
	out := perform(ctx, c, call{op: "health", method: http.MethodGet, path: domain.EndpointHealth}, decodeJSON[domain.HealthStatus])
	if f, failed := out.Failure(); failed {
		f.Message = domain.MsgOffline
		return domain.Fail[domain.HealthStatus](f)
	}
	return out
}

// Login implements ports.Gateway. The returned role is the server's; nothing
// from the caller's draft is carried into the identity.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) domain.Outcome[domain.Identity] {
	return perform(ctx, c, call{op: "login", method: http.MethodPost, path: domain.EndpointLogin, body: creds},
		func(ex exchange) domain.Outcome[domain.Identity] {
			return identityFrom(ex, creds.Username)
		})
}

// identityFrom validates a login response. A body without a positive id or with a
// role outside patient/doctor is a protocol mismatch.
func identityFrom(ex exchange, fallbackUsername string) domain.Outcome[domain.Identity] {
	out := decodeJSON[loginResponse](ex)
	if f, failed := out.Failure(); failed {
		return domain.Fail[domain.Identity](f)
	}

	resp := out.Value()
	role, err := domain.ParseRole(resp.Role)
	if err != nil {
		return domain.Fail[domain.Identity](domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    fmt.Sprintf("server error: unrecognised role %q", resp.Role),
			StatusCode: ex.status,
		})
	}
	if resp.ID <= 0 {
		return domain.Fail[domain.Identity](domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    "server error: login response has no user id",
			StatusCode: ex.status,
		})
	}

	username := resp.Username
	if username == "" {
		username = fallbackUsername
	}
	return domain.Succeed(domain.Identity{ID: resp.ID, Username: username, Role: role})
}

// Register implements ports.Gateway. Success carries no identity.
func (c *Client) Register(ctx context.Context, reg domain.Registration) domain.Outcome[struct{}] {
	out := perform(ctx, c, call{op: "register", method: http.MethodPost, path: domain.EndpointRegister, body: reg}, decodeJSON[json.RawMessage])
	if f, failed := out.Failure(); failed {
		return domain.Fail[struct{}](f)
	}
	return domain.Succeed(struct{}{})
}

// SubmitAction implements ports.Gateway for the widget write endpoints.
func (c *Client) SubmitAction(ctx context.Context, endpoint string, payload any) domain.Outcome[domain.ActionReceipt] {
	return perform(ctx, c, call{op: operationName(endpoint), method: http.MethodPost, path: endpoint, body: payload}, decodeJSON[domain.ActionReceipt])
}

// SearchSpecialists implements ports.Gateway. Empty filters are omitted.
func (c *Client) SearchSpecialists(ctx context.Context, query domain.SpecialistQuery) domain.Outcome[[]domain.Specialist] {
	params := url.Values{}
	if s := strings.TrimSpace(query.Specialty); s != "" {
		params.Set("specialty", s)
	}
	if l := strings.TrimSpace(query.Location); l != "" {
		params.Set("location", l)
	}
	out := perform(ctx, c, call{op: "specialists", method: http.MethodGet, path: domain.EndpointSpecialists, query: params}, decodeJSON[[]domain.Specialist])
	if out.OK() && out.Value() == nil {
		return domain.Succeed([]domain.Specialist{})
	}
	return out
}

type loginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// perform runs one request, interprets the exchange and journals the outcome the
// caller receives, so decode and validation failures are recorded as failures.
func perform[T any](ctx context.Context, c *Client, req call, interpret func(exchange) domain.Outcome[T]) domain.Outcome[T] {
	requestID := c.newID()
	started := c.now()

	ex := c.roundTrip(ctx, req, requestID)
	out := interpret(ex)

	var failure *domain.Failure
	if f, failed := out.Failure(); failed {
		failure = &f
	}
	c.finish(req, requestID, started, ex.status, failure)
	return out
}

func (c *Client) roundTrip(ctx context.Context, req call, requestID string) exchange {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return exchange{failure: &domain.Failure{Kind: domain.FailureUnhandled, Message: fmt.Sprintf("encode request: %v", err)}}
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return exchange{failure: &domain.Failure{Kind: domain.FailureUnhandled, Message: fmt.Sprintf("build request: %v", err)}}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.debug("transport failure", map[string]interface{}{"op": req.op, "error": err.Error()})
		return exchange{failure: &domain.Failure{Kind: domain.FailureOffline, Message: domain.MsgOffline}}
	}
	defer resp.Body.Close()

	return readExchange(resp)
}

func (c *Client) finish(req call, requestID string, started time.Time, status int, failure *domain.Failure) {
	record := domain.CallRecord{
		Timestamp:  started,
		Operation:  req.op,
		Method:     req.method,
		Path:       req.path,
		Success:    failure == nil,
		StatusCode: status,
		DurationMS: c.now().Sub(started).Milliseconds(),
		RequestID:  requestID,
	}
	if failure != nil {
		record.FailureKind = failure.Kind
		record.Message = failure.Message
		c.warn("portal call failed", map[string]interface{}{
			"op": req.op, "status": status, "kind": string(failure.Kind), "request_id": requestID,
		})
	} else {
		c.debug("portal call ok", map[string]interface{}{
			"op": req.op, "status": status, "duration_ms": record.DurationMS,
		})
	}

	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(record); err != nil {
		c.warn("journal write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func (c *Client) warn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)
	}
}

func operationName(endpoint string) string {
	name := strings.TrimPrefix(endpoint, "/api/")
	if name == "" {
		return "action"
	}
	return strings.ReplaceAll(name, "/", ".")
}

var _ ports.Gateway = (*Client)(nil)
