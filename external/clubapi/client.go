package clubapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	validator "github.com/go-playground/validator/v10"
	bytebufferpool "github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"club-console/internal/platform/cache"
	"club-console/internal/platform/logging"
	"club-console/internal/platform/resilience"
	"club-console/internal/usecase"
)

const (
	defaultBaseURL = "http://localhost:8080/api/v1"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

var errClubAPITransient = crerr.New("club api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Cache          *cache.Store
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the club backend. Reads run through the circuit breaker,
// are deduplicated in flight, and retried on transient failures; writes are
// not retried and invalidate the affected entity's cached pages.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	store          *cache.Store
	validate       *validator.Validate
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		store:          cfg.Cache,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// SetToken swaps the session token after login or refresh.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// getJSON performs a GET and decodes the envelope's data into target.
// Identical concurrent requests share one round trip.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "club api circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, &Error{
				Kind:    KindNetwork,
				Message: "club api is temporarily unavailable",
				Detail:  "circuit breaker open",
			})
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + query.Encode()
	out, err, _ := c.flight.Do(ctx, key, func() (any, error) {
		raw, reqErr := c.executeGet(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	return decodeEnvelope(raw, http.StatusOK, target)
}

// executeGet runs the request with linear backoff on transient failures.
// Non-retryable statuses return immediately as normalized errors.
func (c *Client) executeGet(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		c.setHeaders(req, false)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Mark(classifyTransportError(err), errClubAPITransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(&Error{
					Kind:    KindNetwork,
					Message: "read response body failed",
					Detail:  readErr.Error(),
				}, errClubAPITransient)
			case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
				return raw, nil
			default:
				httpErr := newHTTPError(resp.StatusCode, raw)
				if !isRetryableStatus(resp.StatusCode) {
					return nil, httpErr
				}
				lastErr = crerr.Mark(httpErr, errClubAPITransient)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("club api request failed")
	}
	c.logger.WarnContext(ctx, "club api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// send performs a write. The payload is validated before it leaves the
// process; on success, cached pages under invalidatePrefix are dropped so
// list screens refetch.
func (c *Client) send(ctx context.Context, method, path string, body, target any, invalidatePrefix string) error {
	var reader io.Reader
	if body != nil {
		if err := c.validate.StructCtx(ctx, body); err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf.B)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req, body != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		transportErr := classifyTransportError(err)
		c.logger.WarnContext(ctx, "club api write failed", "method", method, "path", path, "error", transportErr)
		return transportErr
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return &Error{Kind: KindNetwork, Message: "read response body failed", Detail: readErr.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newHTTPError(resp.StatusCode, raw)
	}

	if c.store != nil && invalidatePrefix != "" {
		c.store.DeletePrefix(ctx, invalidatePrefix)
	}
	if target == nil || len(raw) == 0 {
		return nil
	}
	return decodeEnvelope(raw, resp.StatusCode, target)
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("accept", "application/json")
	if hasBody {
		req.Header.Set("content-type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}
}

// classifyTransportError maps a transport failure onto the normalized form.
// Deadline overruns get their own kind so screens can say "took too long"
// instead of "network down".
func classifyTransportError(err error) *Error {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{
			Kind:    KindTimeout,
			Message: "request timed out",
			Detail:  err.Error(),
		}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: "club api is unreachable",
		Detail:  err.Error(),
	}
}

// isCircuitFailure reports whether err should count against the breaker.
// Client-side rejections (4xx, decode) are the caller's problem, not the
// backend's health.
func isCircuitFailure(err error) bool {
	if crerr.Is(err, errClubAPITransient) {
		return true
	}
	if apiErr, ok := AsError(err); ok {
		return apiErr.Kind == KindNetwork || apiErr.Kind == KindTimeout || apiErr.Kind == KindServer
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
