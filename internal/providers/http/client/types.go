package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/AgentOS/urls/internal/cookies"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/urls/internal/queryparams"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// RequestIDHeader carries a per-request UUID on outbound calls
const RequestIDHeader = "X-Request-ID"

// Client wraps resty with rate limiting, a cookie store and URL building
// from Parts and Params.
type Client struct {
	Resty   *resty.Client
	Limiter *rate.Limiter
	Cookies *cookies.Cookies
	Mu      sync.RWMutex

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// RequestOption adjusts a request before it is sent
type RequestOption func(*resty.Request)

// WithBody sets a body; maps and structs are sent as JSON
func WithBody(body interface{}) RequestOption {
	return func(r *resty.Request) { r.SetBody(body) }
}

// WithForm sends data as application/x-www-form-urlencoded
func WithForm(data map[string]string) RequestOption {
	return func(r *resty.Request) { r.SetFormData(data) }
}

// HTTPOps provides base functionality for all HTTP modules
type HTTPOps struct {
	Client *Client
}

// NewClient creates an HTTP client from cfg. logger and metrics may be nil.
func NewClient(cfg config.ClientConfig, logger *logging.Logger, metrics *monitoring.Metrics) (*Client, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	// Pooled transport from retryablehttp; retries are driven by resty
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Retries
	retryClient.Logger = nil

	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetHeader("User-Agent", cfg.UserAgent).
		SetTransport(retryClient.HTTPClient.Transport).
		AddRetryCondition(retryOnServerError).
		SetCookieJar(nil)
	restyClient.JSONMarshal = sonic.Marshal
	restyClient.JSONUnmarshal = sonic.Unmarshal

	c := &Client{
		Resty:   restyClient,
		Cookies: cookies.New(),
		logger:  logger.Named("client"),
		metrics: metrics,
	}
	c.SetRateLimit(cfg.RequestsPerSecond)
	return c, nil
}

// retryOnServerError retries transport errors and 5xx responses. A retry
// condition replaces resty's default, so transport errors are listed too.
func retryOnServerError(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

// SetHeader adds a default header
func (c *Client) SetHeader(key, value string) {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	c.Resty.SetHeader(key, value)
}

// SetRateLimit configures rate limiting in requests per second; <= 0 disables it
func (c *Client) SetRateLimit(rps float64) {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	if rps <= 0 {
		c.Limiter = rate.NewLimiter(rate.Inf, 0)
		return
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// BuildURL renders parts with params merged over its existing query.
// Keys in params replace same-named keys of the existing query in place.
func BuildURL(parts urls.Parts, params *queryparams.Params) string {
	if params == nil || params.IsEmpty() {
		return parts.String()
	}

	existing, _ := parts.Query()
	merged := queryparams.Parse(existing).Merge(params).String()
	return parts.WithQuery(&merged).String()
}

// Request creates a new request after waiting for the rate limiter
func (c *Client) Request(ctx context.Context) (*resty.Request, error) {
	c.Mu.RLock()
	limiter := c.Limiter
	c.Mu.RUnlock()

	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	c.Mu.RLock()
	defer c.Mu.RUnlock()
	return c.Resty.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, uuid.NewString()), nil
}

// Do sends method to the URL built from parts and params. Relative parts are
// rejected since there is no base URL to resolve them against.
func (c *Client) Do(ctx context.Context, method string, parts urls.Parts, params *queryparams.Params, headers map[string]string, opts ...RequestOption) (*resty.Response, error) {
	if parts.IsRelative() {
		return nil, urls.InvalidURL("Request URL must be absolute")
	}

	target := BuildURL(parts, params)
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request URL: %w", err)
	}
	sent, err := c.Cookies.For(u)
	if err != nil {
		return nil, err
	}

	req, err := c.Request(ctx)
	if err != nil {
		return nil, err
	}
	req.SetCookies(sent)
	req.SetHeaders(headers)
	for _, opt := range opts {
		opt(req)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		c.record(method, "error")
		c.logger.Warn("Request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.Cookies.Extract(resp.RawResponse)
	c.record(method, fmt.Sprint(resp.StatusCode()))
	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
	)
	return resp, nil
}

func (c *Client) record(method, status string) {
	if c.metrics != nil {
		c.metrics.RecordClientRequest(method, status)
	}
}

// Success creates successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureFrom creates a failed result tagged with the error's kind
func FailureFrom(err error) (*types.Result, error) {
	msg := err.Error()
	kind := urls.KindOf(err).String()
	return &types.Result{Success: false, Error: &msg, ErrorKind: kind}, nil
}

// GetString extracts string parameter
func GetString(params map[string]interface{}, key string, required bool) (string, error) {
	val, ok := params[key]
	if !ok || val == nil {
		if required {
			return "", fmt.Errorf("%s parameter required", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be string", key)
	}
	return str, nil
}

// GetOptionalString extracts a string parameter, distinguishing absent from empty
func GetOptionalString(params map[string]interface{}, key string) (*string, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, nil
	}
	str, ok := val.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be string", key)
	}
	return &str, nil
}

// GetBool extracts bool parameter
func GetBool(params map[string]interface{}, key string, defaultVal bool) bool {
	b, ok := params[key].(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// GetMap extracts map parameter
func GetMap(params map[string]interface{}, key string) map[string]interface{} {
	m, _ := params[key].(map[string]interface{})
	return m
}

// ResponseToMap converts resty response to result map. mime is sniffed from
// the body rather than taken from Content-Type.
func ResponseToMap(resp *resty.Response) map[string]interface{} {
	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return map[string]interface{}{
		"status":      resp.StatusCode(),
		"status_text": resp.Status(),
		"body":        resp.String(),
		"mime":        mimetype.Detect(resp.Body()).String(),
		"size":        len(resp.Body()),
		"time":        resp.Time().Milliseconds(),
		"headers":     headers,
	}
}

// GetNumber extracts a numeric parameter decoded from JSON
func GetNumber(params map[string]interface{}, key string, required bool) (float64, error) {
	val, ok := params[key]
	if !ok || val == nil {
		if required {
			return 0, fmt.Errorf("%s parameter required", key)
		}
		return 0, nil
	}

	switch n := val.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s must be number", key)
	}
}
