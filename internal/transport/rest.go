package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/finwellhq/insights-go/internal/types"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	authHeaderKey = "Authorization"
	contentType   = "application/json"
)

// RESTTransport handles JSON/REST communication with the snapshot API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	session     *types.Session
	logger      types.Logger
	hooks       *types.Hooks
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Get issues a GET request against path with the given query parameters and
// decodes the JSON response body into result.
func (t *RESTTransport) Get(ctx context.Context, path string, params url.Values, result interface{}) error {
	// Check authentication
	if t.session == nil || t.session.Token == "" {
		return types.ErrNotAuthenticated
	}

	// Check session expiry
	if !t.session.ExpiresAt.IsZero() && time.Now().After(t.session.ExpiresAt) {
		return types.ErrSessionExpired
	}

	reqURL := t.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}

	// Set auth header
	httpReq.Header.Set(authHeaderKey, fmt.Sprintf("Bearer %s", t.session.Token))

	// Add device UUID if in session
	if t.session.DeviceUUID != "" {
		httpReq.Header.Set("device-uuid", t.session.DeviceUUID)
	}

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("snapshot API request", "path", path, "params", params)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return err
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("snapshot API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return t.handleHTTPError(resp.StatusCode, respBody)
	}

	// Unmarshal data
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// SetAuth sets the authentication token
func (t *RESTTransport) SetAuth(token string) {
	if t.session == nil {
		t.session = &types.Session{}
	}
	t.session.Token = token
}

// SetSession sets the session
func (t *RESTTransport) SetSession(session *types.Session) {
	t.session = session
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError handles HTTP errors
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) error {
	// Try to parse error response
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"error_code"`
	}

	_ = json.Unmarshal(body, &errResp)

	// Map status codes to errors
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return types.ErrNotAuthenticated
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return types.ErrTimeout
	case http.StatusBadRequest:
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    msg,
			StatusCode: statusCode,
		}
	default:
		if statusCode >= 500 {
			// Build informative error message for server errors
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}

			baseMsg := fmt.Sprintf("server error: %d", statusCode)
			if desc := httpStatusDescription(statusCode); desc != "" {
				baseMsg = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}

			// Append parsed error message if available
			if msg != "" {
				baseMsg = fmt.Sprintf("%s: %s", baseMsg, msg)
			}

			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    baseMsg,
				StatusCode: statusCode,
				Err:        types.ErrServerError,
			}
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
		}
	}
}

// httpStatusDescription returns a human-readable description for common HTTP status codes.
// This helps users understand errors like 525 (SSL Handshake Failed) which are Cloudflare-specific.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		520: "Web Server Error",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		524: "A Timeout Occurred",
		525: "SSL Handshake Failed",
		526: "Invalid SSL Certificate",
		527: "Railgun Error",
		530: "Origin DNS Error",
	}
	return descriptions[statusCode]
}

// Options for REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
