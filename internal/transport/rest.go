package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/EdgeCaseLabs/ynab-mcp/internal/types"
)

const (
	authHeaderKey = "Authorization"
	requestIDKey  = "X-Request-Id"
	contentType   = "application/json"
)

// RESTTransport handles communication with the YNAB REST API.
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	accessToken string
	logger      types.Logger
	hooks       *types.Hooks
}

// envelope is the wrapper every successful YNAB response carries.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorEnvelope is the wrapper every YNAB error response carries.
type errorEnvelope struct {
	Error *types.APIError `json:"error"`
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	AccessToken string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
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
		accessToken: opts.AccessToken,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Do issues one request against the YNAB API. path is relative to the base
// URL, query may be nil, body (when non-nil) is JSON-encoded, and the data
// portion of the response envelope is decoded into out when out is non-nil.
func (t *RESTTransport) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if t.accessToken == "" {
		return types.ErrNotAuthenticated
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := t.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(authHeaderKey, "Bearer "+t.accessToken)

	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDKey, requestID)

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("YNAB request", "method", method, "path", path, "requestId", requestID)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("YNAB response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return t.handleHTTPError(resp.StatusCode, requestID, respBody)
	}

	if out != nil {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return errors.Wrap(err, "failed to parse response")
		}
		if len(env.Data) == 0 {
			return errors.New("response has no data")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// SetAuth sets the access token
func (t *RESTTransport) SetAuth(token string) {
	t.accessToken = token
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

// handleHTTPError maps HTTP errors to the transport's error taxonomy
func (t *RESTTransport) handleHTTPError(statusCode int, requestID string, body []byte) error {
	var errResp errorEnvelope
	_ = json.Unmarshal(body, &errResp)

	detail := ""
	if errResp.Error != nil {
		detail = errResp.Error.Error()
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &types.Error{
			Code:       "UNAUTHORIZED",
			Message:    detail,
			StatusCode: statusCode,
			RequestID:  requestID,
			Err:        types.ErrNotAuthenticated,
		}
	case http.StatusNotFound:
		return &types.Error{
			Code:       "NOT_FOUND",
			Message:    detail,
			StatusCode: statusCode,
			RequestID:  requestID,
			Err:        types.ErrNotFound,
		}
	case http.StatusTooManyRequests:
		return &types.Error{
			Code:       "RATE_LIMITED",
			Message:    detail,
			StatusCode: statusCode,
			RequestID:  requestID,
			Err:        types.ErrRateLimited,
		}
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return &types.Error{
			Code:       "TIMEOUT",
			Message:    detail,
			StatusCode: statusCode,
			RequestID:  requestID,
			Err:        types.ErrTimeout,
		}
	default:
		if statusCode >= 500 {
			msg := fmt.Sprintf("server error: %d", statusCode)
			if detail != "" {
				msg = fmt.Sprintf("%s: %s", msg, detail)
			}
			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    msg,
				StatusCode: statusCode,
				RequestID:  requestID,
				Err:        types.ErrServerError,
			}
		}
		msg := detail
		if msg == "" {
			msg = fmt.Sprintf("HTTP error: %d", statusCode)
		}
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    msg,
			StatusCode: statusCode,
			RequestID:  requestID,
		}
	}
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
