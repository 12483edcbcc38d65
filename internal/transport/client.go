// Package transport sends Red List API requests with authentication and retries.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/agentstation/redlist/pkg/constants"
	"github.com/agentstation/redlist/pkg/errors"
	"github.com/agentstation/redlist/pkg/logging"
)

// Settings configures the HTTP client and its retry policy.
type Settings struct {
	Timeout      time.Duration // Per-attempt timeout
	RetryMax     int           // Retries after the first attempt
	RetryWaitMin time.Duration // Base backoff, doubled on each retry
	RetryWaitMax time.Duration
	HTTPClient   *http.Client // Optional underlying client
	Logger       *zerolog.Logger
}

// DefaultSettings returns three retries with 1s, 2s, 4s backoff and a 30s timeout.
func DefaultSettings() Settings {
	return Settings{
		Timeout:      constants.DefaultHTTPTimeout,
		RetryMax:     constants.MaxRetries,
		RetryWaitMin: constants.RetryBackoff,
		RetryWaitMax: constants.MaxRetryBackoff,
	}
}

// Client provides HTTP client functionality with authentication and retries.
// It is safe for concurrent use.
type Client struct {
	http  *retryablehttp.Client
	auth  Authenticator
	token string
}

// New creates a transport client that authenticates every request with token.
func New(token string, settings Settings) *Client {
	logger := settings.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := settings.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.RetryMax = settings.RetryMax
	rc.RetryWaitMin = settings.RetryWaitMin
	rc.RetryWaitMax = settings.RetryWaitMax
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.CheckRetry = checkRetry
	rc.ErrorHandler = passthroughErrorHandler
	rc.Logger = &leveledLogger{logger: logger}

	return &Client{
		http:  rc,
		auth:  ForToken(token),
		token: token,
	}
}

// Request is a single API call.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Send performs the request, retrying transient failures. Any status of 400
// or above left after retries is returned as an errors.RequestFailedError.
func (c *Client) Send(ctx context.Context, r Request) (*Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", r.Method+" "+r.URL, err)
	}
	if len(r.Query) > 0 {
		req.URL.RawQuery = r.Query.Encode()
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)
	c.auth.Apply(req.Request, c.token)

	fullURL := req.URL.String()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.RequestFailedError{
			Method:  r.Method,
			URL:     fullURL,
			Message: err.Error(),
			Timeout: isTimeout(err),
			Err:     err,
		}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.FromContext(ctx).Warn().Err(closeErr).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.RequestFailedError{
			Method:     r.Method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Message:    "reading response body",
			Timeout:    isTimeout(err),
			Err:        errors.WrapIO("read", "response body", err),
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &errors.RequestFailedError{
			Method:     r.Method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Message:    truncate(body, constants.ErrorBodyLimit),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// DecodeJSON decodes a response body into a generic JSON value. Numbers are
// kept as json.Number so large ids survive unchanged.
func DecodeJSON(method, rawURL string, resp *Response) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(resp.Body))
	decoder.UseNumber()

	var out any
	err := decoder.Decode(&out)
	if err == nil && decoder.More() {
		err = errors.New("unexpected data after top-level value")
	}
	if err != nil {
		return nil, &errors.RequestFailedError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    "response is not valid JSON",
			Err:        errors.WrapParse("json", "response", err),
		}
	}
	return out, nil
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
