package redlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/redlist/internal/transport"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/errors"
	"github.com/agentstation/redlist/pkg/logging"
)

// Request is a fully resolved call that has not been sent.
type Request struct {
	Endpoint string     `json:"endpoint"`
	Method   string     `json:"method"`
	URL      string     `json:"url"` // Base URL joined with the resolved path, without query
	Query    url.Values `json:"query,omitempty"`
	Dropped  []string   `json:"dropped,omitempty"` // Supplied names the endpoint does not declare
	Auth     bool       `json:"auth"`              // Whether an Authorization header will be sent
}

// Prepare validates args against the endpoint and builds the request without
// performing any I/O.
func (c *Client) Prepare(name string, args *catalogs.Args) (*Request, error) {
	ep, err := c.catalog.Get(name)
	if err != nil {
		return nil, err
	}

	resolved, err := ep.Resolve(args)
	if err != nil {
		return nil, err
	}

	return &Request{
		Endpoint: ep.Name,
		Method:   ep.Method,
		URL:      c.config.URL(resolved.Path),
		Query:    resolved.Query,
		Dropped:  resolved.Dropped,
		Auth:     c.config.HasToken(),
	}, nil
}

// Call invokes the named endpoint and returns the decoded JSON body.
//
// Unknown names and missing parameters fail before any network I/O. Transient
// HTTP failures are retried; a terminal failure is an errors.RequestFailedError.
// Every call issues its own request and nothing is cached.
func (c *Client) Call(ctx context.Context, name string, args *catalogs.Args) (any, error) {
	req, resp, err := c.send(ctx, name, args)
	if err != nil {
		return nil, err
	}
	return transport.DecodeJSON(req.Method, req.URL, resp)
}

// CallInto invokes the named endpoint and decodes the JSON body into target.
func (c *Client) CallInto(ctx context.Context, name string, args *catalogs.Args, target any) error {
	req, resp, err := c.send(ctx, name, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return &errors.RequestFailedError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Message:    "response does not match the expected shape",
			Err:        errors.WrapParse("json", "response", err),
		}
	}
	return nil
}

// send resolves and performs a call.
func (c *Client) send(ctx context.Context, name string, args *catalogs.Args) (*Request, *transport.Response, error) {
	req, err := c.Prepare(name, args)
	if err != nil {
		return nil, nil, err
	}

	requestID := uuid.NewString()
	ctx = logging.WithLogger(ctx, c.logger)
	ctx = logging.WithRequestID(ctx, requestID)
	ctx = logging.WithEndpoint(ctx, name)
	logger := logging.FromContext(ctx)

	if len(req.Dropped) > 0 {
		logger.Debug().Strs("params", req.Dropped).Msg("Ignoring parameters the endpoint does not declare")
	}
	logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Str("query", req.Query.Encode()).
		Msg("Sending request")

	start := time.Now()
	resp, err := c.transport.Send(ctx, transport.Request{
		Method: req.Method,
		URL:    req.URL,
		Query:  req.Query,
		Header: http.Header{"X-Request-Id": {requestID}},
	})
	c.hooks.triggerCallComplete(CallEvent{
		RequestID: requestID,
		Endpoint:  name,
		Method:    req.Method,
		URL:       req.URL,
		Duration:  time.Since(start),
		Err:       err,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Request failed")
		return nil, nil, err
	}
	return req, resp, nil
}
