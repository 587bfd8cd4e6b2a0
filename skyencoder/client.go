// Package skyencoder is a client for the SkyEncoder video encoding API.
//
// Every operation returns a *Response in the service's standard
// {error, msg, data} shape. Validation, transport and decoding failures are
// reported the same way, so callers only branch on Response.Failed.
package skyencoder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skyencoder/skyencoder-go/httpclient"
	"github.com/skyencoder/skyencoder-go/validator"
)

const (
	APIEndpoint    = "http://skyencoder.com/api/1.0/"
	StatusEndpoint = "http://status.skyencoder.com"
)

// Client holds no per-call state and is safe for concurrent use.
type Client struct {
	apiKey         string
	apiToken       string
	endpoint       string
	statusEndpoint string
	httpOpts       []httpclient.Option
	http           *httpclient.Client
	validator      *validator.Validator
	logger         zerolog.Logger
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithStatusEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.statusEndpoint = endpoint
		}
	}
}

// WithHTTPClientOptions configures the underlying request executor, e.g.
// httpclient.WithTimeout or httpclient.WithInsecureSkipVerify.
func WithHTTPClientOptions(opts ...httpclient.Option) Option {
	return func(c *Client) {
		c.httpOpts = append(c.httpOpts, opts...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(apiKey, apiToken string, opts ...Option) *Client {
	client := &Client{
		apiKey:         apiKey,
		apiToken:       apiToken,
		endpoint:       APIEndpoint,
		statusEndpoint: StatusEndpoint,
		httpOpts:       nil,
		http:           nil,
		validator:      validator.New(),
		logger:         log.Logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	httpOpts := make([]httpclient.Option, 0, len(client.httpOpts)+2)
	httpOpts = append(httpOpts,
		httpclient.WithCredentials(client.apiKey, client.apiToken),
		httpclient.WithLogger(client.logger),
	)
	httpOpts = append(httpOpts, client.httpOpts...)

	client.http = httpclient.New(client.endpoint, httpOpts...)

	return client
}

func (c *Client) call(ctx context.Context, method string, params map[string]any, endpoint string) *Response {
	result, err := c.http.Call(ctx, method, params, endpoint)
	if err != nil {
		url := c.http.ResolveURL(method, endpoint)

		c.logger.Warn().
			Err(err).
			Str("url", url).
			Msg("SkyEncoder request failed.")

		resp := invalidResponse(url, nil)
		resp.Err = fmt.Errorf("%w: %w", ErrRequestFailed, err)

		return resp
	}

	return c.normalize(result)
}

// normalize passes a well-formed remote response through and turns anything
// else into the invalid JSON error shape.
func (c *Client) normalize(result *httpclient.Result) *Response {
	meta := Meta{
		URL:        result.URL,
		StatusCode: result.StatusCode,
		RequestID:  result.RequestID,
		Raw:        result.Body,
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(result.Body, &body); err != nil || len(body) == 0 {
		c.logger.Warn().
			Str("url", result.URL).
			Int("status_code", result.StatusCode).
			Str("request_id", result.RequestID).
			Msg("SkyEncoder returned an invalid JSON response.")

		resp := invalidResponse(result.URL, result.Body)
		resp.Meta = meta

		if err != nil {
			resp.Err = fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		} else {
			resp.Err = ErrInvalidJSON
		}

		return resp
	}

	data := body["data"]
	if len(data) == 0 {
		data = json.RawMessage(`null`)
	}

	resp := &Response{
		Error:       0,
		Msg:         "",
		Data:        data,
		URL:         "",
		RawResponse: "",
		Meta:        meta,
		Err:         nil,
	}

	// A non-string msg, e.g. an object of field errors, is kept as raw JSON.
	if raw, ok := body["msg"]; ok {
		if err := json.Unmarshal(raw, &resp.Msg); err != nil {
			resp.Msg = string(raw)
		}
	}

	if isTruthy(body["error"]) {
		resp.Error = 1
		resp.Err = fmt.Errorf("%w: %s", ErrRemote, resp.Msg)
	}

	return resp
}

func invalidResponse(url string, raw []byte) *Response {
	resp := Error(msgInvalidJSON)
	resp.URL = url
	resp.RawResponse = string(raw)

	return resp
}

func validationError(msg string, cause error) *Response {
	resp := Error(msg)
	if cause != nil {
		resp.Err = fmt.Errorf("%w: %s: %w", ErrValidation, msg, cause)
	} else {
		resp.Err = fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	return resp
}

// isTruthy treats absent, null, false, 0, "" and "0" as no error.
func isTruthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != "" && v != "0"
	default:
		return true
	}
}
