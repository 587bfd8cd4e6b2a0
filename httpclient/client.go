package httpclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Client executes SkyEncoder API calls. Every call is a single synchronous
// POST; nothing is retried.
type Client struct {
	baseURL            string
	restyClient        *resty.Client
	httpClient         *http.Client
	timeout            time.Duration
	insecureSkipVerify bool
	userAgent          string
	maxRedirects       int
	requestIDKey       any
	defaultHeaders     map[string]string
	limiter            *rate.Limiter
	logger             zerolog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:            strings.TrimSuffix(baseURL, "/") + "/",
		restyClient:        nil,
		httpClient:         nil,
		timeout:            0,
		insecureSkipVerify: false,
		userAgent:          DefaultUserAgent,
		maxRedirects:       DefaultMaxRedirects,
		requestIDKey:       nil,
		defaultHeaders:     map[string]string{},
		limiter:            nil,
		logger:             log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.restyClient = c.newRestyClient()

	return c
}

func (c *Client) newRestyClient() *resty.Client {
	var rc *resty.Client
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(c.timeout).
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(c.maxRedirects)).
		SetHeader(HeaderUserAgent, c.userAgent).
		SetHeaders(c.defaultHeaders).
		SetLogger(restyLogger{logger: c.logger})

	if c.insecureSkipVerify {
		//nolint:gosec // opt-in only
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return rc
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call posts params to method. A non-empty endpoint replaces the base URL.
func (c *Client) Call(ctx context.Context, method string, params map[string]any, endpoint string) (*Result, error) {
	url := c.ResolveURL(method, endpoint)
	requestID := c.extractRequestID(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
	}

	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader(HeaderXRequestID, requestID)

	if len(params) > 0 {
		body, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		req.SetHeader(HeaderContentType, ContentTypeJSON).SetBody(body)
	}

	c.logger.Debug().
		Str("url", url).
		Str("request_id", requestID).
		Int("param_count", len(params)).
		Msg("Sending SkyEncoder request.")

	resp, err := req.Post(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	result := &Result{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Headers:    flattenHeaders(resp.Header()),
		RequestID:  requestID,
		Body:       resp.Body(),
	}

	if respRequestID := resp.Header().Get(HeaderXRequestID); respRequestID != "" {
		result.RequestID = respRequestID
	}

	c.logger.Debug().
		Str("url", url).
		Str("request_id", result.RequestID).
		Int("status_code", result.StatusCode).
		Dur("duration", resp.Time()).
		Msg("SkyEncoder request completed.")

	return result, nil
}

// ResolveURL joins method onto endpoint, or onto the base URL when endpoint
// is empty.
func (c *Client) ResolveURL(method, endpoint string) string {
	if endpoint == "" {
		return c.baseURL + strings.TrimPrefix(method, "/")
	}

	method = strings.TrimPrefix(method, "/")
	endpoint = strings.TrimSuffix(endpoint, "/")

	if method == "" {
		return endpoint
	}

	return endpoint + "/" + method
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for k := range header {
		headers[k] = header.Get(k)
	}

	return headers
}
