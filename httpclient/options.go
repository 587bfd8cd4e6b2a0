package httpclient

import (
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultUserAgent    = "Sky Encoder Go API Wrapper"
	DefaultMaxRedirects = 10
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
	HeaderSecretKey     = "SE-Secret-Key"
	HeaderAPIToken      = "SE-API-Token"
	ContentTypeJSON     = "application/json"
)

type Option func(*Client)

// WithTimeout bounds every call. Zero disables the client-level timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate and host verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.insecureSkipVerify = skip
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

func WithMaxRedirects(maxRedirects int) Option {
	return func(c *Client) {
		if maxRedirects >= 0 {
			c.maxRedirects = maxRedirects
		}
	}
}

func WithCredentials(apiKey, apiToken string) Option {
	return func(c *Client) {
		c.defaultHeaders[HeaderSecretKey] = apiKey
		c.defaultHeaders[HeaderAPIToken] = apiToken
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

// WithRateLimit makes every call wait for a token from a limiter allowing
// limit requests per second with the given burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(limit, burst)
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
