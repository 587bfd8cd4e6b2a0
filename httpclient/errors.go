package httpclient

import (
	"errors"
)

var (
	ErrRequestFailed = errors.New("httpclient: request failed")
	ErrEncodeBody    = errors.New("httpclient: failed to encode request body")
	ErrRateLimited   = errors.New("httpclient: rate limiter wait failed")
)
