package httpclient

// Result is the raw outcome of one call. StatusCode is read from the
// completed response.
type Result struct {
	URL        string
	StatusCode int
	Headers    map[string]string
	RequestID  string
	Body       []byte
}

func (r *Result) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
