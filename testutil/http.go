package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const DefaultReply = `{"error":0,"msg":"","data":{}}`

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

func (r RecordedRequest) DecodeJSON(t *testing.T, target any) {
	t.Helper()

	err := json.Unmarshal(r.Body, target)
	require.NoError(t, err, "Request body should be valid JSON")
}

// ReplyFunc produces the status code and body for a recorded request.
type ReplyFunc func(req RecordedRequest) (int, string)

// FakeServer stands in for the SkyEncoder API and status service. It records
// every request and answers with DefaultReply unless told otherwise.
type FakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	reply    ReplyFunc
}

func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()

	fake := &FakeServer{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
		reply: func(RecordedRequest) (int, string) {
			return http.StatusOK, DefaultReply
		},
	}

	fake.Server = httptest.NewServer(http.HandlerFunc(fake.serveHTTP))
	t.Cleanup(fake.Close)

	return fake
}

func (s *FakeServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	req := RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	reply := s.reply
	s.mu.Unlock()

	status, respBody := reply(req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(respBody))
}

func (s *FakeServer) Reply(status int, body string) {
	s.ReplyWith(func(RecordedRequest) (int, string) {
		return status, body
	})
}

func (s *FakeServer) ReplyWith(fn ReplyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reply = fn
}

func (s *FakeServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

func (s *FakeServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

func (s *FakeServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests, "Fake server received no requests")

	return s.requests[len(s.requests)-1]
}

func AssertHeader(t *testing.T, req RecordedRequest, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}

func AssertNoRequests(t *testing.T, s *FakeServer) {
	t.Helper()
	assert.Zero(t, s.RequestCount(), "Fake server should not have been called")
}
