package skyencoder_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/skyencoder/skyencoder-go/skyencoder"
	"github.com/skyencoder/skyencoder-go/testutil"
)

const (
	testAPIKey   = "secret-key"
	testAPIToken = "api-token"
)

func newTestClient(t *testing.T, opts ...skyencoder.Option) (*skyencoder.Client, *testutil.FakeServer) {
	t.Helper()

	server := testutil.NewFakeServer(t)

	allOpts := []skyencoder.Option{
		skyencoder.WithEndpoint(server.URL + "/api/1.0/"),
		skyencoder.WithStatusEndpoint(server.URL + "/status"),
		skyencoder.WithLogger(zerolog.Nop()),
	}
	allOpts = append(allOpts, opts...)

	return skyencoder.New(testAPIKey, testAPIToken, allOpts...), server
}
