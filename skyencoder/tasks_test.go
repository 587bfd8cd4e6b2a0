package skyencoder_test

import (
	"testing"

	"github.com/skyencoder/skyencoder-go/skyencoder"
	"github.com/skyencoder/skyencoder-go/testutil"
	"github.com/stretchr/testify/require"
)

func TestGetStatus_SingleAndSliceTargetSameURL(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t)

	single := client.GetStatus(t.Context(), "t1")
	require.False(t, single.Failed())

	list := client.GetStatus(t.Context(), []string{"t1"}...)
	require.False(t, list.Failed())

	requests := server.Requests()
	require.Len(t, requests, 2)

	for _, req := range requests {
		require.Equal(t, "/status", req.Path)
		require.Equal(t, "ids=t1", req.RawQuery)
		require.Empty(t, req.Body)
	}

	require.Equal(t, single.Meta.URL, list.Meta.URL)
}

func TestGetStatus_JoinsTaskIDsWithCommas(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t)
	server.Reply(200, `{"error":0,"msg":"","data":{"t1":{"progress":50},"t2":{"progress":100}}}`)

	resp := client.GetStatus(t.Context(), "t1", "t2", "t 3")
	require.False(t, resp.Failed())

	req := server.LastRequest(t)
	require.Equal(t, "ids=t1,t2,t+3", req.RawQuery)

	status, err := skyencoder.DataAs[map[string]map[string]int](resp)
	require.NoError(t, err)
	require.Equal(t, 100, status["t2"]["progress"])
}

func TestGetStatus_RejectsMissingIDs(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t)

	for _, resp := range []*skyencoder.Response{
		client.GetStatus(t.Context()),
		client.GetStatus(t.Context(), ""),
		client.GetStatus(t.Context(), "t1", ""),
	} {
		require.Equal(t, 1, resp.Error)
		require.Equal(t, "Invalid task ID provided. The ID must be a string or an array of strings.", resp.Msg)
		require.ErrorIs(t, resp.Err, skyencoder.ErrValidation)
	}

	testutil.AssertNoRequests(t, server)
}

func TestStatusURL_DefaultEndpoint(t *testing.T) {
	t.Parallel()

	client := skyencoder.New(testAPIKey, testAPIToken)

	require.Equal(t, "http://status.skyencoder.com?ids=a,b", client.StatusURL("a", "b"))
}

func TestCancelTask(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t)

	resp := client.CancelTask(t.Context(), "task-1")
	require.Equal(t, 0, resp.Error)

	req := server.LastRequest(t)
	require.Equal(t, "/api/1.0/tasks/cancel", req.Path)
	require.JSONEq(t, `{"id":"task-1"}`, string(req.Body))
}

func TestCancelTask_RejectsEmptyID(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t)

	resp := client.CancelTask(t.Context(), "")

	require.Equal(t, 1, resp.Error)
	require.Equal(t, "Invalid task ID provided. The ID must be a string and not empty.", resp.Msg)
	testutil.AssertNoRequests(t, server)
}
