package skyencoder

import (
	"context"
	"net/url"
	"slices"
	"strings"
)

// GetStatus queries the realtime status service for the progress of one or
// more output tasks.
func (c *Client) GetStatus(ctx context.Context, taskIDs ...string) *Response {
	if len(taskIDs) == 0 || slices.Contains(taskIDs, "") {
		return validationError(msgInvalidTaskIDs, nil)
	}

	return c.call(ctx, "", nil, c.StatusURL(taskIDs...))
}

// StatusURL is the status service URL queried for taskIDs.
func (c *Client) StatusURL(taskIDs ...string) string {
	escaped := make([]string, 0, len(taskIDs))
	for _, id := range taskIDs {
		escaped = append(escaped, url.QueryEscape(id))
	}

	return c.statusEndpoint + "?ids=" + strings.Join(escaped, ",")
}

func (c *Client) CancelTask(ctx context.Context, taskID string) *Response {
	if taskID == "" {
		return validationError(msgInvalidTaskID, nil)
	}

	return c.call(ctx, "tasks/cancel", map[string]any{"id": taskID}, "")
}
