package skyencoder

import (
	"context"
	"reflect"
)

// GetJobs lists the account's jobs, most recent first unless params.Sort
// says otherwise.
func (c *Client) GetJobs(ctx context.Context, params ListJobsParams) *Response {
	return c.call(ctx, "jobs/list", params.Params(), "")
}

// CreateJob submits a new encoding job for params.File with one task per
// output. Missing parameters are rejected without contacting the service.
func (c *Client) CreateJob(ctx context.Context, params CreateJobParams) *Response {
	if err := c.validator.Validate(params); err != nil {
		return validationError(msgMissingFileOrOutputs, err)
	}

	return c.CreateJobConfig(ctx, params.Params())
}

// CreateJobConfig submits a job described by a raw config map. file must be a
// non-empty string and outputs a non-empty list; the service judges the rest.
func (c *Client) CreateJobConfig(ctx context.Context, config map[string]any) *Response {
	if !Valid([]string{"file", "outputs"}, config) {
		return validationError(msgMissingFileOrOutputs, nil)
	}

	if _, ok := config["file"].(string); !ok {
		return validationError(msgInvalidFile, nil)
	}

	if !isList(config["outputs"]) {
		return validationError(msgInvalidOutputs, nil)
	}

	return c.call(ctx, "jobs/create", config, "")
}

// GetJob returns the job details together with its output tasks.
func (c *Client) GetJob(ctx context.Context, jobID string) *Response {
	if jobID == "" {
		return validationError(msgInvalidJobID, nil)
	}

	return c.call(ctx, "jobs/details", map[string]any{"id": jobID}, "")
}

// CancelJob cancels every pending or processing task of the job.
func (c *Client) CancelJob(ctx context.Context, jobID string) *Response {
	if jobID == "" {
		return validationError(msgInvalidJobID, nil)
	}

	return c.call(ctx, "jobs/cancel", map[string]any{"id": jobID}, "")
}

func isList(value any) bool {
	if value == nil {
		return false
	}

	kind := reflect.TypeOf(value).Kind()

	return kind == reflect.Slice || kind == reflect.Array
}
