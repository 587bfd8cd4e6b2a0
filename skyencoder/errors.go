package skyencoder

import (
	"errors"
)

var (
	ErrValidation    = errors.New("skyencoder: invalid parameters")
	ErrRequestFailed = errors.New("skyencoder: request failed")
	ErrInvalidJSON   = errors.New("skyencoder: invalid JSON response")
	ErrRemote        = errors.New("skyencoder: remote error")
)

const (
	msgInvalidJSON          = "Invalid JSON response."
	msgMissingFileOrOutputs = "Invalid file or output parameter. Please ensure that you have included both."
	msgInvalidFile          = "Invalid file parameter. Please ensure that you have provided a valid string URL for the source file."
	msgInvalidOutputs       = "Invalid output parameter. Please ensure that you have provided an array of output tasks."
	msgInvalidJobID         = "Invalid job ID provided. The ID must be a string and not empty."
	msgInvalidTaskID        = "Invalid task ID provided. The ID must be a string and not empty."
	msgInvalidTaskIDs       = "Invalid task ID provided. The ID must be a string or an array of strings."
)
