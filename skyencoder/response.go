package skyencoder

import (
	"encoding/json"
	"fmt"
)

var emptyData = json.RawMessage(`{}`)

// Response is the standard {error, msg, data} result of every operation.
// URL and RawResponse are only set when the body could not be used.
type Response struct {
	Error       int             `json:"error"`
	Msg         string          `json:"msg"`
	Data        json.RawMessage `json:"data"`
	URL         string          `json:"url,omitempty"`
	RawResponse string          `json:"response,omitempty"`

	Meta Meta  `json:"-"`
	Err  error `json:"-"`
}

// Meta carries transport details of the call that produced a Response.
// It is zero for responses that never reached the network.
type Meta struct {
	URL        string
	StatusCode int
	RequestID  string
	Raw        []byte
}

func Error(msg string) *Response {
	return &Response{
		Error:       1,
		Msg:         msg,
		Data:        emptyData,
		URL:         "",
		RawResponse: "",
		Meta:        Meta{},
		Err:         nil,
	}
}

// Success wraps data as a successful response. Data that cannot be encoded
// yields an error response instead.
func Success(data any) *Response {
	raw, err := json.Marshal(data)
	if err != nil {
		resp := Error(err.Error())
		resp.Err = fmt.Errorf("%w: %w", ErrValidation, err)

		return resp
	}

	return &Response{
		Error:       0,
		Msg:         "",
		Data:        raw,
		URL:         "",
		RawResponse: "",
		Meta:        Meta{},
		Err:         nil,
	}
}

func (r *Response) Failed() bool {
	return r.Error != 0
}

// AsError returns nil for a successful response and the underlying error
// otherwise.
func (r *Response) AsError() error {
	if !r.Failed() {
		return nil
	}

	if r.Err != nil {
		return r.Err
	}

	return fmt.Errorf("%w: %s", ErrRemote, r.Msg)
}

// DecodeData unmarshals the data payload of a successful response into v.
func (r *Response) DecodeData(v any) error {
	if err := r.AsError(); err != nil {
		return err
	}

	if len(r.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("skyencoder: failed to decode data: %w", err)
	}

	return nil
}

//nolint:ireturn
func DataAs[T any](r *Response) (T, error) {
	var result T
	err := r.DecodeData(&result)

	return result, err
}
