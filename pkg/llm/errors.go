package llm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// UpstreamError is a failed call to a model provider. Status is the provider's
// HTTP status, or zero when the call never got a response. Body holds the raw
// error response when there was one.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
	Body     []byte
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// HTTPStatus returns the status a caller should answer with. Provider statuses
// outside 400-599 are answered as 500 so a failed call never reads as success.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func newUpstreamError(provider string, err error) *UpstreamError {
	upErr := &UpstreamError{Provider: provider, Message: err.Error(), Err: err}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		upErr.Status = openaiErr.StatusCode
		upErr.Body = responseBody(openaiErr.Response)
		if openaiErr.Message != "" {
			upErr.Message = openaiErr.Message
		}
		return upErr
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		upErr.Status = anthropicErr.StatusCode
		upErr.Body = responseBody(anthropicErr.Response)
	}

	return upErr
}

// responseBody reads an error response body and puts it back for later readers.
func responseBody(res *http.Response) []byte {
	if res == nil || res.Body == nil {
		return nil
	}
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	res.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	return body
}

// AsUpstreamError finds an UpstreamError in err's chain.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
