package api

import (
	"encoding/json"
	"errors"
	"fmt"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// ErrTransport indicates a connection or timeout failure before a response
// was received. Safe to retry the entire enclosing operation, never a single
// protocol step: challenges, search IDs and offer IDs are single-use.
var ErrTransport = errors.New("transport error")

// StatusError represents a non-2xx, non-402 response. Fatal for the call;
// carries the status and body for diagnosis.
type StatusError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// newStatusError строит StatusError, пытаясь достать сообщение из тела ответа
func newStatusError(statusCode int, body []byte) *StatusError {
	statusErr := &StatusError{
		StatusCode: statusCode,
		Body:       body,
	}

	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			statusErr.Message = errResp.Message
		case errResp.Error != "":
			statusErr.Message = errResp.Error
		}
	}

	return statusErr
}
