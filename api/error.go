package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const genericFailure = "request failed"

// Error is a non-2xx backend response. Message carries the backend's
// own wording when the body had one, so the UI can show it verbatim.
type Error struct {
	StatusCode int
	Message    string
	Status     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// IsAuthError reports whether err is a backend denial of the session
// credential.
func IsAuthError(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// UserMessage extracts a displayable message from any error returned by
// this package, falling back to a generic notice for transport errors.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailure
}

func decodeError(res *http.Response) error {
	apiErr := &Error{StatusCode: res.StatusCode, Message: genericFailure}

	var body struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Status = body.Status
	}
	return apiErr
}
