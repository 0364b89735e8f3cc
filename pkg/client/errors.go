package client

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is returned when the catalog answers with a non-2xx status.
// Body holds the response body exactly as received.
type RequestError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("pinestore API request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// IsStatus returns true if err (or any wrapped error) is a RequestError with the given status code.
func IsStatus(err error, code int) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == code
	}
	return false
}

// IsNotFound reports whether err is a 404 from the catalog.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
