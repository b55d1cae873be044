package hrpws

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches a FetchError carrying a 404 status.
var ErrNotFound = errors.New("hrpws: resource not found")

// FetchError is returned for any non-200 response. A well-formed identifier
// that is unknown upstream surfaces this way, not as a nil result.
type FetchError struct {
	URL    string
	Status int
	Body   []byte
}

func (e *FetchError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("hrpws: GET %s failed: status=%d body=%s", e.URL, e.Status, body)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// ParseError reports a field value that could not be decoded.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hrpws: cannot parse %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("hrpws: cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
