// internal/errors/errors.go
package errors

import "fmt"

// InvalidUsernameError is returned when the configured GitHub username is not a valid login.
type InvalidUsernameError struct {
	Username string
}

func (e *InvalidUsernameError) Error() string {
	return fmt.Sprintf("invalid GitHub username: %q", e.Username)
}

// FetchError covers transport failures and non-2xx responses from the GitHub API.
// StatusCode is zero when no response was received.
type FetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError is returned when a response body is not valid JSON or violates the expected schema.
type DecodeError struct {
	Resource string
	Field    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %s: %v", e.Resource, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ContentError reports an invalid entry in the site content file.
type ContentError struct {
	Section string
	Item    string
	Reason  string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("invalid content in %s (%s): %s", e.Section, e.Item, e.Reason)
}
