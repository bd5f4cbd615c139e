package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// RequestError is returned for every failed request: a non-2xx response, a
// transport failure (StatusCode 0) or an undecodable body.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server's explanation, if the response had one.
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	case e.Err != nil && e.StatusCode == 0:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the message sent by the server, or "".
func (e *RequestError) ServerMessage() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newResponseError(method, path string, resp *http.Response) *RequestError {
	reqErr := &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(b) == 0 {
		return reqErr
	}

	var body errorBody
	if json.Unmarshal(b, &body) == nil {
		reqErr.Message = body.Message
		if reqErr.Message == "" {
			reqErr.Message = body.Error
		}
	}

	return reqErr
}
