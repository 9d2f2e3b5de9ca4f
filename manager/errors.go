package manager

import (
	"fmt"
)

// TransportError is returned when an upstream API could not be reached or
// answered with a non-2xx status. StatusCode is 0 for network failures.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request %s: %s", e.URL, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("request %s: status code: %d", e.URL, e.StatusCode)
	}

	return fmt.Sprintf("request %s: status code: %d\n%s", e.URL, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GeolocationError carries the failure message reported by the geolocation
// service itself.
type GeolocationError struct {
	Message string
}

func (e *GeolocationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unknown error"
	}

	return "Geolocation failed: " + msg
}

// MalformedResponseError means the response body could not be decoded or
// lacks a required field. Field is the JSON path of the missing value.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed response: missing field %q", e.Field)
	}

	return fmt.Sprintf("malformed response: %s", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
