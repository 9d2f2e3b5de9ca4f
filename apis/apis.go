// Package apis holds the request and decoding plumbing shared by the
// upstream API clients.
package apis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"weatherreport/manager"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// NewClient returns a resty client that gives up after timeout. Retries stay
// disabled: one failed attempt fails the whole report.
func NewClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// Get issues a single GET and returns the body of a 2xx response. Any other
// outcome is a *manager.TransportError.
func Get(ctx context.Context, client *resty.Client, url string, params map[string]string) ([]byte, error) {
	request := client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(url)
	if err != nil {
		return nil, &manager.TransportError{URL: url, Err: err}
	}

	if !response.IsSuccess() {
		body := string(response.Body())

		buf := &bytes.Buffer{}
		if json.Indent(buf, response.Body(), "", "  ") == nil {
			body = buf.String()
		}

		return nil, &manager.TransportError{URL: url, StatusCode: response.StatusCode(), Body: body}
	}

	return response.Body(), nil
}

// Decode unmarshals data into out and checks its `validate` tags. Required
// fields should be pointers so that zero values still count as present.
func Decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &manager.MalformedResponseError{Err: err}
	}

	if err := validate.Struct(out); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return &manager.MalformedResponseError{Field: fieldPath(fieldErrors[0].Namespace()), Err: err}
		}

		return &manager.MalformedResponseError{Err: err}
	}

	return nil
}

// fieldPath drops the struct name the validator puts in front of the
// namespace: "payload.current.weather_code" -> "current.weather_code".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}
