package apis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weatherreport/manager"
)

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("bad query"))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(time.Second)

	body, err := Get(context.Background(), client, server.URL, map[string]string{"q": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}

	_, err = Get(context.Background(), client, server.URL, nil)
	var transportErr *manager.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want *manager.TransportError", err)
	}
	if transportErr.Body != "bad query" {
		t.Errorf("non-JSON body should be kept verbatim, got %q", transportErr.Body)
	}
}

func TestGetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, NewClient(time.Second), server.URL, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestFieldPath(t *testing.T) {
	tests := map[string]string{
		"response.current.weather_code": "current.weather_code",
		"response.lat":                  "lat",
		"lat":                           "lat",
	}

	for in, want := range tests {
		if got := fieldPath(in); got != want {
			t.Errorf("fieldPath(%q) = %q, want %q", in, got, want)
		}
	}
}
