package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><title>Hi</title><body>ok</body></html>")
	})
	mux.HandleFunc("/pic.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		fmt.Fprint(w, "binary-bytes")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStaticText(t *testing.T) {
	srv := newTestServer(t)
	f := NewStatic(DefaultStaticConfig())
	defer func() { _ = f.Close() }()

	got, err := f.Text(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if !strings.Contains(got, "<title>Hi</title>") {
		t.Errorf("Text() = %q, expected page body", got)
	}
}

func TestStaticBinary(t *testing.T) {
	srv := newTestServer(t)
	f := NewStatic(DefaultStaticConfig())
	defer func() { _ = f.Close() }()

	body, contentType, err := f.Binary(context.Background(), srv.URL+"/pic.png")
	if err != nil {
		t.Fatalf("Binary() error: %v", err)
	}
	if string(body) != "binary-bytes" {
		t.Errorf("Binary() body = %q", body)
	}
	if contentType != "image/png" {
		t.Errorf("Binary() content type = %q, want image/png", contentType)
	}
}

func TestStaticTransportError(t *testing.T) {
	srv := newTestServer(t)
	f := NewStatic(DefaultStaticConfig())
	defer func() { _ = f.Close() }()

	_, err := f.Text(context.Background(), srv.URL+"/nope")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if te.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", te.Status)
	}
	if te.StatusText != "Not Found" {
		t.Errorf("StatusText = %q, want %q", te.StatusText, "Not Found")
	}
}

func TestStaticNetworkError(t *testing.T) {
	f := NewStatic(DefaultStaticConfig())
	defer func() { _ = f.Close() }()

	_, err := f.Text(context.Background(), "http://127.0.0.1:1/unreachable")
	if err == nil {
		t.Fatal("expected a network error")
	}
	var te *TransportError
	if errors.As(err, &te) {
		t.Errorf("connection failure should not be a TransportError: %v", err)
	}
}

func TestStaticCancelledContext(t *testing.T) {
	srv := newTestServer(t)
	f := NewStatic(DefaultStaticConfig())
	defer func() { _ = f.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Text(ctx, srv.URL+"/page"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
