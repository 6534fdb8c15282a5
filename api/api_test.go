package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vesselhq/vessel/credentials"
)

func testClient(url string) *Client {
	return NewClient(ClientConfig{
		BaseURL:    url,
		Credential: credentials.Resolved{APIKey: "vsl_testkey", Source: credentials.SourceFlag},
		RetryWait:  time.Millisecond,
	})
}

func TestViewer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/viewer" {
			t.Errorf("path = %q, want /v1/viewer", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer vsl_testkey" {
			t.Errorf("Authorization = %q, want bearer key", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		w.Write([]byte(`{"user":"dev@acme.io","team":"acme"}`))
	}))
	defer srv.Close()

	v, err := testClient(srv.URL).Viewer(context.Background())
	if err != nil {
		t.Fatalf("Viewer error: %v", err)
	}
	if v.Team != "acme" || v.User != "dev@acme.io" {
		t.Errorf("Viewer = %+v, want acme/dev@acme.io", v)
	}
}

func TestViewer_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credential"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Viewer(context.Background())
	if err == nil {
		t.Fatal("Viewer should fail on 401")
	}
	if !IsUnauthorized(err) {
		t.Errorf("error = %v, want unauthorized", err)
	}
}

func TestViewer_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"user":"u","team":"t"}`))
	}))
	defer srv.Close()

	v, err := testClient(srv.URL).Viewer(context.Background())
	if err != nil {
		t.Fatalf("Viewer error after retries: %v", err)
	}
	if v.Team != "t" {
		t.Errorf("Team = %q, want t", v.Team)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server calls = %d, want 3", got)
	}
}

func TestBaseURL_EnvOverride(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://localhost:9999")
	if got := BaseURL(); got != "http://localhost:9999" {
		t.Errorf("BaseURL = %q, want env override", got)
	}

	t.Setenv(EnvBaseURL, "")
	if got := BaseURL(); got != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", got, DefaultBaseURL)
	}
}
