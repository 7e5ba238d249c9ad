package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestClientGet tests HTML page fetching.
func TestClientGet(t *testing.T) {
	t.Parallel()

	t.Run("sends user agent and language preference", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotLang string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotLang = r.Header.Get("Accept-Language")
			w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		client := NewClient(WithUserAgent("test-agent"), WithAcceptLanguage("en-US,en;q=0.5"))
		resp, err := client.Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}

		if gotUA != "test-agent" {
			t.Errorf("expected user agent %q, got %q", "test-agent", gotUA)
		}
		if gotLang != "en-US,en;q=0.5" {
			t.Errorf("expected accept-language %q, got %q", "en-US,en;q=0.5", gotLang)
		}
		if !resp.Successful() {
			t.Errorf("expected successful response, got status %d", resp.StatusCode)
		}
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				http.Redirect(w, r, "/final", http.StatusFound)
				return
			}
			w.Write([]byte("landed"))
		}))
		defer server.Close()

		resp, err := NewClient().Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(resp.Body) != "landed" {
			t.Errorf("expected redirect target body, got %q", resp.Body)
		}
	})

	t.Run("limits body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(strings.Repeat("a", 1024)))
		}))
		defer server.Close()

		client := NewClient(WithMaxBodySize(100))
		resp, err := client.Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if len(resp.Body) != 100 {
			t.Errorf("expected body truncated to 100 bytes, got %d", len(resp.Body))
		}
	})

	t.Run("returns response for error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		resp, err := NewClient().Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("expected no transport error, got %v", err)
		}
		if resp.Successful() {
			t.Error("500 should not be successful")
		}
	})
}

// TestClientGetJSON tests JSON endpoint fetching.
func TestClientGetJSON(t *testing.T) {
	t.Parallel()

	var gotAccept, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	if _, err := NewClient().GetJSON(context.Background(), server.URL); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if gotAccept != "application/json" {
		t.Errorf("expected JSON accept header, got %q", gotAccept)
	}
	if gotLang != "" {
		t.Errorf("JSON requests should not send Accept-Language, got %q", gotLang)
	}
}

// TestResponseSuccessful tests the status classification.
func TestResponseSuccessful(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{204, true},
		{301, true},
		{399, true},
		{400, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.status}
		if got := resp.Successful(); got != tt.want {
			t.Errorf("Successful() for %d = %v, want %v", tt.status, got, tt.want)
		}
	}
}
