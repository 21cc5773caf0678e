package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://users:8081", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://users:8081" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if client.RetryCount != 0 {
		t.Errorf("expected no retries, got %d", client.RetryCount)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://a", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
}

func TestNewHTTPClient_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/old")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode() != http.StatusFound {
		t.Errorf("expected 302 passed through, got %d", resp.StatusCode())
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).R().Get("/")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
