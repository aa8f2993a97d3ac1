package utils

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("https://portal.example", time.Second, false)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	client := NewHTTPClient("https://portal.example/StudentPortalAPI/", 0, false)

	if client.BaseURL != "https://portal.example/StudentPortalAPI" {
		t.Fatalf("unexpected base url %q", client.BaseURL)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("https://portal.example", 7*time.Second, false)

	if got := client.GetClient().Timeout; got != 7*time.Second {
		t.Fatalf("timeout = %v, want 7s", got)
	}
}

func TestNewHTTPClient_Insecure(t *testing.T) {
	client := NewHTTPClient("https://portal.example", 0, true)

	transport, ok := client.GetClient().Transport.(*http.Transport)
	if !ok {
		t.Fatalf("unexpected transport type %T", client.GetClient().Transport)
	}
	if transport.TLSClientConfig == nil || !transport.TLSClientConfig.InsecureSkipVerify {
		t.Fatalf("expected InsecureSkipVerify, got %+v", transport.TLSClientConfig)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("https://portal.example", 0, false)
	client2 := NewHTTPClient("https://portal.example", 0, false)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://webportal.jiit.ac.in:6011/StudentPortalAPI", want: "https://webportal.jiit.ac.in:6011/StudentPortalAPI"},
		{name: "trailing slash and spaces", raw: "  http://127.0.0.1:8090/api/ ", want: "http://127.0.0.1:8090/api"},
		{name: "missing scheme", raw: "portal.example:6011/StudentPortalAPI", want: "https://portal.example:6011/StudentPortalAPI"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
