package whttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendHTTPRequestReadsErrorPageTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected custom header to be forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("<html><head><title>\n  Access denied\n</title></head><body></body></html>"))
	}))
	defer srv.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		Method:  "GET",
		URL:     srv.URL,
		Headers: []WHTTPHeader{{Name: "Content-Type", Value: "application/json"}},
	}, NewClient(0))
	if err != nil {
		t.Fatalf("SendHTTPRequest: %v", err)
	}
	if res.OK() {
		t.Fatalf("403 must not be OK")
	}
	if res.HTTPTitle != "Access denied" {
		t.Fatalf("unexpected title %q", res.HTTPTitle)
	}
}

func TestSendHTTPRequestJSONHasNoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{Method: "GET", URL: srv.URL}, NewClient(0))
	if err != nil {
		t.Fatalf("SendHTTPRequest: %v", err)
	}
	if !res.OK() || res.HTTPTitle != "" || res.BodyString != `{"ok":true}` {
		t.Fatalf("unexpected response %+v", res)
	}
}
