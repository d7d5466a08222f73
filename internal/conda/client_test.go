package conda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolcodex/internal/webapi"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	api, err := webapi.New(webapi.WithHTTPClient(server.Client()), webapi.WithRetries(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	client, err := New(server.URL, "", api)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestGetPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/package/bioconda/bwa" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(Package{Name: "bwa", LatestVersion: "0.7.19"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	p, err := client.GetPackage(context.Background(), "bwa")
	if err != nil {
		t.Fatalf("GetPackage: %v", err)
	}
	if p.LatestVersion != "0.7.19" {
		t.Errorf("latest version: %q", p.LatestVersion)
	}
}

func TestLatestVersion_NotFoundIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	v, err := client.LatestVersion(context.Background(), "no-such-package")
	if err != nil {
		t.Fatalf("missing package must not be an error: %v", err)
	}
	if v != "" {
		t.Errorf("expected empty version, got %q", v)
	}
}

func TestLatestVersion_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.LatestVersion(context.Background(), "bwa"); err == nil {
		t.Error("expected error for HTTP 500")
	}
}
