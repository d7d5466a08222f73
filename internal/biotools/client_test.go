package biotools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"toolcodex/internal/webapi"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	api, err := webapi.New(webapi.WithHTTPClient(server.Client()), webapi.WithRetries(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	client, err := New(server.URL, api)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func bwaEntry() Entry {
	return Entry{
		ID:          "bwa",
		Name:        "BWA",
		Description: "Burrows-Wheeler Aligner",
		Homepage:    "https://bio-bwa.sourceforge.net",
		Functions: []Function{
			{Operations: []Term{
				{URI: "http://edamontology.org/operation_3198", Term: "Read mapping"},
				{URI: "http://edamontology.org/operation_3198", Term: "Read mapping"},
			}},
			{Operations: []Term{
				{URI: "http://edamontology.org/operation_0491", Term: "Pairwise sequence alignment"},
			}},
		},
		Topics: []Term{
			{URI: "http://edamontology.org/topic_0102", Term: "Mapping"},
		},
	}
}

func TestGetTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tool/bwa" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(bwaEntry())
	}))
	defer server.Close()

	client := newTestClient(t, server)
	e, err := client.GetTool(context.Background(), "bwa")
	if err != nil {
		t.Fatalf("GetTool: %v", err)
	}
	if e.Name != "BWA" {
		t.Errorf("name: %q", e.Name)
	}

	gotOps := e.OperationTerms()
	wantOps := []string{"Read mapping", "Pairwise sequence alignment"}
	if diff := cmp.Diff(wantOps, gotOps); diff != "" {
		t.Errorf("operation terms (-want +got):\n%s", diff)
	}
	gotTopics := e.TopicTerms()
	if diff := cmp.Diff([]string{"Mapping"}, gotTopics); diff != "" {
		t.Errorf("topic terms (-want +got):\n%s", diff)
	}
}

func TestGetTool_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetTool(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !webapi.IsNotFound(err) {
		t.Errorf("expected IsNotFound, got: %v", err)
	}
}

func TestSearchExact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/t/" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(searchResult{
			Count: 2,
			List:  []Entry{{ID: "bwa-pssm", Name: "BWA-PSSM"}, bwaEntry()},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	e, err := client.SearchExact(context.Background(), "bwa")
	if err != nil {
		t.Fatalf("SearchExact: %v", err)
	}
	if e == nil || e.ID != "bwa" {
		t.Errorf("expected exact match on bwa, got %+v", e)
	}
}

func TestSearchExact_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResult{Count: 1, List: []Entry{{ID: "other", Name: "Other"}}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	e, err := client.SearchExact(context.Background(), "bwa")
	if err != nil {
		t.Fatalf("SearchExact: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for no exact match, got %+v", e)
	}
}
