package pms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetForServicesChunksAtLimit(t *testing.T) {
	var chunkSizes []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ServiceIds []string `json:"ServiceIds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		chunkSizes = append(chunkSizes, len(body.ServiceIds))

		// One category per chunk, named after the chunk index, to verify
		// concatenation order.
		resp := resourceCategoriesResponse{
			ResourceCategories: []ResourceCategory{
				{ID: fmt.Sprintf("chunk-%d", len(chunkSizes)), Capacity: 2},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	fetcher := NewResourceCategories(NewGateway(Config{BaseURL: server.URL}))

	serviceIDs := make([]string, 2500)
	for i := range serviceIDs {
		serviceIDs[i] = fmt.Sprintf("svc-%d", i)
	}

	categories, err := fetcher.GetForServices(context.Background(), serviceIDs)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(chunkSizes) != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", len(chunkSizes))
	}
	expected := []int{1000, 1000, 500}
	for i, size := range expected {
		if chunkSizes[i] != size {
			t.Errorf("chunk %d: expected size %d, got %d", i, size, chunkSizes[i])
		}
	}

	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	for i, category := range categories {
		if want := fmt.Sprintf("chunk-%d", i+1); category.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, category.ID)
		}
	}
}

func TestGetForServicesEmptyInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected for empty input")
	}))
	t.Cleanup(server.Close)

	fetcher := NewResourceCategories(NewGateway(Config{BaseURL: server.URL}))

	categories, err := fetcher.GetForServices(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("expected no categories, got %d", len(categories))
	}
}
