package vectorstore

import (
	"context"
	"testing"
)

func newInMemoryIndex(t *testing.T) *ChromemIndex {
	t.Helper()
	index, err := NewChromemIndex("", "test_collection", true, "")
	if err != nil {
		t.Fatalf("NewChromemIndex: %v", err)
	}
	return index
}

func TestChromemAddAndSearch(t *testing.T) {
	index := newInMemoryIndex(t)
	ctx := context.Background()

	records := []Record{
		{ID: "sky", Content: "The sky is blue.", Metadata: map[string]string{"page": "1"}, Embedding: []float32{1, 0, 0}},
		{ID: "grass", Content: "The grass is green.", Metadata: map[string]string{"page": "2"}, Embedding: []float32{0, 1, 0}},
	}
	if err := index.Add(ctx, records); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := index.Search(ctx, []float32{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got.IDs) != 1 || got.IDs[0] != "sky" {
		t.Fatalf("expected nearest neighbor 'sky', got %+v", got)
	}
	if got.Documents[0] != "The sky is blue." || got.Metadatas[0]["page"] != "1" {
		t.Errorf("content or metadata lost: %+v", got)
	}
	if got.Distances[0] > 0.01 {
		t.Errorf("identical vector should have near-zero distance, got %f", got.Distances[0])
	}
}

func TestChromemSearchClampsK(t *testing.T) {
	index := newInMemoryIndex(t)
	ctx := context.Background()

	if err := index.Add(ctx, []Record{{ID: "only", Content: "x", Embedding: []float32{1, 0}}}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := index.Search(ctx, []float32{1, 0}, 10)
	if err != nil {
		t.Fatalf("Search with oversized k: %v", err)
	}
	if len(got.IDs) != 1 {
		t.Errorf("expected 1 result, got %d", len(got.IDs))
	}
}

func TestChromemSearchEmptyCollection(t *testing.T) {
	index := newInMemoryIndex(t)

	got, err := index.Search(context.Background(), []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Search on empty collection: %v", err)
	}
	if len(got.IDs) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestChromemClear(t *testing.T) {
	index := newInMemoryIndex(t)
	ctx := context.Background()

	if err := index.Add(ctx, []Record{{ID: "a", Content: "x", Embedding: []float32{1}}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := index.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, err := index.Search(ctx, []float32{1}, 1)
	if err != nil {
		t.Fatalf("Search after clear: %v", err)
	}
	if len(got.IDs) != 0 {
		t.Errorf("collection should be empty after clear, got %+v", got)
	}
}
