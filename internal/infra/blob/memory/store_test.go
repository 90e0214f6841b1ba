package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"barrelman/internal/blob/core"
)

func TestStore_MissingHeadGet(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Head(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := store.Get(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if ok, err := store.Delete(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected delete false, got %v %v", ok, err)
	}
}

func TestStore_PutIsCreateOnlyUnlessOverwrite(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Put(ctx, "segments/1-2.jsonl", bytes.NewReader([]byte("v1")), core.PutOptions{Metadata: map[string]string{"a": "1"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Put(ctx, "segments/1-2.jsonl", bytes.NewReader([]byte("v2")), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected exists, got %v", err)
	}
	info, err := store.Put(ctx, "segments/1-2.jsonl", bytes.NewReader([]byte("v22")), core.PutOptions{Overwrite: true})
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if info.Size != 3 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}
	_, rc, err := store.Get(ctx, "segments/1-2.jsonl")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(b) != "v22" {
		t.Fatalf("unexpected body %q", b)
	}
	if _, err := store.Put(ctx, " ", bytes.NewReader(nil), core.PutOptions{}); !errors.Is(err, core.ErrInvalidKey) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestStore_ListAndMetadataIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()
	for _, k := range []string{"b/2", "a/1", "b/1"} {
		if _, err := store.Put(ctx, k, bytes.NewReader([]byte(k)), core.PutOptions{Metadata: map[string]string{"k": k}}); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}
	list, err := store.List(ctx, "b/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Key != "b/1" || list[1].Key != "b/2" {
		t.Fatalf("unexpected list %+v", list)
	}
	list[0].Metadata["k"] = "mutated"
	head, err := store.Head(ctx, "b/1")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if head.Metadata["k"] != "b/1" {
		t.Fatalf("metadata leaked: %+v", head.Metadata)
	}
	if ok, err := store.Delete(ctx, "b/1"); err != nil || !ok {
		t.Fatalf("expected delete true, got %v %v", ok, err)
	}
	if all, _ := store.List(ctx, ""); len(all) != 2 {
		t.Fatalf("expected 2 blobs after delete, got %d", len(all))
	}
	if store.Driver() != core.DriverMemory {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
}
