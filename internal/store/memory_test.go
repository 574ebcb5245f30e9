package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestMemoryGetMissingKey(t *testing.T) {
	kv := NewMemory()

	if _, err := kv.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_ = kv.Put(ctx, "k", []byte("v"))
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent key is not an error.
	if err := kv.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete of missing key: %v", err)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	original := []byte("abc")
	_ = kv.Put(ctx, "k", original)
	original[0] = 'z'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller's buffer: %s", got)
	}

	got[0] = 'z'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("returned value aliased stored buffer: %s", again)
	}
}

func TestCartKeyNamespacesByEmail(t *testing.T) {
	a := CartKey("ada@example.com")
	b := CartKey("obi@example.com")
	if a == b {
		t.Fatal("expected distinct keys per email")
	}
	if a != "naija_kart_cart_ada@example.com" {
		t.Fatalf("unexpected key format: %s", a)
	}
}
