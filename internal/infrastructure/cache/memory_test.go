package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", time.Minute)

	got, ok := store.Get(ctx, "key")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
}

func TestMemoryStore_MissOnUnknownKey(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(context.Background(), "missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryStore_Expiration(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", -time.Second)

	if _, ok := store.Get(ctx, "key"); ok {
		t.Error("expected miss for expired key")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", time.Minute)
	store.Delete("key")

	if _, ok := store.Get(ctx, "key"); ok {
		t.Error("expected miss after delete")
	}
}
