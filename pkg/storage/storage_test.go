package storage

import (
	"context"
	"path/filepath"
	"testing"
)

type kv interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func exerciseStore(t *testing.T, s kv) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "EUR"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "EUR", "active"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "USD", "active"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "EUR", "inactive"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "EUR")
	if err != nil || !ok || v != "inactive" {
		t.Fatalf("expected inactive, got %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Delete(ctx, "USD"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "USD"); ok {
		t.Fatalf("USD should be gone")
	}
	if err := s.Delete(ctx, "USD"); err != nil {
		t.Fatalf("Delete of a missing key: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "EUR"); !ok || v != "inactive" {
		t.Fatalf("Delete touched another key: %q ok=%v", v, ok)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.sqlite")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	exerciseStore(t, db)
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Values survive a reopen, like local storage survives a popup reload.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	v, ok, err := db.Get(context.Background(), "EUR")
	if err != nil || !ok || v != "inactive" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}
