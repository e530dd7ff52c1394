package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore_Upsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if _, ok, err := s.Get(ctx, "saveHistory"); ok || err != nil {
		t.Fatalf("got ok=%v err=%v for missing key", ok, err)
	}

	if err := s.Set(ctx, "saveHistory", "true"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "saveHistory", "false"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "saveHistory")
	if err != nil || !ok || v != "false" {
		t.Errorf("got %q ok=%v err=%v, want persisted last write", v, ok, err)
	}
}
