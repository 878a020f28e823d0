package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)
	ctx := context.Background()

	unlock, err := client.Lock(ctx)
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := filepath.Join(tmpDir, LockFile)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("Lock file not created")
	}

	t.Run("Contention times out", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		if _, err := client.Lock(ctx); !errors.Is(err, ErrLockTimeout) {
			t.Fatalf("expected ErrLockTimeout, got %v", err)
		}
	})

	unlock()

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("Lock file not removed after unlock")
	}
}

func TestClient_CommitAndLog(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	ctx := context.Background()
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	if err := client.Init(ctx); err != nil {
		t.Fatalf("Failed to init: %v", err)
	}
	if !client.IsRepo(ctx) {
		t.Fatal("expected a git work tree after init")
	}

	file := filepath.Join(tmpDir, "fitbook.json")
	for i, msg := range []string{"add n/Alex", "weight 1 w/70"} {
		if err := os.WriteFile(file, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := client.Add(ctx, "fitbook.json"); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := client.Commit(ctx, msg); err != nil {
			t.Fatalf("commit: %v", err)
		}
	}

	// Nothing staged: no new revision.
	if err := client.Commit(ctx, "noop"); err != nil {
		t.Fatalf("empty commit: %v", err)
	}

	revs, err := client.Log(ctx, "fitbook.json", 0)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(revs) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revs))
	}
	if revs[0].Message != "weight 1 w/70" {
		t.Errorf("newest revision first, got %q", revs[0].Message)
	}

	limited, err := client.Log(ctx, "fitbook.json", 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limited log: %v, %d", err, len(limited))
	}
}
