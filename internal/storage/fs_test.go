package storage

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore() error = %v", err)
	}
	ctx := context.Background()

	loc, err := s.Store(ctx, []byte("payload"))
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if !strings.HasPrefix(loc, "fs://") {
		t.Fatalf("location = %q, want fs:// prefix", loc)
	}

	got, err := s.Fetch(ctx, loc)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Fetch() = %q, want %q", got, "payload")
	}

	if err := s.Delete(ctx, loc); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Fetch(ctx, loc); err == nil {
		t.Fatalf("Fetch() after delete should fail")
	}
}

func TestFSStoreRejectsTraversal(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore() error = %v", err)
	}
	ctx := context.Background()

	bad := []string{
		"fs://../etc/passwd",
		"fs://a/b",
		"fs://a\\b",
		"fs://",
		"s3://bucket/key",
	}
	for _, loc := range bad {
		if _, err := s.Fetch(ctx, loc); err == nil {
			t.Errorf("Fetch(%q) accepted an invalid location", loc)
		}
		if err := s.Delete(ctx, loc); err == nil {
			t.Errorf("Delete(%q) accepted an invalid location", loc)
		}
	}
}
