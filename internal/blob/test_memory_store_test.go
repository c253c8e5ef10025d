package blob

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "user_1/abc.png", []byte{0x89, 0x50}, "image/png"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, contentType, err := s.Get(ctx, "user_1/abc.png")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("contentType = %q, want image/png", contentType)
	}
	if len(data) != 2 || data[0] != 0x89 {
		t.Fatalf("unexpected payload: %v", data)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()
	_, _, err := s.Get(context.Background(), "user_1/nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreCopiesPayload(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	payload := []byte{1, 2, 3}
	if err := s.Put(ctx, "k", payload, "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	payload[0] = 99

	data, _, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data[0] != 1 {
		t.Fatal("stored payload aliased the caller's slice")
	}
	data[1] = 99
	again, _, _ := s.Get(ctx, "k")
	if again[1] != 2 {
		t.Fatal("returned payload aliased the stored slice")
	}
}

func TestMemoryStoreRejectsEmptyKey(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Put(context.Background(), "  ", []byte("x"), ""); err == nil {
		t.Fatal("expected error for blank key")
	}
}

func TestMemoryStoreURL(t *testing.T) {
	s := NewMemoryStore()
	u, err := s.URL(context.Background(), "user_1/abc.png")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if u != "memory://user_1/abc.png" {
		t.Fatalf("URL = %q", u)
	}
}
