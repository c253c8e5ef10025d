package digest

import "testing"

func TestBytesKnownVectors(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"empty", nil, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello", []byte("hello"), "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}
	for _, tc := range cases {
		if got := Bytes(tc.payload); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestBytesIsDeterministic(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xfe, 0xff}
	if Bytes(payload) != Bytes(payload) {
		t.Fatal("same payload produced different digests")
	}
	if len(Bytes(payload)) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(Bytes(payload)))
	}
}

func TestCanonicalIgnoresKeyOrder(t *testing.T) {
	a := map[string]any{"prompt": "x", "fields": []any{"a", "b"}, "image_hash": ""}
	b := map[string]any{"image_hash": "", "fields": []any{"a", "b"}, "prompt": "x"}

	da, err := Canonical(a)
	if err != nil {
		t.Fatalf("Canonical(a): %v", err)
	}
	db, err := Canonical(b)
	if err != nil {
		t.Fatalf("Canonical(b): %v", err)
	}
	if da != db {
		t.Fatalf("equal structures hashed differently: %s vs %s", da, db)
	}
}

func TestCanonicalSeparatesDistinctValues(t *testing.T) {
	base := map[string]any{"prompt": "x", "image_hash": ""}
	other := map[string]any{"prompt": "y", "image_hash": ""}

	da, err := Canonical(base)
	if err != nil {
		t.Fatalf("Canonical(base): %v", err)
	}
	db, err := Canonical(other)
	if err != nil {
		t.Fatalf("Canonical(other): %v", err)
	}
	if da == db {
		t.Fatal("distinct structures produced the same digest")
	}
}

func TestCanonicalRejectsUnencodable(t *testing.T) {
	if _, err := Canonical(func() {}); err == nil {
		t.Fatal("expected error for unencodable value")
	}
}
