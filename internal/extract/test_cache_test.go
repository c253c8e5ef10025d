package extract

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestKeyForFieldOrderInvariant(t *testing.T) {
	a, err := KeyFor("extract these", []FieldSpec{
		{Name: "year", Kind: KindNumber},
		{Name: "title", Kind: KindString},
	}, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	b, err := KeyFor("extract these", []FieldSpec{
		{Name: "title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	}, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	if a != b {
		t.Fatalf("field order changed the key: %s vs %s", a, b)
	}
}

func TestKeyForNormalizesSpelling(t *testing.T) {
	a, err := KeyFor("p", []FieldSpec{{Name: "year", Kind: KindNumber}}, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	b, err := KeyFor("p", []FieldSpec{{Name: " year ", Kind: FieldKind("NUMBER")}}, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	if a != b {
		t.Fatalf("spelling variants changed the key: %s vs %s", a, b)
	}
}

func TestKeyForSeparatesRequests(t *testing.T) {
	base := []FieldSpec{{Name: "title", Kind: KindString}}
	variants := []struct {
		name   string
		prompt string
		fields []FieldSpec
		digest string
	}{
		{"base", "p", base, ""},
		{"other prompt", "q", base, ""},
		{"other field name", "p", []FieldSpec{{Name: "name", Kind: KindString}}, ""},
		{"other kind", "p", []FieldSpec{{Name: "title", Kind: KindNumber}}, ""},
		{"with digest", "p", base, "abc123"},
		{"other digest", "p", base, "def456"},
	}
	seen := map[string]string{}
	for _, v := range variants {
		key, err := KeyFor(v.prompt, v.fields, v.digest)
		if err != nil {
			t.Fatalf("KeyFor(%s): %v", v.name, err)
		}
		if prev, dup := seen[key]; dup {
			t.Fatalf("variants %q and %q collided on %s", prev, v.name, key)
		}
		seen[key] = v.name
	}
}

func TestKeyForShape(t *testing.T) {
	key, err := KeyFor("p", []FieldSpec{{Name: "a", Kind: KindString}}, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	if len(key) != 64 {
		t.Fatalf("key length = %d, want 64", len(key))
	}
	if _, err := hex.DecodeString(key); err != nil {
		t.Fatalf("key is not hex: %v", err)
	}
}

type countingRepo struct {
	inner CacheRepository

	mu          sync.Mutex
	appends     int
	latestCalls int
}

func (c *countingRepo) Append(ctx context.Context, rec *Record) (*Record, error) {
	c.mu.Lock()
	c.appends++
	c.mu.Unlock()
	return c.inner.Append(ctx, rec)
}

func (c *countingRepo) LatestByKey(ctx context.Context, key string) (*Record, error) {
	c.mu.Lock()
	c.latestCalls++
	c.mu.Unlock()
	return c.inner.LatestByKey(ctx, key)
}

func (c *countingRepo) counts() (appends, latest int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appends, c.latestCalls
}

func TestCacheMissThenStoreThenHit(t *testing.T) {
	ctx := context.Background()
	cache, err := NewCache(NewMemoryCacheRepository(), 8, testLogger())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	key, _ := KeyFor("p", []FieldSpec{{Name: "a", Kind: KindString}}, "")
	if _, err := cache.Lookup(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	persisted, err := cache.Store(ctx, &Record{
		CacheKey: key,
		OwnerID:  "alice",
		Result:   json.RawMessage(`{"a":"x"}`),
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if persisted.ID == 0 || persisted.CreatedAt.IsZero() {
		t.Fatalf("persisted record not stamped: %+v", persisted)
	}

	rec, err := cache.Lookup(ctx, key)
	if err != nil {
		t.Fatalf("Lookup after store: %v", err)
	}
	if rec.ID != persisted.ID {
		t.Fatalf("lookup returned record %d, want %d", rec.ID, persisted.ID)
	}

	m := cache.Metrics()
	if m.Hits != 1 || m.Misses != 1 {
		t.Fatalf("metrics = %+v, want 1 hit / 1 miss", m)
	}
}

func TestCacheFrontAvoidsRepository(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{inner: NewMemoryCacheRepository()}
	cache, err := NewCache(repo, 8, testLogger())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	key, _ := KeyFor("p", []FieldSpec{{Name: "a", Kind: KindString}}, "")
	if _, err := cache.Store(ctx, &Record{CacheKey: key, Result: json.RawMessage(`{"a":"x"}`)}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := cache.Lookup(ctx, key); err != nil {
			t.Fatalf("Lookup %d: %v", i, err)
		}
	}
	if _, latest := repo.counts(); latest != 0 {
		t.Fatalf("front cache bypassed: %d durable reads", latest)
	}
}

func TestCacheFallsBackToDurable(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryCacheRepository()
	repo := &countingRepo{inner: mem}
	cache, err := NewCache(repo, 8, testLogger())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	key, _ := KeyFor("p", []FieldSpec{{Name: "a", Kind: KindString}}, "")
	// Row written by another process: the front cache has never seen it.
	if _, err := mem.Append(ctx, &Record{CacheKey: key, Result: json.RawMessage(`{"a":"x"}`)}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, err := cache.Lookup(ctx, key); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := cache.Lookup(ctx, key); err != nil {
		t.Fatalf("second Lookup: %v", err)
	}
	if _, latest := repo.counts(); latest != 1 {
		t.Fatalf("durable reads = %d, want 1 (front warmed on first hit)", latest)
	}
}

func TestCacheNewestRowWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()

	key, _ := KeyFor("p", []FieldSpec{{Name: "a", Kind: KindString}}, "")
	if _, err := repo.Append(ctx, &Record{CacheKey: key, Result: json.RawMessage(`{"a":"old"}`)}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := repo.Append(ctx, &Record{CacheKey: key, Result: json.RawMessage(`{"a":"new"}`)}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rec, err := repo.LatestByKey(ctx, key)
	if err != nil {
		t.Fatalf("LatestByKey: %v", err)
	}
	if string(rec.Result) != `{"a":"new"}` {
		t.Fatalf("latest result = %s, want the second row", rec.Result)
	}
	if repo.Len() != 2 {
		t.Fatalf("rows = %d, want 2 (append-only)", repo.Len())
	}
}

func TestCacheRequiresRepository(t *testing.T) {
	if _, err := NewCache(nil, 8, testLogger()); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestEncodeDecodeResultKeepsTypes(t *testing.T) {
	in := map[string]any{
		"count": int64(7),
		"score": 2.5,
		"title": "Dune",
	}
	raw, err := EncodeResult(in)
	if err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	out, err := DecodeResult(raw)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("roundtrip changed values: %#v vs %#v", in, out)
	}
}

func TestDecodeResultRejectsGarbage(t *testing.T) {
	cases := []string{`{"broken`, `null`, `[1,2]`, `"scalar"`}
	for _, raw := range cases {
		if _, err := DecodeResult(json.RawMessage(raw)); err == nil {
			t.Fatalf("DecodeResult(%s) succeeded, want error", raw)
		}
	}
}
