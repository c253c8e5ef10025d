package blob

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeOrigin struct {
	mu       sync.Mutex
	getCalls int
	putCalls int
	urlCalls int
	objects  map[string]cachedBlob
	failGet  error
}

func newFakeOrigin() *fakeOrigin {
	return &fakeOrigin{objects: make(map[string]cachedBlob)}
}

func (f *fakeOrigin) Put(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	f.objects[key] = cachedBlob{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (f *fakeOrigin) Get(_ context.Context, key string) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.failGet != nil {
		return nil, "", f.failGet
	}
	obj, ok := f.objects[key]
	if !ok {
		return nil, "", ErrNotFound
	}
	return append([]byte(nil), obj.data...), obj.contentType, nil
}

func (f *fakeOrigin) URL(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlCalls++
	return fmt.Sprintf("https://origin/%s?n=%d", key, f.urlCalls), nil
}

func (f *fakeOrigin) counts() (get, put, url int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls, f.putCalls, f.urlCalls
}

func TestCachedStoreGetHitsCacheOnSecondRead(t *testing.T) {
	origin := newFakeOrigin()
	store := NewCachedStore(origin, DefaultCacheConfig())
	ctx := context.Background()

	if err := origin.Put(ctx, "k", []byte("payload"), "image/png"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for i := 0; i < 3; i++ {
		data, contentType, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get #%d: %v", i, err)
		}
		if string(data) != "payload" || contentType != "image/png" {
			t.Fatalf("Get #%d returned %q/%q", i, data, contentType)
		}
	}

	get, _, _ := origin.counts()
	if get != 1 {
		t.Fatalf("origin.Get called %d times, want 1", get)
	}
	snap := store.Metrics()
	if snap.BlobHits != 2 || snap.BlobMisses != 1 {
		t.Fatalf("metrics = %+v, want 2 hits / 1 miss", snap)
	}
}

func TestCachedStorePutWritesThroughAndWarmsCache(t *testing.T) {
	origin := newFakeOrigin()
	store := NewCachedStore(origin, DefaultCacheConfig())
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte("abc"), "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, contentType, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "abc" || contentType != "image/jpeg" {
		t.Fatalf("Get returned %q/%q", data, contentType)
	}

	get, put, _ := origin.counts()
	if put != 1 {
		t.Fatalf("origin.Put called %d times, want 1", put)
	}
	if get != 0 {
		t.Fatalf("origin.Get called %d times, want 0 (cache warmed by Put)", get)
	}
}

func TestCachedStoreOriginErrorPropagates(t *testing.T) {
	origin := newFakeOrigin()
	origin.failGet = errors.New("origin down")
	store := NewCachedStore(origin, DefaultCacheConfig())

	_, _, err := store.Get(context.Background(), "k")
	if err == nil || err.Error() != "origin down" {
		t.Fatalf("err = %v, want origin down", err)
	}
	snap := store.Metrics()
	if snap.OriginReadErr != 1 {
		t.Fatalf("OriginReadErr = %d, want 1", snap.OriginReadErr)
	}
}

func TestCachedStoreNotFoundIsNotCached(t *testing.T) {
	origin := newFakeOrigin()
	store := NewCachedStore(origin, DefaultCacheConfig())
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := origin.Put(ctx, "k", []byte("late"), ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	data, _, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after late write: %v", err)
	}
	if string(data) != "late" {
		t.Fatalf("got %q, want late", data)
	}
}

func TestCachedStoreURLReusedUntilInvalidated(t *testing.T) {
	origin := newFakeOrigin()
	store := NewCachedStore(origin, CacheConfig{URLTTL: time.Minute})
	ctx := context.Background()

	first, err := store.URL(ctx, "k")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	second, err := store.URL(ctx, "k")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if first != second {
		t.Fatalf("cached URL changed: %q vs %q", first, second)
	}

	if err := store.Put(ctx, "k", []byte("new"), ""); err != nil {
		t.Fatalf("Put: %v", err)
	}
	third, err := store.URL(ctx, "k")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if third == first {
		t.Fatal("Put did not invalidate the cached URL")
	}
}
