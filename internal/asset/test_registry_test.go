package asset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"structify/internal/blob"
	"structify/internal/digest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingBlobStore struct {
	blob.Store
	mu   sync.Mutex
	puts int
}

func (c *countingBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	c.mu.Lock()
	c.puts++
	c.mu.Unlock()
	return c.Store.Put(ctx, key, data, contentType)
}

func (c *countingBlobStore) putCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts
}

func newTestRegistry() (*Registry, *MemoryRepository, *countingBlobStore) {
	repo := NewMemoryRepository()
	blobs := &countingBlobStore{Store: blob.NewMemoryStore()}
	return NewRegistry(repo, blobs, testLogger()), repo, blobs
}

func TestStoreRejectsInvalidPayloads(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx := context.Background()

	cases := []struct {
		name string
		in   StoreInput
	}{
		{"empty payload", StoreInput{OwnerID: "7", Data: nil, ContentType: "image/png"}},
		{"non-image type", StoreInput{OwnerID: "7", Data: []byte("x"), ContentType: "application/pdf"}},
		{"blank owner", StoreInput{OwnerID: "  ", Data: []byte("x"), ContentType: "image/png"}},
	}
	for _, tc := range cases {
		_, _, err := reg.Store(ctx, tc.in)
		if !errors.Is(err, ErrInvalidAsset) {
			t.Fatalf("%s: err = %v, want ErrInvalidAsset", tc.name, err)
		}
	}
}

func TestStoreDeduplicatesPerOwner(t *testing.T) {
	reg, _, blobs := newTestRegistry()
	ctx := context.Background()
	payload := []byte("same bytes")

	first, dedup, err := reg.Store(ctx, StoreInput{OwnerID: "7", Data: payload, ContentType: "image/png", OriginalName: "a.png"})
	if err != nil {
		t.Fatalf("first Store: %v", err)
	}
	if dedup {
		t.Fatal("first upload reported deduplicated")
	}

	second, dedup, err := reg.Store(ctx, StoreInput{OwnerID: "7", Data: payload, ContentType: "image/png", OriginalName: "b.png"})
	if err != nil {
		t.Fatalf("second Store: %v", err)
	}
	if !dedup {
		t.Fatal("second upload of identical bytes not deduplicated")
	}
	if second.ID != first.ID || second.StorageKey != first.StorageKey {
		t.Fatalf("dedup returned a different asset: %+v vs %+v", second, first)
	}
	if got := blobs.putCount(); got != 1 {
		t.Fatalf("blob Put called %d times, want 1", got)
	}
}

func TestStoreSameBytesDifferentOwners(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx := context.Background()
	payload := []byte("shared bytes")

	a, _, err := reg.Store(ctx, StoreInput{OwnerID: "1", Data: payload, ContentType: "image/png"})
	if err != nil {
		t.Fatalf("owner 1 Store: %v", err)
	}
	b, dedup, err := reg.Store(ctx, StoreInput{OwnerID: "2", Data: payload, ContentType: "image/png"})
	if err != nil {
		t.Fatalf("owner 2 Store: %v", err)
	}
	if dedup {
		t.Fatal("cross-owner upload reported deduplicated")
	}
	if a.ID == b.ID {
		t.Fatal("distinct owners shared one asset record")
	}
	if a.ContentDigest != b.ContentDigest {
		t.Fatal("same bytes produced different digests")
	}
}

// raceRepo simulates losing the unique-index race: the pre-write lookup
// misses, Create collides, the re-read sees the winner.
type raceRepo struct {
	winner  *Asset
	lookups int
}

func (r *raceRepo) Create(context.Context, *Asset) (*Asset, error) {
	return nil, ErrDuplicate
}

func (r *raceRepo) ByID(context.Context, int) (*Asset, error) {
	return nil, ErrNotFound
}

func (r *raceRepo) ByOwnerAndDigest(context.Context, string, string) (*Asset, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, ErrNotFound
	}
	return r.winner, nil
}

func TestStoreLosingWriterReturnsWinner(t *testing.T) {
	payload := []byte("contested")
	winner := &Asset{ID: 42, OwnerID: "7", StorageKey: "user_7/deadbeef", ContentDigest: digest.Bytes(payload)}
	reg := NewRegistry(&raceRepo{winner: winner}, blob.NewMemoryStore(), testLogger())

	got, dedup, err := reg.Store(context.Background(), StoreInput{OwnerID: "7", Data: payload, ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !dedup {
		t.Fatal("losing writer did not report deduplicated")
	}
	if got.ID != winner.ID {
		t.Fatalf("losing writer returned asset %d, want winner %d", got.ID, winner.ID)
	}
}

func TestStoreConcurrentIdenticalUploads(t *testing.T) {
	reg, _, _ := newTestRegistry()
	payload := []byte("concurrent bytes")

	const writers = 8
	results := make([]*Asset, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = reg.Store(context.Background(), StoreInput{
				OwnerID: "7", Data: payload, ContentType: "image/png",
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		if errs[i] != nil {
			t.Fatalf("writer %d: %v", i, errs[i])
		}
		if results[i].ID != results[0].ID {
			t.Fatalf("writer %d got asset %d, writer 0 got %d", i, results[i].ID, results[0].ID)
		}
	}
}

func TestResolveAuthorization(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx := context.Background()

	stored, _, err := reg.Store(ctx, StoreInput{OwnerID: "7", Data: []byte("owned"), ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if _, err := reg.Resolve(ctx, "7", stored.ID); err != nil {
		t.Fatalf("owner Resolve: %v", err)
	}
	if _, err := reg.Resolve(ctx, "8", stored.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign Resolve err = %v, want ErrForbidden", err)
	}
	if _, err := reg.Resolve(ctx, "7", stored.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing Resolve err = %v, want ErrNotFound", err)
	}
}

func TestLoadBytesRoundTrip(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx := context.Background()
	payload := []byte{0xff, 0xd8, 0xff}

	stored, _, err := reg.Store(ctx, StoreInput{OwnerID: "7", Data: payload, ContentType: "image/jpeg"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	data, contentType, err := reg.LoadBytes(ctx, stored)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if string(data) != string(payload) || contentType != "image/jpeg" {
		t.Fatalf("LoadBytes returned %v/%q", data, contentType)
	}
}

func TestLoadBytesCorruptReference(t *testing.T) {
	reg, _, _ := newTestRegistry()
	ctx := context.Background()

	if _, _, err := reg.LoadBytes(ctx, &Asset{StorageKey: ""}); !errors.Is(err, ErrCorruptReference) {
		t.Fatalf("blank key err = %v, want ErrCorruptReference", err)
	}
	// record points at an object that was never written
	if _, _, err := reg.LoadBytes(ctx, &Asset{StorageKey: "user_7/gone"}); !errors.Is(err, ErrCorruptReference) {
		t.Fatalf("dangling key err = %v, want ErrCorruptReference", err)
	}
}

type downBlobStore struct{}

func (downBlobStore) Put(context.Context, string, []byte, string) error {
	return errors.New("backend down")
}

func (downBlobStore) Get(context.Context, string) ([]byte, string, error) {
	return nil, "", errors.New("backend down")
}

func (downBlobStore) URL(context.Context, string) (string, error) {
	return "", errors.New("backend down")
}

func TestLoadBytesStorageUnavailable(t *testing.T) {
	reg := NewRegistry(NewMemoryRepository(), downBlobStore{}, testLogger())
	_, _, err := reg.LoadBytes(context.Background(), &Asset{StorageKey: "user_7/abc"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestStorageKeyShape(t *testing.T) {
	d := digest.Bytes([]byte("x"))
	key := storageKey("7", d, "photo.PNG")
	if !strings.HasPrefix(key, "user_7/"+d+"_") {
		t.Fatalf("key %q missing owner/digest prefix", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("key %q lost the lowercased extension", key)
	}

	if key2 := storageKey("7", d, "weird.name/../x.sh?"); strings.HasSuffix(key2, "?") {
		t.Fatalf("unsafe extension survived: %q", key2)
	}
	if storageKey("7", d, "a.png") == storageKey("7", d, "a.png") {
		t.Fatal("storage keys must differ per call")
	}
}

func TestMemoryRepositoryDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Asset{OwnerID: "1", StorageKey: "k1", ContentDigest: "d"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := repo.Create(ctx, &Asset{OwnerID: "1", StorageKey: "k2", ContentDigest: "d"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second Create err = %v, want ErrDuplicate", err)
	}
	// same digest, different owner is fine
	if _, err := repo.Create(ctx, &Asset{OwnerID: "2", StorageKey: "k3", ContentDigest: "d"}); err != nil {
		t.Fatalf("cross-owner Create: %v", err)
	}
}
