package extract

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"structify/internal/asset"
	"structify/internal/blob"
	"structify/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var pngBytes = []byte("\x89PNG\r\n\x1a\nfakepixels")

type serviceFixture struct {
	svc     *Service
	reg     *asset.Registry
	gateway *llm.Fake
	repo    *MemoryCacheRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := NewMemoryCacheRepository()
	cache, err := NewCache(repo, 16, testLogger())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	reg := asset.NewRegistry(asset.NewMemoryRepository(), blob.NewMemoryStore(), testLogger())
	gateway := &llm.Fake{Reply: llm.RawObject{"title": "Dune", "year": json.Number("1965")}}
	return &serviceFixture{
		svc:     NewService(reg, gateway, cache, testLogger()),
		reg:     reg,
		gateway: gateway,
		repo:    repo,
	}
}

func (f *serviceFixture) upload(t *testing.T, owner string) *asset.Asset {
	t.Helper()
	a, _, err := f.reg.Store(context.Background(), asset.StoreInput{
		OwnerID:      owner,
		Data:         pngBytes,
		ContentType:  "image/png",
		OriginalName: "cover.png",
	})
	if err != nil {
		t.Fatalf("upload for %s: %v", owner, err)
	}
	return a
}

var bookFields = []FieldSpec{
	{Name: "title", Kind: KindString},
	{Name: "year", Kind: KindNumber},
}

func TestExtractMissThenCrossOwnerHit(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	aliceAsset := f.upload(t, "alice")
	out1, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "alice",
		Prompt:  "describe the cover",
		Fields:  bookFields,
		AssetID: &aliceAsset.ID,
	})
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	if out1.FromCache {
		t.Fatal("first request served from cache")
	}
	want := map[string]any{"title": "Dune", "year": int64(1965)}
	if !reflect.DeepEqual(out1.Data, want) {
		t.Fatalf("data = %#v, want %#v", out1.Data, want)
	}
	if f.gateway.Calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", f.gateway.Calls())
	}
	if f.repo.Len() != 1 {
		t.Fatalf("persisted rows = %d, want 1", f.repo.Len())
	}

	// Bob uploads his own copy of the same bytes. His asset id differs
	// but the content digest matches, so the cache key matches too.
	bobAsset := f.upload(t, "bob")
	if bobAsset.ID == aliceAsset.ID {
		t.Fatal("owners unexpectedly share an asset record")
	}
	out2, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "bob",
		Prompt:  "describe the cover",
		Fields:  bookFields,
		AssetID: &bobAsset.ID,
	})
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if !out2.FromCache {
		t.Fatal("identical request missed the cache")
	}
	if f.gateway.Calls() != 1 {
		t.Fatalf("cache hit still called the gateway: %d calls", f.gateway.Calls())
	}
	if !reflect.DeepEqual(out2.Data, out1.Data) {
		t.Fatalf("cached data = %#v, fresh data = %#v", out2.Data, out1.Data)
	}
}

func TestExtractTextOnlyRoundtrip(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	in := ExtractInput{OwnerID: "alice", Prompt: "summarize", Fields: bookFields}
	out1, err := f.svc.Extract(ctx, in)
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	if out1.FromCache {
		t.Fatal("first request served from cache")
	}

	out2, err := f.svc.Extract(ctx, in)
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if !out2.FromCache {
		t.Fatal("repeat request missed the cache")
	}
	if f.gateway.Calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", f.gateway.Calls())
	}
}

func TestExtractFieldOrderDoesNotSplitCache(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	if _, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "alice",
		Prompt:  "p",
		Fields:  []FieldSpec{{Name: "title", Kind: KindString}, {Name: "year", Kind: KindNumber}},
	}); err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	out, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "alice",
		Prompt:  "p",
		Fields:  []FieldSpec{{Name: "year", Kind: KindNumber}, {Name: "title", Kind: KindString}},
	})
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if !out.FromCache {
		t.Fatal("reordered fields missed the cache")
	}
}

func TestExtractAssetFailuresPrecedeGateway(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	aliceAsset := f.upload(t, "alice")

	missing := aliceAsset.ID + 100
	_, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "alice", Prompt: "p", Fields: bookFields, AssetID: &missing,
	})
	if !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("missing asset: got %v, want ErrNotFound", err)
	}

	_, err = f.svc.Extract(ctx, ExtractInput{
		OwnerID: "mallory", Prompt: "p", Fields: bookFields, AssetID: &aliceAsset.ID,
	})
	if !errors.Is(err, asset.ErrForbidden) {
		t.Fatalf("foreign asset: got %v, want ErrForbidden", err)
	}

	if f.gateway.Calls() != 0 {
		t.Fatalf("gateway called %d times before asset checks passed", f.gateway.Calls())
	}
}

func TestExtractInvalidFieldsRejected(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	_, err := f.svc.Extract(ctx, ExtractInput{
		OwnerID: "alice",
		Prompt:  "p",
		Fields: []FieldSpec{
			{Name: "a", Kind: KindString},
			{Name: "a", Kind: KindNumber},
		},
	})
	if !errors.Is(err, ErrInvalidSchema) {
		t.Fatalf("got %v, want ErrInvalidSchema", err)
	}
	if f.gateway.Calls() != 0 {
		t.Fatalf("gateway calls = %d, want 0", f.gateway.Calls())
	}
	if f.repo.Len() != 0 {
		t.Fatalf("persisted rows = %d, want 0", f.repo.Len())
	}
}

func TestExtractGatewayFailureNotPersisted(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	f.gateway.Err = llm.ErrUnavailable

	in := ExtractInput{OwnerID: "alice", Prompt: "p", Fields: bookFields}
	if _, err := f.svc.Extract(ctx, in); !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if f.repo.Len() != 0 {
		t.Fatalf("failed call persisted %d rows", f.repo.Len())
	}

	// Recovery: nothing poisoned the cache.
	f.gateway.Err = nil
	out, err := f.svc.Extract(ctx, in)
	if err != nil {
		t.Fatalf("Extract after recovery: %v", err)
	}
	if out.FromCache {
		t.Fatal("failed attempt left a cache entry")
	}
}

func TestExtractValidationFailureNotPersisted(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	f.gateway.Reply = llm.RawObject{"title": "Dune"}

	_, err := f.svc.Extract(ctx, ExtractInput{OwnerID: "alice", Prompt: "p", Fields: bookFields})
	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if mf.Field != "year" {
		t.Fatalf("missing field = %q, want year", mf.Field)
	}
	if f.repo.Len() != 0 {
		t.Fatalf("invalid output persisted %d rows", f.repo.Len())
	}
}

func TestExtractCorruptCacheRowRecomputes(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	key, err := KeyFor("p", bookFields, "")
	if err != nil {
		t.Fatalf("KeyFor: %v", err)
	}
	if _, err := f.repo.Append(ctx, &Record{CacheKey: key, Result: json.RawMessage(`{"broken`)}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	out, err := f.svc.Extract(ctx, ExtractInput{OwnerID: "alice", Prompt: "p", Fields: bookFields})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.FromCache {
		t.Fatal("unreadable row served as a cache hit")
	}
	if f.gateway.Calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", f.gateway.Calls())
	}
	if f.repo.Len() != 2 {
		t.Fatalf("rows = %d, want corrupt row plus fresh row", f.repo.Len())
	}
}

func TestExtractConcurrentFirstRequests(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	in := ExtractInput{OwnerID: "alice", Prompt: "p", Fields: bookFields}

	const n = 8
	var wg sync.WaitGroup
	results := make([]*ExtractOutput, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.svc.Extract(ctx, in)
		}(i)
	}
	wg.Wait()

	want := map[string]any{"title": "Dune", "year": int64(1965)}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("request %d: %v", i, errs[i])
		}
		if !reflect.DeepEqual(results[i].Data, want) {
			t.Fatalf("request %d data = %#v", i, results[i].Data)
		}
	}
	// Racing first requests may each call the gateway and double-store;
	// later reads still resolve to one newest row.
	if f.repo.Len() < 1 || f.gateway.Calls() < 1 {
		t.Fatal("no request reached the gateway")
	}
	out, err := f.svc.Extract(ctx, in)
	if err != nil {
		t.Fatalf("follow-up Extract: %v", err)
	}
	if !out.FromCache {
		t.Fatal("follow-up request missed the cache")
	}
}
