package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"connectrpc.com/connect"

	structifyv1 "structify/gen/go/structify/v1"
	"structify/internal/asset"
	"structify/internal/blob"
	"structify/internal/extract"
	"structify/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlers(t *testing.T) (*AssetHandler, *ExtractionHandler, *llm.Fake) {
	t.Helper()
	registry := asset.NewRegistry(asset.NewMemoryRepository(), blob.NewMemoryStore(), testLogger())
	cache, err := extract.NewCache(extract.NewMemoryCacheRepository(), 16, testLogger())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	fake := &llm.Fake{Reply: llm.RawObject{"title": "Dune", "year": json.Number("1965")}}
	svc := extract.NewService(registry, fake, cache, testLogger())
	return NewAssetHandler(registry), NewExtractionHandler(svc), fake
}

func uploadReq(owner string) *connect.Request[structifyv1.UploadAssetRequest] {
	return connect.NewRequest(&structifyv1.UploadAssetRequest{
		OwnerId:     owner,
		Filename:    "cover.png",
		ContentType: "image/png",
		Content:     []byte("\x89PNG\r\n\x1a\nfakepixels"),
	})
}

func TestUploadThenGetAsset(t *testing.T) {
	ctx := context.Background()
	assets, _, _ := newHandlers(t)

	up, err := assets.UploadAsset(ctx, uploadReq("alice"))
	if err != nil {
		t.Fatalf("UploadAsset: %v", err)
	}
	a := up.Msg.GetAsset()
	if a.GetId() <= 0 {
		t.Fatalf("asset id = %d", a.GetId())
	}
	if len(a.GetContentDigest()) != 64 {
		t.Fatalf("digest = %q", a.GetContentDigest())
	}
	if up.Msg.GetDeduplicated() {
		t.Fatal("first upload flagged as duplicate")
	}

	again, err := assets.UploadAsset(ctx, uploadReq("alice"))
	if err != nil {
		t.Fatalf("second UploadAsset: %v", err)
	}
	if !again.Msg.GetDeduplicated() {
		t.Fatal("identical re-upload not deduplicated")
	}
	if again.Msg.GetAsset().GetId() != a.GetId() {
		t.Fatalf("duplicate got new id %d, want %d", again.Msg.GetAsset().GetId(), a.GetId())
	}

	got, err := assets.GetAsset(ctx, connect.NewRequest(&structifyv1.GetAssetRequest{
		OwnerId: "alice", AssetId: a.GetId(),
	}))
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if got.Msg.GetAsset().GetContentDigest() != a.GetContentDigest() {
		t.Fatal("digest changed between upload and get")
	}

	_, err = assets.GetAsset(ctx, connect.NewRequest(&structifyv1.GetAssetRequest{
		OwnerId: "mallory", AssetId: a.GetId(),
	}))
	if connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Fatalf("foreign read: got %v, want permission_denied", err)
	}
}

func TestUploadRejections(t *testing.T) {
	ctx := context.Background()
	assets, _, _ := newHandlers(t)

	cases := []struct {
		name string
		req  *structifyv1.UploadAssetRequest
	}{
		{"missing owner", &structifyv1.UploadAssetRequest{ContentType: "image/png", Content: []byte("x")}},
		{"empty payload", &structifyv1.UploadAssetRequest{OwnerId: "alice", ContentType: "image/png"}},
		{"not an image", &structifyv1.UploadAssetRequest{OwnerId: "alice", ContentType: "text/plain", Content: []byte("x")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := assets.UploadAsset(ctx, connect.NewRequest(tc.req))
			if connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Fatalf("got %v, want invalid_argument", err)
			}
		})
	}
}

func TestExtractRPCRoundtrip(t *testing.T) {
	ctx := context.Background()
	_, extraction, fake := newHandlers(t)

	req := func() *connect.Request[structifyv1.ExtractRequest] {
		return connect.NewRequest(&structifyv1.ExtractRequest{
			OwnerId: "alice",
			Prompt:  "describe the book",
			Fields: []*structifyv1.FieldSpec{
				{Name: "title", Kind: "string"},
				{Name: "year", Kind: "number"},
			},
		})
	}

	first, err := extraction.Extract(ctx, req())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if first.Msg.GetFromCache() {
		t.Fatal("first extraction served from cache")
	}
	fields := first.Msg.GetData().GetFields()
	if got := fields["title"].GetStringValue(); got != "Dune" {
		t.Fatalf("title = %q", got)
	}
	if got := fields["year"].GetNumberValue(); got != 1965 {
		t.Fatalf("year = %v", got)
	}

	second, err := extraction.Extract(ctx, req())
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if !second.Msg.GetFromCache() {
		t.Fatal("repeat extraction missed the cache")
	}
	if fake.Calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", fake.Calls())
	}
}

func TestExtractRPCRejections(t *testing.T) {
	ctx := context.Background()
	_, extraction, _ := newHandlers(t)

	_, err := extraction.Extract(ctx, connect.NewRequest(&structifyv1.ExtractRequest{
		OwnerId: "alice",
		Prompt:  "p",
		Fields:  []*structifyv1.FieldSpec{{Name: "n", Kind: "integer"}},
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("bad kind: got %v, want invalid_argument", err)
	}

	missing := int64(999)
	_, err = extraction.Extract(ctx, connect.NewRequest(&structifyv1.ExtractRequest{
		OwnerId: "alice",
		Prompt:  "p",
		Fields:  []*structifyv1.FieldSpec{{Name: "title", Kind: "string"}},
		AssetId: &missing,
	}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("missing asset: got %v, want not_found", err)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want connect.Code
	}{
		{asset.ErrInvalidAsset, connect.CodeInvalidArgument},
		{extract.ErrInvalidSchema, connect.CodeInvalidArgument},
		{asset.ErrNotFound, connect.CodeNotFound},
		{asset.ErrForbidden, connect.CodePermissionDenied},
		{asset.ErrStorageUnavailable, connect.CodeUnavailable},
		{llm.ErrUnavailable, connect.CodeUnavailable},
		{llm.ErrMalformedOutput, connect.CodeInternal},
		{llm.ErrEmptyOutput, connect.CodeInternal},
		{asset.ErrCorruptReference, connect.CodeInternal},
		{&extract.MissingFieldError{Field: "x"}, connect.CodeInternal},
		{fmt.Errorf("wrapped: %w", asset.ErrForbidden), connect.CodePermissionDenied},
	}
	for _, tc := range cases {
		if got := connect.CodeOf(toConnectErr(tc.err)); got != tc.want {
			t.Fatalf("toConnectErr(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
	if toConnectErr(nil) != nil {
		t.Fatal("nil error mapped to non-nil")
	}
	already := connect.NewError(connect.CodeAlreadyExists, errors.New("x"))
	if got := connect.CodeOf(toConnectErr(already)); got != connect.CodeAlreadyExists {
		t.Fatalf("connect error remapped to %v", got)
	}
}
