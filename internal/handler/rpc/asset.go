package rpc

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	structifyv1 "structify/gen/go/structify/v1"
	"structify/internal/asset"
)

type AssetHandler struct {
	registry *asset.Registry
}

func NewAssetHandler(registry *asset.Registry) *AssetHandler {
	return &AssetHandler{registry: registry}
}

func (h *AssetHandler) UploadAsset(ctx context.Context, req *connect.Request[structifyv1.UploadAssetRequest]) (*connect.Response[structifyv1.UploadAssetResponse], error) {
	ownerID := strings.TrimSpace(req.Msg.GetOwnerId())
	if ownerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("owner_id is required"))
	}

	a, deduplicated, err := h.registry.Store(ctx, asset.StoreInput{
		OwnerID:      ownerID,
		Data:         req.Msg.GetContent(),
		ContentType:  req.Msg.GetContentType(),
		OriginalName: req.Msg.GetFilename(),
	})
	if err != nil {
		return nil, toConnectErr(err)
	}

	return connect.NewResponse(&structifyv1.UploadAssetResponse{
		Asset:        toProtoAsset(a),
		Deduplicated: deduplicated,
	}), nil
}

func (h *AssetHandler) GetAsset(ctx context.Context, req *connect.Request[structifyv1.GetAssetRequest]) (*connect.Response[structifyv1.GetAssetResponse], error) {
	ownerID := strings.TrimSpace(req.Msg.GetOwnerId())
	if ownerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("owner_id is required"))
	}
	if req.Msg.GetAssetId() <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("asset_id is required"))
	}

	a, err := h.registry.Get(ctx, ownerID, int(req.Msg.GetAssetId()))
	if err != nil {
		return nil, toConnectErr(err)
	}

	return connect.NewResponse(&structifyv1.GetAssetResponse{Asset: toProtoAsset(a)}), nil
}

func toProtoAsset(a *asset.Asset) *structifyv1.Asset {
	if a == nil {
		return nil
	}
	return &structifyv1.Asset{
		Id:            int64(a.ID),
		Url:           a.URL,
		ContentDigest: a.ContentDigest,
		CreatedAt:     timestamppb.New(a.CreatedAt),
	}
}
