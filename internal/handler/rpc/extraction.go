package rpc

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	structifyv1 "structify/gen/go/structify/v1"
	"structify/internal/extract"
)

type ExtractionHandler struct {
	svc *extract.Service
}

func NewExtractionHandler(svc *extract.Service) *ExtractionHandler {
	return &ExtractionHandler{svc: svc}
}

func (h *ExtractionHandler) Extract(ctx context.Context, req *connect.Request[structifyv1.ExtractRequest]) (*connect.Response[structifyv1.ExtractResponse], error) {
	ownerID := strings.TrimSpace(req.Msg.GetOwnerId())
	if ownerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("owner_id is required"))
	}
	prompt := strings.TrimSpace(req.Msg.GetPrompt())
	if prompt == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("prompt is required"))
	}

	fields := make([]extract.FieldSpec, 0, len(req.Msg.GetFields()))
	for _, f := range req.Msg.GetFields() {
		kind, err := extract.ParseFieldKind(f.GetKind())
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("field %q: %w", strings.TrimSpace(f.GetName()), err))
		}
		fields = append(fields, extract.FieldSpec{Name: f.GetName(), Kind: kind})
	}

	in := extract.ExtractInput{OwnerID: ownerID, Prompt: prompt, Fields: fields}
	if req.Msg.AssetId != nil {
		id := int(req.Msg.GetAssetId())
		in.AssetID = &id
	}

	out, err := h.svc.Extract(ctx, in)
	if err != nil {
		return nil, toConnectErr(err)
	}

	data, err := structpb.NewStruct(out.Data)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("encode result: %w", err))
	}
	return connect.NewResponse(&structifyv1.ExtractResponse{
		Data:      data,
		FromCache: out.FromCache,
	}), nil
}
