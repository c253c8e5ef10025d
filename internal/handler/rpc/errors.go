package rpc

import (
	"errors"

	"connectrpc.com/connect"

	"structify/internal/asset"
	"structify/internal/extract"
	"structify/internal/llm"
)

// toConnectErr maps service failures onto Connect codes. Anything not
// named here is an internal fault: corrupt references, empty or
// malformed model output, validation failures.
func toConnectErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return err
	}
	switch {
	case errors.Is(err, asset.ErrInvalidAsset), errors.Is(err, extract.ErrInvalidSchema):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, asset.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, asset.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, asset.ErrStorageUnavailable), errors.Is(err, llm.ErrUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
