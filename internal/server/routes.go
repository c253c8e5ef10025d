package server

import (
	"net/http"

	"structify/gen/go/structify/v1/structifyv1connect"
	"structify/internal/handler/rpc"
	"structify/internal/middleware"
)

func NewMux(assetHandler *rpc.AssetHandler, extractionHandler *rpc.ExtractionHandler) http.Handler {
	mux := http.NewServeMux()

	// RPC handlers
	mux.Handle(structifyv1connect.NewAssetServiceHandler(assetHandler))
	mux.Handle(structifyv1connect.NewExtractionServiceHandler(extractionHandler))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return middleware.CORS(mux)
}
