// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: structify/v1/structify.proto

package structifyv1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	http "net/http"
	strings "strings"
	v1 "structify/gen/go/structify/v1"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// AssetServiceName is the fully-qualified name of the AssetService service.
	AssetServiceName = "structify.v1.AssetService"
	// ExtractionServiceName is the fully-qualified name of the ExtractionService service.
	ExtractionServiceName = "structify.v1.ExtractionService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// AssetServiceUploadAssetProcedure is the fully-qualified name of the AssetService's UploadAsset
	// RPC.
	AssetServiceUploadAssetProcedure = "/structify.v1.AssetService/UploadAsset"
	// AssetServiceGetAssetProcedure is the fully-qualified name of the AssetService's GetAsset RPC.
	AssetServiceGetAssetProcedure = "/structify.v1.AssetService/GetAsset"
	// ExtractionServiceExtractProcedure is the fully-qualified name of the ExtractionService's Extract
	// RPC.
	ExtractionServiceExtractProcedure = "/structify.v1.ExtractionService/Extract"
)

// AssetServiceClient is a client for the structify.v1.AssetService service.
type AssetServiceClient interface {
	UploadAsset(context.Context, *connect.Request[v1.UploadAssetRequest]) (*connect.Response[v1.UploadAssetResponse], error)
	GetAsset(context.Context, *connect.Request[v1.GetAssetRequest]) (*connect.Response[v1.GetAssetResponse], error)
}

// NewAssetServiceClient constructs a client for the structify.v1.AssetService service. By default,
// it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and
// sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC()
// or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewAssetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AssetServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	assetServiceMethods := v1.File_structify_v1_structify_proto.Services().ByName("AssetService").Methods()
	return &assetServiceClient{
		uploadAsset: connect.NewClient[v1.UploadAssetRequest, v1.UploadAssetResponse](
			httpClient,
			baseURL+AssetServiceUploadAssetProcedure,
			connect.WithSchema(assetServiceMethods.ByName("UploadAsset")),
			connect.WithClientOptions(opts...),
		),
		getAsset: connect.NewClient[v1.GetAssetRequest, v1.GetAssetResponse](
			httpClient,
			baseURL+AssetServiceGetAssetProcedure,
			connect.WithSchema(assetServiceMethods.ByName("GetAsset")),
			connect.WithClientOptions(opts...),
		),
	}
}

// assetServiceClient implements AssetServiceClient.
type assetServiceClient struct {
	uploadAsset *connect.Client[v1.UploadAssetRequest, v1.UploadAssetResponse]
	getAsset    *connect.Client[v1.GetAssetRequest, v1.GetAssetResponse]
}

// UploadAsset calls structify.v1.AssetService.UploadAsset.
func (c *assetServiceClient) UploadAsset(ctx context.Context, req *connect.Request[v1.UploadAssetRequest]) (*connect.Response[v1.UploadAssetResponse], error) {
	return c.uploadAsset.CallUnary(ctx, req)
}

// GetAsset calls structify.v1.AssetService.GetAsset.
func (c *assetServiceClient) GetAsset(ctx context.Context, req *connect.Request[v1.GetAssetRequest]) (*connect.Response[v1.GetAssetResponse], error) {
	return c.getAsset.CallUnary(ctx, req)
}

// AssetServiceHandler is an implementation of the structify.v1.AssetService service.
type AssetServiceHandler interface {
	UploadAsset(context.Context, *connect.Request[v1.UploadAssetRequest]) (*connect.Response[v1.UploadAssetResponse], error)
	GetAsset(context.Context, *connect.Request[v1.GetAssetRequest]) (*connect.Response[v1.GetAssetResponse], error)
}

// NewAssetServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewAssetServiceHandler(svc AssetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	assetServiceMethods := v1.File_structify_v1_structify_proto.Services().ByName("AssetService").Methods()
	assetServiceUploadAssetHandler := connect.NewUnaryHandler(
		AssetServiceUploadAssetProcedure,
		svc.UploadAsset,
		connect.WithSchema(assetServiceMethods.ByName("UploadAsset")),
		connect.WithHandlerOptions(opts...),
	)
	assetServiceGetAssetHandler := connect.NewUnaryHandler(
		AssetServiceGetAssetProcedure,
		svc.GetAsset,
		connect.WithSchema(assetServiceMethods.ByName("GetAsset")),
		connect.WithHandlerOptions(opts...),
	)
	return "/structify.v1.AssetService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AssetServiceUploadAssetProcedure:
			assetServiceUploadAssetHandler.ServeHTTP(w, r)
		case AssetServiceGetAssetProcedure:
			assetServiceGetAssetHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAssetServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAssetServiceHandler struct{}

func (UnimplementedAssetServiceHandler) UploadAsset(context.Context, *connect.Request[v1.UploadAssetRequest]) (*connect.Response[v1.UploadAssetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("structify.v1.AssetService.UploadAsset is not implemented"))
}

func (UnimplementedAssetServiceHandler) GetAsset(context.Context, *connect.Request[v1.GetAssetRequest]) (*connect.Response[v1.GetAssetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("structify.v1.AssetService.GetAsset is not implemented"))
}

// ExtractionServiceClient is a client for the structify.v1.ExtractionService service.
type ExtractionServiceClient interface {
	Extract(context.Context, *connect.Request[v1.ExtractRequest]) (*connect.Response[v1.ExtractResponse], error)
}

// NewExtractionServiceClient constructs a client for the structify.v1.ExtractionService service. By
// default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses,
// and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewExtractionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExtractionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	extractionServiceMethods := v1.File_structify_v1_structify_proto.Services().ByName("ExtractionService").Methods()
	return &extractionServiceClient{
		extract: connect.NewClient[v1.ExtractRequest, v1.ExtractResponse](
			httpClient,
			baseURL+ExtractionServiceExtractProcedure,
			connect.WithSchema(extractionServiceMethods.ByName("Extract")),
			connect.WithClientOptions(opts...),
		),
	}
}

// extractionServiceClient implements ExtractionServiceClient.
type extractionServiceClient struct {
	extract *connect.Client[v1.ExtractRequest, v1.ExtractResponse]
}

// Extract calls structify.v1.ExtractionService.Extract.
func (c *extractionServiceClient) Extract(ctx context.Context, req *connect.Request[v1.ExtractRequest]) (*connect.Response[v1.ExtractResponse], error) {
	return c.extract.CallUnary(ctx, req)
}

// ExtractionServiceHandler is an implementation of the structify.v1.ExtractionService service.
type ExtractionServiceHandler interface {
	Extract(context.Context, *connect.Request[v1.ExtractRequest]) (*connect.Response[v1.ExtractResponse], error)
}

// NewExtractionServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewExtractionServiceHandler(svc ExtractionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	extractionServiceMethods := v1.File_structify_v1_structify_proto.Services().ByName("ExtractionService").Methods()
	extractionServiceExtractHandler := connect.NewUnaryHandler(
		ExtractionServiceExtractProcedure,
		svc.Extract,
		connect.WithSchema(extractionServiceMethods.ByName("Extract")),
		connect.WithHandlerOptions(opts...),
	)
	return "/structify.v1.ExtractionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExtractionServiceExtractProcedure:
			extractionServiceExtractHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExtractionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExtractionServiceHandler struct{}

func (UnimplementedExtractionServiceHandler) Extract(context.Context, *connect.Request[v1.ExtractRequest]) (*connect.Response[v1.ExtractResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("structify.v1.ExtractionService.Extract is not implemented"))
}
