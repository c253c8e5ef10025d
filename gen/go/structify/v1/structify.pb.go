// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: structify/v1/structify.proto

package structifyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Asset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	ContentDigest string                 `protobuf:"bytes,3,opt,name=content_digest,json=contentDigest,proto3" json:"content_digest,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Asset) Reset() {
	*x = Asset{}
	mi := &file_structify_v1_structify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Asset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Asset) ProtoMessage() {}

func (x *Asset) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Asset.ProtoReflect.Descriptor instead.
func (*Asset) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{0}
}

func (x *Asset) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Asset) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Asset) GetContentDigest() string {
	if x != nil {
		return x.ContentDigest
	}
	return ""
}

func (x *Asset) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type UploadAssetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadAssetRequest) Reset() {
	*x = UploadAssetRequest{}
	mi := &file_structify_v1_structify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadAssetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadAssetRequest) ProtoMessage() {}

func (x *UploadAssetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadAssetRequest.ProtoReflect.Descriptor instead.
func (*UploadAssetRequest) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{1}
}

func (x *UploadAssetRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *UploadAssetRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadAssetRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadAssetRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadAssetResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Asset *Asset                 `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	// True when the payload matched an asset the owner already stored.
	Deduplicated  bool `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadAssetResponse) Reset() {
	*x = UploadAssetResponse{}
	mi := &file_structify_v1_structify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadAssetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadAssetResponse) ProtoMessage() {}

func (x *UploadAssetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadAssetResponse.ProtoReflect.Descriptor instead.
func (*UploadAssetResponse) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{2}
}

func (x *UploadAssetResponse) GetAsset() *Asset {
	if x != nil {
		return x.Asset
	}
	return nil
}

func (x *UploadAssetResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type GetAssetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	AssetId       int64                  `protobuf:"varint,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssetRequest) Reset() {
	*x = GetAssetRequest{}
	mi := &file_structify_v1_structify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssetRequest) ProtoMessage() {}

func (x *GetAssetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssetRequest.ProtoReflect.Descriptor instead.
func (*GetAssetRequest) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{3}
}

func (x *GetAssetRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetAssetRequest) GetAssetId() int64 {
	if x != nil {
		return x.AssetId
	}
	return 0
}

type GetAssetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Asset         *Asset                 `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssetResponse) Reset() {
	*x = GetAssetResponse{}
	mi := &file_structify_v1_structify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssetResponse) ProtoMessage() {}

func (x *GetAssetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssetResponse.ProtoReflect.Descriptor instead.
func (*GetAssetResponse) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{4}
}

func (x *GetAssetResponse) GetAsset() *Asset {
	if x != nil {
		return x.Asset
	}
	return nil
}

type FieldSpec struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Name  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// "string" or "number".
	Kind          string `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldSpec) Reset() {
	*x = FieldSpec{}
	mi := &file_structify_v1_structify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldSpec) ProtoMessage() {}

func (x *FieldSpec) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldSpec.ProtoReflect.Descriptor instead.
func (*FieldSpec) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{5}
}

func (x *FieldSpec) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FieldSpec) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type ExtractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Prompt        string                 `protobuf:"bytes,2,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Fields        []*FieldSpec           `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty"`
	AssetId       *int64                 `protobuf:"varint,4,opt,name=asset_id,json=assetId,proto3,oneof" json:"asset_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_structify_v1_structify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExtractRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *ExtractRequest) GetFields() []*FieldSpec {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ExtractRequest) GetAssetId() int64 {
	if x != nil && x.AssetId != nil {
		return *x.AssetId
	}
	return 0
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          *structpb.Struct       `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	FromCache     bool                   `protobuf:"varint,2,opt,name=from_cache,json=fromCache,proto3" json:"from_cache,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_structify_v1_structify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structify_v1_structify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_structify_v1_structify_proto_rawDescGZIP(), []int{7}
}

func (x *ExtractResponse) GetData() *structpb.Struct {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExtractResponse) GetFromCache() bool {
	if x != nil {
		return x.FromCache
	}
	return false
}

var File_structify_v1_structify_proto protoreflect.FileDescriptor

const file_structify_v1_structify_proto_rawDesc = "" +
	"\n" +
	"\x1cstructify/v1/structify.proto\x12\fstructify.v1\x1a\x1cgoogle/protobuf/struct.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x8b\x01\n" +
	"\x05Asset\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12%\n" +
	"\x0econtent_digest\x18\x03 \x01(\tR\rcontentDigest\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x88\x01\n" +
	"\x12UploadAssetRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"d\n" +
	"\x13UploadAssetResponse\x12)\n" +
	"\x05asset\x18\x01 \x01(\v2\x13.structify.v1.AssetR\x05asset\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"G\n" +
	"\x0fGetAssetRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x19\n" +
	"\basset_id\x18\x02 \x01(\x03R\aassetId\"=\n" +
	"\x10GetAssetResponse\x12)\n" +
	"\x05asset\x18\x01 \x01(\v2\x13.structify.v1.AssetR\x05asset\"3\n" +
	"\tFieldSpec\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\"\xa1\x01\n" +
	"\x0eExtractRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x16\n" +
	"\x06prompt\x18\x02 \x01(\tR\x06prompt\x12/\n" +
	"\x06fields\x18\x03 \x03(\v2\x17.structify.v1.FieldSpecR\x06fields\x12\x1e\n" +
	"\basset_id\x18\x04 \x01(\x03H\x00R\aassetId\x88\x01\x01B\v\n" +
	"\t_asset_id\"]\n" +
	"\x0fExtractResponse\x12+\n" +
	"\x04data\x18\x01 \x01(\v2\x17.google.protobuf.StructR\x04data\x12\x1d\n" +
	"\n" +
	"from_cache\x18\x02 \x01(\bR\tfromCache2\xad\x01\n" +
	"\fAssetService\x12R\n" +
	"\vUploadAsset\x12 .structify.v1.UploadAssetRequest\x1a!.structify.v1.UploadAssetResponse\x12I\n" +
	"\bGetAsset\x12\x1d.structify.v1.GetAssetRequest\x1a\x1e.structify.v1.GetAssetResponse2[\n" +
	"\x11ExtractionService\x12F\n" +
	"\aExtract\x12\x1c.structify.v1.ExtractRequest\x1a\x1d.structify.v1.ExtractResponseB+Z)structify/gen/go/structify/v1;structifyv1b\x06proto3"

var (
	file_structify_v1_structify_proto_rawDescOnce sync.Once
	file_structify_v1_structify_proto_rawDescData []byte
)

func file_structify_v1_structify_proto_rawDescGZIP() []byte {
	file_structify_v1_structify_proto_rawDescOnce.Do(func() {
		file_structify_v1_structify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_structify_v1_structify_proto_rawDesc), len(file_structify_v1_structify_proto_rawDesc)))
	})
	return file_structify_v1_structify_proto_rawDescData
}

var file_structify_v1_structify_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_structify_v1_structify_proto_goTypes = []any{
	(*Asset)(nil),                 // 0: structify.v1.Asset
	(*UploadAssetRequest)(nil),    // 1: structify.v1.UploadAssetRequest
	(*UploadAssetResponse)(nil),   // 2: structify.v1.UploadAssetResponse
	(*GetAssetRequest)(nil),       // 3: structify.v1.GetAssetRequest
	(*GetAssetResponse)(nil),      // 4: structify.v1.GetAssetResponse
	(*FieldSpec)(nil),             // 5: structify.v1.FieldSpec
	(*ExtractRequest)(nil),        // 6: structify.v1.ExtractRequest
	(*ExtractResponse)(nil),       // 7: structify.v1.ExtractResponse
	(*timestamppb.Timestamp)(nil), // 8: google.protobuf.Timestamp
	(*structpb.Struct)(nil),       // 9: google.protobuf.Struct
}
var file_structify_v1_structify_proto_depIdxs = []int32{
	8, // 0: structify.v1.Asset.created_at:type_name -> google.protobuf.Timestamp
	0, // 1: structify.v1.UploadAssetResponse.asset:type_name -> structify.v1.Asset
	0, // 2: structify.v1.GetAssetResponse.asset:type_name -> structify.v1.Asset
	5, // 3: structify.v1.ExtractRequest.fields:type_name -> structify.v1.FieldSpec
	9, // 4: structify.v1.ExtractResponse.data:type_name -> google.protobuf.Struct
	1, // 5: structify.v1.AssetService.UploadAsset:input_type -> structify.v1.UploadAssetRequest
	3, // 6: structify.v1.AssetService.GetAsset:input_type -> structify.v1.GetAssetRequest
	6, // 7: structify.v1.ExtractionService.Extract:input_type -> structify.v1.ExtractRequest
	2, // 8: structify.v1.AssetService.UploadAsset:output_type -> structify.v1.UploadAssetResponse
	4, // 9: structify.v1.AssetService.GetAsset:output_type -> structify.v1.GetAssetResponse
	7, // 10: structify.v1.ExtractionService.Extract:output_type -> structify.v1.ExtractResponse
	8, // [8:11] is the sub-list for method output_type
	5, // [5:8] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_structify_v1_structify_proto_init() }
func file_structify_v1_structify_proto_init() {
	if File_structify_v1_structify_proto != nil {
		return
	}
	file_structify_v1_structify_proto_msgTypes[6].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_structify_v1_structify_proto_rawDesc), len(file_structify_v1_structify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_structify_v1_structify_proto_goTypes,
		DependencyIndexes: file_structify_v1_structify_proto_depIdxs,
		MessageInfos:      file_structify_v1_structify_proto_msgTypes,
	}.Build()
	File_structify_v1_structify_proto = out.File
	file_structify_v1_structify_proto_goTypes = nil
	file_structify_v1_structify_proto_depIdxs = nil
}
