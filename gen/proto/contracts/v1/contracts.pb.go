// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Contract struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt       string                 `protobuf:"bytes,3,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	Size          int64                  `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	Language      string                 `protobuf:"bytes,5,opt,name=language,proto3" json:"language,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ErrorKind     string                 `protobuf:"bytes,7,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Degraded      bool                   `protobuf:"varint,9,opt,name=degraded,proto3" json:"degraded,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,10,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`    // RFC 3339
	ProcessedAt   string                 `protobuf:"bytes,11,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"` // RFC 3339, empty until completed
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Contract) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Contract) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *Contract) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *Contract) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Contract) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *Contract) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Contract) GetDegraded() bool {
	if x != nil {
		return x.Degraded
	}
	return false
}

func (x *Contract) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Contract) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type Entity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Confidence    float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Section       string                 `protobuf:"bytes,5,opt,name=section,proto3" json:"section,omitempty"`
	Position      int32                  `protobuf:"varint,6,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Entity) Reset() {
	*x = Entity{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Entity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entity) ProtoMessage() {}

func (x *Entity) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entity.ProtoReflect.Descriptor instead.
func (*Entity) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *Entity) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Entity) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Entity) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Entity) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Entity) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *Entity) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type Summary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractId    string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Tier          string                 `protobuf:"bytes,3,opt,name=tier,proto3" json:"tier,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Confidence    float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	WordCount     int32                  `protobuf:"varint,6,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	ModelName     string                 `protobuf:"bytes,7,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	Approved      bool                   `protobuf:"varint,8,opt,name=approved,proto3" json:"approved,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Summary) Reset() {
	*x = Summary{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Summary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Summary) ProtoMessage() {}

func (x *Summary) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Summary.ProtoReflect.Descriptor instead.
func (*Summary) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *Summary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Summary) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *Summary) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *Summary) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Summary) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Summary) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

func (x *Summary) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *Summary) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *Summary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SubmitContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitContractRequest) Reset() {
	*x = SubmitContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitContractRequest) ProtoMessage() {}

func (x *SubmitContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitContractRequest.ProtoReflect.Descriptor instead.
func (*SubmitContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitContractRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *SubmitContractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type SubmitContractResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Contract       *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,2,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubmitContractResponse) Reset() {
	*x = SubmitContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitContractResponse) ProtoMessage() {}

func (x *SubmitContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitContractResponse.ProtoReflect.Descriptor instead.
func (*SubmitContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

func (x *SubmitContractResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *GetContractRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Entities      []*Entity              `protobuf:"bytes,2,rep,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

func (x *GetContractResponse) GetEntities() []*Entity {
	if x != nil {
		return x.Entities
	}
	return nil
}

type DeleteContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractRequest) Reset() {
	*x = DeleteContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractRequest) ProtoMessage() {}

func (x *DeleteContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractRequest.ProtoReflect.Descriptor instead.
func (*DeleteContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteContractRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type DeleteContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractResponse) Reset() {
	*x = DeleteContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractResponse) ProtoMessage() {}

func (x *DeleteContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractResponse.ProtoReflect.Descriptor instead.
func (*DeleteContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteContractResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportContractReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractReportRequest) Reset() {
	*x = ExportContractReportRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractReportRequest) ProtoMessage() {}

func (x *ExportContractReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractReportRequest.ProtoReflect.Descriptor instead.
func (*ExportContractReportRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *ExportContractReportRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type ExportContractReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractReportResponse) Reset() {
	*x = ExportContractReportResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractReportResponse) ProtoMessage() {}

func (x *ExportContractReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractReportResponse.ProtoReflect.Descriptor instead.
func (*ExportContractReportResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *ExportContractReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GenerateSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Tier          string                 `protobuf:"bytes,2,opt,name=tier,proto3" json:"tier,omitempty"` // brief | standard | detailed
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateSummaryRequest) Reset() {
	*x = GenerateSummaryRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateSummaryRequest) ProtoMessage() {}

func (x *GenerateSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateSummaryRequest.ProtoReflect.Descriptor instead.
func (*GenerateSummaryRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *GenerateSummaryRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *GenerateSummaryRequest) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

type GenerateSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *Summary               `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateSummaryResponse) Reset() {
	*x = GenerateSummaryResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateSummaryResponse) ProtoMessage() {}

func (x *GenerateSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateSummaryResponse.ProtoReflect.Descriptor instead.
func (*GenerateSummaryResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateSummaryResponse) GetSummary() *Summary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type EnqueueSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Tier          string                 `protobuf:"bytes,2,opt,name=tier,proto3" json:"tier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueSummaryRequest) Reset() {
	*x = EnqueueSummaryRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueSummaryRequest) ProtoMessage() {}

func (x *EnqueueSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueSummaryRequest.ProtoReflect.Descriptor instead.
func (*EnqueueSummaryRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{13}
}

func (x *EnqueueSummaryRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *EnqueueSummaryRequest) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

type EnqueueSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TicketId      string                 `protobuf:"bytes,1,opt,name=ticket_id,json=ticketId,proto3" json:"ticket_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueSummaryResponse) Reset() {
	*x = EnqueueSummaryResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueSummaryResponse) ProtoMessage() {}

func (x *EnqueueSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueSummaryResponse.ProtoReflect.Descriptor instead.
func (*EnqueueSummaryResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{14}
}

func (x *EnqueueSummaryResponse) GetTicketId() string {
	if x != nil {
		return x.TicketId
	}
	return ""
}

type ListSummariesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSummariesRequest) Reset() {
	*x = ListSummariesRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSummariesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSummariesRequest) ProtoMessage() {}

func (x *ListSummariesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSummariesRequest.ProtoReflect.Descriptor instead.
func (*ListSummariesRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{15}
}

func (x *ListSummariesRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type ListSummariesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summaries     []*Summary             `protobuf:"bytes,1,rep,name=summaries,proto3" json:"summaries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSummariesResponse) Reset() {
	*x = ListSummariesResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSummariesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSummariesResponse) ProtoMessage() {}

func (x *ListSummariesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSummariesResponse.ProtoReflect.Descriptor instead.
func (*ListSummariesResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{16}
}

func (x *ListSummariesResponse) GetSummaries() []*Summary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

type ApproveSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SummaryId     string                 `protobuf:"bytes,1,opt,name=summary_id,json=summaryId,proto3" json:"summary_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveSummaryRequest) Reset() {
	*x = ApproveSummaryRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveSummaryRequest) ProtoMessage() {}

func (x *ApproveSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveSummaryRequest.ProtoReflect.Descriptor instead.
func (*ApproveSummaryRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{17}
}

func (x *ApproveSummaryRequest) GetSummaryId() string {
	if x != nil {
		return x.SummaryId
	}
	return ""
}

type ApproveSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *Summary               `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveSummaryResponse) Reset() {
	*x = ApproveSummaryResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveSummaryResponse) ProtoMessage() {}

func (x *ApproveSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveSummaryResponse.ProtoReflect.Descriptor instead.
func (*ApproveSummaryResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{18}
}

func (x *ApproveSummaryResponse) GetSummary() *Summary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type SubmitFeedbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SummaryId     string                 `protobuf:"bytes,1,opt,name=summary_id,json=summaryId,proto3" json:"summary_id,omitempty"`
	Rating        int32                  `protobuf:"varint,2,opt,name=rating,proto3" json:"rating,omitempty"` // 1..5
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackRequest) Reset() {
	*x = SubmitFeedbackRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackRequest) ProtoMessage() {}

func (x *SubmitFeedbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackRequest.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{19}
}

func (x *SubmitFeedbackRequest) GetSummaryId() string {
	if x != nil {
		return x.SummaryId
	}
	return ""
}

func (x *SubmitFeedbackRequest) GetRating() int32 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *SubmitFeedbackRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type SubmitFeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FeedbackId    string                 `protobuf:"bytes,1,opt,name=feedback_id,json=feedbackId,proto3" json:"feedback_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackResponse) Reset() {
	*x = SubmitFeedbackResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackResponse) ProtoMessage() {}

func (x *SubmitFeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackResponse.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{20}
}

func (x *SubmitFeedbackResponse) GetFeedbackId() string {
	if x != nil {
		return x.FeedbackId
	}
	return ""
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"\xbd\x02\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x03 \x01(\tR\afileExt\x12\x12\n" +
	"\x04size\x18\x04 \x01(\x03R\x04size\x12\x1a\n" +
	"\blanguage\x18\x05 \x01(\tR\blanguage\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"error_kind\x18\a \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12\x1a\n" +
	"\bdegraded\x18\t \x01(\bR\bdegraded\x12\x1f\n" +
	"\vuploaded_at\x18\n" +
	" \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\v \x01(\tR\vprocessedAt\"\x98\x01\n" +
	"\x06Entity\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12\x18\n" +
	"\asection\x18\x05 \x01(\tR\asection\x12\x1a\n" +
	"\bposition\x18\x06 \x01(\x05R\bposition\"\x81\x02\n" +
	"\aSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12\x12\n" +
	"\x04tier\x18\x03 \x01(\tR\x04tier\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"word_count\x18\x06 \x01(\x05R\twordCount\x12\x1d\n" +
	"\n" +
	"model_name\x18\a \x01(\tR\tmodelName\x12\x1a\n" +
	"\bapproved\x18\b \x01(\bR\bapproved\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"M\n" +
	"\x15SubmitContractRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"v\n" +
	"\x16SubmitContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\x12(\n" +
	"\x10content_hash_hex\x18\x02 \x01(\tR\x0econtentHashHex\"5\n" +
	"\x12GetContractRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"{\n" +
	"\x13GetContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\x120\n" +
	"\bentities\x18\x02 \x03(\v2\x14.contracts.v1.EntityR\bentities\"8\n" +
	"\x15DeleteContractRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"2\n" +
	"\x16DeleteContractResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\">\n" +
	"\x1bExportContractReportRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"2\n" +
	"\x1cExportContractReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"M\n" +
	"\x16GenerateSummaryRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\x12\x12\n" +
	"\x04tier\x18\x02 \x01(\tR\x04tier\"J\n" +
	"\x17GenerateSummaryResponse\x12/\n" +
	"\asummary\x18\x01 \x01(\v2\x15.contracts.v1.SummaryR\asummary\"L\n" +
	"\x15EnqueueSummaryRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\x12\x12\n" +
	"\x04tier\x18\x02 \x01(\tR\x04tier\"5\n" +
	"\x16EnqueueSummaryResponse\x12\x1b\n" +
	"\tticket_id\x18\x01 \x01(\tR\bticketId\"7\n" +
	"\x14ListSummariesRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"L\n" +
	"\x15ListSummariesResponse\x123\n" +
	"\tsummaries\x18\x01 \x03(\v2\x15.contracts.v1.SummaryR\tsummaries\"6\n" +
	"\x15ApproveSummaryRequest\x12\x1d\n" +
	"\n" +
	"summary_id\x18\x01 \x01(\tR\tsummaryId\"I\n" +
	"\x16ApproveSummaryResponse\x12/\n" +
	"\asummary\x18\x01 \x01(\v2\x15.contracts.v1.SummaryR\asummary\"h\n" +
	"\x15SubmitFeedbackRequest\x12\x1d\n" +
	"\n" +
	"summary_id\x18\x01 \x01(\tR\tsummaryId\x12\x16\n" +
	"\x06rating\x18\x02 \x01(\x05R\x06rating\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\"9\n" +
	"\x16SubmitFeedbackResponse\x12\x1f\n" +
	"\vfeedback_id\x18\x01 \x01(\tR\n" +
	"feedbackId2\x8e\x03\n" +
	"\x0fContractService\x12[\n" +
	"\x0eSubmitContract\x12#.contracts.v1.SubmitContractRequest\x1a$.contracts.v1.SubmitContractResponse\x12R\n" +
	"\vGetContract\x12 .contracts.v1.GetContractRequest\x1a!.contracts.v1.GetContractResponse\x12[\n" +
	"\x0eDeleteContract\x12#.contracts.v1.DeleteContractRequest\x1a$.contracts.v1.DeleteContractResponse\x12m\n" +
	"\x14ExportContractReport\x12).contracts.v1.ExportContractReportRequest\x1a*.contracts.v1.ExportContractReportResponse2\xe1\x03\n" +
	"\x0eSummaryService\x12^\n" +
	"\x0fGenerateSummary\x12$.contracts.v1.GenerateSummaryRequest\x1a%.contracts.v1.GenerateSummaryResponse\x12[\n" +
	"\x0eEnqueueSummary\x12#.contracts.v1.EnqueueSummaryRequest\x1a$.contracts.v1.EnqueueSummaryResponse\x12X\n" +
	"\rListSummaries\x12\".contracts.v1.ListSummariesRequest\x1a#.contracts.v1.ListSummariesResponse\x12[\n" +
	"\x0eApproveSummary\x12#.contracts.v1.ApproveSummaryRequest\x1a$.contracts.v1.ApproveSummaryResponse\x12[\n" +
	"\x0eSubmitFeedback\x12#.contracts.v1.SubmitFeedbackRequest\x1a$.contracts.v1.SubmitFeedbackResponseBHZFgithub.com/ebolowa/contract-insight/gen/proto/contracts/v1;contractsv1b\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*Contract)(nil),                     // 0: contracts.v1.Contract
	(*Entity)(nil),                       // 1: contracts.v1.Entity
	(*Summary)(nil),                      // 2: contracts.v1.Summary
	(*SubmitContractRequest)(nil),        // 3: contracts.v1.SubmitContractRequest
	(*SubmitContractResponse)(nil),       // 4: contracts.v1.SubmitContractResponse
	(*GetContractRequest)(nil),           // 5: contracts.v1.GetContractRequest
	(*GetContractResponse)(nil),          // 6: contracts.v1.GetContractResponse
	(*DeleteContractRequest)(nil),        // 7: contracts.v1.DeleteContractRequest
	(*DeleteContractResponse)(nil),       // 8: contracts.v1.DeleteContractResponse
	(*ExportContractReportRequest)(nil),  // 9: contracts.v1.ExportContractReportRequest
	(*ExportContractReportResponse)(nil), // 10: contracts.v1.ExportContractReportResponse
	(*GenerateSummaryRequest)(nil),       // 11: contracts.v1.GenerateSummaryRequest
	(*GenerateSummaryResponse)(nil),      // 12: contracts.v1.GenerateSummaryResponse
	(*EnqueueSummaryRequest)(nil),        // 13: contracts.v1.EnqueueSummaryRequest
	(*EnqueueSummaryResponse)(nil),       // 14: contracts.v1.EnqueueSummaryResponse
	(*ListSummariesRequest)(nil),         // 15: contracts.v1.ListSummariesRequest
	(*ListSummariesResponse)(nil),        // 16: contracts.v1.ListSummariesResponse
	(*ApproveSummaryRequest)(nil),        // 17: contracts.v1.ApproveSummaryRequest
	(*ApproveSummaryResponse)(nil),       // 18: contracts.v1.ApproveSummaryResponse
	(*SubmitFeedbackRequest)(nil),        // 19: contracts.v1.SubmitFeedbackRequest
	(*SubmitFeedbackResponse)(nil),       // 20: contracts.v1.SubmitFeedbackResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	0,  // 0: contracts.v1.SubmitContractResponse.contract:type_name -> contracts.v1.Contract
	0,  // 1: contracts.v1.GetContractResponse.contract:type_name -> contracts.v1.Contract
	1,  // 2: contracts.v1.GetContractResponse.entities:type_name -> contracts.v1.Entity
	2,  // 3: contracts.v1.GenerateSummaryResponse.summary:type_name -> contracts.v1.Summary
	2,  // 4: contracts.v1.ListSummariesResponse.summaries:type_name -> contracts.v1.Summary
	2,  // 5: contracts.v1.ApproveSummaryResponse.summary:type_name -> contracts.v1.Summary
	3,  // 6: contracts.v1.ContractService.SubmitContract:input_type -> contracts.v1.SubmitContractRequest
	5,  // 7: contracts.v1.ContractService.GetContract:input_type -> contracts.v1.GetContractRequest
	7,  // 8: contracts.v1.ContractService.DeleteContract:input_type -> contracts.v1.DeleteContractRequest
	9,  // 9: contracts.v1.ContractService.ExportContractReport:input_type -> contracts.v1.ExportContractReportRequest
	11, // 10: contracts.v1.SummaryService.GenerateSummary:input_type -> contracts.v1.GenerateSummaryRequest
	13, // 11: contracts.v1.SummaryService.EnqueueSummary:input_type -> contracts.v1.EnqueueSummaryRequest
	15, // 12: contracts.v1.SummaryService.ListSummaries:input_type -> contracts.v1.ListSummariesRequest
	17, // 13: contracts.v1.SummaryService.ApproveSummary:input_type -> contracts.v1.ApproveSummaryRequest
	19, // 14: contracts.v1.SummaryService.SubmitFeedback:input_type -> contracts.v1.SubmitFeedbackRequest
	4,  // 15: contracts.v1.ContractService.SubmitContract:output_type -> contracts.v1.SubmitContractResponse
	6,  // 16: contracts.v1.ContractService.GetContract:output_type -> contracts.v1.GetContractResponse
	8,  // 17: contracts.v1.ContractService.DeleteContract:output_type -> contracts.v1.DeleteContractResponse
	10, // 18: contracts.v1.ContractService.ExportContractReport:output_type -> contracts.v1.ExportContractReportResponse
	12, // 19: contracts.v1.SummaryService.GenerateSummary:output_type -> contracts.v1.GenerateSummaryResponse
	14, // 20: contracts.v1.SummaryService.EnqueueSummary:output_type -> contracts.v1.EnqueueSummaryResponse
	16, // 21: contracts.v1.SummaryService.ListSummaries:output_type -> contracts.v1.ListSummariesResponse
	18, // 22: contracts.v1.SummaryService.ApproveSummary:output_type -> contracts.v1.ApproveSummaryResponse
	20, // 23: contracts.v1.SummaryService.SubmitFeedback:output_type -> contracts.v1.SubmitFeedbackResponse
	15, // [15:24] is the sub-list for method output_type
	6,  // [6:15] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
