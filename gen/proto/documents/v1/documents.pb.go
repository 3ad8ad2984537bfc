// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: documents/v1/documents.proto

package documentsv1

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

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,3,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	ContentType      string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize         int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	// One of: pending, processing, completed, failed.
	Status       string `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage string `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	// RFC 3339; empty until the document reaches a terminal status.
	ProcessedAt   string `protobuf:"bytes,8,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	PageCount     int32  `protobuf:"varint,9,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	CreatedAt     string `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExtractedField struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Key        string                 `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	Value      string                 `protobuf:"bytes,4,opt,name=value,proto3" json:"value,omitempty"`
	// One of: text, number, date.
	DataType      string `protobuf:"bytes,5,opt,name=data_type,json=dataType,proto3" json:"data_type,omitempty"`
	Position      int32  `protobuf:"varint,6,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractedField) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractedField) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractedField) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ExtractedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ExtractedField) GetDataType() string {
	if x != nil {
		return x.DataType
	}
	return ""
}

func (x *ExtractedField) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type UploadDocumentRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Filename    string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content     []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	// Optional display name; derived from filename when empty.
	Name          string `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{4}
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Fields        []*ExtractedField      `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type UpdateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentRequest) Reset() {
	*x = UpdateDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentRequest) ProtoMessage() {}

func (x *UpdateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentRequest.ProtoReflect.Descriptor instead.
func (*UpdateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type UpdateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentResponse) Reset() {
	*x = UpdateDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentResponse) ProtoMessage() {}

func (x *UpdateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentResponse.ProtoReflect.Descriptor instead.
func (*UpdateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{11}
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{12}
}

func (x *ReprocessDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{13}
}

func (x *ReprocessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ExportDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentRequest) Reset() {
	*x = ExportDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentRequest) ProtoMessage() {}

func (x *ExportDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{14}
}

func (x *ExportDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ExportDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentResponse) Reset() {
	*x = ExportDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentResponse) ProtoMessage() {}

func (x *ExportDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{15}
}

func (x *ExportDocumentResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportDocumentResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_documents_v1_documents_proto protoreflect.FileDescriptor

const file_documents_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1cdocuments/v1/documents.proto\x12\fdocuments.v1\"\xd8\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12+\n" +
	"\x11original_filename\x18\x03 \x01(\tR\x10originalFilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12!\n" +
	"\fprocessed_at\x18\b \x01(\tR\vprocessedAt\x12\x1d\n" +
	"\n" +
	"page_count\x18\t \x01(\x05R\tpageCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xa2\x01\n" +
	"\x0eExtractedField\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x10\n" +
	"\x03key\x18\x03 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x04 \x01(\tR\x05value\x12\x1b\n" +
	"\tdata_type\x18\x05 \x01(\tR\bdataType\x12\x1a\n" +
	"\bposition\x18\x06 \x01(\x05R\bposition\"\x84\x01\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\"L\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"\x16\n" +
	"\x14ListDocumentsRequest\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.documents.v1.DocumentR\tdocuments\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x7f\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\x124\n" +
	"\x06fields\x18\x02 \x03(\v2\x1c.documents.v1.ExtractedFieldR\x06fields\";\n" +
	"\x15UpdateDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"L\n" +
	"\x16UpdateDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteDocumentResponse\"*\n" +
	"\x18ReprocessDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"O\n" +
	"\x19ReprocessDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"'\n" +
	"\x15ExportDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"N\n" +
	"\x16ExportDocumentResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\x9a\x05\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.documents.v1.UploadDocumentRequest\x1a$.documents.v1.UploadDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".documents.v1.ListDocumentsRequest\x1a#.documents.v1.ListDocumentsResponse\x12R\n" +
	"\vGetDocument\x12 .documents.v1.GetDocumentRequest\x1a!.documents.v1.GetDocumentResponse\x12[\n" +
	"\x0eUpdateDocument\x12#.documents.v1.UpdateDocumentRequest\x1a$.documents.v1.UpdateDocumentResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.documents.v1.DeleteDocumentRequest\x1a$.documents.v1.DeleteDocumentResponse\x12d\n" +
	"\x11ReprocessDocument\x12&.documents.v1.ReprocessDocumentRequest\x1a'.documents.v1.ReprocessDocumentResponse\x12[\n" +
	"\x0eExportDocument\x12#.documents.v1.ExportDocumentRequest\x1a$.documents.v1.ExportDocumentResponseBJZHgithub.com/joseph-ayodele/docuextract/gen/proto/documents/v1;documentsv1b\x06proto3"

var (
	file_documents_v1_documents_proto_rawDescOnce sync.Once
	file_documents_v1_documents_proto_rawDescData []byte
)

func file_documents_v1_documents_proto_rawDescGZIP() []byte {
	file_documents_v1_documents_proto_rawDescOnce.Do(func() {
		file_documents_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)))
	})
	return file_documents_v1_documents_proto_rawDescData
}

var file_documents_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_documents_v1_documents_proto_goTypes = []any{
	(*Document)(nil),                  // 0: documents.v1.Document
	(*ExtractedField)(nil),            // 1: documents.v1.ExtractedField
	(*UploadDocumentRequest)(nil),     // 2: documents.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 3: documents.v1.UploadDocumentResponse
	(*ListDocumentsRequest)(nil),      // 4: documents.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 5: documents.v1.ListDocumentsResponse
	(*GetDocumentRequest)(nil),        // 6: documents.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 7: documents.v1.GetDocumentResponse
	(*UpdateDocumentRequest)(nil),     // 8: documents.v1.UpdateDocumentRequest
	(*UpdateDocumentResponse)(nil),    // 9: documents.v1.UpdateDocumentResponse
	(*DeleteDocumentRequest)(nil),     // 10: documents.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 11: documents.v1.DeleteDocumentResponse
	(*ReprocessDocumentRequest)(nil),  // 12: documents.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil), // 13: documents.v1.ReprocessDocumentResponse
	(*ExportDocumentRequest)(nil),     // 14: documents.v1.ExportDocumentRequest
	(*ExportDocumentResponse)(nil),    // 15: documents.v1.ExportDocumentResponse
}
var file_documents_v1_documents_proto_depIdxs = []int32{
	0,  // 0: documents.v1.UploadDocumentResponse.document:type_name -> documents.v1.Document
	0,  // 1: documents.v1.ListDocumentsResponse.documents:type_name -> documents.v1.Document
	0,  // 2: documents.v1.GetDocumentResponse.document:type_name -> documents.v1.Document
	1,  // 3: documents.v1.GetDocumentResponse.fields:type_name -> documents.v1.ExtractedField
	0,  // 4: documents.v1.UpdateDocumentResponse.document:type_name -> documents.v1.Document
	0,  // 5: documents.v1.ReprocessDocumentResponse.document:type_name -> documents.v1.Document
	2,  // 6: documents.v1.DocumentsService.UploadDocument:input_type -> documents.v1.UploadDocumentRequest
	4,  // 7: documents.v1.DocumentsService.ListDocuments:input_type -> documents.v1.ListDocumentsRequest
	6,  // 8: documents.v1.DocumentsService.GetDocument:input_type -> documents.v1.GetDocumentRequest
	8,  // 9: documents.v1.DocumentsService.UpdateDocument:input_type -> documents.v1.UpdateDocumentRequest
	10, // 10: documents.v1.DocumentsService.DeleteDocument:input_type -> documents.v1.DeleteDocumentRequest
	12, // 11: documents.v1.DocumentsService.ReprocessDocument:input_type -> documents.v1.ReprocessDocumentRequest
	14, // 12: documents.v1.DocumentsService.ExportDocument:input_type -> documents.v1.ExportDocumentRequest
	3,  // 13: documents.v1.DocumentsService.UploadDocument:output_type -> documents.v1.UploadDocumentResponse
	5,  // 14: documents.v1.DocumentsService.ListDocuments:output_type -> documents.v1.ListDocumentsResponse
	7,  // 15: documents.v1.DocumentsService.GetDocument:output_type -> documents.v1.GetDocumentResponse
	9,  // 16: documents.v1.DocumentsService.UpdateDocument:output_type -> documents.v1.UpdateDocumentResponse
	11, // 17: documents.v1.DocumentsService.DeleteDocument:output_type -> documents.v1.DeleteDocumentResponse
	13, // 18: documents.v1.DocumentsService.ReprocessDocument:output_type -> documents.v1.ReprocessDocumentResponse
	15, // 19: documents.v1.DocumentsService.ExportDocument:output_type -> documents.v1.ExportDocumentResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_documents_v1_documents_proto_init() }
func file_documents_v1_documents_proto_init() {
	if File_documents_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_documents_v1_documents_proto_goTypes,
		DependencyIndexes: file_documents_v1_documents_proto_depIdxs,
		MessageInfos:      file_documents_v1_documents_proto_msgTypes,
	}.Build()
	File_documents_v1_documents_proto = out.File
	file_documents_v1_documents_proto_goTypes = nil
	file_documents_v1_documents_proto_depIdxs = nil
}
