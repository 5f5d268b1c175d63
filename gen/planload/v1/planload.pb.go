// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: planload/v1/planload.proto

package planloadv1

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

type SubmitBlueprintRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Server-local path of the PDF, e.g. a drop-directory file. Exactly one of
	// pdf_path and pdf_data must be set.
	PdfPath string `protobuf:"bytes,1,opt,name=pdf_path,json=pdfPath,proto3" json:"pdf_path,omitempty"`
	// Site ZIP code used to resolve design conditions.
	ZipCode string `protobuf:"bytes,2,opt,name=zip_code,json=zipCode,proto3" json:"zip_code,omitempty"`
	// Raw PDF upload; spooled server-side before processing.
	PdfData []byte `protobuf:"bytes,3,opt,name=pdf_data,json=pdfData,proto3" json:"pdf_data,omitempty"`
	// Original filename for uploaded bytes.
	Filename      string `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBlueprintRequest) Reset() {
	*x = SubmitBlueprintRequest{}
	mi := &file_planload_v1_planload_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBlueprintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBlueprintRequest) ProtoMessage() {}

func (x *SubmitBlueprintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBlueprintRequest.ProtoReflect.Descriptor instead.
func (*SubmitBlueprintRequest) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitBlueprintRequest) GetPdfPath() string {
	if x != nil {
		return x.PdfPath
	}
	return ""
}

func (x *SubmitBlueprintRequest) GetZipCode() string {
	if x != nil {
		return x.ZipCode
	}
	return ""
}

func (x *SubmitBlueprintRequest) GetPdfData() []byte {
	if x != nil {
		return x.PdfData
	}
	return nil
}

func (x *SubmitBlueprintRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type SubmitBlueprintResponse struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	JobId       string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	BlueprintId string                 `protobuf:"bytes,2,opt,name=blueprint_id,json=blueprintId,proto3" json:"blueprint_id,omitempty"`
	PageCount   int32                  `protobuf:"varint,3,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	// True when the same file content was submitted before.
	Deduplicated  bool `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBlueprintResponse) Reset() {
	*x = SubmitBlueprintResponse{}
	mi := &file_planload_v1_planload_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBlueprintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBlueprintResponse) ProtoMessage() {}

func (x *SubmitBlueprintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBlueprintResponse.ProtoReflect.Descriptor instead.
func (*SubmitBlueprintResponse) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitBlueprintResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitBlueprintResponse) GetBlueprintId() string {
	if x != nil {
		return x.BlueprintId
	}
	return ""
}

func (x *SubmitBlueprintResponse) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *SubmitBlueprintResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_planload_v1_planload_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_planload_v1_planload_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type Job struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BlueprintId string                 `protobuf:"bytes,2,opt,name=blueprint_id,json=blueprintId,proto3" json:"blueprint_id,omitempty"`
	// QUEUED | RUNNING | EXTRACTED | CALCULATED | FAILED
	Status             string  `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ZipCode            string  `protobuf:"bytes,4,opt,name=zip_code,json=zipCode,proto3" json:"zip_code,omitempty"`
	OverallConfidence  float32 `protobuf:"fixed32,5,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	DeclaredTotalSqft  float64 `protobuf:"fixed64,6,opt,name=declared_total_sqft,json=declaredTotalSqft,proto3" json:"declared_total_sqft,omitempty"`
	ExtractedTotalSqft float64 `protobuf:"fixed64,7,opt,name=extracted_total_sqft,json=extractedTotalSqft,proto3" json:"extracted_total_sqft,omitempty"`
	TotalHeatingBtuh   float64 `protobuf:"fixed64,8,opt,name=total_heating_btuh,json=totalHeatingBtuh,proto3" json:"total_heating_btuh,omitempty"`
	TotalCoolingBtuh   float64 `protobuf:"fixed64,9,opt,name=total_cooling_btuh,json=totalCoolingBtuh,proto3" json:"total_cooling_btuh,omitempty"`
	CoolingTons        float64 `protobuf:"fixed64,10,opt,name=cooling_tons,json=coolingTons,proto3" json:"cooling_tons,omitempty"`
	// Set only on FAILED jobs.
	ErrorKind       string `protobuf:"bytes,11,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage    string `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	SuggestedAction string `protobuf:"bytes,13,opt,name=suggested_action,json=suggestedAction,proto3" json:"suggested_action,omitempty"`
	// RFC 3339 timestamps; empty when not yet reached.
	QueuedAt      string `protobuf:"bytes,14,opt,name=queued_at,json=queuedAt,proto3" json:"queued_at,omitempty"`
	StartedAt     string `protobuf:"bytes,15,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string `protobuf:"bytes,16,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_planload_v1_planload_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{4}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetBlueprintId() string {
	if x != nil {
		return x.BlueprintId
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetZipCode() string {
	if x != nil {
		return x.ZipCode
	}
	return ""
}

func (x *Job) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *Job) GetDeclaredTotalSqft() float64 {
	if x != nil {
		return x.DeclaredTotalSqft
	}
	return 0
}

func (x *Job) GetExtractedTotalSqft() float64 {
	if x != nil {
		return x.ExtractedTotalSqft
	}
	return 0
}

func (x *Job) GetTotalHeatingBtuh() float64 {
	if x != nil {
		return x.TotalHeatingBtuh
	}
	return 0
}

func (x *Job) GetTotalCoolingBtuh() float64 {
	if x != nil {
		return x.TotalCoolingBtuh
	}
	return 0
}

func (x *Job) GetCoolingTons() float64 {
	if x != nil {
		return x.CoolingTons
	}
	return 0
}

func (x *Job) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetSuggestedAction() string {
	if x != nil {
		return x.SuggestedAction
	}
	return ""
}

func (x *Job) GetQueuedAt() string {
	if x != nil {
		return x.QueuedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetLoadSheetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLoadSheetRequest) Reset() {
	*x = GetLoadSheetRequest{}
	mi := &file_planload_v1_planload_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoadSheetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoadSheetRequest) ProtoMessage() {}

func (x *GetLoadSheetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoadSheetRequest.ProtoReflect.Descriptor instead.
func (*GetLoadSheetRequest) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{5}
}

func (x *GetLoadSheetRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetLoadSheetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLoadSheetResponse) Reset() {
	*x = GetLoadSheetResponse{}
	mi := &file_planload_v1_planload_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoadSheetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoadSheetResponse) ProtoMessage() {}

func (x *GetLoadSheetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planload_v1_planload_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoadSheetResponse.ProtoReflect.Descriptor instead.
func (*GetLoadSheetResponse) Descriptor() ([]byte, []int) {
	return file_planload_v1_planload_proto_rawDescGZIP(), []int{6}
}

func (x *GetLoadSheetResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *GetLoadSheetResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_planload_v1_planload_proto protoreflect.FileDescriptor

const file_planload_v1_planload_proto_rawDesc = "" +
	"\n" +
	"\x1aplanload/v1/planload.proto\x12\vplanload.v1\"\x85\x01\n" +
	"\x16SubmitBlueprintRequest\x12\x19\n" +
	"\bpdf_path\x18\x01 \x01(\tR\apdfPath\x12\x19\n" +
	"\bzip_code\x18\x02 \x01(\tR\azipCode\x12\x19\n" +
	"\bpdf_data\x18\x03 \x01(\fR\apdfData\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\"\x96\x01\n" +
	"\x17SubmitBlueprintResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fblueprint_id\x18\x02 \x01(\tR\vblueprintId\x12\x1d\n" +
	"\n" +
	"page_count\x18\x03 \x01(\x05R\tpageCount\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\bR\fdeduplicated\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"4\n" +
	"\x0eGetJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.planload.v1.JobR\x03job\"\xc7\x04\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fblueprint_id\x18\x02 \x01(\tR\vblueprintId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x19\n" +
	"\bzip_code\x18\x04 \x01(\tR\azipCode\x12-\n" +
	"\x12overall_confidence\x18\x05 \x01(\x02R\x11overallConfidence\x12.\n" +
	"\x13declared_total_sqft\x18\x06 \x01(\x01R\x11declaredTotalSqft\x120\n" +
	"\x14extracted_total_sqft\x18\a \x01(\x01R\x12extractedTotalSqft\x12,\n" +
	"\x12total_heating_btuh\x18\b \x01(\x01R\x10totalHeatingBtuh\x12,\n" +
	"\x12total_cooling_btuh\x18\t \x01(\x01R\x10totalCoolingBtuh\x12!\n" +
	"\fcooling_tons\x18\n" +
	" \x01(\x01R\vcoolingTons\x12\x1d\n" +
	"\n" +
	"error_kind\x18\v \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12)\n" +
	"\x10suggested_action\x18\r \x01(\tR\x0fsuggestedAction\x12\x1b\n" +
	"\tqueued_at\x18\x0e \x01(\tR\bqueuedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x0f \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x10 \x01(\tR\n" +
	"finishedAt\",\n" +
	"\x13GetLoadSheetRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"F\n" +
	"\x14GetLoadSheetResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x87\x02\n" +
	"\x0fPlanLoadService\x12\\\n" +
	"\x0fSubmitBlueprint\x12#.planload.v1.SubmitBlueprintRequest\x1a$.planload.v1.SubmitBlueprintResponse\x12A\n" +
	"\x06GetJob\x12\x1a.planload.v1.GetJobRequest\x1a\x1b.planload.v1.GetJobResponse\x12S\n" +
	"\fGetLoadSheet\x12 .planload.v1.GetLoadSheetRequest\x1a!.planload.v1.GetLoadSheetResponseB;Z9github.com/hvacdesign/planload/gen/planload/v1;planloadv1b\x06proto3"

var (
	file_planload_v1_planload_proto_rawDescOnce sync.Once
	file_planload_v1_planload_proto_rawDescData []byte
)

func file_planload_v1_planload_proto_rawDescGZIP() []byte {
	file_planload_v1_planload_proto_rawDescOnce.Do(func() {
		file_planload_v1_planload_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_planload_v1_planload_proto_rawDesc), len(file_planload_v1_planload_proto_rawDesc)))
	})
	return file_planload_v1_planload_proto_rawDescData
}

var file_planload_v1_planload_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_planload_v1_planload_proto_goTypes = []any{
	(*SubmitBlueprintRequest)(nil),  // 0: planload.v1.SubmitBlueprintRequest
	(*SubmitBlueprintResponse)(nil), // 1: planload.v1.SubmitBlueprintResponse
	(*GetJobRequest)(nil),           // 2: planload.v1.GetJobRequest
	(*GetJobResponse)(nil),          // 3: planload.v1.GetJobResponse
	(*Job)(nil),                     // 4: planload.v1.Job
	(*GetLoadSheetRequest)(nil),     // 5: planload.v1.GetLoadSheetRequest
	(*GetLoadSheetResponse)(nil),    // 6: planload.v1.GetLoadSheetResponse
}
var file_planload_v1_planload_proto_depIdxs = []int32{
	4, // 0: planload.v1.GetJobResponse.job:type_name -> planload.v1.Job
	0, // 1: planload.v1.PlanLoadService.SubmitBlueprint:input_type -> planload.v1.SubmitBlueprintRequest
	2, // 2: planload.v1.PlanLoadService.GetJob:input_type -> planload.v1.GetJobRequest
	5, // 3: planload.v1.PlanLoadService.GetLoadSheet:input_type -> planload.v1.GetLoadSheetRequest
	1, // 4: planload.v1.PlanLoadService.SubmitBlueprint:output_type -> planload.v1.SubmitBlueprintResponse
	3, // 5: planload.v1.PlanLoadService.GetJob:output_type -> planload.v1.GetJobResponse
	6, // 6: planload.v1.PlanLoadService.GetLoadSheet:output_type -> planload.v1.GetLoadSheetResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_planload_v1_planload_proto_init() }
func file_planload_v1_planload_proto_init() {
	if File_planload_v1_planload_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_planload_v1_planload_proto_rawDesc), len(file_planload_v1_planload_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_planload_v1_planload_proto_goTypes,
		DependencyIndexes: file_planload_v1_planload_proto_depIdxs,
		MessageInfos:      file_planload_v1_planload_proto_msgTypes,
	}.Build()
	File_planload_v1_planload_proto = out.File
	file_planload_v1_planload_proto_goTypes = nil
	file_planload_v1_planload_proto_depIdxs = nil
}
