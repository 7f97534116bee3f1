// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: scriptsense/v1/scriptsense.proto

package scriptsensev1

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

type AnswerScript struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	Id                        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ExaminationId             string                 `protobuf:"bytes,2,opt,name=examination_id,json=examinationId,proto3" json:"examination_id,omitempty"`
	StudentId                 string                 `protobuf:"bytes,3,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"` // empty while unresolved
	IdentificationMethod      string                 `protobuf:"bytes,4,opt,name=identification_method,json=identificationMethod,proto3" json:"identification_method,omitempty"`
	ProcessingStatus          string                 `protobuf:"bytes,5,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	Version                   int32                  `protobuf:"varint,6,opt,name=version,proto3" json:"version,omitempty"`
	ScriptNumber              int32                  `protobuf:"varint,7,opt,name=script_number,json=scriptNumber,proto3" json:"script_number,omitempty"`
	ImagePath                 string                 `protobuf:"bytes,8,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	FullExtractedText         string                 `protobuf:"bytes,9,opt,name=full_extracted_text,json=fullExtractedText,proto3" json:"full_extracted_text,omitempty"`
	OverallConfidence         float64                `protobuf:"fixed64,10,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	PredominantMethod         string                 `protobuf:"bytes,11,opt,name=predominant_method,json=predominantMethod,proto3" json:"predominant_method,omitempty"`
	ConfidenceLabel           string                 `protobuf:"bytes,12,opt,name=confidence_label,json=confidenceLabel,proto3" json:"confidence_label,omitempty"`
	Flags                     []string               `protobuf:"bytes,13,rep,name=flags,proto3" json:"flags,omitempty"`
	ErrorReason               string                 `protobuf:"bytes,14,opt,name=error_reason,json=errorReason,proto3" json:"error_reason,omitempty"`
	EnableMisconductDetection bool                   `protobuf:"varint,15,opt,name=enable_misconduct_detection,json=enableMisconductDetection,proto3" json:"enable_misconduct_detection,omitempty"`
	UploadedAt                string                 `protobuf:"bytes,16,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	UpdatedAt                 string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *AnswerScript) Reset() {
	*x = AnswerScript{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnswerScript) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnswerScript) ProtoMessage() {}

func (x *AnswerScript) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnswerScript.ProtoReflect.Descriptor instead.
func (*AnswerScript) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{0}
}

func (x *AnswerScript) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnswerScript) GetExaminationId() string {
	if x != nil {
		return x.ExaminationId
	}
	return ""
}

func (x *AnswerScript) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

func (x *AnswerScript) GetIdentificationMethod() string {
	if x != nil {
		return x.IdentificationMethod
	}
	return ""
}

func (x *AnswerScript) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *AnswerScript) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *AnswerScript) GetScriptNumber() int32 {
	if x != nil {
		return x.ScriptNumber
	}
	return 0
}

func (x *AnswerScript) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *AnswerScript) GetFullExtractedText() string {
	if x != nil {
		return x.FullExtractedText
	}
	return ""
}

func (x *AnswerScript) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *AnswerScript) GetPredominantMethod() string {
	if x != nil {
		return x.PredominantMethod
	}
	return ""
}

func (x *AnswerScript) GetConfidenceLabel() string {
	if x != nil {
		return x.ConfidenceLabel
	}
	return ""
}

func (x *AnswerScript) GetFlags() []string {
	if x != nil {
		return x.Flags
	}
	return nil
}

func (x *AnswerScript) GetErrorReason() string {
	if x != nil {
		return x.ErrorReason
	}
	return ""
}

func (x *AnswerScript) GetEnableMisconductDetection() bool {
	if x != nil {
		return x.EnableMisconductDetection
	}
	return false
}

func (x *AnswerScript) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *AnswerScript) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Answer struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Id                     string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AnswerScriptId         string                 `protobuf:"bytes,2,opt,name=answer_script_id,json=answerScriptId,proto3" json:"answer_script_id,omitempty"`
	QuestionId             string                 `protobuf:"bytes,3,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	ExtractedText          string                 `protobuf:"bytes,4,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	SegmentationConfidence float64                `protobuf:"fixed64,5,opt,name=segmentation_confidence,json=segmentationConfidence,proto3" json:"segmentation_confidence,omitempty"`
	SegmentationMethod     string                 `protobuf:"bytes,6,opt,name=segmentation_method,json=segmentationMethod,proto3" json:"segmentation_method,omitempty"`
	AssignedGrade          float64                `protobuf:"fixed64,7,opt,name=assigned_grade,json=assignedGrade,proto3" json:"assigned_grade,omitempty"`
	HasAssignedGrade       bool                   `protobuf:"varint,8,opt,name=has_assigned_grade,json=hasAssignedGrade,proto3" json:"has_assigned_grade,omitempty"`
	ManualGrade            float64                `protobuf:"fixed64,9,opt,name=manual_grade,json=manualGrade,proto3" json:"manual_grade,omitempty"`
	IsOverridden           bool                   `protobuf:"varint,10,opt,name=is_overridden,json=isOverridden,proto3" json:"is_overridden,omitempty"`
	OverrideJustification  string                 `protobuf:"bytes,11,opt,name=override_justification,json=overrideJustification,proto3" json:"override_justification,omitempty"`
	LlmExplanation         string                 `protobuf:"bytes,12,opt,name=llm_explanation,json=llmExplanation,proto3" json:"llm_explanation,omitempty"`
	Flags                  []string               `protobuf:"bytes,13,rep,name=flags,proto3" json:"flags,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *Answer) Reset() {
	*x = Answer{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Answer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Answer) ProtoMessage() {}

func (x *Answer) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Answer.ProtoReflect.Descriptor instead.
func (*Answer) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{1}
}

func (x *Answer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Answer) GetAnswerScriptId() string {
	if x != nil {
		return x.AnswerScriptId
	}
	return ""
}

func (x *Answer) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *Answer) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

func (x *Answer) GetSegmentationConfidence() float64 {
	if x != nil {
		return x.SegmentationConfidence
	}
	return 0
}

func (x *Answer) GetSegmentationMethod() string {
	if x != nil {
		return x.SegmentationMethod
	}
	return ""
}

func (x *Answer) GetAssignedGrade() float64 {
	if x != nil {
		return x.AssignedGrade
	}
	return 0
}

func (x *Answer) GetHasAssignedGrade() bool {
	if x != nil {
		return x.HasAssignedGrade
	}
	return false
}

func (x *Answer) GetManualGrade() float64 {
	if x != nil {
		return x.ManualGrade
	}
	return 0
}

func (x *Answer) GetIsOverridden() bool {
	if x != nil {
		return x.IsOverridden
	}
	return false
}

func (x *Answer) GetOverrideJustification() string {
	if x != nil {
		return x.OverrideJustification
	}
	return ""
}

func (x *Answer) GetLlmExplanation() string {
	if x != nil {
		return x.LlmExplanation
	}
	return ""
}

func (x *Answer) GetFlags() []string {
	if x != nil {
		return x.Flags
	}
	return nil
}

type SubmitScriptRequest struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	ExaminationId             string                 `protobuf:"bytes,1,opt,name=examination_id,json=examinationId,proto3" json:"examination_id,omitempty"`
	Filename                  string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Data                      []byte                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	StudentCodeHint           string                 `protobuf:"bytes,4,opt,name=student_code_hint,json=studentCodeHint,proto3" json:"student_code_hint,omitempty"` // optional manual identification hint
	ScriptNumber              int32                  `protobuf:"varint,5,opt,name=script_number,json=scriptNumber,proto3" json:"script_number,omitempty"`
	CustomInstructions        string                 `protobuf:"bytes,6,opt,name=custom_instructions,json=customInstructions,proto3" json:"custom_instructions,omitempty"`
	EnableMisconductDetection bool                   `protobuf:"varint,7,opt,name=enable_misconduct_detection,json=enableMisconductDetection,proto3" json:"enable_misconduct_detection,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *SubmitScriptRequest) Reset() {
	*x = SubmitScriptRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScriptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScriptRequest) ProtoMessage() {}

func (x *SubmitScriptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScriptRequest.ProtoReflect.Descriptor instead.
func (*SubmitScriptRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitScriptRequest) GetExaminationId() string {
	if x != nil {
		return x.ExaminationId
	}
	return ""
}

func (x *SubmitScriptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitScriptRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *SubmitScriptRequest) GetStudentCodeHint() string {
	if x != nil {
		return x.StudentCodeHint
	}
	return ""
}

func (x *SubmitScriptRequest) GetScriptNumber() int32 {
	if x != nil {
		return x.ScriptNumber
	}
	return 0
}

func (x *SubmitScriptRequest) GetCustomInstructions() string {
	if x != nil {
		return x.CustomInstructions
	}
	return ""
}

func (x *SubmitScriptRequest) GetEnableMisconductDetection() bool {
	if x != nil {
		return x.EnableMisconductDetection
	}
	return false
}

type SubmitScriptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Script        *AnswerScript          `protobuf:"bytes,1,opt,name=script,proto3" json:"script,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScriptResponse) Reset() {
	*x = SubmitScriptResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScriptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScriptResponse) ProtoMessage() {}

func (x *SubmitScriptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScriptResponse.ProtoReflect.Descriptor instead.
func (*SubmitScriptResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitScriptResponse) GetScript() *AnswerScript {
	if x != nil {
		return x.Script
	}
	return nil
}

type ResolveIdentityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScriptId      string                 `protobuf:"bytes,1,opt,name=script_id,json=scriptId,proto3" json:"script_id,omitempty"`
	StudentCode   string                 `protobuf:"bytes,2,opt,name=student_code,json=studentCode,proto3" json:"student_code,omitempty"` // for held scripts
	StudentId     string                 `protobuf:"bytes,3,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`       // for post-identification corrections
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveIdentityRequest) Reset() {
	*x = ResolveIdentityRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveIdentityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveIdentityRequest) ProtoMessage() {}

func (x *ResolveIdentityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveIdentityRequest.ProtoReflect.Descriptor instead.
func (*ResolveIdentityRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{4}
}

func (x *ResolveIdentityRequest) GetScriptId() string {
	if x != nil {
		return x.ScriptId
	}
	return ""
}

func (x *ResolveIdentityRequest) GetStudentCode() string {
	if x != nil {
		return x.StudentCode
	}
	return ""
}

func (x *ResolveIdentityRequest) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

func (x *ResolveIdentityRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ResolveIdentityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Script        *AnswerScript          `protobuf:"bytes,1,opt,name=script,proto3" json:"script,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveIdentityResponse) Reset() {
	*x = ResolveIdentityResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveIdentityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveIdentityResponse) ProtoMessage() {}

func (x *ResolveIdentityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveIdentityResponse.ProtoReflect.Descriptor instead.
func (*ResolveIdentityResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{5}
}

func (x *ResolveIdentityResponse) GetScript() *AnswerScript {
	if x != nil {
		return x.Script
	}
	return nil
}

type OverrideGradeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AnswerId      string                 `protobuf:"bytes,1,opt,name=answer_id,json=answerId,proto3" json:"answer_id,omitempty"`
	ManualGrade   float64                `protobuf:"fixed64,2,opt,name=manual_grade,json=manualGrade,proto3" json:"manual_grade,omitempty"`
	Justification string                 `protobuf:"bytes,3,opt,name=justification,proto3" json:"justification,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OverrideGradeRequest) Reset() {
	*x = OverrideGradeRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OverrideGradeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OverrideGradeRequest) ProtoMessage() {}

func (x *OverrideGradeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OverrideGradeRequest.ProtoReflect.Descriptor instead.
func (*OverrideGradeRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{6}
}

func (x *OverrideGradeRequest) GetAnswerId() string {
	if x != nil {
		return x.AnswerId
	}
	return ""
}

func (x *OverrideGradeRequest) GetManualGrade() float64 {
	if x != nil {
		return x.ManualGrade
	}
	return 0
}

func (x *OverrideGradeRequest) GetJustification() string {
	if x != nil {
		return x.Justification
	}
	return ""
}

type OverrideGradeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Answer        *Answer                `protobuf:"bytes,1,opt,name=answer,proto3" json:"answer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OverrideGradeResponse) Reset() {
	*x = OverrideGradeResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OverrideGradeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OverrideGradeResponse) ProtoMessage() {}

func (x *OverrideGradeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OverrideGradeResponse.ProtoReflect.Descriptor instead.
func (*OverrideGradeResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{7}
}

func (x *OverrideGradeResponse) GetAnswer() *Answer {
	if x != nil {
		return x.Answer
	}
	return nil
}

type GetAnswerScriptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScriptId      string                 `protobuf:"bytes,1,opt,name=script_id,json=scriptId,proto3" json:"script_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnswerScriptRequest) Reset() {
	*x = GetAnswerScriptRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnswerScriptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnswerScriptRequest) ProtoMessage() {}

func (x *GetAnswerScriptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnswerScriptRequest.ProtoReflect.Descriptor instead.
func (*GetAnswerScriptRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{8}
}

func (x *GetAnswerScriptRequest) GetScriptId() string {
	if x != nil {
		return x.ScriptId
	}
	return ""
}

type GetAnswerScriptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Script        *AnswerScript          `protobuf:"bytes,1,opt,name=script,proto3" json:"script,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnswerScriptResponse) Reset() {
	*x = GetAnswerScriptResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnswerScriptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnswerScriptResponse) ProtoMessage() {}

func (x *GetAnswerScriptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnswerScriptResponse.ProtoReflect.Descriptor instead.
func (*GetAnswerScriptResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{9}
}

func (x *GetAnswerScriptResponse) GetScript() *AnswerScript {
	if x != nil {
		return x.Script
	}
	return nil
}

type ListAnswerScriptsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Exactly one of examination_id or student_id must be set.
	ExaminationId string `protobuf:"bytes,1,opt,name=examination_id,json=examinationId,proto3" json:"examination_id,omitempty"`
	StudentId     string `protobuf:"bytes,2,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnswerScriptsRequest) Reset() {
	*x = ListAnswerScriptsRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnswerScriptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnswerScriptsRequest) ProtoMessage() {}

func (x *ListAnswerScriptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnswerScriptsRequest.ProtoReflect.Descriptor instead.
func (*ListAnswerScriptsRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{10}
}

func (x *ListAnswerScriptsRequest) GetExaminationId() string {
	if x != nil {
		return x.ExaminationId
	}
	return ""
}

func (x *ListAnswerScriptsRequest) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

type ListAnswerScriptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scripts       []*AnswerScript        `protobuf:"bytes,1,rep,name=scripts,proto3" json:"scripts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnswerScriptsResponse) Reset() {
	*x = ListAnswerScriptsResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnswerScriptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnswerScriptsResponse) ProtoMessage() {}

func (x *ListAnswerScriptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnswerScriptsResponse.ProtoReflect.Descriptor instead.
func (*ListAnswerScriptsResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{11}
}

func (x *ListAnswerScriptsResponse) GetScripts() []*AnswerScript {
	if x != nil {
		return x.Scripts
	}
	return nil
}

type ListAnswersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScriptId      string                 `protobuf:"bytes,1,opt,name=script_id,json=scriptId,proto3" json:"script_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnswersRequest) Reset() {
	*x = ListAnswersRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnswersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnswersRequest) ProtoMessage() {}

func (x *ListAnswersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnswersRequest.ProtoReflect.Descriptor instead.
func (*ListAnswersRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{12}
}

func (x *ListAnswersRequest) GetScriptId() string {
	if x != nil {
		return x.ScriptId
	}
	return ""
}

type ListAnswersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Answers       []*Answer              `protobuf:"bytes,1,rep,name=answers,proto3" json:"answers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnswersResponse) Reset() {
	*x = ListAnswersResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnswersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnswersResponse) ProtoMessage() {}

func (x *ListAnswersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnswersResponse.ProtoReflect.Descriptor instead.
func (*ListAnswersResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{13}
}

func (x *ListAnswersResponse) GetAnswers() []*Answer {
	if x != nil {
		return x.Answers
	}
	return nil
}

type ResubmitScriptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScriptId      string                 `protobuf:"bytes,1,opt,name=script_id,json=scriptId,proto3" json:"script_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResubmitScriptRequest) Reset() {
	*x = ResubmitScriptRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResubmitScriptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResubmitScriptRequest) ProtoMessage() {}

func (x *ResubmitScriptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResubmitScriptRequest.ProtoReflect.Descriptor instead.
func (*ResubmitScriptRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{14}
}

func (x *ResubmitScriptRequest) GetScriptId() string {
	if x != nil {
		return x.ScriptId
	}
	return ""
}

type ResubmitScriptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Script        *AnswerScript          `protobuf:"bytes,1,opt,name=script,proto3" json:"script,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResubmitScriptResponse) Reset() {
	*x = ResubmitScriptResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResubmitScriptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResubmitScriptResponse) ProtoMessage() {}

func (x *ResubmitScriptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResubmitScriptResponse.ProtoReflect.Descriptor instead.
func (*ResubmitScriptResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{15}
}

func (x *ResubmitScriptResponse) GetScript() *AnswerScript {
	if x != nil {
		return x.Script
	}
	return nil
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExaminationId string                 `protobuf:"bytes,1,opt,name=examination_id,json=examinationId,proto3" json:"examination_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{16}
}

func (x *ExportResultsRequest) GetExaminationId() string {
	if x != nil {
		return x.ExaminationId
	}
	return ""
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scriptsense_v1_scriptsense_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_scriptsense_v1_scriptsense_proto_rawDescGZIP(), []int{17}
}

func (x *ExportResultsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportResultsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_scriptsense_v1_scriptsense_proto protoreflect.FileDescriptor

const file_scriptsense_v1_scriptsense_proto_rawDesc = "" +
	"\n" +
	" scriptsense/v1/scriptsense.proto\x12\x0escriptsense.v1\"\x96\x05\n" +
	"\fAnswerScript\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0eexamination_id\x18\x02 \x01(\tR\rexaminationId\x12\x1d\n" +
	"\n" +
	"student_id\x18\x03 \x01(\tR\tstudentId\x123\n" +
	"\x15identification_method\x18\x04 \x01(\tR\x14identificationMethod\x12+\n" +
	"\x11processing_status\x18\x05 \x01(\tR\x10processingStatus\x12\x18\n" +
	"\aversion\x18\x06 \x01(\x05R\aversion\x12#\n" +
	"\rscript_number\x18\a \x01(\x05R\fscriptNumber\x12\x1d\n" +
	"\n" +
	"image_path\x18\b \x01(\tR\timagePath\x12.\n" +
	"\x13full_extracted_text\x18\t \x01(\tR\x11fullExtractedText\x12-\n" +
	"\x12overall_confidence\x18\n" +
	" \x01(\x01R\x11overallConfidence\x12-\n" +
	"\x12predominant_method\x18\v \x01(\tR\x11predominantMethod\x12)\n" +
	"\x10confidence_label\x18\f \x01(\tR\x0fconfidenceLabel\x12\x14\n" +
	"\x05flags\x18\r \x03(\tR\x05flags\x12!\n" +
	"\ferror_reason\x18\x0e \x01(\tR\verrorReason\x12>\n" +
	"\x1benable_misconduct_detection\x18\x0f \x01(\bR\x19enableMisconductDetection\x12\x1f\n" +
	"\vuploaded_at\x18\x10 \x01(\tR\n" +
	"uploadedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\x87\x04\n" +
	"\x06Answer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12(\n" +
	"\x10answer_script_id\x18\x02 \x01(\tR\x0eanswerScriptId\x12\x1f\n" +
	"\vquestion_id\x18\x03 \x01(\tR\n" +
	"questionId\x12%\n" +
	"\x0eextracted_text\x18\x04 \x01(\tR\rextractedText\x127\n" +
	"\x17segmentation_confidence\x18\x05 \x01(\x01R\x16segmentationConfidence\x12/\n" +
	"\x13segmentation_method\x18\x06 \x01(\tR\x12segmentationMethod\x12%\n" +
	"\x0eassigned_grade\x18\a \x01(\x01R\rassignedGrade\x12,\n" +
	"\x12has_assigned_grade\x18\b \x01(\bR\x10hasAssignedGrade\x12!\n" +
	"\fmanual_grade\x18\t \x01(\x01R\vmanualGrade\x12#\n" +
	"\ris_overridden\x18\n" +
	" \x01(\bR\fisOverridden\x125\n" +
	"\x16override_justification\x18\v \x01(\tR\x15overrideJustification\x12'\n" +
	"\x0fllm_explanation\x18\f \x01(\tR\x0ellmExplanation\x12\x14\n" +
	"\x05flags\x18\r \x03(\tR\x05flags\"\xae\x02\n" +
	"\x13SubmitScriptRequest\x12%\n" +
	"\x0eexamination_id\x18\x01 \x01(\tR\rexaminationId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x12\n" +
	"\x04data\x18\x03 \x01(\fR\x04data\x12*\n" +
	"\x11student_code_hint\x18\x04 \x01(\tR\x0fstudentCodeHint\x12#\n" +
	"\rscript_number\x18\x05 \x01(\x05R\fscriptNumber\x12/\n" +
	"\x13custom_instructions\x18\x06 \x01(\tR\x12customInstructions\x12>\n" +
	"\x1benable_misconduct_detection\x18\a \x01(\bR\x19enableMisconductDetection\"L\n" +
	"\x14SubmitScriptResponse\x124\n" +
	"\x06script\x18\x01 \x01(\v2\x1c.scriptsense.v1.AnswerScriptR\x06script\"\x8f\x01\n" +
	"\x16ResolveIdentityRequest\x12\x1b\n" +
	"\tscript_id\x18\x01 \x01(\tR\bscriptId\x12!\n" +
	"\fstudent_code\x18\x02 \x01(\tR\vstudentCode\x12\x1d\n" +
	"\n" +
	"student_id\x18\x03 \x01(\tR\tstudentId\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"O\n" +
	"\x17ResolveIdentityResponse\x124\n" +
	"\x06script\x18\x01 \x01(\v2\x1c.scriptsense.v1.AnswerScriptR\x06script\"|\n" +
	"\x14OverrideGradeRequest\x12\x1b\n" +
	"\tanswer_id\x18\x01 \x01(\tR\banswerId\x12!\n" +
	"\fmanual_grade\x18\x02 \x01(\x01R\vmanualGrade\x12$\n" +
	"\rjustification\x18\x03 \x01(\tR\rjustification\"G\n" +
	"\x15OverrideGradeResponse\x12.\n" +
	"\x06answer\x18\x01 \x01(\v2\x16.scriptsense.v1.AnswerR\x06answer\"5\n" +
	"\x16GetAnswerScriptRequest\x12\x1b\n" +
	"\tscript_id\x18\x01 \x01(\tR\bscriptId\"O\n" +
	"\x17GetAnswerScriptResponse\x124\n" +
	"\x06script\x18\x01 \x01(\v2\x1c.scriptsense.v1.AnswerScriptR\x06script\"`\n" +
	"\x18ListAnswerScriptsRequest\x12%\n" +
	"\x0eexamination_id\x18\x01 \x01(\tR\rexaminationId\x12\x1d\n" +
	"\n" +
	"student_id\x18\x02 \x01(\tR\tstudentId\"S\n" +
	"\x19ListAnswerScriptsResponse\x126\n" +
	"\ascripts\x18\x01 \x03(\v2\x1c.scriptsense.v1.AnswerScriptR\ascripts\"1\n" +
	"\x12ListAnswersRequest\x12\x1b\n" +
	"\tscript_id\x18\x01 \x01(\tR\bscriptId\"G\n" +
	"\x13ListAnswersResponse\x120\n" +
	"\aanswers\x18\x01 \x03(\v2\x16.scriptsense.v1.AnswerR\aanswers\"4\n" +
	"\x15ResubmitScriptRequest\x12\x1b\n" +
	"\tscript_id\x18\x01 \x01(\tR\bscriptId\"N\n" +
	"\x16ResubmitScriptResponse\x124\n" +
	"\x06script\x18\x01 \x01(\v2\x1c.scriptsense.v1.AnswerScriptR\x06script\"=\n" +
	"\x14ExportResultsRequest\x12%\n" +
	"\x0eexamination_id\x18\x01 \x01(\tR\rexaminationId\"G\n" +
	"\x15ExportResultsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xb8\x05\n" +
	"\x12ScriptSenseService\x12Y\n" +
	"\fSubmitScript\x12#.scriptsense.v1.SubmitScriptRequest\x1a$.scriptsense.v1.SubmitScriptResponse\x12b\n" +
	"\x0fResolveIdentity\x12&.scriptsense.v1.ResolveIdentityRequest\x1a'.scriptsense.v1.ResolveIdentityResponse\x12\\\n" +
	"\rOverrideGrade\x12$.scriptsense.v1.OverrideGradeRequest\x1a%.scriptsense.v1.OverrideGradeResponse\x12b\n" +
	"\x0fGetAnswerScript\x12&.scriptsense.v1.GetAnswerScriptRequest\x1a'.scriptsense.v1.GetAnswerScriptResponse\x12h\n" +
	"\x11ListAnswerScripts\x12(.scriptsense.v1.ListAnswerScriptsRequest\x1a).scriptsense.v1.ListAnswerScriptsResponse\x12V\n" +
	"\vListAnswers\x12\".scriptsense.v1.ListAnswersRequest\x1a#.scriptsense.v1.ListAnswersResponse\x12_\n" +
	"\x0eResubmitScript\x12%.scriptsense.v1.ResubmitScriptRequest\x1a&.scriptsense.v1.ResubmitScriptResponse2m\n" +
	"\rExportService\x12\\\n" +
	"\rExportResults\x12$.scriptsense.v1.ExportResultsRequest\x1a%.scriptsense.v1.ExportResultsResponseB\\ZZgithub.com/InsightEd01/script-sense-grade-ai-sub001/gen/proto/scriptsense/v1;scriptsensev1b\x06proto3"

var (
	file_scriptsense_v1_scriptsense_proto_rawDescOnce sync.Once
	file_scriptsense_v1_scriptsense_proto_rawDescData []byte
)

func file_scriptsense_v1_scriptsense_proto_rawDescGZIP() []byte {
	file_scriptsense_v1_scriptsense_proto_rawDescOnce.Do(func() {
		file_scriptsense_v1_scriptsense_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scriptsense_v1_scriptsense_proto_rawDesc), len(file_scriptsense_v1_scriptsense_proto_rawDesc)))
	})
	return file_scriptsense_v1_scriptsense_proto_rawDescData
}

var file_scriptsense_v1_scriptsense_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_scriptsense_v1_scriptsense_proto_goTypes = []any{
	(*AnswerScript)(nil),              // 0: scriptsense.v1.AnswerScript
	(*Answer)(nil),                    // 1: scriptsense.v1.Answer
	(*SubmitScriptRequest)(nil),       // 2: scriptsense.v1.SubmitScriptRequest
	(*SubmitScriptResponse)(nil),      // 3: scriptsense.v1.SubmitScriptResponse
	(*ResolveIdentityRequest)(nil),    // 4: scriptsense.v1.ResolveIdentityRequest
	(*ResolveIdentityResponse)(nil),   // 5: scriptsense.v1.ResolveIdentityResponse
	(*OverrideGradeRequest)(nil),      // 6: scriptsense.v1.OverrideGradeRequest
	(*OverrideGradeResponse)(nil),     // 7: scriptsense.v1.OverrideGradeResponse
	(*GetAnswerScriptRequest)(nil),    // 8: scriptsense.v1.GetAnswerScriptRequest
	(*GetAnswerScriptResponse)(nil),   // 9: scriptsense.v1.GetAnswerScriptResponse
	(*ListAnswerScriptsRequest)(nil),  // 10: scriptsense.v1.ListAnswerScriptsRequest
	(*ListAnswerScriptsResponse)(nil), // 11: scriptsense.v1.ListAnswerScriptsResponse
	(*ListAnswersRequest)(nil),        // 12: scriptsense.v1.ListAnswersRequest
	(*ListAnswersResponse)(nil),       // 13: scriptsense.v1.ListAnswersResponse
	(*ResubmitScriptRequest)(nil),     // 14: scriptsense.v1.ResubmitScriptRequest
	(*ResubmitScriptResponse)(nil),    // 15: scriptsense.v1.ResubmitScriptResponse
	(*ExportResultsRequest)(nil),      // 16: scriptsense.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil),     // 17: scriptsense.v1.ExportResultsResponse
}
var file_scriptsense_v1_scriptsense_proto_depIdxs = []int32{
	0,  // 0: scriptsense.v1.SubmitScriptResponse.script:type_name -> scriptsense.v1.AnswerScript
	0,  // 1: scriptsense.v1.ResolveIdentityResponse.script:type_name -> scriptsense.v1.AnswerScript
	1,  // 2: scriptsense.v1.OverrideGradeResponse.answer:type_name -> scriptsense.v1.Answer
	0,  // 3: scriptsense.v1.GetAnswerScriptResponse.script:type_name -> scriptsense.v1.AnswerScript
	0,  // 4: scriptsense.v1.ListAnswerScriptsResponse.scripts:type_name -> scriptsense.v1.AnswerScript
	1,  // 5: scriptsense.v1.ListAnswersResponse.answers:type_name -> scriptsense.v1.Answer
	0,  // 6: scriptsense.v1.ResubmitScriptResponse.script:type_name -> scriptsense.v1.AnswerScript
	2,  // 7: scriptsense.v1.ScriptSenseService.SubmitScript:input_type -> scriptsense.v1.SubmitScriptRequest
	4,  // 8: scriptsense.v1.ScriptSenseService.ResolveIdentity:input_type -> scriptsense.v1.ResolveIdentityRequest
	6,  // 9: scriptsense.v1.ScriptSenseService.OverrideGrade:input_type -> scriptsense.v1.OverrideGradeRequest
	8,  // 10: scriptsense.v1.ScriptSenseService.GetAnswerScript:input_type -> scriptsense.v1.GetAnswerScriptRequest
	10, // 11: scriptsense.v1.ScriptSenseService.ListAnswerScripts:input_type -> scriptsense.v1.ListAnswerScriptsRequest
	12, // 12: scriptsense.v1.ScriptSenseService.ListAnswers:input_type -> scriptsense.v1.ListAnswersRequest
	14, // 13: scriptsense.v1.ScriptSenseService.ResubmitScript:input_type -> scriptsense.v1.ResubmitScriptRequest
	16, // 14: scriptsense.v1.ExportService.ExportResults:input_type -> scriptsense.v1.ExportResultsRequest
	3,  // 15: scriptsense.v1.ScriptSenseService.SubmitScript:output_type -> scriptsense.v1.SubmitScriptResponse
	5,  // 16: scriptsense.v1.ScriptSenseService.ResolveIdentity:output_type -> scriptsense.v1.ResolveIdentityResponse
	7,  // 17: scriptsense.v1.ScriptSenseService.OverrideGrade:output_type -> scriptsense.v1.OverrideGradeResponse
	9,  // 18: scriptsense.v1.ScriptSenseService.GetAnswerScript:output_type -> scriptsense.v1.GetAnswerScriptResponse
	11, // 19: scriptsense.v1.ScriptSenseService.ListAnswerScripts:output_type -> scriptsense.v1.ListAnswerScriptsResponse
	13, // 20: scriptsense.v1.ScriptSenseService.ListAnswers:output_type -> scriptsense.v1.ListAnswersResponse
	15, // 21: scriptsense.v1.ScriptSenseService.ResubmitScript:output_type -> scriptsense.v1.ResubmitScriptResponse
	17, // 22: scriptsense.v1.ExportService.ExportResults:output_type -> scriptsense.v1.ExportResultsResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_scriptsense_v1_scriptsense_proto_init() }
func file_scriptsense_v1_scriptsense_proto_init() {
	if File_scriptsense_v1_scriptsense_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scriptsense_v1_scriptsense_proto_rawDesc), len(file_scriptsense_v1_scriptsense_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_scriptsense_v1_scriptsense_proto_goTypes,
		DependencyIndexes: file_scriptsense_v1_scriptsense_proto_depIdxs,
		MessageInfos:      file_scriptsense_v1_scriptsense_proto_msgTypes,
	}.Build()
	File_scriptsense_v1_scriptsense_proto = out.File
	file_scriptsense_v1_scriptsense_proto_goTypes = nil
	file_scriptsense_v1_scriptsense_proto_depIdxs = nil
}
