// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: scriptsense/v1/scriptsense.proto

package scriptsensev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ScriptSenseService_SubmitScript_FullMethodName      = "/scriptsense.v1.ScriptSenseService/SubmitScript"
	ScriptSenseService_ResolveIdentity_FullMethodName   = "/scriptsense.v1.ScriptSenseService/ResolveIdentity"
	ScriptSenseService_OverrideGrade_FullMethodName     = "/scriptsense.v1.ScriptSenseService/OverrideGrade"
	ScriptSenseService_GetAnswerScript_FullMethodName   = "/scriptsense.v1.ScriptSenseService/GetAnswerScript"
	ScriptSenseService_ListAnswerScripts_FullMethodName = "/scriptsense.v1.ScriptSenseService/ListAnswerScripts"
	ScriptSenseService_ListAnswers_FullMethodName       = "/scriptsense.v1.ScriptSenseService/ListAnswers"
	ScriptSenseService_ResubmitScript_FullMethodName    = "/scriptsense.v1.ScriptSenseService/ResubmitScript"
)

// ScriptSenseServiceClient is the client API for ScriptSenseService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ScriptSenseService covers the answer script lifecycle: upload, identity
// resolution, inspection, and grade overrides.
type ScriptSenseServiceClient interface {
	// SubmitScript uploads one script image and starts processing. Identical
	// bytes for the same examination deduplicate to the existing script.
	SubmitScript(ctx context.Context, in *SubmitScriptRequest, opts ...grpc.CallOption) (*SubmitScriptResponse, error)
	// ResolveIdentity manually assigns a held script to a student by code, or
	// corrects the assignment of an already-identified script.
	ResolveIdentity(ctx context.Context, in *ResolveIdentityRequest, opts ...grpc.CallOption) (*ResolveIdentityResponse, error)
	// OverrideGrade sets a manual grade on one answer with a justification.
	OverrideGrade(ctx context.Context, in *OverrideGradeRequest, opts ...grpc.CallOption) (*OverrideGradeResponse, error)
	GetAnswerScript(ctx context.Context, in *GetAnswerScriptRequest, opts ...grpc.CallOption) (*GetAnswerScriptResponse, error)
	ListAnswerScripts(ctx context.Context, in *ListAnswerScriptsRequest, opts ...grpc.CallOption) (*ListAnswerScriptsResponse, error)
	ListAnswers(ctx context.Context, in *ListAnswersRequest, opts ...grpc.CallOption) (*ListAnswersResponse, error)
	// ResubmitScript clears stage outputs and re-runs the pipeline for a script.
	ResubmitScript(ctx context.Context, in *ResubmitScriptRequest, opts ...grpc.CallOption) (*ResubmitScriptResponse, error)
}

type scriptSenseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScriptSenseServiceClient(cc grpc.ClientConnInterface) ScriptSenseServiceClient {
	return &scriptSenseServiceClient{cc}
}

func (c *scriptSenseServiceClient) SubmitScript(ctx context.Context, in *SubmitScriptRequest, opts ...grpc.CallOption) (*SubmitScriptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitScriptResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_SubmitScript_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) ResolveIdentity(ctx context.Context, in *ResolveIdentityRequest, opts ...grpc.CallOption) (*ResolveIdentityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveIdentityResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_ResolveIdentity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) OverrideGrade(ctx context.Context, in *OverrideGradeRequest, opts ...grpc.CallOption) (*OverrideGradeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OverrideGradeResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_OverrideGrade_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) GetAnswerScript(ctx context.Context, in *GetAnswerScriptRequest, opts ...grpc.CallOption) (*GetAnswerScriptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAnswerScriptResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_GetAnswerScript_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) ListAnswerScripts(ctx context.Context, in *ListAnswerScriptsRequest, opts ...grpc.CallOption) (*ListAnswerScriptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAnswerScriptsResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_ListAnswerScripts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) ListAnswers(ctx context.Context, in *ListAnswersRequest, opts ...grpc.CallOption) (*ListAnswersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAnswersResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_ListAnswers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scriptSenseServiceClient) ResubmitScript(ctx context.Context, in *ResubmitScriptRequest, opts ...grpc.CallOption) (*ResubmitScriptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResubmitScriptResponse)
	err := c.cc.Invoke(ctx, ScriptSenseService_ResubmitScript_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScriptSenseServiceServer is the server API for ScriptSenseService service.
// All implementations must embed UnimplementedScriptSenseServiceServer
// for forward compatibility.
//
// ScriptSenseService covers the answer script lifecycle: upload, identity
// resolution, inspection, and grade overrides.
type ScriptSenseServiceServer interface {
	// SubmitScript uploads one script image and starts processing. Identical
	// bytes for the same examination deduplicate to the existing script.
	SubmitScript(context.Context, *SubmitScriptRequest) (*SubmitScriptResponse, error)
	// ResolveIdentity manually assigns a held script to a student by code, or
	// corrects the assignment of an already-identified script.
	ResolveIdentity(context.Context, *ResolveIdentityRequest) (*ResolveIdentityResponse, error)
	// OverrideGrade sets a manual grade on one answer with a justification.
	OverrideGrade(context.Context, *OverrideGradeRequest) (*OverrideGradeResponse, error)
	GetAnswerScript(context.Context, *GetAnswerScriptRequest) (*GetAnswerScriptResponse, error)
	ListAnswerScripts(context.Context, *ListAnswerScriptsRequest) (*ListAnswerScriptsResponse, error)
	ListAnswers(context.Context, *ListAnswersRequest) (*ListAnswersResponse, error)
	// ResubmitScript clears stage outputs and re-runs the pipeline for a script.
	ResubmitScript(context.Context, *ResubmitScriptRequest) (*ResubmitScriptResponse, error)
	mustEmbedUnimplementedScriptSenseServiceServer()
}

// UnimplementedScriptSenseServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScriptSenseServiceServer struct{}

func (UnimplementedScriptSenseServiceServer) SubmitScript(context.Context, *SubmitScriptRequest) (*SubmitScriptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitScript not implemented")
}
func (UnimplementedScriptSenseServiceServer) ResolveIdentity(context.Context, *ResolveIdentityRequest) (*ResolveIdentityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveIdentity not implemented")
}
func (UnimplementedScriptSenseServiceServer) OverrideGrade(context.Context, *OverrideGradeRequest) (*OverrideGradeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OverrideGrade not implemented")
}
func (UnimplementedScriptSenseServiceServer) GetAnswerScript(context.Context, *GetAnswerScriptRequest) (*GetAnswerScriptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAnswerScript not implemented")
}
func (UnimplementedScriptSenseServiceServer) ListAnswerScripts(context.Context, *ListAnswerScriptsRequest) (*ListAnswerScriptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAnswerScripts not implemented")
}
func (UnimplementedScriptSenseServiceServer) ListAnswers(context.Context, *ListAnswersRequest) (*ListAnswersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAnswers not implemented")
}
func (UnimplementedScriptSenseServiceServer) ResubmitScript(context.Context, *ResubmitScriptRequest) (*ResubmitScriptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResubmitScript not implemented")
}
func (UnimplementedScriptSenseServiceServer) mustEmbedUnimplementedScriptSenseServiceServer() {}
func (UnimplementedScriptSenseServiceServer) testEmbeddedByValue()                            {}

// UnsafeScriptSenseServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScriptSenseServiceServer will
// result in compilation errors.
type UnsafeScriptSenseServiceServer interface {
	mustEmbedUnimplementedScriptSenseServiceServer()
}

func RegisterScriptSenseServiceServer(s grpc.ServiceRegistrar, srv ScriptSenseServiceServer) {
	// If the following call pancis, it indicates UnimplementedScriptSenseServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScriptSenseService_ServiceDesc, srv)
}

func _ScriptSenseService_SubmitScript_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitScriptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).SubmitScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_SubmitScript_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).SubmitScript(ctx, req.(*SubmitScriptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_ResolveIdentity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveIdentityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).ResolveIdentity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_ResolveIdentity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).ResolveIdentity(ctx, req.(*ResolveIdentityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_OverrideGrade_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OverrideGradeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).OverrideGrade(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_OverrideGrade_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).OverrideGrade(ctx, req.(*OverrideGradeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_GetAnswerScript_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnswerScriptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).GetAnswerScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_GetAnswerScript_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).GetAnswerScript(ctx, req.(*GetAnswerScriptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_ListAnswerScripts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAnswerScriptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).ListAnswerScripts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_ListAnswerScripts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).ListAnswerScripts(ctx, req.(*ListAnswerScriptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_ListAnswers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAnswersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).ListAnswers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_ListAnswers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).ListAnswers(ctx, req.(*ListAnswersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScriptSenseService_ResubmitScript_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResubmitScriptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScriptSenseServiceServer).ResubmitScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScriptSenseService_ResubmitScript_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScriptSenseServiceServer).ResubmitScript(ctx, req.(*ResubmitScriptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScriptSenseService_ServiceDesc is the grpc.ServiceDesc for ScriptSenseService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScriptSenseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "scriptsense.v1.ScriptSenseService",
	HandlerType: (*ScriptSenseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitScript",
			Handler:    _ScriptSenseService_SubmitScript_Handler,
		},
		{
			MethodName: "ResolveIdentity",
			Handler:    _ScriptSenseService_ResolveIdentity_Handler,
		},
		{
			MethodName: "OverrideGrade",
			Handler:    _ScriptSenseService_OverrideGrade_Handler,
		},
		{
			MethodName: "GetAnswerScript",
			Handler:    _ScriptSenseService_GetAnswerScript_Handler,
		},
		{
			MethodName: "ListAnswerScripts",
			Handler:    _ScriptSenseService_ListAnswerScripts_Handler,
		},
		{
			MethodName: "ListAnswers",
			Handler:    _ScriptSenseService_ListAnswers_Handler,
		},
		{
			MethodName: "ResubmitScript",
			Handler:    _ScriptSenseService_ResubmitScript_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scriptsense/v1/scriptsense.proto",
}

const (
	ExportService_ExportResults_FullMethodName = "/scriptsense.v1.ExportService/ExportResults"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces downloadable artifacts.
type ExportServiceClient interface {
	// ExportResults returns an XLSX workbook of an examination's results.
	ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResultsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces downloadable artifacts.
type ExportServiceServer interface {
	// ExportResults returns an XLSX workbook of an examination's results.
	ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportResults not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportResults(ctx, req.(*ExportResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "scriptsense.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportResults",
			Handler:    _ExportService_ExportResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scriptsense/v1/scriptsense.proto",
}
