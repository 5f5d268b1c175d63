// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: planload/v1/planload.proto

package planloadv1

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
	PlanLoadService_SubmitBlueprint_FullMethodName = "/planload.v1.PlanLoadService/SubmitBlueprint"
	PlanLoadService_GetJob_FullMethodName          = "/planload.v1.PlanLoadService/GetJob"
	PlanLoadService_GetLoadSheet_FullMethodName    = "/planload.v1.PlanLoadService/GetLoadSheet"
)

// PlanLoadServiceClient is the client API for PlanLoadService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PlanLoadService accepts blueprint PDFs and serves the resulting Manual J
// load calculations.
type PlanLoadServiceClient interface {
	// SubmitBlueprint validates the document, registers it, and queues an
	// extraction job. Processing is asynchronous; poll GetJob for the outcome.
	SubmitBlueprint(ctx context.Context, in *SubmitBlueprintRequest, opts ...grpc.CallOption) (*SubmitBlueprintResponse, error)
	// GetJob returns the current state of one extraction job.
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	// GetLoadSheet exports a calculated job as an XLSX workbook.
	GetLoadSheet(ctx context.Context, in *GetLoadSheetRequest, opts ...grpc.CallOption) (*GetLoadSheetResponse, error)
}

type planLoadServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlanLoadServiceClient(cc grpc.ClientConnInterface) PlanLoadServiceClient {
	return &planLoadServiceClient{cc}
}

func (c *planLoadServiceClient) SubmitBlueprint(ctx context.Context, in *SubmitBlueprintRequest, opts ...grpc.CallOption) (*SubmitBlueprintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitBlueprintResponse)
	err := c.cc.Invoke(ctx, PlanLoadService_SubmitBlueprint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planLoadServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, PlanLoadService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planLoadServiceClient) GetLoadSheet(ctx context.Context, in *GetLoadSheetRequest, opts ...grpc.CallOption) (*GetLoadSheetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLoadSheetResponse)
	err := c.cc.Invoke(ctx, PlanLoadService_GetLoadSheet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlanLoadServiceServer is the server API for PlanLoadService service.
// All implementations must embed UnimplementedPlanLoadServiceServer
// for forward compatibility.
//
// PlanLoadService accepts blueprint PDFs and serves the resulting Manual J
// load calculations.
type PlanLoadServiceServer interface {
	// SubmitBlueprint validates the document, registers it, and queues an
	// extraction job. Processing is asynchronous; poll GetJob for the outcome.
	SubmitBlueprint(context.Context, *SubmitBlueprintRequest) (*SubmitBlueprintResponse, error)
	// GetJob returns the current state of one extraction job.
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	// GetLoadSheet exports a calculated job as an XLSX workbook.
	GetLoadSheet(context.Context, *GetLoadSheetRequest) (*GetLoadSheetResponse, error)
	mustEmbedUnimplementedPlanLoadServiceServer()
}

// UnimplementedPlanLoadServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlanLoadServiceServer struct{}

func (UnimplementedPlanLoadServiceServer) SubmitBlueprint(context.Context, *SubmitBlueprintRequest) (*SubmitBlueprintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitBlueprint not implemented")
}
func (UnimplementedPlanLoadServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedPlanLoadServiceServer) GetLoadSheet(context.Context, *GetLoadSheetRequest) (*GetLoadSheetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoadSheet not implemented")
}
func (UnimplementedPlanLoadServiceServer) mustEmbedUnimplementedPlanLoadServiceServer() {}
func (UnimplementedPlanLoadServiceServer) testEmbeddedByValue()                         {}

// UnsafePlanLoadServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlanLoadServiceServer will
// result in compilation errors.
type UnsafePlanLoadServiceServer interface {
	mustEmbedUnimplementedPlanLoadServiceServer()
}

func RegisterPlanLoadServiceServer(s grpc.ServiceRegistrar, srv PlanLoadServiceServer) {
	// If the following call pancis, it indicates UnimplementedPlanLoadServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlanLoadService_ServiceDesc, srv)
}

func _PlanLoadService_SubmitBlueprint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitBlueprintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanLoadServiceServer).SubmitBlueprint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanLoadService_SubmitBlueprint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanLoadServiceServer).SubmitBlueprint(ctx, req.(*SubmitBlueprintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanLoadService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanLoadServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanLoadService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanLoadServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanLoadService_GetLoadSheet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoadSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanLoadServiceServer).GetLoadSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanLoadService_GetLoadSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanLoadServiceServer).GetLoadSheet(ctx, req.(*GetLoadSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlanLoadService_ServiceDesc is the grpc.ServiceDesc for PlanLoadService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlanLoadService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planload.v1.PlanLoadService",
	HandlerType: (*PlanLoadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitBlueprint",
			Handler:    _PlanLoadService_SubmitBlueprint_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _PlanLoadService_GetJob_Handler,
		},
		{
			MethodName: "GetLoadSheet",
			Handler:    _PlanLoadService_GetLoadSheet_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "planload/v1/planload.proto",
}
