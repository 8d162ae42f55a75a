// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

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
	ContractService_SubmitContract_FullMethodName       = "/contracts.v1.ContractService/SubmitContract"
	ContractService_GetContract_FullMethodName          = "/contracts.v1.ContractService/GetContract"
	ContractService_DeleteContract_FullMethodName       = "/contracts.v1.ContractService/DeleteContract"
	ContractService_ExportContractReport_FullMethodName = "/contracts.v1.ContractService/ExportContractReport"
)

// ContractServiceClient is the client API for ContractService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ContractService manages contract documents and their processing lifecycle.
type ContractServiceClient interface {
	// SubmitContract validates and stores an uploaded document and starts
	// extraction. Returns the PENDING contract immediately.
	SubmitContract(ctx context.Context, in *SubmitContractRequest, opts ...grpc.CallOption) (*SubmitContractResponse, error)
	// GetContract returns the contract's status, language, and entities.
	GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error)
	// DeleteContract removes the contract and everything derived from it.
	DeleteContract(ctx context.Context, in *DeleteContractRequest, opts ...grpc.CallOption) (*DeleteContractResponse, error)
	// ExportContractReport renders the entity and summary report as XLSX.
	ExportContractReport(ctx context.Context, in *ExportContractReportRequest, opts ...grpc.CallOption) (*ExportContractReportResponse, error)
}

type contractServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContractServiceClient(cc grpc.ClientConnInterface) ContractServiceClient {
	return &contractServiceClient{cc}
}

func (c *contractServiceClient) SubmitContract(ctx context.Context, in *SubmitContractRequest, opts ...grpc.CallOption) (*SubmitContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitContractResponse)
	err := c.cc.Invoke(ctx, ContractService_SubmitContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractServiceClient) GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractResponse)
	err := c.cc.Invoke(ctx, ContractService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractServiceClient) DeleteContract(ctx context.Context, in *DeleteContractRequest, opts ...grpc.CallOption) (*DeleteContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteContractResponse)
	err := c.cc.Invoke(ctx, ContractService_DeleteContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractServiceClient) ExportContractReport(ctx context.Context, in *ExportContractReportRequest, opts ...grpc.CallOption) (*ExportContractReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportContractReportResponse)
	err := c.cc.Invoke(ctx, ContractService_ExportContractReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContractServiceServer is the server API for ContractService service.
// All implementations must embed UnimplementedContractServiceServer
// for forward compatibility.
//
// ContractService manages contract documents and their processing lifecycle.
type ContractServiceServer interface {
	// SubmitContract validates and stores an uploaded document and starts
	// extraction. Returns the PENDING contract immediately.
	SubmitContract(context.Context, *SubmitContractRequest) (*SubmitContractResponse, error)
	// GetContract returns the contract's status, language, and entities.
	GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error)
	// DeleteContract removes the contract and everything derived from it.
	DeleteContract(context.Context, *DeleteContractRequest) (*DeleteContractResponse, error)
	// ExportContractReport renders the entity and summary report as XLSX.
	ExportContractReport(context.Context, *ExportContractReportRequest) (*ExportContractReportResponse, error)
	mustEmbedUnimplementedContractServiceServer()
}

// UnimplementedContractServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContractServiceServer struct{}

func (UnimplementedContractServiceServer) SubmitContract(context.Context, *SubmitContractRequest) (*SubmitContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitContract not implemented")
}
func (UnimplementedContractServiceServer) GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedContractServiceServer) DeleteContract(context.Context, *DeleteContractRequest) (*DeleteContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteContract not implemented")
}
func (UnimplementedContractServiceServer) ExportContractReport(context.Context, *ExportContractReportRequest) (*ExportContractReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContractReport not implemented")
}
func (UnimplementedContractServiceServer) mustEmbedUnimplementedContractServiceServer() {}
func (UnimplementedContractServiceServer) testEmbeddedByValue()                         {}

// UnsafeContractServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContractServiceServer will
// result in compilation errors.
type UnsafeContractServiceServer interface {
	mustEmbedUnimplementedContractServiceServer()
}

func RegisterContractServiceServer(s grpc.ServiceRegistrar, srv ContractServiceServer) {
	// If the following call pancis, it indicates UnimplementedContractServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContractService_ServiceDesc, srv)
}

func _ContractService_SubmitContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractServiceServer).SubmitContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractService_SubmitContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractServiceServer).SubmitContract(ctx, req.(*SubmitContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractServiceServer).GetContract(ctx, req.(*GetContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractService_DeleteContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractServiceServer).DeleteContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractService_DeleteContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractServiceServer).DeleteContract(ctx, req.(*DeleteContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractService_ExportContractReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractServiceServer).ExportContractReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractService_ExportContractReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractServiceServer).ExportContractReport(ctx, req.(*ExportContractReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContractService_ServiceDesc is the grpc.ServiceDesc for ContractService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContractService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ContractService",
	HandlerType: (*ContractServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitContract",
			Handler:    _ContractService_SubmitContract_Handler,
		},
		{
			MethodName: "GetContract",
			Handler:    _ContractService_GetContract_Handler,
		},
		{
			MethodName: "DeleteContract",
			Handler:    _ContractService_DeleteContract_Handler,
		},
		{
			MethodName: "ExportContractReport",
			Handler:    _ContractService_ExportContractReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}

const (
	SummaryService_GenerateSummary_FullMethodName = "/contracts.v1.SummaryService/GenerateSummary"
	SummaryService_EnqueueSummary_FullMethodName  = "/contracts.v1.SummaryService/EnqueueSummary"
	SummaryService_ListSummaries_FullMethodName   = "/contracts.v1.SummaryService/ListSummaries"
	SummaryService_ApproveSummary_FullMethodName  = "/contracts.v1.SummaryService/ApproveSummary"
	SummaryService_SubmitFeedback_FullMethodName  = "/contracts.v1.SummaryService/SubmitFeedback"
)

// SummaryServiceClient is the client API for SummaryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SummaryService generates and reviews contract summaries.
type SummaryServiceClient interface {
	// GenerateSummary runs generation synchronously, bounded by the server's
	// generation timeout.
	GenerateSummary(ctx context.Context, in *GenerateSummaryRequest, opts ...grpc.CallOption) (*GenerateSummaryResponse, error)
	// EnqueueSummary queues generation and returns a ticket id immediately.
	EnqueueSummary(ctx context.Context, in *EnqueueSummaryRequest, opts ...grpc.CallOption) (*EnqueueSummaryResponse, error)
	ListSummaries(ctx context.Context, in *ListSummariesRequest, opts ...grpc.CallOption) (*ListSummariesResponse, error)
	// ApproveSummary marks one summary record approved. Metadata only; no
	// reprocessing happens.
	ApproveSummary(ctx context.Context, in *ApproveSummaryRequest, opts ...grpc.CallOption) (*ApproveSummaryResponse, error)
	SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*SubmitFeedbackResponse, error)
}

type summaryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSummaryServiceClient(cc grpc.ClientConnInterface) SummaryServiceClient {
	return &summaryServiceClient{cc}
}

func (c *summaryServiceClient) GenerateSummary(ctx context.Context, in *GenerateSummaryRequest, opts ...grpc.CallOption) (*GenerateSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateSummaryResponse)
	err := c.cc.Invoke(ctx, SummaryService_GenerateSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *summaryServiceClient) EnqueueSummary(ctx context.Context, in *EnqueueSummaryRequest, opts ...grpc.CallOption) (*EnqueueSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueSummaryResponse)
	err := c.cc.Invoke(ctx, SummaryService_EnqueueSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *summaryServiceClient) ListSummaries(ctx context.Context, in *ListSummariesRequest, opts ...grpc.CallOption) (*ListSummariesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSummariesResponse)
	err := c.cc.Invoke(ctx, SummaryService_ListSummaries_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *summaryServiceClient) ApproveSummary(ctx context.Context, in *ApproveSummaryRequest, opts ...grpc.CallOption) (*ApproveSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveSummaryResponse)
	err := c.cc.Invoke(ctx, SummaryService_ApproveSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *summaryServiceClient) SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*SubmitFeedbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitFeedbackResponse)
	err := c.cc.Invoke(ctx, SummaryService_SubmitFeedback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SummaryServiceServer is the server API for SummaryService service.
// All implementations must embed UnimplementedSummaryServiceServer
// for forward compatibility.
//
// SummaryService generates and reviews contract summaries.
type SummaryServiceServer interface {
	// GenerateSummary runs generation synchronously, bounded by the server's
	// generation timeout.
	GenerateSummary(context.Context, *GenerateSummaryRequest) (*GenerateSummaryResponse, error)
	// EnqueueSummary queues generation and returns a ticket id immediately.
	EnqueueSummary(context.Context, *EnqueueSummaryRequest) (*EnqueueSummaryResponse, error)
	ListSummaries(context.Context, *ListSummariesRequest) (*ListSummariesResponse, error)
	// ApproveSummary marks one summary record approved. Metadata only; no
	// reprocessing happens.
	ApproveSummary(context.Context, *ApproveSummaryRequest) (*ApproveSummaryResponse, error)
	SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*SubmitFeedbackResponse, error)
	mustEmbedUnimplementedSummaryServiceServer()
}

// UnimplementedSummaryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSummaryServiceServer struct{}

func (UnimplementedSummaryServiceServer) GenerateSummary(context.Context, *GenerateSummaryRequest) (*GenerateSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSummary not implemented")
}
func (UnimplementedSummaryServiceServer) EnqueueSummary(context.Context, *EnqueueSummaryRequest) (*EnqueueSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueSummary not implemented")
}
func (UnimplementedSummaryServiceServer) ListSummaries(context.Context, *ListSummariesRequest) (*ListSummariesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSummaries not implemented")
}
func (UnimplementedSummaryServiceServer) ApproveSummary(context.Context, *ApproveSummaryRequest) (*ApproveSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveSummary not implemented")
}
func (UnimplementedSummaryServiceServer) SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*SubmitFeedbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitFeedback not implemented")
}
func (UnimplementedSummaryServiceServer) mustEmbedUnimplementedSummaryServiceServer() {}
func (UnimplementedSummaryServiceServer) testEmbeddedByValue()                        {}

// UnsafeSummaryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SummaryServiceServer will
// result in compilation errors.
type UnsafeSummaryServiceServer interface {
	mustEmbedUnimplementedSummaryServiceServer()
}

func RegisterSummaryServiceServer(s grpc.ServiceRegistrar, srv SummaryServiceServer) {
	// If the following call pancis, it indicates UnimplementedSummaryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SummaryService_ServiceDesc, srv)
}

func _SummaryService_GenerateSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).GenerateSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SummaryService_GenerateSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SummaryServiceServer).GenerateSummary(ctx, req.(*GenerateSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SummaryService_EnqueueSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).EnqueueSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SummaryService_EnqueueSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SummaryServiceServer).EnqueueSummary(ctx, req.(*EnqueueSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SummaryService_ListSummaries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSummariesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).ListSummaries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SummaryService_ListSummaries_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SummaryServiceServer).ListSummaries(ctx, req.(*ListSummariesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SummaryService_ApproveSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).ApproveSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SummaryService_ApproveSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SummaryServiceServer).ApproveSummary(ctx, req.(*ApproveSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SummaryService_SubmitFeedback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitFeedbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).SubmitFeedback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SummaryService_SubmitFeedback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SummaryServiceServer).SubmitFeedback(ctx, req.(*SubmitFeedbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SummaryService_ServiceDesc is the grpc.ServiceDesc for SummaryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SummaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.SummaryService",
	HandlerType: (*SummaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateSummary",
			Handler:    _SummaryService_GenerateSummary_Handler,
		},
		{
			MethodName: "EnqueueSummary",
			Handler:    _SummaryService_EnqueueSummary_Handler,
		},
		{
			MethodName: "ListSummaries",
			Handler:    _SummaryService_ListSummaries_Handler,
		},
		{
			MethodName: "ApproveSummary",
			Handler:    _SummaryService_ApproveSummary_Handler,
		},
		{
			MethodName: "SubmitFeedback",
			Handler:    _SummaryService_SubmitFeedback_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}
