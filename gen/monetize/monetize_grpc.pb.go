// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: monetize.proto

package monetize

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
	ModelService_AnalyzeEmotion_FullMethodName = "/monetize.ModelService/AnalyzeEmotion"
	ModelService_ChooseAction_FullMethodName   = "/monetize.ModelService/ChooseAction"
	ModelService_EstimateReward_FullMethodName = "/monetize.ModelService/EstimateReward"
	ModelService_AssessRisk_FullMethodName     = "/monetize.ModelService/AssessRisk"
)

// ModelServiceClient is the client API for ModelService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ModelServiceClient interface {
	AnalyzeEmotion(ctx context.Context, in *AnalyzeEmotionRequest, opts ...grpc.CallOption) (*AnalyzeEmotionResponse, error)
	ChooseAction(ctx context.Context, in *ChooseActionRequest, opts ...grpc.CallOption) (*ChooseActionResponse, error)
	EstimateReward(ctx context.Context, in *EstimateRewardRequest, opts ...grpc.CallOption) (*EstimateRewardResponse, error)
	AssessRisk(ctx context.Context, in *AssessRiskRequest, opts ...grpc.CallOption) (*AssessRiskResponse, error)
}

type modelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewModelServiceClient(cc grpc.ClientConnInterface) ModelServiceClient {
	return &modelServiceClient{cc}
}

func (c *modelServiceClient) AnalyzeEmotion(ctx context.Context, in *AnalyzeEmotionRequest, opts ...grpc.CallOption) (*AnalyzeEmotionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeEmotionResponse)
	err := c.cc.Invoke(ctx, ModelService_AnalyzeEmotion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelServiceClient) ChooseAction(ctx context.Context, in *ChooseActionRequest, opts ...grpc.CallOption) (*ChooseActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ChooseActionResponse)
	err := c.cc.Invoke(ctx, ModelService_ChooseAction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelServiceClient) EstimateReward(ctx context.Context, in *EstimateRewardRequest, opts ...grpc.CallOption) (*EstimateRewardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EstimateRewardResponse)
	err := c.cc.Invoke(ctx, ModelService_EstimateReward_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelServiceClient) AssessRisk(ctx context.Context, in *AssessRiskRequest, opts ...grpc.CallOption) (*AssessRiskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssessRiskResponse)
	err := c.cc.Invoke(ctx, ModelService_AssessRisk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ModelServiceServer is the server API for ModelService service.
// All implementations must embed UnimplementedModelServiceServer
// for forward compatibility.
type ModelServiceServer interface {
	AnalyzeEmotion(context.Context, *AnalyzeEmotionRequest) (*AnalyzeEmotionResponse, error)
	ChooseAction(context.Context, *ChooseActionRequest) (*ChooseActionResponse, error)
	EstimateReward(context.Context, *EstimateRewardRequest) (*EstimateRewardResponse, error)
	AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error)
	mustEmbedUnimplementedModelServiceServer()
}

// UnimplementedModelServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedModelServiceServer struct{}

func (UnimplementedModelServiceServer) AnalyzeEmotion(context.Context, *AnalyzeEmotionRequest) (*AnalyzeEmotionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeEmotion not implemented")
}
func (UnimplementedModelServiceServer) ChooseAction(context.Context, *ChooseActionRequest) (*ChooseActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChooseAction not implemented")
}
func (UnimplementedModelServiceServer) EstimateReward(context.Context, *EstimateRewardRequest) (*EstimateRewardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EstimateReward not implemented")
}
func (UnimplementedModelServiceServer) AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssessRisk not implemented")
}
func (UnimplementedModelServiceServer) mustEmbedUnimplementedModelServiceServer() {}
func (UnimplementedModelServiceServer) testEmbeddedByValue()                      {}

// UnsafeModelServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ModelServiceServer will
// result in compilation errors.
type UnsafeModelServiceServer interface {
	mustEmbedUnimplementedModelServiceServer()
}

func RegisterModelServiceServer(s grpc.ServiceRegistrar, srv ModelServiceServer) {
	// If the following call panics, it indicates UnimplementedModelServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ModelService_ServiceDesc, srv)
}

func _ModelService_AnalyzeEmotion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeEmotionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).AnalyzeEmotion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelService_AnalyzeEmotion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).AnalyzeEmotion(ctx, req.(*AnalyzeEmotionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelService_ChooseAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChooseActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).ChooseAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelService_ChooseAction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).ChooseAction(ctx, req.(*ChooseActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelService_EstimateReward_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EstimateRewardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).EstimateReward(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelService_EstimateReward_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).EstimateReward(ctx, req.(*EstimateRewardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelService_AssessRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssessRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).AssessRisk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelService_AssessRisk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).AssessRisk(ctx, req.(*AssessRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ModelService_ServiceDesc is the grpc.ServiceDesc for ModelService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ModelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "monetize.ModelService",
	HandlerType: (*ModelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeEmotion",
			Handler:    _ModelService_AnalyzeEmotion_Handler,
		},
		{
			MethodName: "ChooseAction",
			Handler:    _ModelService_ChooseAction_Handler,
		},
		{
			MethodName: "EstimateReward",
			Handler:    _ModelService_EstimateReward_Handler,
		},
		{
			MethodName: "AssessRisk",
			Handler:    _ModelService_AssessRisk_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "monetize.proto",
}
