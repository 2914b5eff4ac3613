package fabricbridge

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "chip.rpc.FabricBridge"

// Full method names, as seen by interceptors.
const (
	FabricBridge_AddSynchronizedDevice_FullMethodName    = "/" + ServiceName + "/AddSynchronizedDevice"
	FabricBridge_RemoveSynchronizedDevice_FullMethodName = "/" + ServiceName + "/RemoveSynchronizedDevice"
	FabricBridge_ActiveChanged_FullMethodName            = "/" + ServiceName + "/ActiveChanged"
)

// FabricBridgeServer is the server API for the FabricBridge service.
// Implementations must embed UnimplementedFabricBridgeServer.
type FabricBridgeServer interface {
	AddSynchronizedDevice(context.Context, *SynchronizedDevice) (*Empty, error)
	RemoveSynchronizedDevice(context.Context, *SynchronizedDevice) (*Empty, error)
	ActiveChanged(context.Context, *KeepActiveChanged) (*Empty, error)
	mustEmbedUnimplementedFabricBridgeServer()
}

// UnimplementedFabricBridgeServer answers every method with
// codes.Unimplemented.
type UnimplementedFabricBridgeServer struct{}

func (UnimplementedFabricBridgeServer) AddSynchronizedDevice(context.Context, *SynchronizedDevice) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSynchronizedDevice not implemented")
}

func (UnimplementedFabricBridgeServer) RemoveSynchronizedDevice(context.Context, *SynchronizedDevice) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveSynchronizedDevice not implemented")
}

func (UnimplementedFabricBridgeServer) ActiveChanged(context.Context, *KeepActiveChanged) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ActiveChanged not implemented")
}

func (UnimplementedFabricBridgeServer) mustEmbedUnimplementedFabricBridgeServer() {}

// RegisterFabricBridgeServer registers srv on s.
func RegisterFabricBridgeServer(s grpc.ServiceRegistrar, srv FabricBridgeServer) {
	s.RegisterService(&FabricBridge_ServiceDesc, srv)
}

func _FabricBridge_AddSynchronizedDevice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SynchronizedDevice)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FabricBridgeServer).AddSynchronizedDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FabricBridge_AddSynchronizedDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FabricBridgeServer).AddSynchronizedDevice(ctx, req.(*SynchronizedDevice))
	}
	return interceptor(ctx, in, info, handler)
}

func _FabricBridge_RemoveSynchronizedDevice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SynchronizedDevice)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FabricBridgeServer).RemoveSynchronizedDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FabricBridge_RemoveSynchronizedDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FabricBridgeServer).RemoveSynchronizedDevice(ctx, req.(*SynchronizedDevice))
	}
	return interceptor(ctx, in, info, handler)
}

func _FabricBridge_ActiveChanged_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeepActiveChanged)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FabricBridgeServer).ActiveChanged(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FabricBridge_ActiveChanged_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FabricBridgeServer).ActiveChanged(ctx, req.(*KeepActiveChanged))
	}
	return interceptor(ctx, in, info, handler)
}

// FabricBridge_ServiceDesc is the grpc.ServiceDesc for the FabricBridge
// service.
var FabricBridge_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FabricBridgeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddSynchronizedDevice",
			Handler:    _FabricBridge_AddSynchronizedDevice_Handler,
		},
		{
			MethodName: "RemoveSynchronizedDevice",
			Handler:    _FabricBridge_RemoveSynchronizedDevice_Handler,
		},
		{
			MethodName: "ActiveChanged",
			Handler:    _FabricBridge_ActiveChanged_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fabric_bridge_service.proto",
}
