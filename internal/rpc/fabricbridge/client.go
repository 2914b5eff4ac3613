package fabricbridge

import (
	"context"

	"google.golang.org/grpc"
)

// FabricBridgeClient is the client API for the FabricBridge service.
type FabricBridgeClient interface {
	AddSynchronizedDevice(ctx context.Context, in *SynchronizedDevice, opts ...grpc.CallOption) (*Empty, error)
	RemoveSynchronizedDevice(ctx context.Context, in *SynchronizedDevice, opts ...grpc.CallOption) (*Empty, error)
	ActiveChanged(ctx context.Context, in *KeepActiveChanged, opts ...grpc.CallOption) (*Empty, error)
}

type fabricBridgeClient struct {
	cc grpc.ClientConnInterface
}

// NewFabricBridgeClient returns a client sending every call with the JSON
// codec.
func NewFabricBridgeClient(cc grpc.ClientConnInterface) FabricBridgeClient {
	return &fabricBridgeClient{cc}
}

func (c *fabricBridgeClient) AddSynchronizedDevice(ctx context.Context, in *SynchronizedDevice, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, FabricBridge_AddSynchronizedDevice_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fabricBridgeClient) RemoveSynchronizedDevice(ctx context.Context, in *SynchronizedDevice, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, FabricBridge_RemoveSynchronizedDevice_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fabricBridgeClient) ActiveChanged(ctx context.Context, in *KeepActiveChanged, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, FabricBridge_ActiveChanged_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
