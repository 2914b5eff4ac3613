package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/MKhiriev/fabric-bridge/internal/validators"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type App struct {
	rpc       fabricbridge.FabricBridgeClient
	conn      io.Closer
	status    adapter.StatusAdapter
	validator validators.Validator

	ids     *utils.UUIDGenerator
	timeout time.Duration
	out     io.Writer

	logger *logger.Logger
}

// NewApp connects to the RPC service at cfg.RPCAddress. The connection is
// established lazily on the first call. The status API adapter is created
// only when cfg.HTTPAddress is set.
func NewApp(cfg Config, out io.Writer, logger *logger.Logger) (*App, error) {
	conn, err := grpc.NewClient(cfg.RPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}

	var status adapter.StatusAdapter
	if cfg.HTTPAddress != "" {
		status, err = adapter.NewHTTPStatusAdapter(cfg.HTTPAddress, cfg.Timeout, logger)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	a := newApp(fabricbridge.NewFabricBridgeClient(conn), status, out, logger)
	a.conn = conn
	a.timeout = cfg.Timeout
	return a, nil
}

func newApp(rpc fabricbridge.FabricBridgeClient, status adapter.StatusAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		rpc:       rpc,
		status:    status,
		validator: validators.NewSynchronizedDeviceValidator(),
		ids:       utils.NewUUIDGenerator(),
		out:       out,
		logger:    logger,
	}
}

func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	command, rest := args[0], args[1:]
	switch command {
	case "add":
		return a.add(ctx, rest)
	case "remove":
		return a.remove(ctx, rest)
	case "active":
		return a.active(ctx, rest)
	case "devices":
		return a.devices(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// withTraceID tags an outgoing call so it can be found in the bridge logs.
func (a *App) withTraceID(ctx context.Context) (context.Context, string) {
	traceID := a.ids.Generate()
	return metadata.AppendToOutgoingContext(ctx, "x-trace-id", traceID), traceID
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	node := fs.String("node", "", "node id, decimal or 0x-prefixed hex")
	uniqueID := fs.String("unique-id", "", "unique id")
	vendorName := fs.String("vendor-name", "", "vendor name")
	vendorID := fs.Uint("vendor-id", 0, "vendor id")
	productName := fs.String("product-name", "", "product name")
	productID := fs.Uint("product-id", 0, "product id")
	nodeLabel := fs.String("node-label", "", "node label")
	hardwareVersion := fs.Uint("hardware-version", 0, "hardware version")
	hardwareVersionString := fs.String("hardware-version-string", "", "hardware version string")
	softwareVersion := fs.Uint("software-version", 0, "software version")
	softwareVersionString := fs.String("software-version-string", "", "software version string")
	icd := fs.Bool("icd", false, "device is intermittently connected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nodeID, err := parseNode(*node)
	if err != nil {
		return err
	}

	// flags left off the command line are sent unset
	device := &fabricbridge.SynchronizedDevice{NodeID: nodeID}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "unique-id":
			device.UniqueID = fabricbridge.Ptr(*uniqueID)
		case "vendor-name":
			device.VendorName = fabricbridge.Ptr(*vendorName)
		case "vendor-id":
			device.VendorID = fabricbridge.Ptr(uint32(*vendorID))
		case "product-name":
			device.ProductName = fabricbridge.Ptr(*productName)
		case "product-id":
			device.ProductID = fabricbridge.Ptr(uint32(*productID))
		case "node-label":
			device.NodeLabel = fabricbridge.Ptr(*nodeLabel)
		case "hardware-version":
			device.HardwareVersion = fabricbridge.Ptr(uint32(*hardwareVersion))
		case "hardware-version-string":
			device.HardwareVersionString = fabricbridge.Ptr(*hardwareVersionString)
		case "software-version":
			device.SoftwareVersion = fabricbridge.Ptr(uint32(*softwareVersion))
		case "software-version-string":
			device.SoftwareVersionString = fabricbridge.Ptr(*softwareVersionString)
		case "icd":
			device.IsICD = fabricbridge.Ptr(*icd)
		}
	})

	if err = a.validator.Validate(ctx, device); err != nil {
		return err
	}

	ctx, traceID := a.withTraceID(ctx)
	if _, err = a.rpc.AddSynchronizedDevice(ctx, device); err != nil {
		a.logger.Err(err).Str("trace_id", traceID).Str("node_id", logger.FormatNodeID(nodeID)).Msg("AddSynchronizedDevice failed")
		return err
	}

	fmt.Fprintf(a.out, "added %s\n", logger.FormatNodeID(nodeID))
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	fs := a.newFlagSet("remove")
	node := fs.String("node", "", "node id, decimal or 0x-prefixed hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nodeID, err := parseNode(*node)
	if err != nil {
		return err
	}

	device := &fabricbridge.SynchronizedDevice{NodeID: nodeID}
	if err = a.validator.Validate(ctx, device, validators.FieldNodeID); err != nil {
		return err
	}

	ctx, traceID := a.withTraceID(ctx)
	if _, err = a.rpc.RemoveSynchronizedDevice(ctx, device); err != nil {
		a.logger.Err(err).Str("trace_id", traceID).Str("node_id", logger.FormatNodeID(nodeID)).Msg("RemoveSynchronizedDevice failed")
		return err
	}

	fmt.Fprintf(a.out, "removed %s\n", logger.FormatNodeID(nodeID))
	return nil
}

func (a *App) active(ctx context.Context, args []string) error {
	fs := a.newFlagSet("active")
	node := fs.String("node", "", "node id, decimal or 0x-prefixed hex")
	duration := fs.Uint("duration", 0, "promised active duration in milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nodeID, err := parseNode(*node)
	if err != nil {
		return err
	}

	change := &fabricbridge.KeepActiveChanged{NodeID: nodeID, PromisedActiveDurationMs: uint32(*duration)}
	if err = a.validator.Validate(ctx, change); err != nil {
		return err
	}

	ctx, traceID := a.withTraceID(ctx)
	if _, err = a.rpc.ActiveChanged(ctx, change); err != nil {
		a.logger.Err(err).Str("trace_id", traceID).Str("node_id", logger.FormatNodeID(nodeID)).Msg("ActiveChanged failed")
		return err
	}

	fmt.Fprintf(a.out, "active changed %s for %d ms\n", logger.FormatNodeID(nodeID), change.PromisedActiveDurationMs)
	return nil
}

func (a *App) devices(ctx context.Context, args []string) error {
	fs := a.newFlagSet("devices")
	node := fs.String("node", "", "show a single device")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if a.status == nil {
		return ErrStatusAPINotConfigured
	}

	if *node == "" {
		devices, err := a.status.ListDevices(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(devices)
	}

	nodeID, err := parseNode(*node)
	if err != nil {
		return err
	}
	device, err := a.status.GetDevice(ctx, nodeID)
	if err != nil {
		return err
	}
	return a.printJSON(device)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseNode(raw string) (uint64, error) {
	if raw == "" {
		return 0, ErrNodeRequired
	}
	return utils.ParseNodeID(raw)
}
