package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-rpc-port fabric bridge RPC port
//	-a status HTTP server address in format [host]:[port]
//	-request-timeout per-call RPC timeout (e.g., "5s")
//	-parent-endpoint aggregator endpoint id
//	-first-endpoint first dynamic endpoint id
//	-max-devices registry capacity
//	-disable-fabric-bridge leave the FabricBridge service unregistered
//	-db-driver journal database driver (sqlite3, pgx)
//	-d journal database DSN
//	-report-interval registry reporter interval (e.g., "30s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fabric-bridge", flag.ContinueOnError)

	var httpAddress NetAddress
	var rpcPort, maxDevices int
	var parentEndpoint, firstEndpoint uint
	var disableFabricBridge Switch
	var dbDriver, databaseDSN string
	var requestTimeout, reportInterval time.Duration
	var jsonConfigPath string

	fs.IntVar(&rpcPort, "rpc-port", 0, "Fabric bridge RPC server port")
	fs.Var(&httpAddress, "a", "Status HTTP server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "RPC request timeout (e.g., 5s)")
	fs.UintVar(&parentEndpoint, "parent-endpoint", 0, "Aggregator endpoint id")
	fs.UintVar(&firstEndpoint, "first-endpoint", 0, "First dynamic endpoint id")
	fs.IntVar(&maxDevices, "max-devices", 0, "Maximum number of bridged devices")
	fs.Var(&disableFabricBridge, "disable-fabric-bridge", "Do not register the FabricBridge RPC service (false re-enables it)")
	fs.StringVar(&dbDriver, "db-driver", "", "Journal database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.DurationVar(&reportInterval, "report-interval", 0, "Registry reporter interval (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	if parentEndpoint > 0xFFFF || firstEndpoint > 0xFFFF {
		return nil, ErrEndpointOutOfRange
	}

	return &StructuredConfig{
		Server: Server{
			RPCPort:        rpcPort,
			HTTPAddress:    httpAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Bridge: Bridge{
			ParentEndpointID:           uint16(parentEndpoint),
			FirstDynamicEndpoint:       uint16(firstEndpoint),
			MaxDevices:                 maxDevices,
			DisableFabricBridgeService: disableFabricBridge,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Workers: Workers{
			ReportInterval: reportInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
