package client

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	defaultRPCAddress = "localhost:33002"
	defaultTimeout    = 5 * time.Second
)

// Config holds the global CLI flags.
type Config struct {
	RPCAddress  string
	HTTPAddress string
	Timeout     time.Duration
}

// ParseConfig parses the global flags and returns the remaining arguments,
// the subcommand first.
func ParseConfig(args []string, output io.Writer) (Config, []string, error) {
	var cfg Config

	fs := flag.NewFlagSet("fabric-bridge-ctl", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.RPCAddress, "rpc", defaultRPCAddress, "FabricBridge RPC address (host:port)")
	fs.StringVar(&cfg.HTTPAddress, "http", "", "bridge status API address (host:port or URL)")
	fs.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "timeout of a single request")
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: %s [global flags] add|remove|active|devices [flags]\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}
