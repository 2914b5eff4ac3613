// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the fabric
// bridge. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file, then filling remaining zero fields with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the RPC port and the optional status HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Bridge holds the bridged device registry settings.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Storage holds the sync-event journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by the status API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transports.
type Server struct {
	// RPCPort is the TCP port the fabric bridge RPC server listens on.
	// Env: SERVER_RPC_PORT
	RPCPort int `env:"RPC_PORT"`

	// HTTPAddress is the "host:port" address of the status HTTP server.
	// The HTTP server is not started when empty.
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds a single RPC call. Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge holds settings of the bridged device registry.
type Bridge struct {
	// ParentEndpointID is the aggregator endpoint every synchronized device
	// is composed under.
	// Env: BRIDGE_PARENT_ENDPOINT_ID
	ParentEndpointID uint16 `env:"PARENT_ENDPOINT_ID"`

	// FirstDynamicEndpoint is the first endpoint id handed out to bridged
	// devices.
	// Env: BRIDGE_FIRST_DYNAMIC_ENDPOINT
	FirstDynamicEndpoint uint16 `env:"FIRST_DYNAMIC_ENDPOINT"`

	// MaxDevices is the capacity of the registry.
	// Env: BRIDGE_MAX_DEVICES
	MaxDevices int `env:"MAX_DEVICES"`

	// DisableFabricBridgeService leaves the FabricBridge RPC service
	// unregistered. The RPC server still starts. An explicit false from a
	// later source overrides an earlier true.
	// Env: BRIDGE_DISABLE_FABRIC_BRIDGE_SERVICE
	DisableFabricBridgeService Switch `env:"DISABLE_FABRIC_BRIDGE_SERVICE"`
}

// Storage groups the configuration of the journal backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the journal database.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. The journal is disabled when empty.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReportInterval is how often the registry reporter samples the registry.
	// Env: WORKERS_REPORT_INTERVAL
	ReportInterval time.Duration `env:"REPORT_INTERVAL"`
}

// Default values applied to fields left zero by every source.
const (
	DefaultRPCPort              = 33002
	DefaultParentEndpointID     = 1
	DefaultFirstDynamicEndpoint = 3
	DefaultMaxDevices           = 16
	DefaultDBDriver             = "sqlite3"
	DefaultReportInterval       = 30 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RPCPort: DefaultRPCPort,
		},
		Bridge: Bridge{
			ParentEndpointID:     DefaultParentEndpointID,
			FirstDynamicEndpoint: DefaultFirstDynamicEndpoint,
			MaxDevices:           DefaultMaxDevices,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		Workers: Workers{
			ReportInterval: DefaultReportInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Remaining zero fields are filled with defaults before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
