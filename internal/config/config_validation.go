// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

const maxEndpointID uint16 = 0xFFFF

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. It runs after defaults have been applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RPCPort < 1 || cfg.Server.RPCPort > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Bridge.MaxDevices <= 0 || cfg.Bridge.FirstDynamicEndpoint <= cfg.Bridge.ParentEndpointID {
		return ErrInvalidBridgeConfigs
	}

	// dynamic endpoints live in [FirstDynamicEndpoint, 0xFFFE]; 0xFFFF is invalid
	if cfg.Bridge.FirstDynamicEndpoint >= maxEndpointID {
		return ErrInvalidBridgeConfigs
	}
	if cfg.Bridge.MaxDevices > int(maxEndpointID-cfg.Bridge.FirstDynamicEndpoint) {
		return ErrInvalidBridgeConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReportInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
