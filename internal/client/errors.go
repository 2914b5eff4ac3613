package client

import "errors"

var (
	ErrNoCommand              = errors.New("no command given")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrNodeRequired           = errors.New("-node is required")
	ErrStatusAPINotConfigured = errors.New("status API address is not configured, use -http")
)
