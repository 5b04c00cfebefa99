// Package common defines shared constants and sentinel errors used across
// the storage, service and transport layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Request-level errors.
	ErrBadRequest = errors.New("bad request")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownEntryType = errors.New("unknown entry type")

	// Storage errors.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
