// SPDX-License-Identifier: MIT
// Package service: sentinel errors.

package service

import "errors"

var (
	// ErrMissingNodeCount indicates that no feature matrix was supplied, so
	// the node count is unknown.
	ErrMissingNodeCount = errors.New("service: missing node count (nil features)")

	// ErrDeviceUnsupported indicates an ExecContext device this build
	// cannot serve.
	ErrDeviceUnsupported = errors.New("service: device unsupported")
)
