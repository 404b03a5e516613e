// SPDX-License-Identifier: MIT
// Package service: execution context and its options.

package service

import (
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Device names where the kernel is computed.
type Device string

const (
	// DeviceAuto picks the best available device; in this build, the CPU.
	DeviceAuto Device = "auto"
	// DeviceCPU computes on the host.
	DeviceCPU Device = "cpu"
)

// ParseDevice normalizes a device name. It does not check availability.
func ParseDevice(s string) Device {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DeviceAuto
	}

	return Device(s)
}

// ExecContext carries per-service execution settings.
type ExecContext struct {
	Device         Device
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Option configures an ExecContext.
type Option func(*ExecContext)

// WithDevice selects the device. Unknown devices are rejected by New.
func WithDevice(d Device) Option {
	return func(ec *ExecContext) { ec.Device = d }
}

// WithLogger sets the logger; panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("service: WithLogger(nil)")
	}

	return func(ec *ExecContext) { ec.Logger = l }
}

// WithTracerProvider routes spans to tp instead of the global provider.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("service: WithTracerProvider(nil)")
	}

	return func(ec *ExecContext) { ec.TracerProvider = tp }
}

// NewExecContext returns an ExecContext on DeviceAuto adjusted by opts.
// Logger and TracerProvider stay nil until resolved by New, which falls back
// to slog.Default() and otel.GetTracerProvider().
func NewExecContext(opts ...Option) ExecContext {
	ec := ExecContext{Device: DeviceAuto}
	for _, fn := range opts {
		if fn != nil {
			fn(&ec)
		}
	}

	return ec
}

// resolve maps DeviceAuto to a concrete device, fills a missing logger and
// rejects devices this build cannot serve.
func (ec ExecContext) resolve() (ExecContext, error) {
	if ec.Logger == nil {
		ec.Logger = slog.Default()
	}
	if ec.TracerProvider == nil {
		ec.TracerProvider = otel.GetTracerProvider()
	}
	switch ec.Device {
	case DeviceAuto, "":
		ec.Device = DeviceCPU
	case DeviceCPU:
	default:
		return ec, fmt.Errorf("device %q: %w", string(ec.Device), ErrDeviceUnsupported)
	}

	return ec, nil
}
