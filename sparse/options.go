// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Functional options for coordinate ingestion (FromCOO, FromDense).
//
// Note:
//  - Options are resolved once per call; there is no global state.

package sparse

// DefaultValidateNaNInf rejects NaN/±Inf values during ingestion.
const DefaultValidateNaNInf = true

// Option mutates ingestion options. Applying an Option twice is harmless.
type Option func(*Options)

// Options stores the effective ingestion policy.
type Options struct {
	validateNaNInf bool
}

// WithNoValidateNaNInf disables the finite-value check at ingestion.
// Non-finite values are then stored as given.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithValidateNaNInf enables the finite-value check (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions applies opts over the defaults, last write wins.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
