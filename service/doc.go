// SPDX-License-Identifier: MIT

// Package service is the entry point that turns an edge list plus a node
// feature matrix into the Chebyshev-ready quaternion kernel.
//
// Process always rescales with λmax = laplacian.DefaultLambdaMax and takes the
// node count from the feature matrix rows. Device placement is carried by an
// explicit ExecContext handed to New; there is no package-level device switch.
//
// Each Process call opens an OpenTelemetry span ("Service.Process") with child
// spans per stage and logs stage timings at Debug on the context's logger.
// Spans go to the global otel provider unless WithTracerProvider is given.
// A Service holds no mutable state and is safe for concurrent use.
package service
