// SPDX-License-Identifier: MIT
// Package service: the Process pipeline.

package service

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlap/edgelist"
	"github.com/katalvlaran/qlap/laplacian"
)

// tracerName identifies the spans emitted by this package.
const tracerName = "qlap/service"

// Service builds normalized quaternion kernels.
type Service struct {
	exec   ExecContext
	tracer trace.Tracer
}

// New resolves the execution context built from opts.
// Returns ErrDeviceUnsupported for a device other than auto or cpu.
func New(opts ...Option) (*Service, error) {
	ec, err := NewExecContext(opts...).resolve()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Service{exec: ec, tracer: ec.TracerProvider.Tracer(tracerName)}, nil
}

// ExecContext returns the resolved execution context.
func (s *Service) ExecContext() ExecContext { return s.exec }

// Result is the output of Process.
type Result struct {
	Kernel    *laplacian.Kernel
	LambdaMax float32
	NumNodes  int
	Device    Device
}

// Process builds the quaternion Laplacian of edges and returns 2L/λmax - I
// in kernel form with λmax = laplacian.DefaultLambdaMax.
//
// The node count is features' row count and overrides any WithNumNodes in
// opts. The remaining opts (normalization) are passed to laplacian.Build.
// ctx is checked before the build stage and between build and normalize.
//
// Errors: ErrMissingNodeCount (nil or typed-nil features), the laplacian and
// edgelist sentinels (wrapped), ctx.Err().
func (s *Service) Process(ctx context.Context, edges edgelist.EdgeList, features mat.Matrix, opts ...laplacian.Option) (*Result, error) {
	const op = "Process"

	ctx, span := s.tracer.Start(ctx, "Service.Process",
		trace.WithAttributes(
			attribute.Int("edge_count", edges.Len()),
			attribute.String("device", string(s.exec.Device)),
		),
	)
	defer span.End()

	fail := func(err error) (*Result, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if isNilMatrix(features) {
		return fail(ErrMissingNodeCount)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	n, _ := features.Dims()
	span.SetAttributes(attribute.Int("node_count", n))

	buildOpts := make([]laplacian.Option, 0, len(opts)+1)
	buildOpts = append(buildOpts, opts...)
	buildOpts = append(buildOpts, laplacian.WithNumNodes(n))

	start := time.Now()
	k, err := s.build(ctx, edges, buildOpts)
	if err != nil {
		return fail(err)
	}
	buildDur := time.Since(start)

	if err = ctx.Err(); err != nil {
		span.AddEvent("cancelled")
		return fail(err)
	}

	start = time.Now()
	out, err := s.normalize(ctx, k)
	if err != nil {
		return fail(err)
	}

	s.exec.Logger.Debug("quaternion kernel built",
		slog.Int("node_count", n),
		slog.Int("edge_count", edges.Len()),
		slog.Int("kernel_len", out.Len()),
		slog.Duration("build", buildDur),
		slog.Duration("normalize", time.Since(start)),
		slog.String("device", string(s.exec.Device)),
	)
	span.SetAttributes(attribute.Int("kernel_len", out.Len()))

	return &Result{
		Kernel:    out,
		LambdaMax: laplacian.DefaultLambdaMax,
		NumNodes:  n,
		Device:    s.exec.Device,
	}, nil
}

func (s *Service) build(ctx context.Context, edges edgelist.EdgeList, opts []laplacian.Option) (*laplacian.Kernel, error) {
	_, span := s.tracer.Start(ctx, "Service.build")
	defer span.End()

	q, err := laplacian.BuildComponents(edges, opts...)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("normalization", q.Norm.String()),
		attribute.Int("nnz_real", q.Real.NNZ()),
		attribute.Int("nnz_i", q.I.NNZ()),
		attribute.Int("nnz_j", q.J.NNZ()),
		attribute.Int("nnz_k", q.K.NNZ()),
	)

	return laplacian.Linearize(q)
}

func (s *Service) normalize(ctx context.Context, k *laplacian.Kernel) (*laplacian.Kernel, error) {
	_, span := s.tracer.Start(ctx, "Service.normalize",
		trace.WithAttributes(attribute.Float64("lambda_max", float64(laplacian.DefaultLambdaMax))),
	)
	defer span.End()

	return laplacian.Normalize(k, laplacian.DefaultLambdaMax)
}

// isNilMatrix reports whether m is nil or a typed nil pointer such as
// (*mat.Dense)(nil), whose Dims would dereference nil.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
