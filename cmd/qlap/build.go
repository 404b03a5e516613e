// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qlap/edgelist"
	"github.com/katalvlaran/qlap/internal/config"
	"github.com/katalvlaran/qlap/laplacian"
	"github.com/katalvlaran/qlap/service"
)

type buildFlags struct {
	out      string
	format   string
	norm     string
	numNodes int
	device   string
	workers  int
}

func newBuildCmd(a *app) *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build <edges.txt|-> [more ...]",
		Short: "Build the normalized quaternion kernel of one or more edge lists",
		Long: `Build reads each edge list ("src dst [weight]" per line, "-" for stdin),
constructs 2L/λmax - I with λmax = 2 and writes one kernel per input.

With a single input and no --out the kernel goes to stdout. Otherwise each
input <name>.<ext> produces <out>/<name>.kernel.<format>. Inputs are built
concurrently, --workers at a time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output directory (default: stdout for a single input)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: json or csv")
	cmd.Flags().StringVar(&f.norm, "norm", "", "Normalization: sym or none")
	cmd.Flags().IntVarP(&f.numNodes, "num-nodes", "n", 0, "Node count (0: infer from edges)")
	cmd.Flags().StringVar(&f.device, "device", "", "Execution device: auto or cpu")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "Inputs built concurrently")

	return cmd
}

// apply overlays the flags that were set onto cfg.
func (f buildFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = strings.ToLower(f.format)
	}
	if fl.Changed("norm") {
		cfg.Normalization = f.norm
	}
	if fl.Changed("num-nodes") {
		cfg.NumNodes = f.numNodes
	}
	if fl.Changed("device") {
		cfg.Device = f.device
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}

	return cfg, cfg.Validate()
}

func (a *app) runBuild(cmd *cobra.Command, inputs []string, f buildFlags) error {
	cfg, err := f.apply(cmd, a.cfg)
	if err != nil {
		return err
	}
	if len(inputs) > 1 && f.out == "" {
		return fmt.Errorf("build: %d inputs need --out", len(inputs))
	}
	svc, err := service.New(
		service.WithDevice(service.ParseDevice(cfg.Device)),
		service.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	if f.out != "" {
		if err = os.MkdirAll(f.out, 0o755); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			return a.buildOne(ctx, svc, cfg, in, f.out, cmd.OutOrStdout())
		})
	}

	return g.Wait()
}

// buildOne runs the pipeline for a single input. Node features are the
// in/out degree matrix, whose row count fixes N.
func (a *app) buildOne(ctx context.Context, svc *service.Service, cfg config.Config, in, outDir string, stdout io.Writer) error {
	edges, err := readEdges(in)
	if err != nil {
		return err
	}
	numNodes := edgelist.UnknownNodes
	if cfg.NumNodes > 0 {
		numNodes = cfg.NumNodes
	}
	features, err := edgelist.InOutDegree(edges, numNodes)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	res, err := svc.Process(ctx, edges, features, laplacian.WithNormalization(cfg.Norm()))
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if outDir == "" {
		return writeKernel(stdout, cfg.Format, res)
	}
	path := filepath.Join(outDir, kernelName(in, cfg.Format))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err = writeKernel(file, cfg.Format, res); err != nil {
		_ = file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("kernel written",
		slog.String("input", in),
		slog.String("output", path),
		slog.Int("nodes", res.NumNodes),
		slog.Int("coords", res.Kernel.Len()),
	)

	return file.Close()
}

func readEdges(in string) (edgelist.EdgeList, error) {
	if in == "-" {
		e, err := edgelist.Read(os.Stdin)
		if err != nil {
			return edgelist.EdgeList{}, fmt.Errorf("stdin: %w", err)
		}
		return e, nil
	}

	return edgelist.ReadFile(in)
}

// kernelName maps "dir/graph.txt" to "graph.kernel.<format>".
func kernelName(in, format string) string {
	base := filepath.Base(in)
	if in == "-" {
		base = "stdin"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + ".kernel." + format
}
