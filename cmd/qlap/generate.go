// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlap/edgelist"
	"github.com/katalvlaran/qlap/internal/config"
	"github.com/katalvlaran/qlap/synth"
)

type generateFlags struct {
	model          string
	nodes          int
	p              float64
	sizes          []int
	pIn            float64
	pInter         float64
	pQ             float64
	seed           int64
	signedFraction float64
	maxWeight      int
	out            string
	labels         string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic directed (signed) edge list",
		Long: `Generate writes a synthetic edge list in the format read by build.

Models: path, cycle, star, complete, random (Erdős–Rényi over ordered pairs,
--p) and dsbm (directed stochastic block model: --sizes, --p-in, --p-inter,
--p-q). --signed-fraction negates a share of the weights; --max-weight > 1
draws integer weights in [1, max].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.model, "model", "", "Model: path, cycle, star, complete, random, dsbm")
	fl.IntVar(&f.nodes, "nodes", 0, "Node count (all models but dsbm)")
	fl.Float64Var(&f.p, "p", 0, "Edge probability (random)")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "Cluster sizes (dsbm)")
	fl.Float64Var(&f.pIn, "p-in", 0, "Intra-cluster edge probability (dsbm)")
	fl.Float64Var(&f.pInter, "p-inter", 0, "Inter-cluster edge probability (dsbm)")
	fl.Float64Var(&f.pQ, "p-q", 0, "Direction strength, 0.5 to 1 (dsbm)")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed")
	fl.Float64Var(&f.signedFraction, "signed-fraction", 0, "Share of negated weights")
	fl.IntVar(&f.maxWeight, "max-weight", 0, "Integer weights in [1, max] when > 1")
	fl.StringVarP(&f.out, "out", "o", "", "Output file (default stdout)")
	fl.StringVar(&f.labels, "labels", "", "Also write cluster labels, one per line (dsbm)")

	return cmd
}

// apply overlays the flags that were set onto the generate section.
func (f generateFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	fl := cmd.Flags()
	g := &cfg.Generate
	if fl.Changed("model") {
		g.Model = strings.ToLower(f.model)
	}
	if fl.Changed("nodes") {
		g.Nodes = f.nodes
	}
	if fl.Changed("p") {
		g.P = f.p
	}
	if fl.Changed("sizes") {
		g.Sizes = f.sizes
	}
	if fl.Changed("p-in") {
		g.PIn = f.pIn
	}
	if fl.Changed("p-inter") {
		g.PInter = f.pInter
	}
	if fl.Changed("p-q") {
		g.PQ = f.pQ
	}
	if fl.Changed("seed") {
		g.Seed = f.seed
	}
	if fl.Changed("signed-fraction") {
		g.SignedFraction = f.signedFraction
	}
	if fl.Changed("max-weight") {
		g.MaxWeight = f.maxWeight
	}

	return cfg, cfg.Validate()
}

// constructor maps the configured model to a synth constructor.
func constructor(g config.Generate) (synth.Constructor, error) {
	switch g.Model {
	case "path":
		return synth.Path(g.Nodes), nil
	case "cycle":
		return synth.Cycle(g.Nodes), nil
	case "star":
		return synth.Star(g.Nodes), nil
	case "complete":
		return synth.Complete(g.Nodes), nil
	case "random":
		return synth.RandomSparse(g.Nodes, g.P), nil
	case "dsbm":
		return synth.DSBM(g.Sizes, g.PIn, g.PInter, g.PQ), nil
	default:
		return nil, fmt.Errorf("generate.model=%q: %w", g.Model, config.ErrInvalid)
	}
}

func generate(g config.Generate) (*synth.Graph, error) {
	con, err := constructor(g)
	if err != nil {
		return nil, err
	}
	opts := []synth.Option{synth.WithSeed(g.Seed), synth.WithSignedFraction(g.SignedFraction)}
	if g.MaxWeight > 1 {
		opts = append(opts, synth.WithWeightFn(synth.IntWeightFn(g.MaxWeight)))
	}

	return synth.Generate(opts, con)
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) error {
	cfg, err := f.apply(cmd, a.cfg)
	if err != nil {
		return err
	}
	graph, err := generate(cfg.Generate)
	if err != nil {
		return err
	}

	if err = writeTo(f.out, cmd.OutOrStdout(), func(w io.Writer) error {
		return edgelist.Write(w, graph.Edges)
	}); err != nil {
		return err
	}
	if f.labels != "" && graph.Labels != nil {
		err = writeTo(f.labels, nil, func(w io.Writer) error {
			for _, l := range graph.Labels {
				if _, err := io.WriteString(w, strconv.Itoa(l)+"\n"); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	a.logger.Info("graph generated",
		slog.String("model", cfg.Generate.Model),
		slog.Int("nodes", graph.NumNodes),
		slog.Int("edges", graph.Edges.Len()),
		slog.Int64("seed", cfg.Generate.Seed),
	)

	return nil
}

// writeTo writes to path, or to fallback when path is empty.
func writeTo(path string, fallback io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}
