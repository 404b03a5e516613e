// SPDX-License-Identifier: MIT

package synth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlap/synth"
)

func TestTopologies(t *testing.T) {
	tests := []struct {
		name     string
		con      synth.Constructor
		src, dst []int
		n        int
	}{
		{"path", synth.Path(3), []int{0, 1}, []int{1, 2}, 3},
		{"cycle", synth.Cycle(3), []int{0, 1, 2}, []int{1, 2, 0}, 3},
		{"star", synth.Star(4), []int{0, 0, 0}, []int{1, 2, 3}, 4},
		{"complete", synth.Complete(3), []int{0, 0, 1, 1, 2, 2}, []int{1, 2, 0, 2, 0, 1}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := synth.Generate(nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.src, g.Edges.Src)
			require.Equal(t, tc.dst, g.Edges.Dst)
			require.Equal(t, tc.n, g.NumNodes)
			require.Nil(t, g.Labels)
			for _, w := range g.Edges.Weight {
				require.Equal(t, synth.DefaultEdgeWeight, w)
			}
			require.NoError(t, g.Edges.Validate(g.NumNodes))
		})
	}
}

func TestGenerate_Overlay(t *testing.T) {
	g, err := synth.Generate(nil, synth.Path(2), synth.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes)
	require.Equal(t, 1+4, g.Edges.Len())
}

func TestGenerate_Errors(t *testing.T) {
	_, err := synth.Generate(nil)
	require.ErrorIs(t, err, synth.ErrNoConstructors)

	for _, c := range []synth.Constructor{
		synth.Path(1), synth.Cycle(2), synth.Star(1), synth.Complete(1), synth.RandomSparse(0, 0.5),
		synth.DSBM([]int{3}, 0.5, 0.5, 0.5), synth.DSBM([]int{3, 0}, 0.5, 0.5, 0.5),
	} {
		_, err = synth.Generate([]synth.Option{synth.WithSeed(1)}, c)
		require.ErrorIs(t, err, synth.ErrTooFewVertices)
	}

	_, err = synth.Generate([]synth.Option{synth.WithSeed(1)}, synth.RandomSparse(3, 1.5))
	require.ErrorIs(t, err, synth.ErrInvalidProbability)
	_, err = synth.Generate([]synth.Option{synth.WithSeed(1)}, synth.DSBM([]int{2, 2}, 0.5, -0.1, 0.5))
	require.ErrorIs(t, err, synth.ErrInvalidProbability)

	_, err = synth.Generate(nil, synth.RandomSparse(3, 0.5))
	require.ErrorIs(t, err, synth.ErrNeedRandSource)
	_, err = synth.Generate(nil, synth.DSBM([]int{2, 2}, 0.5, 0.5, 0.5))
	require.ErrorIs(t, err, synth.ErrNeedRandSource)
	_, err = synth.Generate([]synth.Option{synth.WithSignedFraction(0.3)}, synth.Path(3))
	require.ErrorIs(t, err, synth.ErrNeedRandSource)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { synth.WithRand(nil) })
	require.Panics(t, func() { synth.WithWeightFn(nil) })
	require.Panics(t, func() { synth.WithSignedFraction(1.1) })
	require.Panics(t, func() { synth.ConstantWeightFn(0) })
	require.Panics(t, func() { synth.UniformWeightFn(2, 1) })
	require.Panics(t, func() { synth.IntWeightFn(0) })
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []synth.Option{synth.WithSeed(42), synth.WithWeightFn(synth.UniformWeightFn(0.5, 2))}
	a, err := synth.Generate(opts, synth.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := synth.Generate([]synth.Option{synth.WithSeed(42), synth.WithWeightFn(synth.UniformWeightFn(0.5, 2))},
		synth.RandomSparse(20, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges, b.Edges)
	require.NoError(t, a.Edges.Validate(20))
	for k := range a.Edges.Src {
		require.NotEqual(t, a.Edges.Src[k], a.Edges.Dst[k])
		require.GreaterOrEqual(t, a.Edges.Weight[k], float32(0.5))
		require.Less(t, a.Edges.Weight[k], float32(2))
	}

	full, err := synth.Generate(nil, synth.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Equal(t, 12, full.Edges.Len())
	none, err := synth.Generate(nil, synth.RandomSparse(4, 0))
	require.NoError(t, err)
	require.Zero(t, none.Edges.Len())
	require.Equal(t, 4, none.NumNodes)
}

func TestSignedFraction(t *testing.T) {
	all, err := synth.Generate([]synth.Option{synth.WithSignedFraction(1)}, synth.Cycle(5))
	require.NoError(t, err)
	for _, w := range all.Edges.Weight {
		require.Equal(t, float32(-1), w)
	}

	mixed, err := synth.Generate([]synth.Option{synth.WithSeed(7), synth.WithSignedFraction(0.5)}, synth.Complete(10))
	require.NoError(t, err)
	var neg int
	for _, w := range mixed.Edges.Weight {
		require.Contains(t, []float32{-1, 1}, w)
		if w < 0 {
			neg++
		}
	}
	require.Greater(t, neg, 0)
	require.Less(t, neg, mixed.Edges.Len())
}

func TestDSBM(t *testing.T) {
	sizes := []int{10, 10, 10}
	g, err := synth.Generate([]synth.Option{synth.WithSeed(3)}, synth.DSBM(sizes, 0.5, 0.3, 1))
	require.NoError(t, err)
	require.Equal(t, 30, g.NumNodes)
	require.Len(t, g.Labels, 30)
	require.Equal(t, 0, g.Labels[0])
	require.Equal(t, 2, g.Labels[29])
	require.NoError(t, g.Edges.Validate(g.NumNodes))

	var inter int
	for k := range g.Edges.Src {
		u, v := g.Edges.Src[k], g.Edges.Dst[k]
		if g.Labels[u] != g.Labels[v] {
			inter++
			require.Less(t, g.Labels[u], g.Labels[v], "pQ=1 points every inter edge upwards")
		}
	}
	require.Greater(t, inter, 0)

	// pInter = 0 keeps the clusters disconnected.
	g, err = synth.Generate([]synth.Option{synth.WithSeed(3)}, synth.DSBM(sizes, 1, 0, 0.5))
	require.NoError(t, err)
	for k := range g.Edges.Src {
		require.Equal(t, g.Labels[g.Edges.Src[k]], g.Labels[g.Edges.Dst[k]])
	}
	require.Equal(t, 3*45, g.Edges.Len())
}

func TestWeightFns(t *testing.T) {
	require.Equal(t, float32(3), synth.ConstantWeightFn(3)(nil))
	require.Equal(t, float32(0.5), synth.UniformWeightFn(0.5, 4)(nil))
	require.Equal(t, float32(1), synth.IntWeightFn(5)(nil))
	require.Equal(t, synth.DefaultEdgeWeight, synth.DefaultWeightFn(nil))
}
