// SPDX-License-Identifier: MIT
// Package synth: DSBM, the directed stochastic block model.
//
// Nodes are split into consecutive clusters of the given sizes. For each
// unordered pair {u, v}, u < v:
//   - same cluster: an edge exists with probability pIn and points either
//     way with probability ½;
//   - different clusters: an edge exists with probability pInter and points
//     from the lower-indexed cluster to the higher one with probability pQ,
//     the other way otherwise.
//
// pQ = 0.5 gives no directional signal; pQ → 1 makes the cluster order
// recoverable from edge direction alone. Labels holds the cluster of every node.
//
// Complexity: O(N²) trials, N = Σ sizes.

package synth

import "fmt"

const (
	methodDSBM      = "DSBM"
	minDSBMClusters = 2
	minClusterSize  = 1
)

// DSBM samples a directed stochastic block model. Requires at least two
// clusters, every size ≥ 1, probabilities in [0,1] and an RNG.
func DSBM(sizes []int, pIn, pInter, pQ float64) Constructor {
	return func(b *Buffer, cfg config) error {
		if len(sizes) < minDSBMClusters {
			return fmt.Errorf("%s: clusters=%d < min=%d: %w",
				methodDSBM, len(sizes), minDSBMClusters, ErrTooFewVertices)
		}
		for c, s := range sizes {
			if s < minClusterSize {
				return fmt.Errorf("%s: cluster %d size=%d: %w", methodDSBM, c, s, ErrTooFewVertices)
			}
		}
		probs := [...]struct {
			name string
			p    float64
		}{{"pIn", pIn}, {"pInter", pInter}, {"pQ", pQ}}
		for _, pr := range probs {
			if pr.p < probMin || pr.p > probMax {
				return fmt.Errorf("%s: %s=%.6f: %w", methodDSBM, pr.name, pr.p, ErrInvalidProbability)
			}
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodDSBM, ErrNeedRandSource)
		}

		var labels []int
		for c, s := range sizes {
			for i := 0; i < s; i++ {
				labels = append(labels, c)
			}
		}
		n := len(labels)
		b.grow(n)
		b.labels = labels

		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if labels[u] == labels[v] {
					if cfg.rng.Float64() < pIn {
						if cfg.rng.Float64() < 0.5 {
							b.add(cfg, u, v)
						} else {
							b.add(cfg, v, u)
						}
					}
					continue
				}
				if cfg.rng.Float64() < pInter {
					// labels are non-decreasing in the index, so u is in the lower cluster
					if cfg.rng.Float64() < pQ {
						b.add(cfg, u, v)
					} else {
						b.add(cfg, v, u)
					}
				}
			}
		}

		return nil
	}
}
