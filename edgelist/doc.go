// SPDX-License-Identifier: MIT

// Package edgelist is the input model of the Laplacian pipeline: a directed,
// optionally weighted edge list stored as parallel slices.
//
//	Src[k] → Dst[k] with weight Weight[k] (Weight == nil ⇒ every edge weighs 1)
//
// Helpers cover the preprocessing the node- and link-level baselines perform
// before building an operator: self-loop removal, duplicate coalescing
// (weights summed), symmetrization (ToUndirected), node-count inference and
// degree features (InOutDegree). Read/ReadFile ingest plain-text edge lists.
//
// Every helper returns a new EdgeList; inputs are never modified.
package edgelist
