// SPDX-License-Identifier: MIT

// Package synth generates directed, optionally signed, edge lists for tests,
// benchmarks and the qlap CLI.
//
// One orchestrator, Generate(opts, cons...), resolves the options into an
// immutable config and runs the constructors in order over a shared node
// index space. Constructors overlay: Path(4) followed by Cycle(4) emits both
// edge sets over nodes 0..3, and the node count is the largest any
// constructor asked for.
//
// Topologies: Path, Cycle, Star, Complete (every ordered pair, so every pair
// is antiparallel), RandomSparse (Erdős–Rényi over ordered pairs) and DSBM, a
// directed stochastic block model whose inter-cluster edges point from the
// lower to the higher cluster with probability pQ.
//
// Determinism: same options, seed and constructor order give the same
// EdgeList. Stochastic constructors need WithSeed or WithRand.
package synth
