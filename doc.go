// Package paygrid is an in-memory workbench for two-player payoff matrices:
// build them, derive new ones through a fixed set of analytical transforms,
// and follow the lineage from every result back to its source.
//
// 🚀 What is in the box?
//
//	• payoff/     Matrix and Grid types, structural validation, YAML/JSON codec
//	• transform/  evolutionary relaxation, Nash and Pareto weighting, multiverse branching
//	• lattice/    the R×C grid as a 4-neighbour lattice with named traversal orders
//	• ids/        pluggable id generators (time+random, sequence, UUID)
//	• workbench/  ordered, goroutine-safe matrix collection with provenance queries
//	• scenario/   canned and seeded-random matrices
//	• universe/   multi-universe civilization simulation feeding matrices back in
//	• config/     YAML + PAYGRID_* environment configuration
//	• cmd/paygrid  the command-line front end
//
// ✨ Guarantees
//
//   - Transforms never mutate their input and validate it first; malformed
//     matrices fail with errors matching payoff.ErrMalformedMatrix.
//   - Same input and parameters give bit-identical payoffs; only ids differ.
//   - Libraries log through an injected *zap.Logger and stay silent by default.
//
// Quick start:
//
//	src := scenario.PrisonersDilemma(nil)
//	nash, err := transform.NashEquilibrium(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(nash.Payoffs) // [[[1.5 1.5] [0 2.5]] [[2.5 0] [1.5 1.5]]]
package paygrid
