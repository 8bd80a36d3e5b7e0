// Package workbench keeps an ordered collection of payoff matrices together
// with their provenance graph.
//
// A Workbench owns copies of the matrices it holds. Every matrix is added
// either directly (Add) or as the result of transforming a member (Connect).
// ConnectedTo of a member only ever names earlier members, so the provenance
// graph is a DAG ordered by insertion.
//
// Connect is the single place where results are linked to their source: every
// produced matrix, including both multiverse siblings, gets ConnectedTo set to
// exactly [sourceID]. Results are appended atomically; on any error the
// collection is left unchanged.
//
// Ancestors and Descendants walk the provenance graph breadth-first and return
// ids in visit order.
//
// A Workbench is safe for concurrent use.
package workbench
