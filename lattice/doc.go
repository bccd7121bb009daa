// Package lattice implements the word lattice at the heart of a
// dictionary-driven morphological analyzer: a shortest-path (Viterbi)
// structure over candidate word occurrences, for scripts without explicit
// spaces between words.
//
// Overview:
//
//   - A candidate generator proposes word occurrences over the input, each
//     spanning a half-open byte range [begin, end) and carrying an emission
//     cost plus left/right grammatical context ids. The lattice stores them
//     in buckets indexed by end position and, on every insertion, relaxes
//     the new node against all nodes ending at its begin position, so the
//     best-predecessor graph is always up to date for the inserted prefix.
//   - Path cost = sum of node emission costs + sum of pairwise connection
//     costs supplied by a grammar.Grammar. Inhibited context pairs are
//     skipped entirely during relaxation.
//   - Synthetic BOS and EOS sentinel nodes bracket the input; BestPath walks
//     best-predecessor links from EOS back to BOS and returns the interior
//     nodes in left-to-right order.
//
// Typical driving sequence:
//
//	lat, _ := lattice.New(gram)
//	lat.Resize(len(input))            // begin an analysis
//	lat.Insert(b, e, node)            // left-to-right, all ends ≤ b first
//	lat.ConnectEOS()                  // after the last insertion
//	path, err := lat.BestPath()       // interior nodes, in input order
//	lat.Clear()                       // ready for the next input
//
// Key features:
//
//   - Incremental relaxation: nodes are connected to their cheapest
//     reachable predecessor at insertion time, not in a separate pass.
//   - Explicit Resize/Clear lifecycle with a capacity watermark: buckets are
//     emptied, never reallocated, so one lattice serves many analyses.
//   - Remove supports construction-time pruning of dominated candidates.
//   - Query primitives for the candidate generator: NodesWithEnd, Nodes,
//     MinimumNode, HasPreviousNode.
//   - Debug view: a text Dump and a JSON serialization of the full lattice
//     state, including per-node connection costs (tooling only, format not
//     guaranteed stable).
//
// Caller contract (not checked at runtime):
//
//   - Insert order is topological: every node ending at position b must be
//     inserted before any node beginning at b.
//   - Remove is a construction-time edit; removing a node after a later node
//     has already chosen it as predecessor leaves stale back-pointers.
//   - Positions beyond the current capacity are precondition violations and
//     panic; Resize first.
//   - An unreached node's TotalCost is meaningless; always gate on
//     IsConnectedToBOS, never on the numeric value.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrammar: New called with a nil grammar.
//   - ErrEOSNotConnected: BestPath called while the EOS sentinel is not
//     connected to BOS (ConnectEOS missing, or every predecessor chain was
//     inhibited or unreachable).
//
// Complexity:
//
//   - Insert: O(|bucket at begin|) for the relaxation scan.
//   - Whole analysis: O(total nodes × average bucket size).
//   - BestPath: O(path length).
//
// Thread safety:
//
//   - A Lattice is a mutable single-analysis object; drive it from one
//     goroutine or synchronize externally. The grammar is read-only shared
//     state and may back any number of lattices concurrently.
package lattice
