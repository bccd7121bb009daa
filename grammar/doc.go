// Package grammar defines the connection-cost model consumed by the lattice:
// the contract that scores how well two adjacent word candidates join, plus a
// concrete in-memory implementation for tests, tools and small dictionaries.
//
// Overview:
//
//   - Every word candidate carries a pair of context-class identifiers:
//     leftId (how the word attaches to what precedes it) and rightId (how it
//     attaches to what follows). The grammar maps a (rightId, leftId) pair of
//     two neighbouring candidates to a connection cost.
//   - A reserved cost value, InhibitedConnection, marks pairs the grammar
//     forbids outright; the lattice never joins nodes across an inhibited
//     pair, no matter how cheap the rest of the path is.
//   - The grammar also supplies the parameters (context ids + intrinsic cost)
//     of the synthetic BOS and EOS sentinel nodes, and part-of-speech label
//     lists for the debug view.
//
// Key features:
//
//   - Grammar: the minimal read-only interface the lattice relies on.
//   - MatrixGrammar: a flat row-major int16 cost matrix with settable cells,
//     an Inhibit helper, POS label registration, and configurable BOS/EOS
//     parameters. Build it up front, then treat it as immutable.
//   - Unset cells read as cost 0, so a zero-filled matrix is a valid
//     (permissive) grammar.
//
// Error handling (sentinel errors):
//
//   - ErrBadMatrixSize: NewMatrixGrammar called with a non-positive dimension.
//   - ErrContextOutOfRange: SetConnectCost/Inhibit called with an id outside
//     the matrix dimensions.
//
// Thread safety:
//
//   - MatrixGrammar mutators are not synchronized; populate the grammar
//     before sharing it. Once populated, ConnectCost and the parameter
//     accessors are safe for any number of concurrent readers, which is how
//     several lattices share one grammar.
//
// Complexity: ConnectCost is a single O(1) slice load.
package grammar
