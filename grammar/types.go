// Package grammar types: the Grammar contract, BOS/EOS parameter triple,
// the inhibited-connection sentinel, and sentinel errors.
package grammar

import "errors"

// InhibitedConnection is the reserved connection cost marking a forbidden
// context pair. It is distinct from every real cost a grammar may store
// (real costs are strictly smaller), so a single comparison suffices to
// exclude the pair from relaxation.
const InhibitedConnection int16 = 0x7fff

// Sentinel errors for grammar construction and population.
var (
	// ErrBadMatrixSize indicates NewMatrixGrammar received a non-positive
	// left or right dimension.
	ErrBadMatrixSize = errors.New("grammar: matrix dimensions must be positive")

	// ErrContextOutOfRange indicates a context id outside the matrix
	// dimensions was passed to SetConnectCost or Inhibit.
	ErrContextOutOfRange = errors.New("grammar: context id out of range")
)

// Parameter bundles the context ids and intrinsic cost of a BOS or EOS
// sentinel node. LeftID and RightID are context-class identifiers; Cost is
// the sentinel's emission cost (usually 0).
type Parameter struct {
	LeftID  int16 // context class facing the preceding node
	RightID int16 // context class facing the following node
	Cost    int16 // intrinsic cost of the sentinel itself
}

// Grammar is the read-only connection-cost model the lattice consumes.
//
// ConnectCost scores the junction between a node whose rightId is leftID
// and an immediately following node whose leftId is rightID; it returns
// InhibitedConnection for forbidden pairs. BOSParameter and EOSParameter
// supply the sentinel-node parameters. PartOfSpeechString resolves a POS id
// to its label sequence and serves only the debug view; it returns nil for
// unknown ids.
//
// Implementations must be safe for concurrent readers: the lattice treats
// its grammar as immutable shared state.
type Grammar interface {
	ConnectCost(leftID, rightID int16) int16
	BOSParameter() Parameter
	EOSParameter() Parameter
	PartOfSpeechString(posID int16) []string
}
