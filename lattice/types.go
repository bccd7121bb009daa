// Package lattice sentinel errors, collaborator contracts, and functional
// options, in the shape shared by the rest of the module.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrNilGrammar indicates New was called with a nil grammar.
	ErrNilGrammar = errors.New("lattice: grammar is nil")

	// ErrEOSNotConnected indicates BestPath was called while the EOS
	// sentinel is not connected to BOS: either ConnectEOS was never called,
	// or no predecessor chain reaches the end of the input. A well-formed
	// analysis always provides at least an unknown-word fallback path, so
	// this is a construction-time invariant violation, not a runtime
	// condition to retry.
	ErrEOSNotConnected = errors.New("lattice: EOS is not connected to BOS")
)

// WordLookup resolves a node's word id to its surface text and
// part-of-speech id. It serves the debug view only; the shortest-path
// algorithm never consults it. A negative posID means "no POS".
type WordLookup interface {
	WordInfo(wordID int32) (surface string, posID int16)
}

// Option configures a Lattice at construction time.
type Option func(*Lattice)

// WithWordLookup attaches a word-info resolver used by Dump and the JSON
// view to print surfaces and POS labels. Without it every node prints as
// undefined.
func WithWordLookup(lookup WordLookup) Option {
	return func(l *Lattice) {
		l.lookup = lookup
	}
}
