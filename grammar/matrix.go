package grammar

import "fmt"

// MatrixGrammar is an in-memory Grammar backed by a dense row-major cost
// matrix of leftIDSize×rightIDSize int16 cells. Cells default to cost 0, so
// a freshly constructed grammar permits every junction for free.
//
// Populate it with SetConnectCost/Inhibit/AddPartOfSpeech and the BOS/EOS
// setters, then hand it to a lattice and stop mutating; reads are lock-free.
type MatrixGrammar struct {
	leftIDSize  int
	rightIDSize int
	costs       []int16    // costs[left*rightIDSize + right]
	posList     [][]string // POS id → label sequence
	bos         Parameter
	eos         Parameter
}

// NewMatrixGrammar allocates a zero-filled cost matrix with the given
// context-id dimensions. BOS and EOS parameters default to context 0/0 with
// cost 0. Returns ErrBadMatrixSize if either dimension is < 1.
// Complexity: O(leftIDSize × rightIDSize).
func NewMatrixGrammar(leftIDSize, rightIDSize int) (*MatrixGrammar, error) {
	if leftIDSize < 1 || rightIDSize < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadMatrixSize, leftIDSize, rightIDSize)
	}

	return &MatrixGrammar{
		leftIDSize:  leftIDSize,
		rightIDSize: rightIDSize,
		costs:       make([]int16, leftIDSize*rightIDSize),
	}, nil
}

// ConnectCost returns the cost of joining a node whose rightId is leftID to
// a following node whose leftId is rightID. Ids outside the matrix read as
// InhibitedConnection: an unknown context can never participate in a path.
// Complexity: O(1).
func (g *MatrixGrammar) ConnectCost(leftID, rightID int16) int16 {
	if leftID < 0 || int(leftID) >= g.leftIDSize || rightID < 0 || int(rightID) >= g.rightIDSize {
		return InhibitedConnection
	}

	return g.costs[int(leftID)*g.rightIDSize+int(rightID)]
}

// SetConnectCost stores the cost for a context pair. Storing
// InhibitedConnection is allowed and equivalent to Inhibit.
// Returns ErrContextOutOfRange for ids outside the matrix.
func (g *MatrixGrammar) SetConnectCost(leftID, rightID, cost int16) error {
	if leftID < 0 || int(leftID) >= g.leftIDSize || rightID < 0 || int(rightID) >= g.rightIDSize {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrContextOutOfRange, leftID, rightID, g.leftIDSize, g.rightIDSize)
	}
	g.costs[int(leftID)*g.rightIDSize+int(rightID)] = cost

	return nil
}

// Inhibit forbids a context pair outright.
func (g *MatrixGrammar) Inhibit(leftID, rightID int16) error {
	return g.SetConnectCost(leftID, rightID, InhibitedConnection)
}

// SetBOSParameter overrides the start-sentinel parameters.
func (g *MatrixGrammar) SetBOSParameter(p Parameter) { g.bos = p }

// SetEOSParameter overrides the end-sentinel parameters.
func (g *MatrixGrammar) SetEOSParameter(p Parameter) { g.eos = p }

// BOSParameter returns the start-sentinel parameters.
func (g *MatrixGrammar) BOSParameter() Parameter { return g.bos }

// EOSParameter returns the end-sentinel parameters.
func (g *MatrixGrammar) EOSParameter() Parameter { return g.eos }

// AddPartOfSpeech registers a POS label sequence and returns its id.
// The sequence is stored as given; callers should not mutate it afterwards.
func (g *MatrixGrammar) AddPartOfSpeech(labels []string) int16 {
	g.posList = append(g.posList, labels)

	return int16(len(g.posList) - 1)
}

// PartOfSpeechString resolves a POS id to its label sequence, or nil when
// the id was never registered.
func (g *MatrixGrammar) PartOfSpeechString(posID int16) []string {
	if posID < 0 || int(posID) >= len(g.posList) {
		return nil
	}

	return g.posList[posID]
}

// PartOfSpeechSize returns the number of registered POS label sequences.
func (g *MatrixGrammar) PartOfSpeechSize() int { return len(g.posList) }
