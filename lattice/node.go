package lattice

import "math"

// unreachableCost initializes a node's total cost before relaxation. Any
// real path is cheaper. The node's own emission cost is still added on top
// afterwards, so an unreached node's TotalCost is not exactly this value;
// consumers gate on IsConnectedToBOS, never on the number.
const unreachableCost = math.MaxInt32

// Node is one candidate word occurrence in the lattice, or a BOS/EOS
// sentinel. The static attributes (span, context ids, emission cost, word
// identity) are plain fields the caller fills before Insert; the
// dynamic-programming state is owned by the lattice and read through
// accessors.
//
// The lattice owns every node it holds. Callers keep references for
// navigation only and must not use them after Clear.
type Node struct {
	// Begin and End delimit the half-open span [Begin, End) over input
	// positions. Insert overwrites them from its arguments; sentinels have
	// Begin == End (0 for BOS, the input length for EOS).
	Begin int
	End   int

	// LeftID and RightID are the grammatical context-class ids used to look
	// up connection costs against neighbouring nodes.
	LeftID  int16
	RightID int16

	// Cost is the emission cost: the intrinsic cost of this candidate,
	// independent of context.
	Cost int16

	// WordID identifies the dictionary entry; meaningful only when Defined.
	WordID int32

	// Defined distinguishes real dictionary entries from sentinels and
	// placeholder nodes that have no headword or POS.
	Defined bool

	// DP state, valid only after the node has passed through relaxation.
	totalCost      int
	bestPrev       *Node
	connectedToBOS bool
}

// SetParameter assigns the context ids and emission cost in one call,
// mirroring how candidate generators copy them out of dictionary entries.
func (n *Node) SetParameter(leftID, rightID, cost int16) {
	n.LeftID = leftID
	n.RightID = rightID
	n.Cost = cost
}

// TotalCost returns the best cumulative cost from BOS to this node,
// inclusive of the node's own emission cost. Meaningless unless
// IsConnectedToBOS reports true.
func (n *Node) TotalCost() int { return n.totalCost }

// BestPreviousNode returns the predecessor on the cheapest path from BOS,
// or nil if the node is unreached. The reference is navigational only; the
// lattice owns the node it points to.
func (n *Node) BestPreviousNode() *Node { return n.bestPrev }

// IsConnectedToBOS reports whether at least one predecessor connection
// succeeded during relaxation. It is the only valid reachability signal;
// see TotalCost.
func (n *Node) IsConnectedToBOS() bool { return n.connectedToBOS }
