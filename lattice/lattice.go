package lattice

import (
	"github.com/MrRyzen/Sudachi/grammar"
)

// Lattice owns the candidate-node graph for one analysis at a time: a table
// of "end buckets" where bucket e holds every node whose span ends at e, in
// insertion order. Bucket 0 holds exactly the BOS sentinel. The grammar is
// captured once at construction and treated as immutable for the lattice's
// whole lifetime.
type Lattice struct {
	gram   grammar.Grammar
	lookup WordLookup // debug view only; may be nil

	endLists  [][]*Node // endLists[e] = nodes with End == e
	size      int       // input length of the active analysis
	capacity  int       // largest size ever resized to; never shrinks
	eosNode   *Node     // recreated by Resize, dropped by Clear
	eosParams grammar.Parameter
}

// New constructs a lattice bound to the given grammar. The BOS sentinel is
// created once here, seeded from the grammar's BOS parameters, and survives
// every Clear. Returns ErrNilGrammar if gram is nil.
// Complexity: O(1).
func New(gram grammar.Grammar, opts ...Option) (*Lattice, error) {
	if gram == nil {
		return nil, ErrNilGrammar
	}

	l := &Lattice{
		gram:      gram,
		eosParams: gram.EOSParameter(),
	}
	for _, opt := range opts {
		opt(l)
	}

	bp := gram.BOSParameter()
	bos := &Node{}
	bos.SetParameter(bp.LeftID, bp.RightID, bp.Cost)
	bos.totalCost = int(bp.Cost)
	bos.connectedToBOS = true
	l.endLists = [][]*Node{{bos}}

	return l, nil
}

// NewNode returns a fresh undefined node for the caller to parameterize and
// Insert. Provided for symmetry with generators that build nodes field by
// field; constructing a Node literal directly is equally valid.
func (l *Lattice) NewNode() *Node { return &Node{} }

// Resize begins an analysis of an input of length n. Grows the bucket table
// if n exceeds the capacity watermark (capacity never shrinks), and creates
// a fresh EOS sentinel at position n from the grammar's EOS parameters. The
// EOS sentinel stays unconnected until ConnectEOS.
// Complexity: O(n - capacity) when growing, O(1) otherwise.
func (l *Lattice) Resize(n int) {
	if n > l.capacity {
		l.expand(n)
	}
	l.size = n

	eos := &Node{}
	eos.SetParameter(l.eosParams.LeftID, l.eosParams.RightID, l.eosParams.Cost)
	eos.Begin, eos.End = n, n
	l.eosNode = eos
}

// Clear ends the active analysis: empties every bucket from 1 through the
// old size (bucket 0, the BOS sentinel, is never touched), resets the size
// to 0 and drops the EOS sentinel. Bucket backing arrays are kept, so the
// next Resize up to the watermark allocates nothing. Must be called between
// analyses that reuse the same lattice.
// Complexity: O(size).
func (l *Lattice) Clear() {
	for i := 1; i <= l.size; i++ {
		l.endLists[i] = l.endLists[i][:0]
	}
	l.size = 0
	l.eosNode = nil
}

// expand grows the bucket table so positions 0..newCapacity all have a
// bucket, and raises the watermark. Internal; Resize is the only caller.
func (l *Lattice) expand(newCapacity int) {
	for i := len(l.endLists); i <= newCapacity; i++ {
		l.endLists = append(l.endLists, nil)
	}
	l.capacity = newCapacity
}

// Size returns the input length of the active analysis.
func (l *Lattice) Size() int { return l.size }

// Capacity returns the watermark: the largest size this lattice has ever
// been resized to.
func (l *Lattice) Capacity() int { return l.capacity }

// EOSNode returns the end sentinel of the active analysis, or nil before
// Resize / after Clear. Exposed for inspection; its DP state is meaningful
// only after ConnectEOS.
func (l *Lattice) EOSNode() *Node { return l.eosNode }

// NodesWithEnd returns the bucket of nodes whose span ends at end, in
// insertion order. The slice is a live view, not a copy; callers must not
// modify it. Positions beyond the capacity panic (precondition violation).
// Complexity: O(1).
func (l *Lattice) NodesWithEnd(end int) []*Node {
	return l.endLists[end]
}

// Nodes returns the nodes spanning exactly [begin, end), in insertion
// order. The result is a fresh slice.
// Complexity: O(|bucket at end|).
func (l *Lattice) Nodes(begin, end int) []*Node {
	var nodes []*Node
	for _, n := range l.endLists[end] {
		if n.Begin == begin {
			nodes = append(nodes, n)
		}
	}

	return nodes
}

// MinimumNode returns the node spanning exactly [begin, end) with the
// smallest emission cost, ties broken by insertion order, and false if no
// node matches. This compares emission cost, not total path cost: it is a
// static lookup helper independent of the DP state.
// Complexity: O(|bucket at end|).
func (l *Lattice) MinimumNode(begin, end int) (*Node, bool) {
	var best *Node
	for _, n := range l.endLists[end] {
		if n.Begin != begin {
			continue
		}
		if best == nil || n.Cost < best.Cost {
			best = n
		}
	}

	return best, best != nil
}

// HasPreviousNode reports whether any node ends at the given position.
// Candidate generators use it to decide whether an unknown-word fallback is
// required to keep position index reachable.
// Complexity: O(1).
func (l *Lattice) HasPreviousNode(index int) bool {
	return len(l.endLists[index]) > 0
}

// Insert assigns the node's span, appends it to the bucket at end, and
// immediately relaxes it against every node ending at begin.
//
// Caller contract: insertion order is topological — every node ending at
// begin must already be present — and positions must lie within the
// resized range. Neither is checked at runtime; violating the order
// silently yields an incomplete relaxation.
// Complexity: O(|bucket at begin|).
func (l *Lattice) Insert(begin, end int, n *Node) {
	n.Begin, n.End = begin, end
	l.endLists[end] = append(l.endLists[end], n)

	l.connect(n)
}

// Remove deletes the node from the bucket at end, preserving the order of
// the remaining nodes. Intended for construction-time pruning of dominated
// candidates; it does not re-relax nodes that already chose the removed
// node as predecessor, so it must happen before any dependent insertion.
// Complexity: O(|bucket at end|).
func (l *Lattice) Remove(begin, end int, n *Node) {
	bucket := l.endLists[end]
	for i, cand := range bucket {
		if cand != n {
			continue
		}
		copy(bucket[i:], bucket[i+1:])
		bucket[len(bucket)-1] = nil
		l.endLists[end] = bucket[:len(bucket)-1]

		return
	}
}

// ConnectEOS relaxes the end sentinel against the bucket at the current
// size. Call it exactly once per analysis, after the last candidate
// insertion and before BestPath.
// Complexity: O(|bucket at size|).
func (l *Lattice) ConnectEOS() {
	l.connect(l.eosNode)
}

// connect performs the incremental relaxation of node r against the bucket
// at r.Begin:
//
//  1. reset r's DP state to unreached;
//  2. for every left node in the bucket, skip it if it is itself unreached
//     or if the grammar inhibits the (left.RightID, r.LeftID) pair;
//     otherwise keep the cheapest left.totalCost + connection cost;
//  3. mark r connected iff some predecessor was kept;
//  4. add r's own emission cost on top (even when unreached — consumers
//     gate on the flag, not the number).
func (l *Lattice) connect(r *Node) {
	r.totalCost = unreachableCost
	r.bestPrev = nil
	for _, left := range l.endLists[r.Begin] {
		if !left.connectedToBOS {
			continue
		}
		cc := l.gram.ConnectCost(left.RightID, r.LeftID)
		if cc == grammar.InhibitedConnection {
			continue // this junction is grammatically disallowed
		}
		if cost := left.totalCost + int(cc); cost < r.totalCost {
			r.totalCost = cost
			r.bestPrev = left
		}
	}
	r.connectedToBOS = r.bestPrev != nil
	r.totalCost += int(r.Cost)
}

// BestPath returns the minimum-cost sequence of candidate nodes from BOS to
// EOS, in left-to-right input order, excluding both sentinels. It requires
// a connected EOS sentinel and returns ErrEOSNotConnected otherwise.
// Repeated calls without intervening mutation return equal sequences.
// Complexity: O(path length).
func (l *Lattice) BestPath() ([]*Node, error) {
	if l.eosNode == nil || !l.eosNode.connectedToBOS {
		return nil, ErrEOSNotConnected
	}

	bos := l.endLists[0][0]
	var path []*Node
	for n := l.eosNode.bestPrev; n != bos; n = n.bestPrev {
		path = append(path, n)
	}
	// Collected EOS-first; flip into input order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
