package lattice

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Debug/observability view of the lattice: a plain-text dump and a JSON
// serialization of every node (sentinels included) with its connection
// costs. Purely descriptive tooling — nothing here feeds back into the
// shortest-path algorithm, and neither format is guaranteed stable.

// nullSurface stands in for the surface or POS of a node the word lookup
// cannot describe.
const nullSurface = "(null)"

// surface resolves a node's headword for display.
func (l *Lattice) surface(n *Node) string {
	if !n.Defined || l.lookup == nil {
		return nullSurface
	}
	s, _ := l.lookup.WordInfo(n.WordID)

	return s
}

// pos resolves a node's part-of-speech label for display. Sentinels and
// other undefined nodes print as "BOS/EOS".
func (l *Lattice) pos(n *Node) string {
	if !n.Defined {
		return "BOS/EOS"
	}
	if l.lookup == nil {
		return nullSurface
	}
	_, posID := l.lookup.WordInfo(n.WordID)
	if posID < 0 {
		return nullSurface
	}

	return strings.Join(l.gram.PartOfSpeechString(posID), ",")
}

// Dump writes a line per node, EOS row first and BOS last, in the form
//
//	index: begin end surface(wordId) pos leftId rightId cost: cc1 cc2 ...
//
// where the trailing list is the connection cost to every node in the
// node's begin bucket. Requires an active analysis (Resize called, Clear
// not yet). Best-effort debug output; write errors are ignored.
func (l *Lattice) Dump(w io.Writer) {
	index := 0
	for i := l.size + 1; i >= 0; i-- {
		rNodes := []*Node{l.eosNode}
		if i <= l.size {
			rNodes = l.endLists[i]
		}
		for _, r := range rNodes {
			fmt.Fprintf(w, "%d: %d %d %s(%d) %s %d %d %d: ",
				index, r.Begin, r.End, l.surface(r), r.WordID, l.pos(r),
				r.LeftID, r.RightID, r.Cost)
			index++

			for _, left := range l.endLists[r.Begin] {
				fmt.Fprintf(w, "%d ", l.gram.ConnectCost(left.RightID, r.LeftID))
			}
			fmt.Fprintln(w)
		}
	}
}

// dumpNode is the JSON shape of one lattice node. Begin is null for the BOS
// sentinel and End is null for the EOS sentinel, so zero-width sentinel
// spans are distinguishable from real zero-length values.
type dumpNode struct {
	Begin        *int    `json:"begin"`
	End          *int    `json:"end"`
	Headword     string  `json:"headword"`
	WordID       int32   `json:"wordId"`
	POS          string  `json:"pos"`
	LeftID       int16   `json:"leftId"`
	RightID      int16   `json:"rightId"`
	Cost         int16   `json:"cost"`
	NodeID       int     `json:"nodeId"`
	ConnectCosts []int16 `json:"connectCosts"`
}

// MarshalJSON serializes the full lattice state as a flat array of nodes in
// end-position order, BOS first and EOS last, each with the connection
// costs to its begin bucket. Requires an active analysis, like Dump.
func (l *Lattice) MarshalJSON() ([]byte, error) {
	var out []dumpNode
	nodeID := 0
	for i := 0; i <= l.size+1; i++ {
		rNodes := []*Node{l.eosNode}
		if i <= l.size {
			rNodes = l.endLists[i]
		}
		for _, r := range rNodes {
			begin, end := r.Begin, r.End
			d := dumpNode{
				Begin:    &begin,
				End:      &end,
				Headword: l.surface(r),
				WordID:   r.WordID,
				POS:      l.pos(r),
				LeftID:   r.LeftID,
				RightID:  r.RightID,
				Cost:     r.Cost,
				NodeID:   nodeID,
			}
			if begin == end && begin == 0 {
				d.Begin = nil // BOS
			} else if begin == end {
				d.End = nil // EOS
			}
			costs := make([]int16, 0, len(l.endLists[r.Begin]))
			for _, left := range l.endLists[r.Begin] {
				costs = append(costs, l.gram.ConnectCost(left.RightID, r.LeftID))
			}
			d.ConnectCosts = costs
			nodeID++

			out = append(out, d)
		}
	}

	return json.Marshal(out)
}
