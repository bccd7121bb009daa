package lattice_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrRyzen/Sudachi/grammar"
	"github.com/MrRyzen/Sudachi/lattice"
)

// stubEntry is one word the stub lookup can describe.
type stubEntry struct {
	surface string
	posID   int16
}

// stubLookup resolves word ids from a fixed table; unknown ids yield an
// empty surface and no POS.
type stubLookup map[int32]stubEntry

func (s stubLookup) WordInfo(wordID int32) (string, int16) {
	e, ok := s[wordID]
	if !ok {
		return "", -1
	}

	return e.surface, e.posID
}

// buildDumpLattice assembles a two-candidate analysis with a word lookup:
// "ab" = "a"(0,1) + "b"(1,2), both nouns.
func buildDumpLattice(t *testing.T) *lattice.Lattice {
	t.Helper()

	g, err := grammar.NewMatrixGrammar(2, 2)
	require.NoError(t, err)
	noun := g.AddPartOfSpeech([]string{"noun", "common"})

	lookup := stubLookup{
		1: {surface: "a", posID: noun},
		2: {surface: "b", posID: noun},
	}

	l, err := lattice.New(g, lattice.WithWordLookup(lookup))
	require.NoError(t, err)

	l.Resize(2)
	l.Insert(0, 1, &lattice.Node{LeftID: 0, RightID: 0, Cost: 10, WordID: 1, Defined: true})
	l.Insert(1, 2, &lattice.Node{LeftID: 0, RightID: 0, Cost: 20, WordID: 2, Defined: true})
	l.ConnectEOS()

	return l
}

func TestDump_TextFormat(t *testing.T) {
	l := buildDumpLattice(t)

	var buf bytes.Buffer
	l.Dump(&buf)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "BOS + two candidates + EOS")

	// EOS row first: zero-width span at 2, sentinel markers, one
	// connection cost back to the node ending at 2.
	require.Equal(t, "0: 2 2 (null)(0) BOS/EOS 0 0 0: 0 ", lines[0])

	// Candidates print surface, word id and joined POS labels.
	require.Equal(t, "1: 1 2 b(2) noun,common 0 0 20: 0 ", lines[1])
	require.Equal(t, "2: 0 1 a(1) noun,common 0 0 10: 0 ", lines[2])

	// BOS row last.
	require.Equal(t, "3: 0 0 (null)(0) BOS/EOS 0 0 0: 0 ", lines[3])
}

func TestDump_WithoutLookupPrintsUndefined(t *testing.T) {
	g, err := grammar.NewMatrixGrammar(1, 1)
	require.NoError(t, err)
	l, err := lattice.New(g)
	require.NoError(t, err)

	l.Resize(1)
	l.Insert(0, 1, &lattice.Node{Defined: true, WordID: 9})
	l.ConnectEOS()

	var buf bytes.Buffer
	l.Dump(&buf)

	// Defined or not, without a lookup every surface is the null marker.
	require.Contains(t, buf.String(), "(null)(9)")
}

func TestMarshalJSON_Shape(t *testing.T) {
	l := buildDumpLattice(t)

	raw, err := json.Marshal(l)
	require.NoError(t, err)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal(raw, &nodes))
	require.Len(t, nodes, 4)

	// BOS first: null begin, sentinel POS.
	bos := nodes[0]
	require.Nil(t, bos["begin"])
	require.Equal(t, float64(0), bos["end"])
	require.Equal(t, "BOS/EOS", bos["pos"])
	require.Equal(t, float64(0), bos["nodeId"])

	// Interior nodes carry surfaces and one connection cost per
	// begin-bucket entry.
	a := nodes[1]
	require.Equal(t, "a", a["headword"])
	require.Equal(t, "noun,common", a["pos"])
	require.Equal(t, float64(0), a["begin"])
	require.Equal(t, float64(1), a["end"])
	require.Len(t, a["connectCosts"], 1)

	// EOS last: null end.
	eos := nodes[3]
	require.Equal(t, float64(2), eos["begin"])
	require.Nil(t, eos["end"])
	require.Equal(t, "BOS/EOS", eos["pos"])
	require.Equal(t, float64(3), eos["nodeId"])
}

func TestMarshalJSON_NegativePOSPrintsNull(t *testing.T) {
	g, err := grammar.NewMatrixGrammar(1, 1)
	require.NoError(t, err)

	lookup := stubLookup{7: {surface: "x", posID: -1}}
	l, err := lattice.New(g, lattice.WithWordLookup(lookup))
	require.NoError(t, err)

	l.Resize(1)
	l.Insert(0, 1, &lattice.Node{Defined: true, WordID: 7})
	l.ConnectEOS()

	raw, err := json.Marshal(l)
	require.NoError(t, err)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal(raw, &nodes))
	require.Equal(t, "x", nodes[1]["headword"])
	require.Equal(t, "(null)", nodes[1]["pos"])
}
