// Package sudachi is the shortest-path core of a dictionary-driven
// morphological analyzer for scripts without explicit spaces between words.
//
// 🚀 What is this module?
//
//	The algorithmic heart of such an analyzer: given candidate word
//	occurrences proposed over an input, find the globally minimum-cost
//	reading from sentence start to sentence end, where cost combines each
//	word's intrinsic (emission) cost with grammar-supplied connection
//	costs between adjacent words.
//
// Under the hood, everything is organized in two subpackages:
//
//	grammar/ — the connection-cost model: the Grammar contract, BOS/EOS
//	           parameters, the inhibited-connection sentinel, and an
//	           in-memory MatrixGrammar implementation
//	lattice/ — the word lattice: end-position buckets, incremental Viterbi
//	           relaxation on insertion, best-path extraction, an explicit
//	           Resize/Clear lifecycle for allocation-free reuse, and a
//	           debug dump/JSON view
//
// What this module deliberately does not do: parse raw text, load binary
// dictionaries, or decide which candidate words exist. Those belong to the
// surrounding analyzer; this core only selects the cheapest path through a
// candidate graph a caller has populated.
//
// Quick ASCII example, input "abc":
//
//	BOS ──a── ab ──c── EOS
//	  \               /
//	   ──────abc─────/
//
//	candidates are bucketed by end position; the lattice picks the
//	cheapest chain of spans covering [0, len(input)).
//
// Pure Go, no runtime dependencies. Dive into lattice/doc.go for the
// driving sequence and the caller contract.
package sudachi
