package stext

// Direction is the base direction of a piece of structured text. It governs
// the visual order in which tokens are laid out, one after the other, and it
// selects the kind of directional mark (LRM or RLM) inserted at token
// boundaries.
type Direction int8

// Base directions for structured text.
const (
	LTR Direction = iota // left-to-right
	RTL                  // right-to-left
)

// Invisible directional formatting characters, as defined by the Unicode
// standard. Marks (LRM, RLM) anchor neutral characters to a direction;
// embeddings (LRE, RLE) open a directional embedding level which PDF closes
// again.
const (
	LRM rune = '‎' // LEFT-TO-RIGHT MARK
	RLM rune = '‏' // RIGHT-TO-LEFT MARK
	LRE rune = '‪' // LEFT-TO-RIGHT EMBEDDING
	RLE rune = '‫' // RIGHT-TO-LEFT EMBEDDING
	PDF rune = '‬' // POP DIRECTIONAL FORMATTING
)

// Mark returns the directional mark matching the base direction, i.e. LRM
// for LTR and RLM for RTL.
func (dir Direction) Mark() rune {
	if dir == RTL {
		return RLM
	}
	return LRM
}

// Embedding returns the embedding initiator matching the base direction,
// i.e. LRE for LTR and RLE for RTL. The matching terminator is always PDF.
func (dir Direction) Embedding() rune {
	if dir == RTL {
		return RLE
	}
	return LRE
}

func (dir Direction) String() string {
	if dir == RTL {
		return "RTL"
	}
	return "LTR"
}

// IsMark returns true if r is one of the formatting characters which
// lean-to-full conversion may insert, i.e. one of LRM, RLM, LRE, RLE or PDF.
func IsMark(r rune) bool {
	switch r {
	case LRM, RLM, LRE, RLE, PDF:
		return true
	}
	return false
}
