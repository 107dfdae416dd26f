package expert

import (
	"fmt"

	"github.com/npillmayer/stext"
)

// State is the continuation of a chunked conversion: either nothing, or
// the number of a special case (an open comment, an unterminated literal)
// which a previous chunk could not resolve and the next chunk has to
// finish. The zero value records no continuation.
type State struct {
	caseNumber int
}

// Pending returns a state recording that special case caseNumber awaits
// continuation. caseNumber must be positive.
func Pending(caseNumber int) State {
	if caseNumber < 1 {
		panic(fmt.Errorf("%w: %d", stext.ErrBadCaseNumber, caseNumber))
	}
	return State{caseNumber: caseNumber}
}

// IsPending reports whether the state records an unresolved special case.
func (s State) IsPending() bool {
	return s.caseNumber != 0
}

// CaseNumber returns the recorded special-case number, or 0 if the state
// records no continuation.
func (s State) CaseNumber() int {
	return s.caseNumber
}

func (s State) String() string {
	if s.caseNumber == 0 {
		return "no continuation"
	}
	return fmt.Sprintf("continuation of special case %d", s.caseNumber)
}

// StatefulExpert converts chunked structured text, where one logical
// stream arrives as a sequence of lean strings (e.g. line by line) and a
// special case may span chunk boundaries. It pairs a shared, stateless
// processor with the continuation of exactly one stream.
//
// Unlike Expert, a StatefulExpert is not safe for concurrent use. Streams
// processed in parallel each need their own wrapper.
type StatefulExpert struct {
	Expert
	state State
}

// NewStateful creates an expert for one stream of chunked structured text,
// with no continuation pending.
func NewStateful(proc stext.Processor, opts ...Option) *StatefulExpert {
	x := &StatefulExpert{}
	x.Expert = *New(proc, opts...)
	return x
}

// State returns the current continuation.
func (x *StatefulExpert) State() State {
	return x.state
}

// SetState installs a continuation, typically one previously obtained from
// State on an earlier chunk of the same stream.
func (x *StatefulExpert) SetState(s State) {
	x.state = s
}

// ResetState discards any pending continuation, returning the expert to
// the state it had immediately after construction. Used when a new,
// unrelated stream starts or a partially processed one is abandoned.
func (x *StatefulExpert) ResetState() {
	x.state = State{}
}

// LeanToFullText converts one chunk of the stream, resuming a special case
// left open by the previous chunk and recording any case the current chunk
// leaves open in turn.
func (x *StatefulExpert) LeanToFullText(text string) string {
	return x.leanToFull(text, &x.state)
}

// LeanToFullMap converts one chunk like LeanToFullText, but returns the
// mapping from lean to full positions instead of the full text. The
// continuation is threaded exactly as in LeanToFullText.
func (x *StatefulExpert) LeanToFullMap(text string) []int {
	return x.leanToFullMap(text, &x.state)
}
