package expert

import (
	"strings"

	"github.com/npillmayer/stext"
)

// Expert converts structured text of one grammar between lean and full
// form. It pairs a processor with an environment and owns no mutable
// state, so a single Expert may serve arbitrarily many conversions from
// arbitrarily many goroutines.
type Expert struct {
	proc stext.Processor
	env  *stext.Environment
}

// Option configures an Expert.
type Option func(*Expert)

// WithEnvironment sets the environment under which the expert converts.
// Without this option conversions run under stext.DefaultEnvironment().
func WithEnvironment(env *stext.Environment) Option {
	return func(e *Expert) {
		e.env = env
	}
}

// New creates an expert for the given processor.
func New(proc stext.Processor, opts ...Option) *Expert {
	e := &Expert{proc: proc}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Processor returns the processor this expert converts with.
func (e *Expert) Processor() stext.Processor {
	return e.proc
}

// Environment returns the environment this expert converts under. It is
// never nil.
func (e *Expert) Environment() *stext.Environment {
	if e.env == nil {
		return stext.DefaultEnvironment()
	}
	return e.env
}

// LeanToFullText returns the full form of the given lean text: the text
// with directional marks inserted at token boundaries where the grammar
// requires them, framed with directional formatting characters if the
// environment orientation calls for it.
func (e *Expert) LeanToFullText(text string) string {
	return e.leanToFull(text, nil)
}

// LeanToFullMap returns, for every character of the lean text, the
// position of that character within the corresponding full text.
func (e *Expert) LeanToFullMap(text string) []int {
	return e.leanToFullMap(text, nil)
}

// LeanBidiCharOffsets returns the positions within the lean text at which
// LeanToFullText inserts directional marks, in ascending order.
func (e *Expert) LeanBidiCharOffsets(text string) []int {
	ctx := stext.BorrowContext(e.env, text)
	defer ctx.Release()
	e.scan(ctx, nil)
	return ctx.MarkOffsets()
}

// FullToLeanText returns the lean form of the given full text, removing
// the directional marks and frame characters which lean-to-full conversion
// inserts. Applied to the output of LeanToFullText it restores the
// original lean text exactly.
func (e *Expert) FullToLeanText(full string) string {
	var b strings.Builder
	for _, r := range full {
		if !stext.IsMark(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FullToLeanMap returns, for every character of the full text, the
// position of that character within the corresponding lean text, or -1 for
// characters which lean-to-full conversion inserted.
func (e *Expert) FullToLeanMap(full string) []int {
	m := make([]int, 0, len(full))
	lean := 0
	for _, r := range full {
		if stext.IsMark(r) {
			m = append(m, -1)
		} else {
			m = append(m, lean)
			lean++
		}
	}
	return m
}

// An empty chunk carries nothing to convert: both conversion entry points
// return immediately, leaving a pending continuation untouched for the
// next non-empty chunk.

func (e *Expert) leanToFull(text string, st *State) string {
	if text == "" {
		return text
	}
	ctx := stext.BorrowContext(e.env, text)
	defer ctx.Release()
	if !e.scan(ctx, st) {
		return text
	}
	prefix, suffix := e.frame(ctx)
	return materialize(ctx, prefix, suffix)
}

func (e *Expert) leanToFullMap(text string, st *State) []int {
	if text == "" {
		return []int{}
	}
	ctx := stext.BorrowContext(e.env, text)
	defer ctx.Release()
	m := make([]int, ctx.Len())
	if !e.scan(ctx, st) {
		for i := range m {
			m[i] = i
		}
		return m
	}
	prefix, _ := e.frame(ctx)
	shift := len([]rune(prefix))
	offsets := ctx.MarkOffsets()
	oi := 0
	for i := range m {
		for oi < len(offsets) && offsets[oi] <= i {
			oi++
		}
		m[i] = i + shift + oi
	}
	return m
}

// materialize builds the full text from the lean text and the mark ledger,
// inserting the direction's mark before each recorded position.
func materialize(ctx *stext.Context, prefix, suffix string) string {
	offsets := ctx.MarkOffsets()
	if len(offsets) == 0 && prefix == "" && suffix == "" {
		return ctx.Text()
	}
	mark := ctx.Direction().Mark()
	var b strings.Builder
	b.WriteString(prefix)
	oi := 0
	for i := 0; i < ctx.Len(); i++ {
		if oi < len(offsets) && offsets[oi] == i {
			b.WriteRune(mark)
			oi++
		}
		b.WriteRune(ctx.Rune(i))
	}
	if oi < len(offsets) { // a mark after the last character
		b.WriteRune(mark)
	}
	b.WriteString(suffix)
	return b.String()
}
