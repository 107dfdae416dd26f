package expert

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stext"
	"golang.org/x/text/unicode/bidi"
)

// scan is the driver loop of a conversion: it resolves the base direction,
// then walks the lean text, interleaving separator handling with
// special-case handling, and records marks into the context's ledger.
//
// It returns false if the text needs no processing at all (non-bidi user
// locale, or the processor's SkipProcessing fast path); the caller then
// returns the lean text unchanged.
//
// st, if non-nil, carries the special-case continuation of a chunked
// stream; scan consumes it on entry and rewrites it from the context's
// pending case on exit.
func (e *Expert) scan(ctx *stext.Context, st *State) bool {
	if !ctx.Env().ProcessingNeeded() {
		return false
	}
	proc := e.proc
	if proc.SkipProcessing(ctx) {
		tracer().Debugf("processor skips processing of %q", ctx.Text())
		return false
	}
	ctx.SetDirection(proc.Direction(ctx))
	separators := proc.Separators(ctx)
	nSpecials := proc.SpecialsCount(ctx)
	pos := 0
	if st != nil && st.IsPending() {
		caseNumber := st.CaseNumber()
		if caseNumber > nSpecials {
			panic(fmt.Errorf("%w: resuming case %d of %d", stext.ErrBadCaseNumber, caseNumber, nSpecials))
		}
		tracer().Debugf("resuming special case %d from previous chunk", caseNumber)
		pos = proc.ProcessSpecial(ctx, caseNumber, -1)
	}
	for pos < ctx.Len() {
		// Probe all special cases and the separator set at the current
		// position; handle whichever matches earliest. A special case
		// starting on a separator wins over the separator, and the lowest
		// case number wins among specials starting at the same position.
		special, caseNumber := -1, 0
		for c := 1; c <= nSpecials; c++ {
			if loc := proc.IndexOfSpecial(ctx, c, pos); loc >= 0 {
				if special < 0 || loc < special {
					special, caseNumber = loc, c
				}
			}
		}
		separ := nextSeparator(ctx, separators, pos)
		switch {
		case special >= 0 && (separ < 0 || special <= separ):
			next := proc.ProcessSpecial(ctx, caseNumber, special)
			if next <= special {
				// A resume position within the processed occurrence would
				// loop forever; skip past its start instead.
				tracer().Errorf("special case %d did not advance (%d -> %d)", caseNumber, special, next)
				next = special + 1
			}
			pos = next
		case separ >= 0:
			ctx.ProcessSeparator(separ)
			pos = separ + 1
		default:
			pos = ctx.Len()
		}
	}
	if p := ctx.Pending(); p != 0 && (p < 1 || p > nSpecials) {
		panic(fmt.Errorf("%w: pending case %d of %d", stext.ErrBadCaseNumber, p, nSpecials))
	}
	if st != nil {
		if p := ctx.Pending(); p > 0 {
			*st = Pending(p)
		} else {
			*st = State{}
		}
	}
	return true
}

// nextSeparator returns the position of the first separator character at
// or after position from, or -1 if there is none.
func nextSeparator(ctx *stext.Context, separators string, from int) int {
	if separators == "" {
		return -1
	}
	for i := from; i < ctx.Len(); i++ {
		if strings.ContainsRune(separators, ctx.Rune(i)) {
			return i
		}
	}
	return -1
}

// frame decides whether the full text has to be wrapped in directional
// formatting characters beyond the inserted marks. This depends on the
// orientation of the component displaying the text: a component whose
// orientation opposes (or may oppose) the base direction of the structured
// text needs an embedding (LRE or RLE, terminated by PDF) around the whole
// string; a contextual component merely needs its first strong character
// pinned with a leading mark when the text would otherwise make it guess
// wrong.
func (e *Expert) frame(ctx *stext.Context) (prefix, suffix string) {
	dir := ctx.Direction()
	switch ctx.Env().Orientation {
	case stext.OrientIgnore:
		return "", ""
	case stext.OrientLTR:
		if dir == stext.LTR {
			return "", ""
		}
		return string(dir.Embedding()), string(stext.PDF)
	case stext.OrientRTL:
		if dir == stext.RTL {
			return "", ""
		}
		return string(dir.Embedding()), string(stext.PDF)
	case stext.OrientUnknown:
		return string(dir.Embedding()), string(stext.PDF)
	case stext.OrientContextualLTR:
		if firstStrong(ctx, stext.LTR) == dir {
			return "", ""
		}
		return string(dir.Mark()), ""
	case stext.OrientContextualRTL:
		if firstStrong(ctx, stext.RTL) == dir {
			return "", ""
		}
		return string(dir.Mark()), ""
	}
	return "", ""
}

// firstStrong returns the direction of the first strong character of the
// lean text, or fallback if there is none.
func firstStrong(ctx *stext.Context, fallback stext.Direction) stext.Direction {
	for i := 0; i < ctx.Len(); i++ {
		switch ctx.GetDirProp(i) {
		case bidi.L:
			return stext.LTR
		case bidi.R, bidi.AL:
			return stext.RTL
		}
	}
	return fallback
}
