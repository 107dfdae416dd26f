package stext

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"
)

// Context is the scratch pad of a single conversion. It carries the lean
// text, a lazily populated cache of bidi character classes, and the ledger
// of positions where directional marks will be inserted.
//
// A Context is owned exclusively by one in-flight conversion: the driving
// engine creates it, threads it through every Processor callback, and
// discards (or releases) it when the conversion completes. It must never be
// retained beyond the conversion or shared between goroutines.
//
// All character positions are rune positions within the lean text, not byte
// positions.
type Context struct {
	env      *Environment // never nil; nil was resolved at creation
	input    string       // the lean text as handed in
	text     []rune       // the lean text, one cell per character
	dirProps []uint8      // cached bidi classes, value 0 = not yet classified
	offsets  []int        // mark ledger, ascending rune positions
	dir      Direction    // base direction resolved for this conversion
	pending  int          // special case continuing beyond this text, 0 = none
}

// NewContext creates a conversion context for the given lean text. A nil
// environment is synonymous with DefaultEnvironment(). Callers converting
// in a hot loop should prefer BorrowContext, which recycles contexts from a
// pool.
func NewContext(env *Environment, text string) *Context {
	ctx := &Context{}
	ctx.reset(env, text)
	return ctx
}

func (ctx *Context) reset(env *Environment, text string) {
	ctx.env = env.orDefault()
	ctx.input = text
	ctx.text = append(ctx.text[:0], []rune(text)...)
	if cap(ctx.dirProps) < len(ctx.text) {
		ctx.dirProps = make([]uint8, len(ctx.text))
	} else {
		ctx.dirProps = ctx.dirProps[:len(ctx.text)]
		for i := range ctx.dirProps {
			ctx.dirProps[i] = 0
		}
	}
	ctx.offsets = ctx.offsets[:0]
	ctx.dir = LTR
	ctx.pending = 0
}

// Env returns the environment of this conversion. It is never nil.
func (ctx *Context) Env() *Environment {
	return ctx.env
}

// Len returns the length of the lean text in runes.
func (ctx *Context) Len() int {
	return len(ctx.text)
}

// Rune returns the character at the given rune position of the lean text.
func (ctx *Context) Rune(index int) rune {
	ctx.checkIndex(index)
	return ctx.text[index]
}

// Text returns the lean text.
func (ctx *Context) Text() string {
	return ctx.input
}

// IndexOf returns the rune position of the first occurrence of sub at or
// after position from, or -1 if there is none. Grammar implementations use
// it to locate multi-character tokens like comment delimiters.
func (ctx *Context) IndexOf(sub string, from int) int {
	target := []rune(sub)
	if len(target) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(target) <= len(ctx.text); i++ {
		match := true
		for j, r := range target {
			if ctx.text[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Direction returns the base direction resolved for this conversion. It is
// set once by the driving engine, before any scanning takes place.
func (ctx *Context) Direction() Direction {
	return ctx.dir
}

// SetDirection installs the base direction for this conversion. Reserved
// for the driving engine; grammar callbacks must not change the direction
// mid-conversion.
func (ctx *Context) SetDirection(dir Direction) {
	ctx.dir = dir
}

// Pending returns the number of the special case which could not be
// resolved within the current lean text (an open comment, an unterminated
// literal), or 0 if there is none.
func (ctx *Context) Pending() int {
	return ctx.pending
}

// SetPending records that special case caseNumber is not resolved within
// the current lean text and has to be continued in the next chunk.
// ProcessSpecial implementations call it before returning when they run off
// the end of the text.
func (ctx *Context) SetPending(caseNumber int) {
	ctx.pending = caseNumber
}

// ClearPending drops a recorded continuation.
func (ctx *Context) ClearPending() {
	ctx.pending = 0
}

// GetDirProp returns the bidi character class of the character at the given
// rune position. Classes are looked up in the Unicode tables on first
// access and cached for the remainder of the conversion; classes installed
// with SetDirProp take precedence over the tables.
func (ctx *Context) GetDirProp(index int) bidi.Class {
	ctx.checkIndex(index)
	if ctx.dirProps[index] == 0 {
		props, _ := bidi.LookupRune(ctx.text[index])
		ctx.dirProps[index] = uint8(props.Class()) + 1
	}
	return bidi.Class(ctx.dirProps[index] - 1)
}

// SetDirProp overrides the bidi character class of the character at the
// given rune position. Grammars use it to reclassify characters which play
// a structural role in their syntax, e.g. to treat a letter-class character
// as neutral punctuation.
func (ctx *Context) SetDirProp(index int, class bidi.Class) {
	ctx.checkIndex(index)
	ctx.dirProps[index] = uint8(class) + 1
}

// InsertMark records that a directional mark (LRM for base direction LTR,
// RLM for RTL) has to be inserted before the character at the given rune
// position when the full text is generated. A position equal to the text
// length appends the mark after the last character.
//
// Positions must be recorded in non-decreasing order over one conversion;
// recording the same position twice collapses into a single mark.
func (ctx *Context) InsertMark(offset int) {
	if offset < 0 || offset > len(ctx.text) {
		panic(fmt.Errorf("%w: mark offset %d, text length %d", ErrIndexOutOfRange, offset, len(ctx.text)))
	}
	if n := len(ctx.offsets); n > 0 {
		if last := ctx.offsets[n-1]; last == offset {
			return // duplicate, collapse
		} else if last > offset {
			panic(fmt.Errorf("%w: %d after %d", ErrMarkOrder, offset, last))
		}
	}
	ctx.offsets = append(ctx.offsets, offset)
}

// MarkOffsets returns a copy of the ledger of mark positions recorded so
// far, in ascending order.
func (ctx *Context) MarkOffsets() []int {
	offsets := make([]int, len(ctx.offsets))
	copy(offsets, ctx.offsets)
	return offsets
}

// MarkCount returns the number of marks recorded so far.
func (ctx *Context) MarkCount() int {
	return len(ctx.offsets)
}

func (ctx *Context) checkIndex(index int) {
	if index < 0 || index >= len(ctx.text) {
		panic(fmt.Errorf("%w: position %d, text length %d", ErrIndexOutOfRange, index, len(ctx.text)))
	}
}

// ProcessSeparator inserts a directional mark at separLocation if, and only
// if, one is needed to keep the tokens flanking the separator in base
// direction order. Without a mark, a neutral separator caught between two
// runs which the bidi algorithm resolves against the base direction travels
// with them, and the tokens swap places visually.
//
// For base direction LTR a mark is needed when the nearest strong character
// before the separator is right-to-left (classes R or AL) and the first
// directional character after it is right-to-left as well (R, AL, or a
// digit class EN or AN, since digits attach to a preceding Arabic or Hebrew
// run). For base direction RTL the rule is the mirror image, with EN
// counting towards the left-to-right side.
func (ctx *Context) ProcessSeparator(separLocation int) {
	ctx.checkIndex(separLocation)
	if ctx.dir == RTL {
		for i := separLocation - 1; i >= 0; i-- {
			switch ctx.GetDirProp(i) {
			case bidi.R, bidi.AL:
				return
			case bidi.L:
				for j := separLocation; j < len(ctx.text); j++ {
					switch ctx.GetDirProp(j) {
					case bidi.R, bidi.AL:
						return
					case bidi.L, bidi.EN:
						ctx.InsertMark(separLocation)
						return
					}
				}
				return
			}
		}
		return
	}
	for i := separLocation - 1; i >= 0; i-- {
		switch ctx.GetDirProp(i) {
		case bidi.L:
			return
		case bidi.R, bidi.AL:
			for j := separLocation; j < len(ctx.text); j++ {
				switch ctx.GetDirProp(j) {
				case bidi.L:
					return
				case bidi.R, bidi.AL, bidi.EN, bidi.AN:
					ctx.InsertMark(separLocation)
					return
				}
			}
			return
		}
	}
}
