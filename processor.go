package stext

// Processor describes one kind of structured text: its token separators,
// its base direction, and any special cases (comments, literals, …) which
// cannot be delimited by single characters and need custom scanning.
//
// Here are some guidelines about how to write processors.
//
// ▪︎ Processor instances may be accessed simultaneously by several
// conversions on several goroutines. They must not carry per-conversion
// state; everything mutable travels in the Context.
//
// ▪︎ The driving engine (sub-package expert) queries the characteristics of
// a processor at the start of every conversion: the separators which split
// the text into tokens (Separators), the base direction which governs the
// display of tokens one after the other (Direction), and the number of
// special cases (SpecialsCount). Before any deeper analysis it gives the
// processor a chance to cut the conversion short via SkipProcessing.
//
// ▪︎ If SpecialsCount returns a positive number N, the engine repeatedly
// calls IndexOfSpecial for every case number 1…N to locate the next special
// case, and ProcessSpecial to let the processor handle the one starting
// earliest. Typical actions of ProcessSpecial are to insert marks
// unconditionally (Context.InsertMark), conditionally
// (Context.ProcessSeparator), or to reclassify characters
// (Context.SetDirProp).
//
// ▪︎ A special case may outlive the current text, e.g. a comment opened on
// one source line and closed on a later one. ProcessSpecial then records
// the case number with Context.SetPending and returns the text length; the
// engine hands the continuation to the caller (see expert.StatefulExpert)
// and on the next chunk re-enters ProcessSpecial with separLocation == -1.
//
// Grammars typically embed BaseProcessor and override the methods they
// care about.
type Processor interface {
	// Separators returns the characters which split the structured text
	// into tokens. It may return the empty string for grammars delimited by
	// special cases only.
	Separators(ctx *Context) string

	// Direction returns the base direction appropriate for the given
	// structured text. The direction may depend on the environment and on
	// whether the text contains Arabic or Hebrew characters, which
	// implementations can probe via ctx.GetDirProp.
	Direction(ctx *Context) Direction

	// SpecialsCount returns the number of special cases handled by this
	// processor. If it returns zero, IndexOfSpecial and ProcessSpecial are
	// never invoked.
	SpecialsCount(ctx *Context) int

	// SkipProcessing returns true if the given text needs no processing at
	// all; the engine then inserts no marks.
	SkipProcessing(ctx *Context) bool

	// IndexOfSpecial returns the position of the first occurrence of
	// special case caseNumber at or after position fromIndex, or -1 if
	// there is none. caseNumber runs from 1 to SpecialsCount; its meaning
	// is internal to the processor. The method reports the first lexical
	// match of its own case and need not check whether the occurrence lies
	// within the scope of another case (e.g. a comment delimiter inside a
	// literal); arbitration between cases is the engine's job.
	IndexOfSpecial(ctx *Context, caseNumber, fromIndex int) int

	// ProcessSpecial handles one occurrence of special case caseNumber,
	// located at separLocation by a preceding IndexOfSpecial call, and
	// returns the position after its scope ends (e.g. after the closing
	// delimiter of a comment). A return value greater than or equal to the
	// text length means there is no further occurrence of this case in the
	// current text.
	//
	// When a conversion resumes a case pending from a previous chunk,
	// ProcessSpecial is called with that case number and separLocation ==
	// -1, and should perform whatever initialization the continuation
	// requires.
	ProcessSpecial(ctx *Context, caseNumber, separLocation int) int
}

// BaseProcessor is the default Processor: a plain grammar with a fixed
// separator set, base direction LTR, and no special cases. It is intended
// to be embedded in concrete grammars, which override the methods whose
// defaults do not fit.
type BaseProcessor struct {
	separators string
}

// NewBaseProcessor creates a processor for text split into tokens by the
// characters of separators, which may be empty.
func NewBaseProcessor(separators string) BaseProcessor {
	return BaseProcessor{separators: separators}
}

// Separators returns the separator set the processor was created with.
func (p BaseProcessor) Separators(ctx *Context) string {
	return p.separators
}

// Direction returns LTR.
func (p BaseProcessor) Direction(ctx *Context) Direction {
	return LTR
}

// SpecialsCount returns 0.
func (p BaseProcessor) SpecialsCount(ctx *Context) int {
	return 0
}

// SkipProcessing returns false.
func (p BaseProcessor) SkipProcessing(ctx *Context) bool {
	return false
}

// IndexOfSpecial panics with ErrMissingOverride. Grammars with a positive
// specials count must provide their own implementation; for all other
// grammars the method is never called.
func (p BaseProcessor) IndexOfSpecial(ctx *Context, caseNumber, fromIndex int) int {
	panic(ErrMissingOverride)
}

// ProcessSpecial panics with ErrMissingOverride. Grammars with a positive
// specials count must provide their own implementation; for all other
// grammars the method is never called.
func (p BaseProcessor) ProcessSpecial(ctx *Context, caseNumber, separLocation int) int {
	panic(ErrMissingOverride)
}
