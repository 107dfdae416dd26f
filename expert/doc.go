/*
Package expert drives the conversion of structured text between its lean
and its full form.

# Content

Lean text is a structured string (a path, an expression, a delimited list)
without directional formatting characters; full text is the same string
with invisible LRM or RLM marks inserted at token boundaries, so that a
bidi-aware renderer lays the tokens out in the order the syntax implies.
The grammar of the structured text is described by a stext.Processor; this
package contributes the engine which walks the text, consults the
processor, and materializes the result.

# Typical Usage

Clients create an Expert for a processor and convert as needed:

	proc := … // some stext.Processor
	e := expert.New(proc, expert.WithEnvironment(env))
	full := e.LeanToFullText("some lean text")
	lean := e.FullToLeanText(full) // round-trips

An Expert is stateless and may be shared between goroutines. For text
arriving in chunks — e.g. source code processed line by line, where a
comment may open on one line and close on a later one — clients use a
StatefulExpert, which carries the continuation from chunk to chunk:

	x := expert.NewStateful(proc)
	for _, line := range lines {
	   full := x.LeanToFullText(line)
	   …
	}

A StatefulExpert must not be shared between concurrently processed
streams; one wrapper per stream is cheap, as the processor behind it
remains shared.

______________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package expert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to stext.expert .
func tracer() tracing.Trace {
	return tracing.Select("stext.expert")
}
