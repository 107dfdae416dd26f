/*
Package stext supports bidi display of structured text.

# Content

Structured text is a short string with an internal syntax: a file path,
an e-mail address, an arithmetic expression, a comma separated list.
Such strings are not phrases of natural language, and the Unicode
Bidirectional Algorithm (UAX#9), which is geared towards natural
language, will often scramble the visual order of their tokens as soon
as they mix left-to-right and right-to-left scripts. The canonical
example is a file path containing Hebrew or Arabic segments: the
segments themselves must render right-to-left, but the sequence of
segments has to keep the order the path syntax implies.

The remedy is not to re-implement the bidi algorithm, but to feed it a
slightly amended string: invisible directional marks (LRM or RLM) are
inserted at token boundaries, which anchors the layout of the tokens to
the base direction of the structured text. We call the string without
marks the "lean" text and the amended string the "full" text. Lean and
full text are logically equivalent; conversion in both directions loses
no information.

Package stext is the core of this machinery. It defines

▪︎ the Processor contract, which describes one kind of structured text:
its token separators, its base direction, and optional "special cases"
(comments, literals, …) which need custom scanning,

▪︎ the conversion Context, a per-conversion scratch object carrying the
lean text, a lazily populated cache of bidi character classes, and the
ledger of mark positions,

▪︎ the Environment, an immutable bag of locale and orientation settings.

The driving engine performing lean-to-full and full-to-lean conversion
lives in sub-package expert. Processors are stateless and may be shared
freely between goroutines; all per-conversion state lives in the
Context.

Character classification relies on golang.org/x/text/unicode/bidi,
which implements the Unicode bidi property tables.

______________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to stext.core .
func tracer() tracing.Trace {
	return tracing.Select("stext.core")
}
