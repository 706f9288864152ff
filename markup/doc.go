/*
Package markup tokenizes the inline formatting language of status bar input lines.

An input line is plain text interspersed with format blocks:

	line      := (text | block)*
	block     := '{' directive* '}'
	directive := channel digit | '/' channel
	channel   := 'B' | 'H' | 'F' | 'f'

`B` selects a background color, `H` an underline (highlight) color, `F` a font
color and `f` a font face. A digit opens a new run for the channel, a '/'
followed by the channel marker returns the channel to its default. Indices are
single decimal digits, therefore at most ten values per channel are addressable.

Tokenizing never fails. Directives which cannot be honoured are dropped and
reported as Diagnostics on the result, and the channel keeps its prior value.
A malformed directive (a non-digit after a channel marker, or an unknown
character after '/') is abandoned and the offending character is re-read as
part of the enclosing block.

The result of tokenizing is the visible text plus four independent run lists,
one per channel, each covering the text without gaps.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'unibar.markup'
func tracer() tracing.Trace {
	return tracing.Select("unibar.markup")
}
