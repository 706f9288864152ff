/*
Package layout turns the channel runs of a tokenized line into glyph runs and
pixel rectangles.

The steps are:

▪︎ ResolveFaces assigns a face to every character which has not been given one
explicitly, using the first face in priority order able to display it.

▪︎ Partition intersects font color runs and font face runs into the minimal
list of glyph runs, each drawn with one face and one color.

▪︎ Project converts character-indexed background and underline runs into
pixel offsets by measuring the glyph runs in front of them.

Fonts are consulted through the Metrics interface only. Faces are addressed
by their index into an ordered, caller-provided list.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'unibar.layout'
func tracer() tracing.Trace {
	return tracing.Select("unibar.layout")
}

// Metrics answers font questions for faces addressed by index.
// Implementations are expected to be synchronous and free of I/O.
type Metrics interface {
	// Supports reports whether face can display r.
	Supports(face int, r rune) bool
	// Measure returns the rendered width of text in face, in pixels.
	Measure(face int, text string) uint32
}
