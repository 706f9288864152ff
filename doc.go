/*
Package unibar lays out the input lines of a status bar.

A status bar receives a line of text at a time, usually from a script writing
to its standard input. Lines carry inline markup selecting background and
underline highlight colors, font colors and font faces (see package markup).
An Engine turns such a line into a ParsedLine: the visible text, the glyph
runs to draw it with, and the pixel extents of background and underline bars.

Glyph runs and bars are computed against an ordered list of font faces and a
palette given as sizes only. Characters not assigned a face explicitly are
drawn in the first face able to display them; this decision is cached per
character for the lifetime of an Engine.

A Bar holds three slots (left, centered and right-aligned), each showing the
most recent ParsedLine sent to it.

# Status

Layout is strictly left-to-right, without shaping, kerning or line wrapping.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package unibar

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unibar'
func tracer() tracing.Trace {
	return tracing.Select("unibar")
}

// Errors returned when setting up an Engine.
var (
	ErrNoFaces   = errors.New("unibar: at least one font face required")
	ErrNoMetrics = errors.New("unibar: font metrics required")
)

// QuitMarker is the input line telling a bar driver to stop.
const QuitMarker = "QUIT NOW"
