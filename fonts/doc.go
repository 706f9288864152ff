/*
Package fonts provides the font faces a status bar measures and draws text with.

Faces are opened from font specifications in the style of fontconfig
patterns:

	name[:size=N][:dpi=N][:backend=sfnt|gotext|cells]

The name is either one of the built-in Go fonts ("mono", "regular", "bold",
...) or the path of a TrueType/OpenType font file. Three backends are
available:

▪︎ sfnt measures with golang.org/x/image/font/opentype (the default).

▪︎ gotext measures with the nominal glyph advances of go-text/typesetting.

▪︎ cells measures in fixed-width terminal cells, using go-runewidth for
East Asian wide characters. It ignores the font name.

An ordered list of faces is a Set, which serves as the font metrics of a
layout engine.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fonts

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unibar.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unibar.fonts")
}

// Errors returned when opening faces.
var (
	ErrInvalidSpec    = errors.New("fonts: invalid font specification")
	ErrUnknownBackend = errors.New("fonts: unknown backend")
	ErrNoFaces        = errors.New("fonts: empty font list")
)
