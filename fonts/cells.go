package fonts

import (
	"image"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// cellFace measures text in the cells of basicfont's 7x13 face. Wide
// characters take two cells, combining characters none.
//
// Only characters basicfont has a glyph for are claimed as supported. Others
// reach this face solely by explicit selection or as last resort; they are
// drawn as the replacement glyph, advancing by their cell width.
type cellFace struct {
	face *basicfont.Face
	draw cellDrawFace
}

func newCellFace() *cellFace {
	f := basicfont.Face7x13
	return &cellFace{face: f, draw: cellDrawFace{Face: f}}
}

func (f *cellFace) Name() string {
	return "cells 7x13"
}

func (f *cellFace) HasGlyph(r rune) bool {
	if !unicode.IsPrint(r) || runewidth.RuneWidth(r) != 1 {
		return false
	}
	for _, rg := range f.face.Ranges {
		if rg.Low <= r && r < rg.High {
			return true
		}
	}
	return false
}

func (f *cellFace) Advance(text string) uint32 {
	return uint32(runewidth.StringWidth(text) * f.face.Advance)
}

func (f *cellFace) Height() int {
	return f.face.Height
}

func (f *cellFace) Ascent() int {
	return f.face.Ascent
}

func (f *cellFace) DrawFace() font.Face {
	return f.draw
}

// cellDrawFace draws with basicfont but advances by cell widths, keeping
// drawn text in line with measured text.
type cellDrawFace struct {
	*basicfont.Face
}

func (f cellDrawFace) advance(r rune) fixed.Int26_6 {
	return fixed.I(runewidth.RuneWidth(r) * f.Face.Advance)
}

func (f cellDrawFace) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	dr, mask, maskp, _, ok = f.Face.Glyph(dot, r)
	return dr, mask, maskp, f.advance(r), ok
}

func (f cellDrawFace) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	bounds, _, ok = f.Face.GlyphBounds(r)
	return bounds, f.advance(r), ok
}

func (f cellDrawFace) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, ok = f.Face.GlyphAdvance(r)
	return f.advance(r), ok
}
