package layout

import (
	"fmt"

	"github.com/npillmayer/unibar/markup"
)

// Rect is a horizontal bar in pixel offsets [Start, End) from the left edge of
// a line, drawn in palette color Index.
type Rect struct {
	Index int
	Start uint32
	End   uint32
}

// Width returns the width of r in pixels.
func (r Rect) Width() uint32 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)px color=%d", r.Start, r.End, r.Index)
}

// Project converts character-indexed runs into pixel rectangles, measuring
// the glyph runs of text in front of each run's boundaries. Runs carrying
// markup.Default are skipped.
//
// If a glyph run begins exactly at the end of a target run, the width of that
// glyph run's first character is added to the end offset.
func Project(targets []markup.Run, glyphs []GlyphRun, text []rune, m Metrics) []Rect {
	var rects []Rect
	for _, t := range targets {
		if t.IsDefault() {
			continue
		}
		rects = append(rects, Rect{
			Index: t.Value,
			Start: startOffset(t.Start, glyphs, text, m),
			End:   endOffset(t.End, glyphs, text, m),
		})
	}
	return rects
}

func startOffset(pos int, glyphs []GlyphRun, text []rune, m Metrics) uint32 {
	var px uint32
	for _, g := range glyphs {
		if g.Start == pos {
			break
		} else if g.End > pos {
			px += measure(m, g.Face, text, g.Start, pos)
			break
		}
		px += measure(m, g.Face, text, g.Start, g.End)
	}
	return px
}

func endOffset(pos int, glyphs []GlyphRun, text []rune, m Metrics) uint32 {
	var px uint32
	for _, g := range glyphs {
		if g.Start == pos {
			px += measure(m, g.Face, text, g.Start, g.Start+1)
			break
		} else if g.End <= pos {
			px += measure(m, g.Face, text, g.Start, g.End)
		} else {
			px += measure(m, g.Face, text, g.Start, pos)
			break
		}
	}
	return px
}

// Width returns the total pixel width of a list of glyph runs.
func Width(glyphs []GlyphRun, text []rune, m Metrics) uint32 {
	var px uint32
	for _, g := range glyphs {
		px += measure(m, g.Face, text, g.Start, g.End)
	}
	return px
}

func measure(m Metrics, face int, text []rune, from, to int) uint32 {
	from, to = max(from, 0), min(to, len(text))
	if from >= to {
		return 0
	}
	return m.Measure(face, string(text[from:to]))
}
