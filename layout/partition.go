package layout

import (
	"fmt"

	"github.com/npillmayer/unibar/markup"
)

// GlyphRun is a stretch of text [Start, End) drawn with one face and one
// font color.
type GlyphRun struct {
	Face  int
	Color int
	Start int
	End   int // exclusive
}

// Len returns the number of characters in g.
func (g GlyphRun) Len() int {
	return g.End - g.Start
}

func (g GlyphRun) String() string {
	return fmt.Sprintf("[%d,%d) face=%d color=%d", g.Start, g.End, g.Face, g.Color)
}

// Partition intersects color runs and face runs into glyph runs.
//
// Both inputs must be free of markup.Default, contiguous and cover the same
// range. The result covers that range as well, and no two neighbouring glyph
// runs share both face and color, provided no two neighbouring input runs
// share a value.
func Partition(colors, faces []markup.Run) []GlyphRun {
	glyphs := make([]GlyphRun, 0, len(colors)+len(faces))
	k := 0 // face cursor, never reset
	for _, c := range colors {
		for k < len(faces) {
			f := faces[k]
			start, end := max(c.Start, f.Start), min(c.End, f.End)
			if start < end {
				glyphs = append(glyphs, GlyphRun{
					Face:  f.Value,
					Color: c.Value,
					Start: start,
					End:   end,
				})
			}
			if f.End > c.End {
				break
			}
			k++
		}
	}
	return glyphs
}
