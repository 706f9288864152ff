package fonts

import (
	"github.com/npillmayer/unibar/layout"
)

// Set is an ordered list of faces. Faces are addressed by their position;
// earlier faces take priority when default faces are assigned.
//
// Set implements layout.Metrics.
type Set struct {
	faces []Face
}

var _ layout.Metrics = (*Set)(nil)

// NewSet creates a set from faces in priority order.
func NewSet(faces ...Face) (*Set, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	return &Set{faces: faces}, nil
}

// OpenSet opens a face for every font specification, in order.
func OpenSet(specs []string) (*Set, error) {
	faces := make([]Face, 0, len(specs))
	for _, spec := range specs {
		face, err := Open(spec)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return NewSet(faces...)
}

// Len returns the number of faces in s.
func (s *Set) Len() int {
	return len(s.faces)
}

// Face returns face i, or face 0 if i is out of range.
func (s *Set) Face(i int) Face {
	if i < 0 || i >= len(s.faces) {
		tracer().Errorf("face index %d out of range, using face 0", i)
		return s.faces[0]
	}
	return s.faces[i]
}

// Supports reports whether face i can display r. Indices out of range
// support nothing.
func (s *Set) Supports(i int, r rune) bool {
	if i < 0 || i >= len(s.faces) {
		return false
	}
	return s.faces[i].HasGlyph(r)
}

// Measure returns the width of text in face i.
func (s *Set) Measure(i int, text string) uint32 {
	return s.Face(i).Advance(text)
}

// Height returns the largest line height of all faces.
func (s *Set) Height() int {
	h := 0
	for _, f := range s.faces {
		h = max(h, f.Height())
	}
	return h
}

// Ascent returns the largest ascent of all faces.
func (s *Set) Ascent() int {
	a := 0
	for _, f := range s.faces {
		a = max(a, f.Ascent())
	}
	return a
}
