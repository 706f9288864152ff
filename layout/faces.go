package layout

import (
	"sort"

	"github.com/npillmayer/unibar/markup"
)

// FaceCache memoizes the default face of characters. It is filled lazily
// and grows for the life of its owner; entries are never evicted.
//
// A FaceCache is not safe for concurrent use.
type FaceCache struct {
	faces    int
	defaults map[rune]int
}

// NewFaceCache creates an empty cache for a face list of the given length.
func NewFaceCache(faces int) *FaceCache {
	return &FaceCache{faces: faces, defaults: make(map[rune]int)}
}

// Face returns the default face for r. On a cache miss, faces are queried in
// priority order and the first one supporting r wins. If no face supports r,
// face 0 is used.
func (c *FaceCache) Face(r rune, m Metrics) int {
	if face, ok := c.defaults[r]; ok {
		return face
	}
	face := 0
	for i := 0; i < c.faces; i++ {
		if m.Supports(i, r) {
			face = i
			break
		}
	}
	tracer().Debugf("default face for %q is %d", r, face)
	c.defaults[r] = face
	return face
}

// Lookup returns the cached face for r without consulting any metrics.
func (c *FaceCache) Lookup(r rune) (int, bool) {
	face, ok := c.defaults[r]
	return face, ok
}

// Len returns the number of cached characters.
func (c *FaceCache) Len() int {
	return len(c.defaults)
}

// Runes returns the cached characters in ascending order.
func (c *FaceCache) Runes() []rune {
	runes := make([]rune, 0, len(c.defaults))
	for r := range c.defaults {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// ResolveFaces merges explicitly set face runs over the default faces of
// text. The result is free of markup.Default, contiguous and covers
// [0, len(text)). Explicit runs always win over default faces.
func ResolveFaces(text []rune, explicit []markup.Run, m Metrics, cache *FaceCache) []markup.Run {
	if len(text) == 0 {
		return nil
	}
	faces := make([]int, len(text))
	for i, r := range text {
		faces[i] = cache.Face(r, m)
	}
	for _, run := range explicit {
		if run.IsDefault() {
			continue
		}
		start, end := max(run.Start, 0), min(run.End, len(faces))
		for i := start; i < end; i++ {
			faces[i] = run.Value
		}
	}
	return encodeRuns(faces)
}

// encodeRuns run-length encodes a dense list of values.
func encodeRuns(values []int) []markup.Run {
	var runs []markup.Run
	for i, v := range values {
		if n := len(runs); n > 0 && runs[n-1].Value == v {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, markup.Run{Value: v, Start: i, End: i + 1})
	}
	return runs
}
