package unibar

import "strings"

// Slot is one of the display regions of a bar.
type Slot int

const (
	Left Slot = iota
	Center
	Right
)

// SlotCount is the number of slots of a bar.
const SlotCount = 3

func (s Slot) String() string {
	switch s {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "<invalid slot>"
}

// Bar keeps the current ParsedLine of each slot. Updating a slot replaces
// its line; nothing older is retained.
type Bar struct {
	engine    *Engine
	separator string
	lines     [SlotCount]*ParsedLine
}

// NewBar creates a bar laying out its slots with engine. Input lines given to
// UpdateLine are split into slots at separator; an empty separator sends
// whole lines to the left slot.
func NewBar(engine *Engine, separator string) *Bar {
	b := &Bar{engine: engine, separator: separator}
	for i := range b.lines {
		b.lines[i] = &ParsedLine{}
	}
	return b
}

// Engine returns the engine of b.
func (b *Bar) Engine() *Engine {
	return b.engine
}

// Update parses raw and makes it the current line of slot.
func (b *Bar) Update(slot Slot, raw string) *ParsedLine {
	if slot < 0 || slot >= SlotCount {
		tracer().Errorf("bar update for invalid slot %d dropped", int(slot))
		return nil
	}
	b.lines[slot] = b.engine.ParseLine(raw)
	return b.lines[slot]
}

// UpdateLine distributes an input line over the slots, left to right.
// Slots without a field in line are cleared.
func (b *Bar) UpdateLine(line string) {
	fields := []string{line}
	if b.separator != "" {
		fields = strings.SplitN(line, b.separator, SlotCount)
	}
	for i := 0; i < SlotCount; i++ {
		raw := ""
		if i < len(fields) {
			raw = fields[i]
		}
		b.Update(Slot(i), raw)
	}
}

// Line returns the current line of slot.
func (b *Bar) Line(slot Slot) *ParsedLine {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return b.lines[slot]
}

// Place returns the horizontal pixel offset of every slot within a bar of
// the given width. The left slot starts at 0, the center slot is centered and
// the right slot ends at width. Offsets are never negative.
func (b *Bar) Place(width int) [SlotCount]int {
	var x [SlotCount]int
	for i, line := range b.lines {
		w := int(b.engine.MeasureLine(line))
		switch Slot(i) {
		case Center:
			x[i] = max((width-w)/2, 0)
		case Right:
			x[i] = max(width-w, 0)
		}
	}
	return x
}
