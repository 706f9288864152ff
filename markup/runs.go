package markup

import "fmt"

// Run is a half-open interval [Start, End) of text positions carrying one
// channel value, or Default.
type Run struct {
	Value int
	Start int
	End   int // exclusive
}

// Len returns the number of characters covered by r.
func (r Run) Len() int {
	return r.End - r.Start
}

// IsDefault reports whether r carries the Default sentinel.
func (r Run) IsDefault() bool {
	return r.Value == Default
}

func (r Run) String() string {
	if r.IsDefault() {
		return fmt.Sprintf("[%d,%d)=default", r.Start, r.End)
	}
	return fmt.Sprintf("[%d,%d)=%d", r.Start, r.End, r.Value)
}

// Explicit returns the runs of a list which do not carry the Default sentinel.
func Explicit(runs []Run) []Run {
	var explicit []Run
	for _, r := range runs {
		if !r.IsDefault() {
			explicit = append(explicit, r)
		}
	}
	return explicit
}

// DirectiveKind tags a Directive as opening or closing a channel value.
type DirectiveKind uint8

const (
	Open  DirectiveKind = iota // switch channel to Index
	Close                      // return channel to its default
)

// Directive is a single format instruction, positioned at the text offset it
// takes effect at.
type Directive struct {
	Kind    DirectiveKind
	Channel Channel
	Index   int // only meaningful for Open
	Pos     int // text offset
}

func (d Directive) String() string {
	if d.Kind == Close {
		return fmt.Sprintf("@%d /%c", d.Pos, d.Channel.Marker())
	}
	return fmt.Sprintf("@%d %c%d", d.Pos, d.Channel.Marker(), d.Index)
}

// runBuilder tracks the value timeline of one channel.
type runBuilder struct {
	channel Channel
	current Run
	runs    []Run
}

func newRunBuilder(c Channel) *runBuilder {
	return &runBuilder{channel: c, current: Run{Value: c.DefaultValue()}}
}

// switchTo closes the current run at pos and opens a run with value.
// Switching to the value already in effect does not split the run, neither
// does switching back to the previous value before any text was covered.
func (b *runBuilder) switchTo(value, pos int) {
	if value == b.current.Value {
		return
	}
	b.current.End = pos
	if b.current.Len() > 0 {
		b.runs = append(b.runs, b.current)
	} else if n := len(b.runs); n > 0 && b.runs[n-1].Value == value {
		b.current = b.runs[n-1] // reopen
		b.runs = b.runs[:n-1]
		return
	}
	b.current = Run{Value: value, Start: pos}
}

func (b *runBuilder) apply(d Directive) {
	switch d.Kind {
	case Open:
		b.switchTo(d.Index, d.Pos)
	case Close:
		b.switchTo(b.channel.DefaultValue(), d.Pos)
	}
}

func (b *runBuilder) finish(length int) []Run {
	b.current.End = length
	if b.current.Len() > 0 {
		b.runs = append(b.runs, b.current)
	}
	return b.runs
}

// BuildRuns replays a directive stream over a text of the given length and
// returns one run list per channel. Every list covers [0, length) without
// gaps; zero-length runs are omitted.
func BuildRuns(directives []Directive, length int) [ChannelCount][]Run {
	var builders [ChannelCount]*runBuilder
	for c := range builders {
		builders[c] = newRunBuilder(Channel(c))
	}
	for _, d := range directives {
		if d.Channel < 0 || d.Channel >= ChannelCount {
			continue
		}
		builders[d.Channel].apply(d)
	}
	var runs [ChannelCount][]Run
	for c, b := range builders {
		runs[c] = b.finish(length)
	}
	return runs
}
