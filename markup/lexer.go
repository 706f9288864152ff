package markup

import "fmt"

type lexState uint8

const (
	stateText    lexState = iota // outside of format blocks
	stateBlock                   // inside '{' ... '}', awaiting a directive
	stateIndex                   // after a channel marker, awaiting a digit
	stateClosing                 // after '/', awaiting channel markers
)

// Result is the outcome of tokenizing one input line.
type Result struct {
	Text        []rune              // visible text
	Directives  []Directive         // format directives in input order
	Runs        [ChannelCount][]Run // per-channel runs covering Text
	Diagnostics []Diagnostic        // dropped directives
}

// Channel returns the run list for channel c.
func (res *Result) Channel(c Channel) []Run {
	if c < 0 || c >= ChannelCount {
		return nil
	}
	return res.Runs[c]
}

type lexer struct {
	bounds  Bounds
	state   lexState
	channel Channel // channel awaiting an index
	at      int     // rune position in the raw input
	res     *Result
}

// Tokenize splits an input line into its visible text and format runs.
// Index directives are checked against bounds.
func Tokenize(input string, bounds Bounds) *Result {
	lx := &lexer{bounds: bounds, res: &Result{}}
	for _, r := range input {
		lx.step(r)
		lx.at++
	}
	if lx.state != stateText {
		lx.report(SeverityMinor, "unterminated format block")
	}
	lx.res.Runs = BuildRuns(lx.res.Directives, len(lx.res.Text))
	tracer().Debugf("tokenized %d chars, %d directives, %d diagnostics",
		len(lx.res.Text), len(lx.res.Directives), len(lx.res.Diagnostics))
	return lx.res
}

func (lx *lexer) step(r rune) {
	switch lx.state {
	case stateText:
		if r == '{' {
			lx.state = stateBlock
			return
		}
		lx.res.Text = append(lx.res.Text, r)
	case stateBlock:
		if !lx.block(r) {
			lx.report(SeverityMinor, "unknown directive %q", r)
		}
	case stateIndex:
		lx.index(r)
	case stateClosing:
		lx.closing(r)
	}
}

// block handles r within a format block and reports whether r is meaningful
// there. Unknown characters are skipped.
func (lx *lexer) block(r rune) bool {
	switch r {
	case '}':
		lx.state = stateText
	case '/':
		lx.state = stateClosing
	default:
		c, ok := channelForMarker(r)
		if !ok {
			return false
		}
		lx.channel = c
		lx.state = stateIndex
	}
	return true
}

func (lx *lexer) index(r rune) {
	if r < '0' || r > '9' {
		lx.report(SeverityMinor, "expected index after %q, got %q", lx.channel.Marker(), r)
		lx.state = stateBlock
		lx.block(r)
		return
	}
	lx.state = stateBlock
	d := int(r - '0')
	if limit := lx.bounds.Limit(lx.channel); d >= limit {
		lx.report(SeverityMajor, "invalid %s index %d, have %d", lx.channel, d, limit)
		return
	}
	lx.emit(Directive{Kind: Open, Channel: lx.channel, Index: d})
}

// closing stays in effect until the block ends, so "{/BF}" closes both
// channels.
func (lx *lexer) closing(r rune) {
	if r == '}' {
		lx.state = stateText
		return
	}
	if c, ok := channelForMarker(r); ok {
		lx.emit(Directive{Kind: Close, Channel: c})
		return
	}
	lx.report(SeverityMinor, "expected channel to close, got %q", r)
	lx.state = stateBlock
	lx.block(r)
}

func (lx *lexer) emit(d Directive) {
	d.Pos = len(lx.res.Text)
	lx.res.Directives = append(lx.res.Directives, d)
}

func (lx *lexer) report(sev Severity, format string, args ...interface{}) {
	d := Diagnostic{Severity: sev, Pos: lx.at, Issue: fmt.Sprintf(format, args...)}
	tracer().Infof("markup: %s", d.Error())
	lx.res.Diagnostics = append(lx.res.Diagnostics, d)
}
