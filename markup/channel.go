package markup

// Default is the sentinel run value meaning "no explicit value here".
// For background and underline runs it means "not drawn", for font faces it
// means "use the auto-assigned face". Font colors never carry it.
const Default = -1

// Channel is one of the four independent style attributes of a line.
type Channel int8

const (
	Background Channel = iota // background highlight bar, marker 'B'
	Underline                 // underline highlight bar, marker 'H'
	FontColor                 // font color, marker 'F'
	FontFace                  // font face, marker 'f'
)

// ChannelCount is the number of channels tracked per line.
const ChannelCount = 4

var channelNames = [ChannelCount]string{"background", "underline", "font-color", "font-face"}

var channelMarkers = [ChannelCount]rune{'B', 'H', 'F', 'f'}

func (c Channel) String() string {
	if c < 0 || c >= ChannelCount {
		return "<invalid channel>"
	}
	return channelNames[c]
}

// Marker returns the character introducing c in a format block.
func (c Channel) Marker() rune {
	if c < 0 || c >= ChannelCount {
		return 0
	}
	return channelMarkers[c]
}

// DefaultValue is the value a channel starts with and returns to when closed.
// Font colors default to palette index 0, all other channels to Default.
func (c Channel) DefaultValue() int {
	if c == FontColor {
		return 0
	}
	return Default
}

func channelForMarker(r rune) (Channel, bool) {
	for c, m := range channelMarkers {
		if m == r {
			return Channel(c), true
		}
	}
	return 0, false
}

// Bounds holds the number of configured values per channel. Directive indices
// at or above the bound for their channel are rejected.
type Bounds struct {
	Background int // number of background colors
	Underline  int // number of underline colors
	Font       int // number of font colors
	Faces      int // number of font faces
}

// Limit returns the number of valid indices for channel c.
func (b Bounds) Limit(c Channel) int {
	switch c {
	case Background:
		return b.Background
	case Underline:
		return b.Underline
	case FontColor:
		return b.Font
	case FontFace:
		return b.Faces
	}
	return 0
}
