package fontload

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string // empty for built-in fonts
	Binary   []byte
	SFNT     *sfnt.Font
}

// builtin maps font names usable without a font file to the Go fonts.
var builtin = map[string][]byte{
	"mono":      gomono.TTF,
	"monobold":  gomonobold.TTF,
	"sans":      goregular.TTF,
	"regular":   goregular.TTF,
	"bold":      gobold.TTF,
	"italic":    goitalic.TTF,
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// Resolve loads a font by name. Names of built-in fonts are matched
// case-insensitively, every other name is taken as the path of a font file.
func Resolve(name string) (*ScalableFont, error) {
	if ttf, ok := builtin[strings.ToLower(name)]; ok {
		return ParseOpenTypeFont(ttf)
	}
	return LoadOpenTypeFont(name)
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		f.Fontname = "<unnamed>" // fonts without a name table are still usable
	}
	return f, nil
}
