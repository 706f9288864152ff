package fonts

import (
	"fmt"
	"strconv"
	"strings"
)

// Backend selects how a face measures text.
type Backend int

const (
	SFNT   Backend = iota // golang.org/x/image/font/opentype
	GoText                // github.com/go-text/typesetting
	Cells                 // fixed terminal cells
)

var backendNames = []string{"sfnt", "gotext", "cells"}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return "<invalid backend>"
	}
	return backendNames[b]
}

// Default values of font specifications.
const (
	DefaultSize = 12.0
	DefaultDPI  = 72.0
)

// Spec is a parsed font specification.
type Spec struct {
	Name    string
	Size    float64 // in points
	DPI     float64
	Backend Backend
}

func (s Spec) String() string {
	return fmt.Sprintf("%s:size=%g:dpi=%g:backend=%s", s.Name, s.Size, s.DPI, s.Backend)
}

// ParseSpec parses a font specification of the form
// name[:size=N][:dpi=N][:backend=B]. Unknown options are ignored.
func ParseSpec(spec string) (Spec, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	s := Spec{Name: strings.TrimSpace(parts[0]), Size: DefaultSize, DPI: DefaultDPI}
	if s.Name == "" {
		return s, fmt.Errorf("%w: missing font name in %q", ErrInvalidSpec, spec)
	}
	for _, opt := range parts[1:] {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return s, fmt.Errorf("%w: option %q without value", ErrInvalidSpec, opt)
		}
		key, value = strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
		switch key {
		case "size", "pixelsize":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil || n <= 0 {
				return s, fmt.Errorf("%w: invalid size %q", ErrInvalidSpec, value)
			}
			s.Size = n
		case "dpi":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil || n <= 0 {
				return s, fmt.Errorf("%w: invalid dpi %q", ErrInvalidSpec, value)
			}
			s.DPI = n
		case "backend":
			b, err := parseBackend(value)
			if err != nil {
				return s, err
			}
			s.Backend = b
		default:
			tracer().Infof("ignoring font option %q in %q", key, spec)
		}
	}
	return s, nil
}

func parseBackend(name string) (Backend, error) {
	for i, n := range backendNames {
		if strings.EqualFold(n, name) {
			return Backend(i), nil
		}
	}
	return SFNT, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// pixels converts s.Size to pixels.
func (s Spec) pixels() float64 {
	return s.Size * s.DPI / 72
}
