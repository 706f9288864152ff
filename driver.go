package unibar

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// MaxLineLength is the number of bytes of an input line Run lays out. The
// rest of longer lines is discarded.
const MaxLineLength = 1 << 20

// Run feeds lines read from r into bar, calling redraw after every update.
// It returns when r is exhausted, when the line QuitMarker is read, when
// redraw fails, or when ctx is done.
//
// Reading happens on a separate goroutine; bar and redraw are only used from
// the goroutine calling Run. A reader blocked in Read when ctx is done is left
// behind.
func Run(ctx context.Context, r io.Reader, bar *Bar, redraw func(*Bar) error) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := readLine(br, MaxLineLength)
			if errors.Is(err, io.EOF) {
				errc <- nil
				return
			} else if err != nil {
				errc <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return ctx.Err()
				}
			}
			line = strings.TrimRight(line, "\r")
			if line == QuitMarker {
				tracer().Infof("quit marker received")
				return nil
			}
			bar.UpdateLine(line)
			if redraw == nil {
				continue
			}
			if err := redraw(bar); err != nil {
				return err
			}
		}
	}
}

// readLine reads a line without its line ending, truncated to limit bytes.
func readLine(br *bufio.Reader, limit int) (string, error) {
	var buf []byte
	truncated := false
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if room := limit - len(buf); room >= len(frag) {
			buf = append(buf, frag...)
		} else {
			buf = append(buf, frag[:max(room, 0)]...)
			truncated = true
		}
		if !isPrefix {
			break
		}
	}
	if truncated {
		tracer().Errorf("input line longer than %d bytes truncated", limit)
	}
	return string(buf), nil
}
