// Package input decodes terminal key presses into game keys.
package input

import (
	"io"
	"unicode"
)

// Code identifies the kind of key press.
type Code int

const (
	CodeNone  Code = iota
	CodeUp         // Arrow up
	CodeDown       // Arrow down
	CodeLeft       // Arrow left
	CodeRight      // Arrow right
	CodeChar       // Decoded character, see Key.Char
	CodeQuit       // Host-level quit request (q, Ctrl-C)
)

// Key is one decoded key press: either a raw directional code or a character.
type Key struct {
	Code Code
	Char rune
}

// Arrow returns the raw key for an arrow code.
func Arrow(c Code) Key {
	return Key{Code: c}
}

// Char returns the decoded character key for r.
func Char(r rune) Key {
	return Key{Code: CodeChar, Char: unicode.ToLower(r)}
}

// Quit is the host-level quit key.
var Quit = Key{Code: CodeQuit}

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	return k.Code >= CodeUp && k.Code <= CodeRight
}

// accepted lists the characters the game reacts to.
func accepted(r rune) bool {
	switch r {
	case 'w', 'a', 's', 'd', 'r':
		return true
	}
	return false
}

// Decoder turns a raw terminal byte stream into keys.
// Arrow keys arrive as ESC [ A..D and may be split across reads.
type Decoder struct {
	state int // 0: ground, 1: after ESC, 2: after ESC [
}

// Feed consumes one byte. Returns the decoded key and true when b completes one.
func (d *Decoder) Feed(b byte) (Key, bool) {
	switch d.state {
	case 1:
		if b == '[' {
			d.state = 2
			return Key{}, false
		}
		d.state = 0
	case 2:
		d.state = 0
		switch b {
		case 'A':
			return Arrow(CodeUp), true
		case 'B':
			return Arrow(CodeDown), true
		case 'C':
			return Arrow(CodeRight), true
		case 'D':
			return Arrow(CodeLeft), true
		}
		return Key{}, false
	}

	switch b {
	case '\x1b':
		d.state = 1
		return Key{}, false
	case 'q', 'Q', '\x03':
		return Quit, true
	}
	r := unicode.ToLower(rune(b))
	if accepted(r) {
		return Char(r), true
	}
	return Key{}, false
}

// Stream reads bytes from a reader on its own goroutine and hands every
// decoded key to a callback, the way a keyboard interrupt would.
type Stream struct {
	done chan struct{}
	err  error
}

// StartStream spawns a goroutine that reads from r and calls onKey for each key.
// onKey must not block.
func StartStream(r io.Reader, onKey func(Key)) *Stream {
	s := &Stream{done: make(chan struct{})}
	go func() {
		defer close(s.done)
		var dec Decoder
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				if k, ok := dec.Feed(b); ok {
					onKey(k)
				}
			}
			if err != nil {
				if err != io.EOF {
					s.err = err
				}
				return
			}
		}
	}()
	return s
}

// Done is closed once the reader is exhausted.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns the read error that stopped the stream, if any. Valid after Done.
func (s *Stream) Err() error {
	return s.err
}
