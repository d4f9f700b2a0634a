package console

import (
	"io"
	"time"
	"unicode/utf8"
)

// Typewriter writes text to w, possibly paced for presentation.
// Implementations must write text unchanged and add nothing to it.
type Typewriter interface {
	Type(w io.Writer, text string) error
}

// NewTypewriter returns a PacedTypewriter for a positive delay and an
// InstantTypewriter otherwise.
func NewTypewriter(delay time.Duration) Typewriter {
	if delay <= 0 {
		return InstantTypewriter{}
	}
	return PacedTypewriter{Delay: delay}
}

// InstantTypewriter writes the whole text at once.
type InstantTypewriter struct{}

func (InstantTypewriter) Type(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// PacedTypewriter writes text one character at a time and pauses Delay
// after every visible character. ANSI escape sequences are written
// without pauses.
type PacedTypewriter struct {
	Delay time.Duration
	Sleep func(time.Duration) // time.Sleep when nil
}

const (
	escNone = iota
	escStart
	escCSI
)

func (t PacedTypewriter) Type(w io.Writer, text string) error {
	sleep := t.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	esc := escNone
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if _, err := io.WriteString(w, text[i:i+size]); err != nil {
			return err
		}
		i += size

		switch {
		case r == '\x1b':
			esc = escStart
		case esc == escStart && r == '[':
			esc = escCSI
		case esc == escStart:
			esc = escNone
		case esc == escCSI:
			// CSI sequences end with a byte in 0x40-0x7E.
			if r >= 0x40 && r <= 0x7e {
				esc = escNone
			}
		default:
			sleep(t.Delay)
		}
	}

	return nil
}
