package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

const maxLineSize = 1 << 20

// lineSource yields one line of user input per call.
type lineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// lineReader reads lines from r in a background goroutine, so a pending
// read can be abandoned when ctx is cancelled.
type lineReader struct {
	lines chan string
	err   error // written before lines is closed
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go lr.scan(ctx, r)
	return lr
}

func (lr *lineReader) scan(ctx context.Context, r io.Reader) {
	defer close(lr.lines)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	for sc.Scan() {
		select {
		case lr.lines <- strings.TrimSuffix(sc.Text(), "\r"):
		case <-ctx.Done():
			return
		}
	}
	lr.err = sc.Err()
}

// ReadLine blocks until a line is available, input ends or ctx is done.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			if lr.err != nil {
				return "", fmt.Errorf("%w: %w", ErrInputClosed, lr.err)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}
