// Package console reads terminal input one line at a time without tying the
// caller to the blocking read.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Reader hands out lines from an input stream. A single goroutine does the
// blocking reads, so a caller can give up on ctx while a read is pending; the
// pending line is then delivered to the next ReadLine instead of being lost.
type Reader struct {
	src   *bufio.Reader
	start sync.Once
	lines chan line

	mu  sync.Mutex
	err error
}

// NewReader wraps r. A nil r yields a reader that is always at end of input.
func NewReader(r io.Reader) *Reader {
	c := &Reader{lines: make(chan line)}
	if r == nil {
		c.err = io.EOF
		close(c.lines)
		return c
	}
	if br, ok := r.(*bufio.Reader); ok {
		c.src = br
	} else {
		c.src = bufio.NewReader(r)
	}
	return c
}

// ReadLine returns the next line without its line ending. Once the input is
// exhausted it keeps returning the terminal error (io.EOF).
func (c *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.src != nil {
		c.start.Do(func() { go c.pump() })
	}
	select {
	case l, ok := <-c.lines:
		if !ok {
			c.mu.Lock()
			defer c.mu.Unlock()
			return "", c.err
		}
		return l.text, l.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Reader) pump() {
	defer close(c.lines)
	for {
		s, err := c.src.ReadString('\n')
		if s != "" {
			c.lines <- line{text: strings.TrimRight(s, "\r\n")}
		}
		if err != nil {
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			c.lines <- line{err: err}
			return
		}
	}
}
