package cscope

import (
	"fmt"
	"io"
)

// Cursor is a seekable byte stream with exact position bookkeeping and
// non-destructive one-byte lookahead. All parsing goes through it so
// the position compared against the trailer offset is always the true
// stream position, with no hidden read-ahead buffering.
type Cursor struct {
	r   io.ReadSeeker
	pos uint64
}

// NewCursor wraps r starting at its current position.
func NewCursor(r io.ReadSeeker) (*Cursor, error) {
	off, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: seek: %v", ErrIO, err)
	}
	return &Cursor{r: r, pos: uint64(off)}, nil
}

// Pos returns the absolute byte offset of the next read.
func (c *Cursor) Pos() uint64 {
	return c.pos
}

// ReadByte consumes and returns one byte. io.EOF passes through
// unwrapped so tokenizers can turn truncation into a format error;
// every other failure wraps ErrIO.
func (c *Cursor) ReadByte() (byte, error) {
	var b [1]byte
	n, err := c.r.Read(b[:])
	if n == 1 {
		c.pos++
		return b[0], nil
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	return 0, fmt.Errorf("%w: read at offset %d: %v", ErrIO, c.pos, err)
}

// ReadUntil consumes bytes up to and including delim. If the stream
// ends first, the bytes read so far are returned together with io.EOF.
func (c *Cursor) ReadUntil(delim byte) ([]byte, error) {
	var buf []byte
	for {
		b, err := c.ReadByte()
		if err != nil {
			return buf, err
		}
		buf = append(buf, b)
		if b == delim {
			return buf, nil
		}
	}
}

// Peek returns the next byte without consuming it, restoring the
// stream position on every path. At end of stream it returns 0, which
// is not a valid mark or digit byte, so callers can treat it as "no
// recognizable token ahead".
func (c *Cursor) Peek() byte {
	var b [1]byte
	n, _ := c.r.Read(b[:])
	if n == 0 {
		return 0
	}
	if _, err := c.r.Seek(int64(c.pos), io.SeekStart); err != nil {
		return 0
	}
	return b[0]
}

// Seek repositions the cursor to an absolute offset. Used by the
// lookahead helpers to restore a saved position.
func (c *Cursor) Seek(off uint64) error {
	if _, err := c.r.Seek(int64(off), io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek to %d: %v", ErrIO, off, err)
	}
	c.pos = off
	return nil
}
