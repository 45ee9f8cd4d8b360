package cscope

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field tokenizers. Each consumes exactly the bytes it documents and
// nothing more; lookahead helpers restore the cursor on every path.
// Truncation (EOF mid-token) is a format error, not an I/O error.

// readMark consumes a mandatory tab followed by one mark byte and
// classifies it. The mark byte itself can never fail: unknown bytes
// classify as MarkUnknown.
func readMark(c *Cursor) (Mark, error) {
	b, err := c.ReadByte()
	if err == io.EOF {
		return MarkUnknown, fmt.Errorf("%w: unexpected end of database, expected mark at offset %d", ErrFormat, c.Pos())
	}
	if err != nil {
		return MarkUnknown, err
	}
	if b != '\t' {
		return MarkUnknown, fmt.Errorf("%w: expected tab before mark at offset %d, got %q", ErrFormat, c.Pos()-1, b)
	}
	b, err = c.ReadByte()
	if err == io.EOF {
		return MarkUnknown, fmt.Errorf("%w: unexpected end of database, truncated mark at offset %d", ErrFormat, c.Pos())
	}
	if err != nil {
		return MarkUnknown, err
	}
	return ClassifyMark(b), nil
}

// readOptionalMark peeks one byte; a tab means a mark token follows and
// is consumed, anything else consumes nothing and reports absence.
func readOptionalMark(c *Cursor) (Mark, bool, error) {
	if c.Peek() != '\t' {
		return MarkUnknown, false, nil
	}
	m, err := readMark(c)
	if err != nil {
		return MarkUnknown, false, err
	}
	return m, true, nil
}

// readLine consumes bytes through the next newline and returns the
// decoded text with the terminator stripped and surrounding whitespace
// trimmed. A stream that ends before the newline is truncated.
func readLine(c *Cursor) (string, error) {
	start := c.Pos()
	buf, err := c.ReadUntil('\n')
	if err == io.EOF {
		return "", fmt.Errorf("%w: unterminated line at offset %d", ErrFormat, start)
	}
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: line at offset %d is not valid UTF-8", ErrEncoding, start)
	}
	return strings.TrimSpace(string(buf[:len(buf)-1])), nil
}

// readBlankLine consumes exactly one byte and requires it to be a
// newline, i.e. an empty line.
func readBlankLine(c *Cursor) error {
	b, err := c.ReadByte()
	if err == io.EOF {
		return fmt.Errorf("%w: unexpected end of database, expected blank line at offset %d", ErrFormat, c.Pos())
	}
	if err != nil {
		return err
	}
	if b != '\n' {
		return fmt.Errorf("%w: expected blank line at offset %d, got %q", ErrFormat, c.Pos()-1, b)
	}
	return nil
}

// readLineNumber consumes bytes through the next space and parses the
// preceding digits as an unsigned line number.
func readLineNumber(c *Cursor) (uint64, error) {
	start := c.Pos()
	buf, err := c.ReadUntil(' ')
	if err == io.EOF {
		return 0, fmt.Errorf("%w: unexpected end of database, expected line number at offset %d", ErrFormat, start)
	}
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseUint(strings.TrimSpace(string(buf)), 10, 64)
	if perr != nil {
		return 0, fmt.Errorf("%w: bad line number %q at offset %d", ErrFormat, strings.TrimSpace(string(buf)), start)
	}
	return n, nil
}

// readUntilBlankLine accumulates physical lines until an empty line
// (a lone newline) and folds them into a single logical line by
// dropping the terminators. The empty line is consumed. Running off
// the end of the stream first is a format error.
func readUntilBlankLine(c *Cursor) (string, error) {
	start := c.Pos()
	var folded strings.Builder
	for {
		buf, err := c.ReadUntil('\n')
		if err == io.EOF {
			return "", fmt.Errorf("%w: no blank line before end of database (text starts at offset %d)", ErrFormat, start)
		}
		if err != nil {
			return "", err
		}
		if len(buf) == 1 {
			return strings.TrimSpace(folded.String()), nil
		}
		if !utf8.Valid(buf) {
			return "", fmt.Errorf("%w: line at offset %d is not valid UTF-8", ErrEncoding, c.Pos()-uint64(len(buf)))
		}
		folded.WriteString(string(buf[:len(buf)-1]))
	}
}

// peekFileBoundary reports whether the bytes at the cursor start a
// file-boundary mark. The cursor position is restored unconditionally,
// whether or not a mark was found and even if the read failed.
func peekFileBoundary(c *Cursor) bool {
	saved := c.Pos()
	m, present, err := readOptionalMark(c)
	if serr := c.Seek(saved); serr != nil {
		return false
	}
	return err == nil && present && m == MarkFile
}
