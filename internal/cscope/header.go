package cscope

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// magicWord is the literal first token of every cscope database.
const magicWord = "cscope"

// flagInvertedIndex marks a database built with an inverted-index
// layout. The symbol area is unchanged but the trailer references
// companion index files this reader does not implement.
const flagInvertedIndex = "-q"

// flagCompression is the compression-mode token recorded in the header.
const flagCompression = "-c"

// Header holds the parsed first line of a database:
//
//	<magic> <version> <root-dir> [<flags>...] <trailer-offset>
//
// The trailer offset is fixed once parsed and never recomputed; every
// downstream boundary decision compares against it.
type Header struct {
	Version       uint32 `json:"version"`
	Root          string `json:"root"`
	TrailerOffset uint64 `json:"trailer_offset"`

	// Raw is the full header line, retained so optional mode flags can
	// be queried by exact token match.
	Raw string `json:"raw"`
}

// parseHeader consumes the first line of the stream and validates it.
// On success the cursor sits on the first byte after the header line.
func parseHeader(c *Cursor) (Header, error) {
	buf, err := c.ReadUntil('\n')
	if err == io.EOF {
		return Header{}, fmt.Errorf("%w: missing header line", ErrFormat)
	}
	if err != nil {
		return Header{}, err
	}
	if !utf8.Valid(buf) {
		return Header{}, fmt.Errorf("%w: header line is not valid UTF-8", ErrEncoding)
	}

	raw := string(buf[:len(buf)-1])
	words := strings.Split(raw, " ")
	if len(words) < 4 || words[0] != magicWord {
		return Header{}, fmt.Errorf("%w: not a cscope database header: %q", ErrFormat, raw)
	}

	ver, perr := strconv.ParseUint(words[1], 10, 32)
	if perr != nil {
		return Header{}, fmt.Errorf("%w: bad version %q in header", ErrFormat, words[1])
	}

	trailer, perr := parsePaddedOffset(words[len(words)-1])
	if perr != nil {
		return Header{}, fmt.Errorf("%w: bad trailer offset %q in header", ErrFormat, words[len(words)-1])
	}
	if trailer < c.Pos() {
		return Header{}, fmt.Errorf("%w: trailer offset %d lies inside the %d-byte header line", ErrFormat, trailer, c.Pos())
	}

	hdr := Header{
		Version:       uint32(ver),
		Root:          words[2],
		TrailerOffset: trailer,
		Raw:           raw,
	}
	if hdr.HasFlag(flagInvertedIndex) {
		return Header{}, fmt.Errorf("%w: inverted-index databases (%s) are not supported", ErrUnsupported, flagInvertedIndex)
	}
	return hdr, nil
}

// parsePaddedOffset parses a possibly zero-padded unsigned offset.
func parsePaddedOffset(tok string) (uint64, error) {
	s := strings.TrimLeft(tok, "0")
	if s == "" {
		if tok == "" {
			return 0, fmt.Errorf("empty offset")
		}
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// HasFlag reports whether tok appears verbatim among the header tokens.
func (h Header) HasFlag(tok string) bool {
	for _, w := range strings.Split(h.Raw, " ") {
		if w == tok {
			return true
		}
	}
	return false
}

// Compressed reports whether the compression-mode token is present in
// the header.
func (h Header) Compressed() bool {
	return h.HasFlag(flagCompression)
}

// Flags returns the header tokens between the root directory and the
// trailer offset, i.e. the optional mode flags.
func (h Header) Flags() []string {
	words := strings.Split(h.Raw, " ")
	if len(words) <= 4 {
		return nil
	}
	return words[3 : len(words)-1]
}
