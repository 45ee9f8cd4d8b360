// Package cscope reads the line-oriented symbol cross-reference
// database written by cscope. The format is undocumented; the parse
// below follows an older published man page. It is a single sequential
// pass: header line, per-file symbol blocks with tab-prefixed
// single-character marks, then a trailer region (secondary index data)
// that begins at the byte offset recorded in the header and is never
// interpreted here.
package cscope

import (
	"fmt"
	"io"
	"os"
)

// Symbol is one line-numbered occurrence from a file's block. Symbols
// are immutable once constructed and appended in encounter order.
type Symbol struct {
	Filename     string `json:"filename"`
	LineNumber   uint64 `json:"line"`
	Mark         Mark   `json:"mark"`
	Name         string `json:"name"`
	LeadingText  string `json:"leading_text"`
	TrailingText string `json:"trailing_text"`
}

// Database is a fully parsed cross-reference database.
type Database struct {
	Header  Header
	Symbols []Symbol
}

// trailerSentinel is the empty file mark that closes the symbol area,
// sitting immediately before the trailer offset recorded in the
// header.
const trailerSentinel = "\t@\n"

// Parse reads a complete database from r, which must be positioned at
// the header line. It returns after consuming the trailer sentinel,
// leaving the stream positioned exactly at the trailer offset.
func Parse(r io.ReadSeeker) (*Database, error) {
	c, err := NewCursor(r)
	if err != nil {
		return nil, err
	}
	hdr, err := parseHeader(c)
	if err != nil {
		return nil, err
	}

	db := &Database{Header: hdr}
	for c.Pos() < hdr.TrailerOffset {
		// The sentinel is the only thing short enough to fit in the
		// remaining distance; anything else here is malformed.
		if hdr.TrailerOffset-c.Pos() <= uint64(len(trailerSentinel)) {
			if err := consumeTrailerSentinel(c, hdr.TrailerOffset); err != nil {
				return nil, err
			}
			break
		}
		syms, err := parseBlock(c, hdr.TrailerOffset)
		if err != nil {
			return nil, err
		}
		db.Symbols = append(db.Symbols, syms...)
	}
	if c.Pos() != hdr.TrailerOffset {
		return nil, fmt.Errorf("%w: symbol area ends at offset %d, header recorded %d", ErrFormat, c.Pos(), hdr.TrailerOffset)
	}
	return db, nil
}

// consumeTrailerSentinel reads the empty file mark that separates the
// last block from the trailer. The caller verifies the cursor lands
// exactly on the recorded trailer offset.
func consumeTrailerSentinel(c *Cursor, trailerOffset uint64) error {
	m, err := readMark(c)
	if err != nil {
		return err
	}
	if m != MarkFile {
		return fmt.Errorf("%w: expected trailer sentinel before offset %d", ErrFormat, trailerOffset)
	}
	return readBlankLine(c)
}

// ParseFile opens, parses, and closes the database at path.
func ParseFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return Parse(f)
}

// FunctionDefs returns the function-definition symbols in encounter
// order.
func (db *Database) FunctionDefs() []Symbol {
	var defs []Symbol
	for _, sym := range db.Symbols {
		if sym.Mark == MarkFuncDef {
			defs = append(defs, sym)
		}
	}
	return defs
}

// CountByMark returns how many symbols carry each mark.
func (db *Database) CountByMark() map[Mark]int {
	counts := make(map[Mark]int)
	for _, sym := range db.Symbols {
		counts[sym.Mark]++
	}
	return counts
}
