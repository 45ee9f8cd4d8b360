package cscope

import "fmt"

// parseBlock parses one file's symbol block: a file-boundary mark, the
// file path, a separator blank line, then entries until either the
// next tab-prefixed token (next block or trailer; the caller decides
// which) or the trailer offset. One Symbol per entry, in order.
//
// There is no recovery within a block: the first malformed token
// aborts the whole parse.
func parseBlock(c *Cursor, trailerOffset uint64) ([]Symbol, error) {
	m, err := readMark(c)
	if err != nil {
		return nil, err
	}
	if m != MarkFile {
		return nil, fmt.Errorf("%w: missing file boundary mark at offset %d", ErrFormat, c.Pos()-2)
	}
	filename, err := readLine(c)
	if err != nil {
		return nil, err
	}
	if err := readBlankLine(c); err != nil {
		return nil, err
	}

	var syms []Symbol
	for c.Pos() < trailerOffset && !peekFileBoundary(c) {
		sym, err := parseEntry(c, filename)
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)

		// A tab here is either the next file's boundary or the start
		// of the trailer sentinel. Both end this block.
		if c.Peek() == '\t' {
			break
		}
	}
	return syms, nil
}

// parseEntry parses one line-numbered occurrence:
//
//	<line-number> <leading-text>
//	[\t<mark><symbol>]
//	<trailing-text-line(s)>
//	<blank line>
//
// When the mark is absent there is no symbol on this entry: the kind
// is MarkUnknown, the name is empty, and the text lines fold into the
// trailing text.
func parseEntry(c *Cursor, filename string) (Symbol, error) {
	line, err := readLineNumber(c)
	if err != nil {
		return Symbol{}, err
	}
	leading, err := readLine(c)
	if err != nil {
		return Symbol{}, err
	}

	mark := MarkUnknown
	name := ""
	m, present, err := readOptionalMark(c)
	if err != nil {
		return Symbol{}, err
	}
	if present {
		mark = m
		if name, err = readLine(c); err != nil {
			return Symbol{}, err
		}
	}

	trailing, err := readUntilBlankLine(c)
	if err != nil {
		return Symbol{}, err
	}

	return Symbol{
		Filename:     filename,
		LineNumber:   line,
		Mark:         mark,
		Name:         name,
		LeadingText:  leading,
		TrailingText: trailing,
	}, nil
}
