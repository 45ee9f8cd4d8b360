package cscope

import "errors"

// Error classes for the parser. Every failure wraps exactly one of
// these so callers can classify with errors.Is without string matching.
var (
	// ErrFormat marks a structural violation of the database grammar:
	// missing magic token, wrong separator byte, unparsable integer
	// field, missing blank line, or a missing file-boundary mark.
	ErrFormat = errors.New("malformed database")

	// ErrEncoding marks bytes that cannot be decoded as UTF-8 text
	// where text is expected.
	ErrEncoding = errors.New("invalid text encoding")

	// ErrIO marks a failure opening, reading, or seeking the
	// underlying stream.
	ErrIO = errors.New("database i/o")

	// ErrUnsupported marks a recognized but unimplemented database
	// mode, such as the inverted-index layout.
	ErrUnsupported = errors.New("unsupported database mode")
)
