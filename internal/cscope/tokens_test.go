package cscope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMark_RequiresTab(t *testing.T) {
	c := newTestCursor(t, "x$")
	_, err := readMark(c)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestReadMark_ClassifiesByte(t *testing.T) {
	c := newTestCursor(t, "\t$rest")
	m, err := readMark(c)
	require.NoError(t, err)
	assert.Equal(t, MarkFuncDef, m)
	assert.Equal(t, uint64(2), c.Pos())
}

func TestReadOptionalMark_AbsentConsumesNothing(t *testing.T) {
	c := newTestCursor(t, "12 text\n")
	m, present, err := readOptionalMark(c)
	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, MarkUnknown, m)
	assert.Equal(t, uint64(0), c.Pos())
}

func TestReadOptionalMark_Present(t *testing.T) {
	c := newTestCursor(t, "\t~<h.h>\n")
	m, present, err := readOptionalMark(c)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, MarkInclude, m)
	assert.Equal(t, uint64(2), c.Pos())
}

func TestReadBlankLine_RejectsContent(t *testing.T) {
	c := newTestCursor(t, "x\n")
	assert.True(t, errors.Is(readBlankLine(c), ErrFormat))

	c = newTestCursor(t, "\n")
	assert.NoError(t, readBlankLine(c))
}

func TestReadLineNumber_ParsesDigits(t *testing.T) {
	c := newTestCursor(t, "1234 rest")
	n, err := readLineNumber(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), n)
	assert.Equal(t, uint64(5), c.Pos())
}

func TestReadLineNumber_RejectsNonNumeric(t *testing.T) {
	c := newTestCursor(t, "12ab rest")
	_, err := readLineNumber(c)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestReadUntilBlankLine_RequiresBlankBeforeEOF(t *testing.T) {
	c := newTestCursor(t, "line one\nline two\n")
	_, err := readUntilBlankLine(c)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestReadUntilBlankLine_FoldsLines(t *testing.T) {
	c := newTestCursor(t, "(int a,\nint b) {\n\nafter")
	text, err := readUntilBlankLine(c)
	require.NoError(t, err)
	assert.Equal(t, "(int a,int b) {", text)
	// The blank line is consumed; the cursor sits on what follows.
	assert.Equal(t, byte('a'), c.Peek())
}

func TestPeekFileBoundary_RestoresPosition(t *testing.T) {
	c := newTestCursor(t, "\t@path\n")
	assert.True(t, peekFileBoundary(c))
	assert.Equal(t, uint64(0), c.Pos())

	c = newTestCursor(t, "\t$name\n")
	assert.False(t, peekFileBoundary(c))
	assert.Equal(t, uint64(0), c.Pos())

	c = newTestCursor(t, "12 text\n")
	assert.False(t, peekFileBoundary(c))
	assert.Equal(t, uint64(0), c.Pos())
}

func TestPeekFileBoundary_AtEOF(t *testing.T) {
	c := newTestCursor(t, "")
	assert.False(t, peekFileBoundary(c))
	assert.Equal(t, uint64(0), c.Pos())
}
