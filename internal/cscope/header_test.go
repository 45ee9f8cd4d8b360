package cscope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestHeader(t *testing.T, line string) (Header, error) {
	t.Helper()
	return parseHeader(newTestCursor(t, line))
}

func TestHeader_RoundTrip(t *testing.T) {
	hdr, err := parseTestHeader(t, "cscope 15 /home/x -c 0000000123\n")
	require.NoError(t, err)

	assert.Equal(t, uint32(15), hdr.Version)
	assert.Equal(t, "/home/x", hdr.Root)
	assert.Equal(t, uint64(123), hdr.TrailerOffset)
	assert.True(t, hdr.Compressed())
	assert.True(t, hdr.HasFlag("-c"))
	assert.False(t, hdr.HasFlag("-T"))
}

func TestHeader_Flags(t *testing.T) {
	hdr, err := parseTestHeader(t, "cscope 15 /home/x -c -T 0000000123\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"-c", "-T"}, hdr.Flags())

	hdr, err = parseTestHeader(t, "cscope 15 /home/x 0000000123\n")
	require.NoError(t, err)
	assert.Nil(t, hdr.Flags())
	assert.False(t, hdr.Compressed())
}

func TestHeader_WrongMagic(t *testing.T) {
	_, err := parseTestHeader(t, "ctags 15 /home/x 0000000123\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_TooFewTokens(t *testing.T) {
	_, err := parseTestHeader(t, "cscope 15 0000000123\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_BadVersion(t *testing.T) {
	_, err := parseTestHeader(t, "cscope vX /home/x 0000000123\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_BadTrailerOffset(t *testing.T) {
	_, err := parseTestHeader(t, "cscope 15 /home/x 00000zzz\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_TrailerOffsetInsideHeader(t *testing.T) {
	// Offset 5 lies inside the header line itself.
	_, err := parseTestHeader(t, "cscope 15 /home/x 0000000005\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_AllZeroOffsetPadding(t *testing.T) {
	// An offset of all zeros parses as zero, which then violates the
	// boundary invariant rather than failing to parse.
	_, err := parseTestHeader(t, "cscope 15 /home/x 0000000000\n")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_InvertedIndexUnsupported(t *testing.T) {
	_, err := parseTestHeader(t, "cscope 15 /home/x -q 0000000123\n")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestHeader_Missing(t *testing.T) {
	_, err := parseTestHeader(t, "")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestHeader_InvalidUTF8(t *testing.T) {
	_, err := parseTestHeader(t, "cscope 15 /home/\xff 0000000123\n")
	assert.True(t, errors.Is(err, ErrEncoding))
}
