package stream_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdeck/stream"
)

func TestReaderSourceSkipsBlankAndCommentLines(t *testing.T) {
	r := strings.NewReader("\n# a comment\n!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05\n\n")
	src := stream.NewReaderSource(r)

	line, err := src.Next()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(line), "!AIVDM"))

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSourceSkipsLinesNotStartingWithDelimiter(t *testing.T) {
	r := strings.NewReader("garbage line\n$GPGGA,foo*00\n")
	src := stream.NewReaderSource(r)

	line, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "$GPGGA,foo*00", string(line))
}
