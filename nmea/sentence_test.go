package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleSentence(t *testing.T) {
	s, err := Parse([]byte("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "AI", s.Talker)
	assert.Equal(t, "VDM", s.Type)
	assert.Equal(t, 1, s.FragCount)
	assert.Equal(t, 1, s.FragIndex)
	assert.True(t, s.IsSingle())
}

func TestParseRejectsBadFieldCount(t *testing.T) {
	_, err := Parse([]byte("!AIVDM,1,1,,B,abc*00"), Options{})
	require.Error(t, err)
}

func TestParseStrictChecksum(t *testing.T) {
	_, err := Parse([]byte("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*FF"), Options{ErrorIfChecksumInvalid: true})
	require.Error(t, err)
}

func TestParseLenientChecksum(t *testing.T) {
	s, err := Parse([]byte("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*FF"), Options{})
	require.NoError(t, err)
	assert.False(t, s.IsValid)
}

func TestParseTagBlockPrefix(t *testing.T) {
	line := []byte(`\s:2573135,c:1671620143*0B\!AIVDM,1,1,,A,16:=?;0P00` + "`" + `SstvFnFbeGH6L088h,0*44`)
	s, err := Parse(line, Options{})
	require.NoError(t, err)
	require.NotNil(t, s.TagBlock)
	assert.Equal(t, "2573135", s.TagBlock.Source)
	assert.Equal(t, int64(1671620143), s.TagBlock.UnixSeconds)
}

func TestParseGroupTagBlock(t *testing.T) {
	content := []byte("g:1/2/123456")
	cs := XORChecksum(content)
	raw := append(append([]byte{}, content...), []byte(
		"*" + string("0123456789ABCDEF"[cs>>4]) + string("0123456789ABCDEF"[cs&0xf]))...)
	tb, err := parseTagBlock(raw)
	require.NoError(t, err)
	require.NotNil(t, tb.Group)
	assert.Equal(t, 1, tb.Group.SentenceNum)
	assert.Equal(t, 2, tb.Group.Total)
	assert.Equal(t, "123456", tb.Group.ID)
}
