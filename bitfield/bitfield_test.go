package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReadU(t *testing.T) {
	r, err := Decode("15NG6V", 0)
	require.NoError(t, err)
	msgType, ok := r.ReadU(6)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), msgType)
}

func TestReadUShortPayloadTolerance(t *testing.T) {
	r, err := Decode("0", 0)
	require.NoError(t, err)
	_, ok := r.ReadU(6)
	assert.True(t, ok)
	_, ok = r.ReadU(30)
	assert.False(t, ok, "reading past the end of the payload must report ok=false")
}

func TestReadIRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteI(-64, 8)
	w.WriteI(63, 8)
	payload, fill := w.Armor()
	r, err := Decode(payload, fill)
	require.NoError(t, err)
	v1, ok := r.ReadI(8)
	require.True(t, ok)
	assert.Equal(t, int64(-64), v1)
	v2, ok := r.ReadI(8)
	require.True(t, ok)
	assert.Equal(t, int64(63), v2)
}

func TestWriteReadAscii6RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteAscii6("TEST", 36)
	payload, fill := w.Armor()
	r, err := Decode(payload, fill)
	require.NoError(t, err)
	s, ok := r.ReadAscii6(36)
	require.True(t, ok)
	assert.Equal(t, "TEST", s)
}

func TestDecodeRejectsNonPrintable(t *testing.T) {
	_, err := Decode(string([]byte{0x7f}), 0)
	require.Error(t, err)
}

func TestArmorFillBits(t *testing.T) {
	w := NewWriter()
	w.WriteU(1, 6)
	w.WriteU(1, 1)
	_, fill := w.Armor()
	assert.Equal(t, 5, fill)
}
