package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdeck/aistype"
	"aisdeck/assembler"
	"aisdeck/bitfield"
	"aisdeck/decode"
	"aisdeck/nmea"
)

func TestDecodeType1CanonicalSample(t *testing.T) {
	s, err := nmea.Parse([]byte("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05"), nmea.Options{})
	require.NoError(t, err)

	msg, err := decode.Decode(s.Payload, s.FillBits)
	require.NoError(t, err)

	pos, ok := msg.(*aistype.PositionReportA)
	require.True(t, ok)
	assert.Equal(t, 1, pos.MsgType())
	assert.Equal(t, uint32(367533950), pos.MMSI)
	assert.InDelta(t, -122.408, pos.Lon, 0.01)
	assert.InDelta(t, 37.808, pos.Lat, 0.01)
}

func TestDecodeType5MultiFragmentOrderIndependent(t *testing.T) {
	lines := [][]byte{
		[]byte("!AIVDM,2,1,4,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*08"),
		[]byte("!AIVDM,2,2,4,A,000000000000000,2*20"),
	}

	decodeInOrder := func(order []int) aistype.Message {
		asm := assembler.New()
		var got *assembler.Assembled
		for _, idx := range order {
			s, err := nmea.Parse(lines[idx], nmea.Options{})
			require.NoError(t, err)
			a, complete, err := asm.Add(s)
			require.NoError(t, err)
			if complete {
				got = a
			}
		}
		require.NotNil(t, got)
		msg, err := decode.Decode(got.Payload, got.FillBits)
		require.NoError(t, err)
		return msg
	}

	forward := decodeInOrder([]int{0, 1})
	reversed := decodeInOrder([]int{1, 0})

	fwd, ok := forward.(*aistype.StaticVoyageData)
	require.True(t, ok)
	rev, ok := reversed.(*aistype.StaticVoyageData)
	require.True(t, ok)

	assert.Equal(t, 5, fwd.MsgType())
	assert.NotEmpty(t, fwd.ShipName)
	assert.NotEmpty(t, fwd.CallSign)
	assert.Equal(t, fwd, rev)
}

func TestDecodeUnknownMessageType(t *testing.T) {
	w := bitfield.NewWriter()
	w.WriteU(31, 6)
	w.WriteU(0, 2)
	w.WriteU(123456789, 30)
	payload, fillBits := w.Armor()

	_, err := decode.Decode(payload, fillBits)
	require.Error(t, err)
}

func TestDecodeShortPayloadTolerant(t *testing.T) {
	w := bitfield.NewWriter()
	w.WriteU(1, 6)
	w.WriteU(0, 2)
	w.WriteU(367533950, 30)
	payload, fillBits := w.Armor()

	msg, err := decode.Decode(payload, fillBits)
	require.NoError(t, err)
	pos, ok := msg.(*aistype.PositionReportA)
	require.True(t, ok)
	assert.Equal(t, uint32(367533950), pos.MMSI)
}
