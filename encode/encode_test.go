package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdeck/aistype"
	"aisdeck/decode"
	"aisdeck/encode"
	"aisdeck/nmea"
)

func TestEncodeDecodeType1RoundTrip(t *testing.T) {
	msg := &aistype.PositionReportA{
		Header: aistype.Header{Type: 1, Repeat: 0, MMSI: 366053209},
		Status: aistype.StatusUnderWayUsingEngine,
		Turn:   aistype.RateOfTurn{Raw: 0},
		Speed:  0,
		Lon:    -122.341,
		Lat:    37.802,
		Course: 219.3,
	}

	lines, err := encode.ToSentences(msg, "AI", "VDM", "B", nil)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "!AIVDM,1,1,,B,")

	s, err := nmea.Parse([]byte(lines[0]), nmea.Options{ErrorIfChecksumInvalid: true})
	require.NoError(t, err)

	decoded, err := decode.Decode(s.Payload, s.FillBits)
	require.NoError(t, err)
	pos, ok := decoded.(*aistype.PositionReportA)
	require.True(t, ok)

	assert.Equal(t, msg.MMSI, pos.MMSI)
	assert.InDelta(t, msg.Lon, pos.Lon, 1e-3)
	assert.InDelta(t, msg.Lat, pos.Lat, 1e-3)
	assert.InDelta(t, msg.Course, pos.Course, 0.1)
}

func TestFragmentPayloadSplitsLongPayload(t *testing.T) {
	payload := ""
	for i := 0; i < 130; i++ {
		payload += "0"
	}
	frags := encode.FragmentPayload(payload, 0, "")
	require.Greater(t, len(frags), 1)
	for i, f := range frags {
		assert.Equal(t, i+1, f.FragIndex)
		assert.Equal(t, len(frags), f.FragCount)
	}
	reassembled := ""
	for _, f := range frags {
		reassembled += f.Payload
	}
	assert.Equal(t, payload, reassembled)
}

func TestEncodeType5RoundTrip(t *testing.T) {
	msg := &aistype.StaticVoyageData{
		Header:   aistype.Header{Type: 5, MMSI: 367533950},
		CallSign: "ABCD",
		ShipName: "TESTSHIP",
		ShipType: aistype.ShipType(70),
		Epfd:     aistype.EpfdGPS,
	}

	payload, fillBits, err := encode.Payload(msg)
	require.NoError(t, err)

	decoded, err := decode.Decode(payload, fillBits)
	require.NoError(t, err)
	sv, ok := decoded.(*aistype.StaticVoyageData)
	require.True(t, ok)

	assert.Equal(t, "ABCD", sv.CallSign)
	assert.Equal(t, "TESTSHIP", sv.ShipName)
}
