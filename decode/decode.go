// Package decode implements the AIS field tables and decoder dispatch
// for all 27 message types, walking a bitfield.Reader in field order
// and tolerating short payloads by leaving trailing fields at their
// zero value
package decode

import (
	"math"

	"aisdeck/aiserr"
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

// Decode decodes an armored AIS payload into the matching aistype.Message
// variant. fillBits is the number of trailing padding bits reported by
// the NMEA framer/assembler.
func Decode(payload string, fillBits int) (aistype.Message, error) {
	r, err := bitfield.Decode(payload, fillBits)
	if err != nil {
		return nil, err
	}
	if r.Len() < 6 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "payload too short to contain a message type")
	}

	typeVal, _ := r.ReadU(6)
	msgType := int(typeVal)

	switch msgType {
	case 1, 2, 3:
		return decodeType123(r, msgType), nil
	case 4:
		return decodeType4or11(r, 4), nil
	case 5:
		return decodeType5(r), nil
	case 6:
		return decodeType6(r), nil
	case 7:
		return decodeType7or13(r, 7), nil
	case 8:
		return decodeType8(r), nil
	case 9:
		return decodeType9(r), nil
	case 10:
		return decodeType10(r), nil
	case 11:
		return decodeType4or11(r, 11), nil
	case 12:
		return decodeType12or14(r, 12), nil
	case 13:
		return decodeType7or13(r, 13), nil
	case 14:
		return decodeType12or14(r, 14), nil
	case 15:
		return decodeType15(r), nil
	case 16:
		return decodeType16(r), nil
	case 17:
		return decodeType17(r), nil
	case 18:
		return decodeType18(r), nil
	case 19:
		return decodeType19(r), nil
	case 20:
		return decodeType20(r), nil
	case 21:
		return decodeType21(r), nil
	case 22:
		return decodeType22(r), nil
	case 23:
		return decodeType23(r), nil
	case 24:
		return decodeType24(r), nil
	case 25:
		return decodeType25(r), nil
	case 26:
		return decodeType26(r), nil
	case 27:
		return decodeType27(r), nil
	default:
		return nil, aiserr.New(aiserr.KindUnknownMessageType, "msg_type %d outside 1..27", msgType)
	}
}

func header(r *bitfield.Reader, msgType int) aistype.Header {
	repeat, _ := r.ReadU(2)
	mmsi, _ := r.ReadU(30)
	return aistype.Header{Type: msgType, Repeat: uint8(repeat), MMSI: uint32(mmsi)}
}

// readLonLat reads a signed n-bit field scaled by 1/600000, the
// resolution used by every position-report-family message type.
func readLonLat(r *bitfield.Reader, n int) float64 {
	v, _ := r.ReadI(n)
	return float64(v) / 600000.0
}

// readLonLat10 reads a signed n-bit field scaled by 1/10, the
// resolution used by type 17's DGNSS broadcast and types 22/23's
// jurisdiction rectangles.
func readLonLat10(r *bitfield.Reader, n int) float64 {
	v, _ := r.ReadI(n)
	return float64(v) / 10.0
}

// readSpeed10 reads an unsigned n-bit speed field scaled by 1/10 knot,
// applied uniformly across all message types
func readSpeed10(r *bitfield.Reader, n int) float64 {
	v, _ := r.ReadU(n)
	return float64(v) / 10.0
}

// readCourse10 reads an unsigned n-bit course field scaled by 1/10 degree.
func readCourse10(r *bitfield.Reader, n int) float64 {
	v, _ := r.ReadU(n)
	return float64(v) / 10.0
}

// readDraught reads the unsigned 8-bit draught field scaled by 1/10 meter.
func readDraught(r *bitfield.Reader) float64 {
	v, _ := r.ReadU(8)
	return float64(v) / 10.0
}

// decodeRateOfTurn decodes the signed 8-bit "turn" field
func decodeRateOfTurn(r *bitfield.Reader) aistype.RateOfTurn {
	v, _ := r.ReadI(8)
	rot := aistype.RateOfTurn{Raw: int8(v)}
	switch v {
	case -128:
		rot.NotAvailable = true
	case 127:
		rot.TurningRightFast = true
	case -127:
		rot.TurningLeftFast = true
	default:
		sign := 1.0
		if v < 0 {
			sign = -1.0
		}
		av := math.Abs(float64(v))
		rot.DegreesPerMinute = sign * math.Pow(av/4.733, 2)
	}
	return rot
}

func readString(r *bitfield.Reader, n int) string {
	s, _ := r.ReadAscii6(n)
	return s
}
