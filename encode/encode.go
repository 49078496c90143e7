// Package encode implements the symmetric counterpart of decode: bit
// writers per AIS message type, and a fragmenter that packages an
// encoded payload into one or more NMEA AIVDM sentences.
package encode

import (
	"fmt"
	"math"

	"aisdeck/aiserr"
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

// maxPayloadCharsPerSentence keeps each fragment's total sentence length
// within the 82-byte NMEA limit; 60 armored payload characters leaves
// comfortable room for the talker/type/count/index/seq/channel/fillbits
// framing overhead.
const maxPayloadCharsPerSentence = 60

// Payload encodes msg into its bit-exact wire representation and returns
// the armored payload string plus the fill-bit count, without framing it
// into NMEA sentences.
func Payload(msg aistype.Message) (string, int, error) {
	w := bitfield.NewWriter()
	writeHeader(w, msg.MsgType(), msg.GetRepeat(), msg.GetMMSI())

	switch m := msg.(type) {
	case *aistype.PositionReportA:
		writeType123(w, m)
	case *aistype.BaseStationReport:
		writeType4or11(w, m)
	case *aistype.StaticVoyageData:
		writeType5(w, m)
	case *aistype.BinaryAddressed:
		writeType6(w, m)
	case *aistype.BinaryAcknowledge:
		writeType7or13(w, m)
	case *aistype.BinaryBroadcast:
		writeType8(w, m)
	case *aistype.SARAircraftPosition:
		writeType9(w, m)
	case *aistype.UTCDateInquiry:
		writeType10(w, m)
	case *aistype.SafetyRelatedMessage:
		writeType12or14(w, m)
	case *aistype.Interrogation:
		writeType15(w, m)
	case *aistype.AssignmentModeCommand:
		writeType16(w, m)
	case *aistype.DGNSSBroadcast:
		writeType17(w, m)
	case *aistype.PositionReportB:
		writeType18(w, m)
	case *aistype.PositionReportBExtended:
		writeType19(w, m)
	case *aistype.DataLinkManagement:
		writeType20(w, m)
	case *aistype.AidToNavigationReport:
		writeType21(w, m)
	case *aistype.ChannelManagement:
		writeType22(w, m)
	case *aistype.GroupAssignmentCommand:
		writeType23(w, m)
	case *aistype.StaticDataReport:
		writeType24(w, m)
	case *aistype.BinarySingleSlotMessage:
		writeType25(w, m)
	case *aistype.BinaryMultiSlotMessage:
		writeType26(w, m)
	case *aistype.LongRangeBroadcast:
		writeType27(w, m)
	default:
		return "", 0, aiserr.New(aiserr.KindUnknownMessageType, "cannot encode message of type %d", msg.MsgType())
	}

	payload, fillBits := w.Armor()
	return payload, fillBits, nil
}

func writeHeader(w *bitfield.Writer, msgType int, repeat uint8, mmsi uint32) {
	w.WriteU(uint64(msgType), 6)
	w.WriteU(uint64(repeat), 2)
	w.WriteU(uint64(mmsi), 30)
}

// Fragment splits an armored payload into one or more NMEA AIVDM/AIVDO
// sentence bodies (without the leading '!'/trailing checksum, which the
// caller adds via nmea.XORChecksum)
type Fragment struct {
	FragCount int
	FragIndex int
	SeqID     string
	Payload   string
	FillBits  int
}

// FragmentPayload splits payload into as many fragments as needed to
// respect the per-sentence character budget. seqID is empty when the
// result is a single fragment (matching the single-sentence
// convention of an empty sequence field).
func FragmentPayload(payload string, fillBits int, seqID string) []Fragment {
	if len(payload) <= maxPayloadCharsPerSentence {
		return []Fragment{{FragCount: 1, FragIndex: 1, SeqID: "", Payload: payload, FillBits: fillBits}}
	}

	total := int(math.Ceil(float64(len(payload)) / float64(maxPayloadCharsPerSentence)))
	frags := make([]Fragment, 0, total)
	for i := 0; i < total; i++ {
		start := i * maxPayloadCharsPerSentence
		end := start + maxPayloadCharsPerSentence
		if end > len(payload) {
			end = len(payload)
		}
		fb := 0
		if i == total-1 {
			fb = fillBits
		}
		frags = append(frags, Fragment{
			FragCount: total,
			FragIndex: i + 1,
			SeqID:     seqID,
			Payload:   payload[start:end],
			FillBits:  fb,
		})
	}
	return frags
}

// ToSentences renders a message's fragments into complete, checksummed
// NMEA sentence lines. seqCounter yields the round-robin 0-9 sequence
// id used when a message spans more than one fragment; pass a stateful
// closure to advance it across calls.
func ToSentences(msg aistype.Message, talker, sentenceType, channel string, seqCounter func() int) ([]string, error) {
	payload, fillBits, err := Payload(msg)
	if err != nil {
		return nil, err
	}

	seqID := ""
	frags := FragmentPayload(payload, fillBits, "")
	if len(frags) > 1 && seqCounter != nil {
		seqID = fmt.Sprintf("%d", seqCounter()%10)
		for i := range frags {
			frags[i].SeqID = seqID
		}
	}

	lines := make([]string, 0, len(frags))
	for _, f := range frags {
		body := fmt.Sprintf("%s%s,%d,%d,%s,%s,%s,%d", talker, sentenceType,
			f.FragCount, f.FragIndex, f.SeqID, channel, f.Payload, f.FillBits)
		cs := xorChecksum(body)
		lines = append(lines, fmt.Sprintf("!%s*%02X", body, cs))
	}
	return lines, nil
}

func xorChecksum(body string) uint8 {
	var cs uint8
	for i := 0; i < len(body); i++ {
		cs ^= body[i]
	}
	return cs
}
