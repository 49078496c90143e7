package decode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func decodeType6(r *bitfield.Reader) *aistype.BinaryAddressed {
	m := &aistype.BinaryAddressed{Header: header(r, 6)}
	seqno, _ := r.ReadU(2)
	m.SeqNo = uint8(seqno)
	dest, _ := r.ReadU(30)
	m.DestMMSI = uint32(dest)
	retransmit, _ := r.ReadBool()
	m.Retransmit = retransmit
	spare, _ := r.ReadU(1)
	m.Spare = uint8(spare)
	dac, _ := r.ReadU(10)
	m.DAC = uint16(dac)
	fid, _ := r.ReadU(6)
	m.FID = uint8(fid)
	data, _ := r.ReadRaw(920)
	m.Data = data
	return m
}

func decodeType7or13(r *bitfield.Reader, msgType int) *aistype.BinaryAcknowledge {
	m := &aistype.BinaryAcknowledge{Header: header(r, msgType)}
	spare, _ := r.ReadU(2)
	m.Spare = uint8(spare)
	m.MMSI1, m.MMSISeq1 = readMMSISeq(r)
	m.MMSI2, m.MMSISeq2 = readMMSISeq(r)
	m.MMSI3, m.MMSISeq3 = readMMSISeq(r)
	m.MMSI4, m.MMSISeq4 = readMMSISeq(r)
	return m
}

func readMMSISeq(r *bitfield.Reader) (uint32, uint8) {
	mmsi, _ := r.ReadU(30)
	seq, _ := r.ReadU(2)
	return uint32(mmsi), uint8(seq)
}

func decodeType8(r *bitfield.Reader) *aistype.BinaryBroadcast {
	m := &aistype.BinaryBroadcast{Header: header(r, 8)}
	spare, _ := r.ReadU(2)
	m.Spare = uint8(spare)
	dac, _ := r.ReadU(10)
	m.DAC = uint16(dac)
	fid, _ := r.ReadU(6)
	m.FID = uint8(fid)
	data, _ := r.ReadRaw(952)
	m.Data = data
	return m
}

func decodeType10(r *bitfield.Reader) *aistype.UTCDateInquiry {
	m := &aistype.UTCDateInquiry{Header: header(r, 10)}
	spare1, _ := r.ReadU(2)
	m.Spare1 = uint8(spare1)
	dest, _ := r.ReadU(30)
	m.DestMMSI = uint32(dest)
	spare2, _ := r.ReadU(2)
	m.Spare2 = uint8(spare2)
	return m
}

// decodeType12or14 handles type 12 (addressed safety message) and type
// 14 (safety broadcast, no destination MMSI/seqno/retransmit).
func decodeType12or14(r *bitfield.Reader, msgType int) *aistype.SafetyRelatedMessage {
	m := &aistype.SafetyRelatedMessage{Header: header(r, msgType)}
	if msgType == 12 {
		seqno, _ := r.ReadU(2)
		m.SeqNo = uint8(seqno)
		dest, _ := r.ReadU(30)
		m.DestMMSI = uint32(dest)
		retransmit, _ := r.ReadBool()
		m.Retransmit = retransmit
		spare, _ := r.ReadU(1)
		m.Spare = uint8(spare)
		m.Text = readString(r, 936)
	} else {
		spare, _ := r.ReadU(2)
		m.Spare = uint8(spare)
		m.Text = readString(r, 968)
	}
	return m
}

func decodeType15(r *bitfield.Reader) *aistype.Interrogation {
	m := &aistype.Interrogation{Header: header(r, 15)}
	spare1, _ := r.ReadU(2)
	m.Spare1 = uint8(spare1)
	mmsi1, _ := r.ReadU(30)
	m.MMSI1 = uint32(mmsi1)
	type1_1, _ := r.ReadU(6)
	m.Type1_1 = uint8(type1_1)
	offset1_1, _ := r.ReadU(12)
	m.Offset1_1 = uint16(offset1_1)
	spare2, _ := r.ReadU(2)
	m.Spare2 = uint8(spare2)
	type1_2, _ := r.ReadU(6)
	m.Type1_2 = uint8(type1_2)
	offset1_2, _ := r.ReadU(12)
	m.Offset1_2 = uint16(offset1_2)
	spare3, _ := r.ReadU(2)
	m.Spare3 = uint8(spare3)
	mmsi2, _ := r.ReadU(30)
	m.MMSI2 = uint32(mmsi2)
	type2_1, _ := r.ReadU(6)
	m.Type2_1 = uint8(type2_1)
	offset2_1, _ := r.ReadU(12)
	m.Offset2_1 = uint16(offset2_1)
	spare4, _ := r.ReadU(2)
	m.Spare4 = uint8(spare4)
	return m
}

// decodeType16 drops the second (mmsi, offset, increment) triple when
// the payload is only 96 bits
func decodeType16(r *bitfield.Reader) *aistype.AssignmentModeCommand {
	m := &aistype.AssignmentModeCommand{Header: header(r, 16)}
	spare, _ := r.ReadU(2)
	m.Spare = uint8(spare)

	mmsi1, _ := r.ReadU(30)
	offset1, _ := r.ReadU(12)
	increment1, _ := r.ReadU(10)
	m.Slots = append(m.Slots, aistype.AssignedSlot{
		MMSI: uint32(mmsi1), Offset: uint16(offset1), Increment: uint16(increment1),
	})

	if r.Len() >= 52 {
		mmsi2, _ := r.ReadU(30)
		offset2, _ := r.ReadU(12)
		increment2, _ := r.ReadU(10)
		m.Slots = append(m.Slots, aistype.AssignedSlot{
			MMSI: uint32(mmsi2), Offset: uint16(offset2), Increment: uint16(increment2),
		})
	}
	return m
}

func decodeType17(r *bitfield.Reader) *aistype.DGNSSBroadcast {
	m := &aistype.DGNSSBroadcast{Header: header(r, 17)}
	spare1, _ := r.ReadU(2)
	m.Spare1 = uint8(spare1)
	m.Lon = readLonLat10(r, 18)
	m.Lat = readLonLat10(r, 17)
	spare2, _ := r.ReadU(5)
	m.Spare2 = uint8(spare2)
	data, _ := r.ReadRaw(736)
	m.Data = data
	return m
}

// decodeType25 selects among the four sub-layouts by the Addressed and
// Structured bits
func decodeType25(r *bitfield.Reader) *aistype.BinarySingleSlotMessage {
	m := &aistype.BinarySingleSlotMessage{Header: header(r, 25)}
	addressed, _ := r.ReadBool()
	structured, _ := r.ReadBool()
	m.Addressed, m.Structured = addressed, structured

	if addressed {
		dest, _ := r.ReadU(30)
		m.DestMMSI = uint32(dest)
	}
	if structured {
		appID, _ := r.ReadU(16)
		m.AppID = uint16(appID)
	}

	var dataBits int
	switch {
	case addressed && structured:
		dataBits = 82
	case !addressed && structured:
		dataBits = 112
	case addressed && !structured:
		dataBits = 98
	default:
		dataBits = 128
	}
	data, _ := r.ReadRaw(dataBits)
	m.Data = data
	return m
}

// decodeType26 mirrors decodeType25's discriminants with a trailing
// 20-bit radio field.
func decodeType26(r *bitfield.Reader) *aistype.BinaryMultiSlotMessage {
	m := &aistype.BinaryMultiSlotMessage{Header: header(r, 26)}
	addressed, _ := r.ReadBool()
	structured, _ := r.ReadBool()
	m.Addressed, m.Structured = addressed, structured

	if addressed {
		dest, _ := r.ReadU(30)
		m.DestMMSI = uint32(dest)
	}
	appID, _ := r.ReadU(16)
	m.AppID = uint16(appID)

	var dataBits int
	switch {
	case addressed && structured:
		dataBits = 958
	case !addressed && structured:
		dataBits = 988
	case addressed && !structured:
		dataBits = 958
	default:
		dataBits = 1004
	}
	data, _ := r.ReadRaw(dataBits)
	m.Data = data
	radio, _ := r.ReadU(20)
	m.Radio = uint32(radio)
	return m
}
