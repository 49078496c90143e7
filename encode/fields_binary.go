package encode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func writeType6(w *bitfield.Writer, m *aistype.BinaryAddressed) {
	w.WriteU(uint64(m.SeqNo), 2)
	w.WriteU(uint64(m.DestMMSI), 30)
	w.WriteBool(m.Retransmit)
	w.WriteU(0, 1)
	w.WriteU(uint64(m.DAC), 10)
	w.WriteU(uint64(m.FID), 6)
	w.WriteRaw(m.Data, 920)
}

func writeType7or13(w *bitfield.Writer, m *aistype.BinaryAcknowledge) {
	w.WriteU(0, 2)
	writeMMSISeq(w, m.MMSI1, m.MMSISeq1)
	writeMMSISeq(w, m.MMSI2, m.MMSISeq2)
	writeMMSISeq(w, m.MMSI3, m.MMSISeq3)
	writeMMSISeq(w, m.MMSI4, m.MMSISeq4)
}

func writeMMSISeq(w *bitfield.Writer, mmsi uint32, seq uint8) {
	w.WriteU(uint64(mmsi), 30)
	w.WriteU(uint64(seq), 2)
}

func writeType8(w *bitfield.Writer, m *aistype.BinaryBroadcast) {
	w.WriteU(0, 2)
	w.WriteU(uint64(m.DAC), 10)
	w.WriteU(uint64(m.FID), 6)
	w.WriteRaw(m.Data, 952)
}

func writeType10(w *bitfield.Writer, m *aistype.UTCDateInquiry) {
	w.WriteU(0, 2)
	w.WriteU(uint64(m.DestMMSI), 30)
	w.WriteU(0, 2)
}

func writeType12or14(w *bitfield.Writer, m *aistype.SafetyRelatedMessage) {
	if m.Header.Type == 12 {
		w.WriteU(uint64(m.SeqNo), 2)
		w.WriteU(uint64(m.DestMMSI), 30)
		w.WriteBool(m.Retransmit)
		w.WriteU(0, 1)
		w.WriteAscii6(m.Text, 936)
	} else {
		w.WriteU(0, 2)
		w.WriteAscii6(m.Text, 968)
	}
}

func writeType15(w *bitfield.Writer, m *aistype.Interrogation) {
	w.WriteU(0, 2)
	w.WriteU(uint64(m.MMSI1), 30)
	w.WriteU(uint64(m.Type1_1), 6)
	w.WriteU(uint64(m.Offset1_1), 12)
	w.WriteU(0, 2)
	w.WriteU(uint64(m.Type1_2), 6)
	w.WriteU(uint64(m.Offset1_2), 12)
	w.WriteU(0, 2)
	w.WriteU(uint64(m.MMSI2), 30)
	w.WriteU(uint64(m.Type2_1), 6)
	w.WriteU(uint64(m.Offset2_1), 12)
	w.WriteU(0, 2)
}

func writeType16(w *bitfield.Writer, m *aistype.AssignmentModeCommand) {
	w.WriteU(0, 2)
	for _, s := range m.Slots {
		w.WriteU(uint64(s.MMSI), 30)
		w.WriteU(uint64(s.Offset), 12)
		w.WriteU(uint64(s.Increment), 10)
	}
}

func writeType17(w *bitfield.Writer, m *aistype.DGNSSBroadcast) {
	w.WriteU(0, 2)
	w.WriteI(int64(m.Lon*10.0), 18)
	w.WriteI(int64(m.Lat*10.0), 17)
	w.WriteU(0, 5)
	w.WriteRaw(m.Data, 736)
}

func writeType25(w *bitfield.Writer, m *aistype.BinarySingleSlotMessage) {
	w.WriteBool(m.Addressed)
	w.WriteBool(m.Structured)
	if m.Addressed {
		w.WriteU(uint64(m.DestMMSI), 30)
	}
	if m.Structured {
		w.WriteU(uint64(m.AppID), 16)
	}
	var dataBits int
	switch {
	case m.Addressed && m.Structured:
		dataBits = 82
	case !m.Addressed && m.Structured:
		dataBits = 112
	case m.Addressed && !m.Structured:
		dataBits = 98
	default:
		dataBits = 128
	}
	w.WriteRaw(m.Data, dataBits)
}

func writeType26(w *bitfield.Writer, m *aistype.BinaryMultiSlotMessage) {
	w.WriteBool(m.Addressed)
	w.WriteBool(m.Structured)
	if m.Addressed {
		w.WriteU(uint64(m.DestMMSI), 30)
	}
	w.WriteU(uint64(m.AppID), 16)
	var dataBits int
	switch {
	case m.Addressed && m.Structured:
		dataBits = 958
	case !m.Addressed && m.Structured:
		dataBits = 988
	case m.Addressed && !m.Structured:
		dataBits = 958
	default:
		dataBits = 1004
	}
	w.WriteRaw(m.Data, dataBits)
	w.WriteU(uint64(m.Radio), 20)
}
