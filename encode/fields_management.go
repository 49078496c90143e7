package encode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func writeType20(w *bitfield.Writer, m *aistype.DataLinkManagement) {
	w.WriteU(0, 2)
	for _, s := range m.Slots {
		w.WriteU(uint64(s.Offset), 12)
		w.WriteU(uint64(s.Number), 4)
		w.WriteU(uint64(s.Timeout), 3)
		w.WriteU(uint64(s.Increment), 11)
	}
}

func writeType21(w *bitfield.Writer, m *aistype.AidToNavigationReport) {
	w.WriteU(uint64(m.AidType), 5)
	w.WriteAscii6(m.ShipName, 120)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	w.WriteU(uint64(m.ToBow), 9)
	w.WriteU(uint64(m.ToStern), 9)
	w.WriteU(uint64(m.ToPort), 6)
	w.WriteU(uint64(m.ToStarboard), 6)
	w.WriteU(uint64(m.Epfd), 4)
	w.WriteU(uint64(m.Second), 6)
	w.WriteBool(m.OffPosition)
	w.WriteU(uint64(m.Regional), 8)
	w.WriteBool(m.Raim)
	w.WriteBool(m.VirtualAid)
	w.WriteBool(m.Assigned)
	w.WriteU(0, 1)
	w.WriteAscii6(m.NameExt, 88)
}

// writeType22 mirrors decodeType22's bit layout: the 70-bit union block
// is written before the Addressed discriminant that trails it.
func writeType22(w *bitfield.Writer, m *aistype.ChannelManagement) {
	w.WriteU(uint64(m.Spare1), 2)
	w.WriteU(uint64(m.ChannelA), 12)
	w.WriteU(uint64(m.ChannelB), 12)
	w.WriteU(uint64(m.TxRx), 4)
	w.WriteBool(m.Power)

	if m.Addressed {
		w.WriteU(uint64(m.Dest1), 30)
		w.WriteU(0, 5)
		w.WriteU(uint64(m.Dest2), 30)
		w.WriteU(0, 5)
	} else {
		w.WriteI(int64(m.NELon*10.0), 18)
		w.WriteI(int64(m.NELat*10.0), 17)
		w.WriteI(int64(m.SWLon*10.0), 18)
		w.WriteI(int64(m.SWLat*10.0), 17)
	}

	w.WriteBool(m.Addressed)
	w.WriteBool(m.BandA)
	w.WriteBool(m.BandB)
	w.WriteU(uint64(m.ZoneSize), 3)
	w.WriteU(uint64(m.Spare2), 23)
}

func writeType23(w *bitfield.Writer, m *aistype.GroupAssignmentCommand) {
	w.WriteU(uint64(m.Spare1), 2)
	w.WriteI(int64(m.NELon*10.0), 18)
	w.WriteI(int64(m.NELat*10.0), 17)
	w.WriteI(int64(m.SWLon*10.0), 18)
	w.WriteI(int64(m.SWLat*10.0), 17)
	w.WriteU(uint64(m.StationType), 4)
	w.WriteU(uint64(m.ShipType), 8)
	w.WriteU(uint64(m.Spare2), 22)
	w.WriteU(uint64(m.TxRx), 2)
	w.WriteU(uint64(m.Interval), 4)
	w.WriteU(uint64(m.Quiet), 4)
	w.WriteU(uint64(m.Spare3), 6)
}
