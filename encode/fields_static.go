package encode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func writeType5(w *bitfield.Writer, m *aistype.StaticVoyageData) {
	w.WriteU(uint64(m.AisVersion), 2)
	w.WriteU(uint64(m.IMO), 30)
	w.WriteAscii6(m.CallSign, 42)
	w.WriteAscii6(m.ShipName, 120)
	w.WriteU(uint64(m.ShipType), 8)
	w.WriteU(uint64(m.ToBow), 9)
	w.WriteU(uint64(m.ToStern), 9)
	w.WriteU(uint64(m.ToPort), 6)
	w.WriteU(uint64(m.ToStarboard), 6)
	w.WriteU(uint64(m.Epfd), 4)
	w.WriteU(uint64(m.Month), 4)
	w.WriteU(uint64(m.Day), 5)
	w.WriteU(uint64(m.Hour), 5)
	w.WriteU(uint64(m.Minute), 6)
	writeDraught(w, m.Draught)
	w.WriteAscii6(m.Destination, 120)
	w.WriteBool(m.Dte)
	w.WriteU(uint64(m.Spare), 1)
}

// writeType24 mirrors decodeType24's Part A/Part B and auxiliary-craft
// discriminants; Part A's trailing spare byte is always written as zero.
func writeType24(w *bitfield.Writer, m *aistype.StaticDataReport) {
	w.WriteU(uint64(m.PartNo), 2)
	switch m.PartNo {
	case 0:
		w.WriteAscii6(m.ShipName, 120)
		w.WriteU(0, 8)
	case 1:
		w.WriteU(uint64(m.ShipType), 8)
		w.WriteAscii6(m.VendorID, 18)
		w.WriteU(uint64(m.Model), 4)
		w.WriteU(uint64(m.Serial), 20)
		w.WriteAscii6(m.CallSign, 42)
		if m.IsAuxiliary {
			w.WriteU(uint64(m.MothershipMMSI), 30)
		} else {
			w.WriteU(uint64(m.ToBow), 9)
			w.WriteU(uint64(m.ToStern), 9)
			w.WriteU(uint64(m.ToPort), 6)
			w.WriteU(uint64(m.ToStarboard), 6)
		}
		w.WriteU(0, 6)
	}
}
