package encode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func writeCommState19(w *bitfield.Writer, cs aistype.CommState) {
	w.WriteU(uint64(cs.SyncState), 2)
	if cs.IsItdma {
		w.WriteU(uint64(cs.SlotIncrement), 13)
		w.WriteU(uint64(cs.NumSlots), 3)
		w.WriteBool(cs.KeepFlag)
	} else {
		w.WriteU(uint64(cs.SlotTimeout), 3)
		w.WriteU(uint64(cs.SubMessage), 14)
	}
}

func writeCommState20(w *bitfield.Writer, cs aistype.CommState) {
	w.WriteBool(cs.IsItdma)
	writeCommState19(w, cs)
}
