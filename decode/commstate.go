package decode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

// decodeCommState19 decodes a fixed-mode 19-bit SOTDMA or ITDMA radio
// field (types 1, 2, 4, 11 are always SOTDMA; type 3 is always ITDMA).
func decodeCommState19(r *bitfield.Reader, itdma bool) aistype.CommState {
	cs := aistype.CommState{IsItdma: itdma}
	sync, _ := r.ReadU(2)
	cs.SyncState = aistype.SyncState(sync)
	if itdma {
		inc, _ := r.ReadU(13)
		slots, _ := r.ReadU(3)
		keep, _ := r.ReadBool()
		cs.SlotIncrement = uint16(inc)
		cs.NumSlots = uint8(slots)
		cs.KeepFlag = keep
	} else {
		timeout, _ := r.ReadU(3)
		sub, _ := r.ReadU(14)
		cs.SlotTimeout = uint8(timeout)
		cs.SubMessage = uint16(sub)
	}
	return cs
}

// decodeCommState20 decodes a 20-bit radio field (types 9 and 18),
// where the leading bit selects SOTDMA (0) or ITDMA (1) before the
// usual 19-bit layout.
func decodeCommState20(r *bitfield.Reader) aistype.CommState {
	flag, _ := r.ReadBool()
	return decodeCommState19(r, flag)
}
