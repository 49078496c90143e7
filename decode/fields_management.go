package decode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func decodeType20(r *bitfield.Reader) *aistype.DataLinkManagement {
	m := &aistype.DataLinkManagement{Header: header(r, 20)}
	spare, _ := r.ReadU(2)
	m.Spare = uint8(spare)
	for i := 0; i < 4; i++ {
		offset, _ := r.ReadU(12)
		number, _ := r.ReadU(4)
		timeout, _ := r.ReadU(3)
		increment, _ := r.ReadU(11)
		m.Slots[i] = aistype.DataLinkSlot{
			Offset:    uint16(offset),
			Number:    uint8(number),
			Timeout:   uint8(timeout),
			Increment: uint16(increment),
		}
	}
	return m
}

func decodeType21(r *bitfield.Reader) *aistype.AidToNavigationReport {
	m := &aistype.AidToNavigationReport{Header: header(r, 21)}
	aidType, _ := r.ReadU(5)
	m.AidType = aistype.NavAid(aidType)
	m.ShipName = readString(r, 120)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	toBow, _ := r.ReadU(9)
	toStern, _ := r.ReadU(9)
	toPort, _ := r.ReadU(6)
	toStarboard, _ := r.ReadU(6)
	m.ToBow, m.ToStern, m.ToPort, m.ToStarboard = uint16(toBow), uint16(toStern), uint16(toPort), uint16(toStarboard)
	epfd, _ := r.ReadU(4)
	m.Epfd = aistype.EpfdType(epfd)
	second, _ := r.ReadU(6)
	m.Second = uint8(second)
	offPosition, _ := r.ReadBool()
	m.OffPosition = offPosition
	regional, _ := r.ReadU(8)
	m.Regional = uint8(regional)
	raim, _ := r.ReadBool()
	m.Raim = raim
	virtual, _ := r.ReadBool()
	m.VirtualAid = virtual
	assigned, _ := r.ReadBool()
	m.Assigned = assigned
	spare, _ := r.ReadU(1)
	m.Spare = uint8(spare)
	m.NameExt = readString(r, 88)
	return m
}

// decodeType22 selects between the addressed (two destination MMSIs)
// and broadcast (jurisdiction rectangle) sub-layouts
// The Addressed discriminant bit is transmitted after the 70-bit
// mutually exclusive block rather than before it, so the raw bits are
// captured first and interpreted once the discriminant is known.
func decodeType22(r *bitfield.Reader) *aistype.ChannelManagement {
	m := &aistype.ChannelManagement{Header: header(r, 22)}
	spare1, _ := r.ReadU(2)
	m.Spare1 = uint8(spare1)
	channelA, _ := r.ReadU(12)
	m.ChannelA = uint16(channelA)
	channelB, _ := r.ReadU(12)
	m.ChannelB = uint16(channelB)
	txrx, _ := r.ReadU(4)
	m.TxRx = uint8(txrx)
	power, _ := r.ReadBool()
	m.Power = power

	blockA, _ := r.ReadU(35)
	blockB, _ := r.ReadU(35)

	addressed, _ := r.ReadBool()
	m.Addressed = addressed

	if addressed {
		m.Dest1 = uint32(blockA >> 5)
		m.Dest2 = uint32(blockB >> 5)
	} else {
		m.NELon = signExtend(blockA>>17, 18) / 10.0
		m.NELat = signExtend(blockA&0x1FFFF, 17) / 10.0
		m.SWLon = signExtend(blockB>>17, 18) / 10.0
		m.SWLat = signExtend(blockB&0x1FFFF, 17) / 10.0
	}

	bandA, _ := r.ReadBool()
	m.BandA = bandA
	bandB, _ := r.ReadBool()
	m.BandB = bandB
	zone, _ := r.ReadU(3)
	m.ZoneSize = uint8(zone)
	spare2, _ := r.ReadU(23)
	m.Spare2 = uint32(spare2)
	return m
}

// signExtend interprets the low n bits of v as a two's-complement
// signed integer.
func signExtend(v uint64, n int) float64 {
	mask := uint64(1) << (n - 1)
	v &= (uint64(1) << n) - 1
	if v&mask != 0 {
		return float64(int64(v) - int64(1<<n))
	}
	return float64(v)
}

func decodeType23(r *bitfield.Reader) *aistype.GroupAssignmentCommand {
	m := &aistype.GroupAssignmentCommand{Header: header(r, 23)}
	spare1, _ := r.ReadU(2)
	m.Spare1 = uint8(spare1)
	m.NELon = readLonLat10(r, 18)
	m.NELat = readLonLat10(r, 17)
	m.SWLon = readLonLat10(r, 18)
	m.SWLat = readLonLat10(r, 17)
	stationType, _ := r.ReadU(4)
	m.StationType = aistype.StationType(stationType)
	shipType, _ := r.ReadU(8)
	m.ShipType = aistype.ShipType(shipType)
	spare2, _ := r.ReadU(22)
	m.Spare2 = uint32(spare2)
	txrx, _ := r.ReadU(2)
	m.TxRx = aistype.TransmitMode(txrx)
	interval, _ := r.ReadU(4)
	m.Interval = uint8(interval)
	quiet, _ := r.ReadU(4)
	m.Quiet = uint8(quiet)
	spare3, _ := r.ReadU(6)
	m.Spare3 = uint8(spare3)
	return m
}
