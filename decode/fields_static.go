package decode

import (
	"fmt"

	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func decodeType5(r *bitfield.Reader) *aistype.StaticVoyageData {
	m := &aistype.StaticVoyageData{Header: header(r, 5)}
	ver, _ := r.ReadU(2)
	m.AisVersion = uint8(ver)
	imo, _ := r.ReadU(30)
	m.IMO = uint32(imo)
	m.CallSign = readString(r, 42)
	m.ShipName = readString(r, 120)
	shiptype, _ := r.ReadU(8)
	m.ShipType = aistype.ShipType(shiptype)
	toBow, _ := r.ReadU(9)
	toStern, _ := r.ReadU(9)
	toPort, _ := r.ReadU(6)
	toStarboard, _ := r.ReadU(6)
	m.ToBow, m.ToStern, m.ToPort, m.ToStarboard = uint16(toBow), uint16(toStern), uint16(toPort), uint16(toStarboard)
	epfd, _ := r.ReadU(4)
	m.Epfd = aistype.EpfdType(epfd)
	month, _ := r.ReadU(4)
	day, _ := r.ReadU(5)
	hour, _ := r.ReadU(5)
	minute, _ := r.ReadU(6)
	m.Month, m.Day, m.Hour, m.Minute = int(month), int(day), int(hour), int(minute)
	m.Draught = readDraught(r)
	m.Destination = readString(r, 120)
	dte, _ := r.ReadBool()
	m.Dte = dte
	spare, _ := r.ReadU(1)
	m.Spare = uint8(spare)
	return m
}

// decodeType24 handles both Part A and Part B, including the auxiliary
// craft mothership-MMSI sub-layout of Part B
func decodeType24(r *bitfield.Reader) *aistype.StaticDataReport {
	m := &aistype.StaticDataReport{Header: header(r, 24)}
	partNo, _ := r.ReadU(2)
	m.PartNo = uint8(partNo)

	mmsiStr := fmt.Sprintf("%09d", m.MMSI)

	switch m.PartNo {
	case 0:
		m.ShipName = readString(r, 120)
		r.ReadU(8) // spare
	case 1:
		shiptype, _ := r.ReadU(8)
		m.ShipType = aistype.ShipType(shiptype)
		m.VendorID = readString(r, 18)
		model, _ := r.ReadU(4)
		m.Model = uint8(model)
		serial, _ := r.ReadU(20)
		m.Serial = uint32(serial)
		m.CallSign = readString(r, 42)

		if len(mmsiStr) >= 2 && mmsiStr[:2] == "98" {
			m.IsAuxiliary = true
			mothership, _ := r.ReadU(30)
			m.MothershipMMSI = uint32(mothership)
		} else {
			toBow, _ := r.ReadU(9)
			toStern, _ := r.ReadU(9)
			toPort, _ := r.ReadU(6)
			toStarboard, _ := r.ReadU(6)
			m.ToBow, m.ToStern, m.ToPort, m.ToStarboard = uint16(toBow), uint16(toStern), uint16(toPort), uint16(toStarboard)
		}
		r.ReadU(6) // spare
	}
	return m
}
