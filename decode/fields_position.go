package decode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func decodeType123(r *bitfield.Reader, msgType int) *aistype.PositionReportA {
	m := &aistype.PositionReportA{Header: header(r, msgType)}
	status, _ := r.ReadU(4)
	m.Status = aistype.NavigationStatus(status)
	m.Turn = decodeRateOfTurn(r)
	m.Speed = readSpeed10(r, 10)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	m.Course = readCourse10(r, 12)
	heading, _ := r.ReadU(9)
	m.Heading = uint16(heading)
	second, _ := r.ReadU(6)
	m.Second = uint8(second)
	maneuver, _ := r.ReadU(2)
	m.Maneuver = aistype.ManeuverIndicator(maneuver)
	spare, _ := r.ReadU(3)
	m.Spare = uint8(spare)
	raim, _ := r.ReadBool()
	m.Raim = raim
	m.Radio = decodeCommState19(r, msgType == 3)
	return m
}

func decodeType4or11(r *bitfield.Reader, msgType int) *aistype.BaseStationReport {
	m := &aistype.BaseStationReport{Header: header(r, msgType)}
	year, _ := r.ReadU(14)
	month, _ := r.ReadU(4)
	day, _ := r.ReadU(5)
	hour, _ := r.ReadU(5)
	minute, _ := r.ReadU(6)
	second, _ := r.ReadU(6)
	m.Year, m.Month, m.Day = int(year), int(month), int(day)
	m.Hour, m.Minute, m.Second = int(hour), int(minute), int(second)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	epfd, _ := r.ReadU(4)
	m.Epfd = aistype.EpfdType(epfd)
	spare, _ := r.ReadU(10)
	m.Spare = uint16(spare)
	raim, _ := r.ReadBool()
	m.Raim = raim
	m.Radio = decodeCommState19(r, false)
	return m
}

func decodeType9(r *bitfield.Reader) *aistype.SARAircraftPosition {
	m := &aistype.SARAircraftPosition{Header: header(r, 9)}
	alt, _ := r.ReadU(12)
	m.Altitude = uint16(alt)
	m.Speed = readSpeed10(r, 10)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	m.Course = readCourse10(r, 12)
	second, _ := r.ReadU(6)
	m.Second = uint8(second)
	reserved, _ := r.ReadU(8)
	m.Reserved = uint8(reserved)
	dte, _ := r.ReadBool()
	m.Dte = dte
	spare, _ := r.ReadU(3)
	m.Spare = uint8(spare)
	assigned, _ := r.ReadBool()
	m.Assigned = assigned
	raim, _ := r.ReadBool()
	m.Raim = raim
	m.Radio = decodeCommState20(r)
	return m
}

func decodeType18(r *bitfield.Reader) *aistype.PositionReportB {
	m := &aistype.PositionReportB{Header: header(r, 18)}
	reserved, _ := r.ReadU(8)
	m.Reserved = uint8(reserved)
	m.Speed = readSpeed10(r, 10)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	m.Course = readCourse10(r, 12)
	heading, _ := r.ReadU(9)
	m.Heading = uint16(heading)
	second, _ := r.ReadU(6)
	m.Second = uint8(second)
	reserved2, _ := r.ReadU(2)
	m.Reserved2 = uint8(reserved2)
	cs, _ := r.ReadBool()
	m.CSUnit = cs
	display, _ := r.ReadBool()
	m.Display = display
	dsc, _ := r.ReadBool()
	m.DSC = dsc
	band, _ := r.ReadBool()
	m.Band = band
	msg22, _ := r.ReadBool()
	m.Msg22 = msg22
	assigned, _ := r.ReadBool()
	m.Assigned = assigned
	raim, _ := r.ReadBool()
	m.Raim = raim
	m.Radio = decodeCommState20(r)
	return m
}

func decodeType19(r *bitfield.Reader) *aistype.PositionReportBExtended {
	m := &aistype.PositionReportBExtended{Header: header(r, 19)}
	reserved, _ := r.ReadU(8)
	m.Reserved = uint8(reserved)
	m.Speed = readSpeed10(r, 10)
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	m.Lon = readLonLat(r, 28)
	m.Lat = readLonLat(r, 27)
	m.Course = readCourse10(r, 12)
	heading, _ := r.ReadU(9)
	m.Heading = uint16(heading)
	second, _ := r.ReadU(6)
	m.Second = uint8(second)
	regional, _ := r.ReadU(4)
	m.Regional = uint8(regional)
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
	raim, _ := r.ReadBool()
	m.Raim = raim
	dte, _ := r.ReadBool()
	m.Dte = dte
	assigned, _ := r.ReadBool()
	m.Assigned = assigned
	spare, _ := r.ReadU(4)
	m.Spare = uint8(spare)
	return m
}

func decodeType27(r *bitfield.Reader) *aistype.LongRangeBroadcast {
	m := &aistype.LongRangeBroadcast{Header: header(r, 27)}
	acc, _ := r.ReadBool()
	m.Accuracy = acc
	raim, _ := r.ReadBool()
	m.Raim = raim
	status, _ := r.ReadU(4)
	m.Status = aistype.NavigationStatus(status)
	lon, _ := r.ReadI(18)
	m.Lon = float64(lon) / 600.0
	lat, _ := r.ReadI(17)
	m.Lat = float64(lat) / 600.0
	speed, _ := r.ReadU(6)
	m.Speed = float64(speed)
	course, _ := r.ReadU(9)
	m.Course = float64(course)
	gnss, _ := r.ReadBool()
	m.GNSS = gnss
	spare, _ := r.ReadU(1)
	m.Spare = uint8(spare)
	return m
}
