package encode

import (
	"aisdeck/aistype"
	"aisdeck/bitfield"
)

func writeType123(w *bitfield.Writer, m *aistype.PositionReportA) {
	w.WriteU(uint64(m.Status), 4)
	w.WriteI(int64(m.Turn.Raw), 8)
	writeSpeed10(w, m.Speed, 10)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	writeCourse10(w, m.Course, 12)
	w.WriteU(uint64(m.Heading), 9)
	w.WriteU(uint64(m.Second), 6)
	w.WriteU(uint64(m.Maneuver), 2)
	w.WriteU(uint64(m.Spare), 3)
	w.WriteBool(m.Raim)
	writeCommState19(w, m.Radio)
}

func writeType4or11(w *bitfield.Writer, m *aistype.BaseStationReport) {
	w.WriteU(uint64(m.Year), 14)
	w.WriteU(uint64(m.Month), 4)
	w.WriteU(uint64(m.Day), 5)
	w.WriteU(uint64(m.Hour), 5)
	w.WriteU(uint64(m.Minute), 6)
	w.WriteU(uint64(m.Second), 6)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	w.WriteU(uint64(m.Epfd), 4)
	w.WriteU(uint64(m.Spare), 10)
	w.WriteBool(m.Raim)
	writeCommState19(w, m.Radio)
}

func writeType9(w *bitfield.Writer, m *aistype.SARAircraftPosition) {
	w.WriteU(uint64(m.Altitude), 12)
	writeSpeed10(w, m.Speed, 10)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	writeCourse10(w, m.Course, 12)
	w.WriteU(uint64(m.Second), 6)
	w.WriteU(uint64(m.Reserved), 8)
	w.WriteBool(m.Dte)
	w.WriteU(uint64(m.Spare), 3)
	w.WriteBool(m.Assigned)
	w.WriteBool(m.Raim)
	writeCommState20(w, m.Radio)
}

func writeType18(w *bitfield.Writer, m *aistype.PositionReportB) {
	w.WriteU(uint64(m.Reserved), 8)
	writeSpeed10(w, m.Speed, 10)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	writeCourse10(w, m.Course, 12)
	w.WriteU(uint64(m.Heading), 9)
	w.WriteU(uint64(m.Second), 6)
	w.WriteU(uint64(m.Reserved2), 2)
	w.WriteBool(m.CSUnit)
	w.WriteBool(m.Display)
	w.WriteBool(m.DSC)
	w.WriteBool(m.Band)
	w.WriteBool(m.Msg22)
	w.WriteBool(m.Assigned)
	w.WriteBool(m.Raim)
	writeCommState20(w, m.Radio)
}

func writeType19(w *bitfield.Writer, m *aistype.PositionReportBExtended) {
	w.WriteU(uint64(m.Reserved), 8)
	writeSpeed10(w, m.Speed, 10)
	w.WriteBool(m.Accuracy)
	writeLonLat(w, m.Lon, 28)
	writeLonLat(w, m.Lat, 27)
	writeCourse10(w, m.Course, 12)
	w.WriteU(uint64(m.Heading), 9)
	w.WriteU(uint64(m.Second), 6)
	w.WriteU(uint64(m.Regional), 4)
	w.WriteAscii6(m.ShipName, 120)
	w.WriteU(uint64(m.ShipType), 8)
	w.WriteU(uint64(m.ToBow), 9)
	w.WriteU(uint64(m.ToStern), 9)
	w.WriteU(uint64(m.ToPort), 6)
	w.WriteU(uint64(m.ToStarboard), 6)
	w.WriteU(uint64(m.Epfd), 4)
	w.WriteBool(m.Raim)
	w.WriteBool(m.Dte)
	w.WriteBool(m.Assigned)
	w.WriteU(uint64(m.Spare), 4)
}

func writeType27(w *bitfield.Writer, m *aistype.LongRangeBroadcast) {
	w.WriteBool(m.Accuracy)
	w.WriteBool(m.Raim)
	w.WriteU(uint64(m.Status), 4)
	w.WriteI(int64(m.Lon*600.0), 18)
	w.WriteI(int64(m.Lat*600.0), 17)
	w.WriteU(uint64(m.Speed), 6)
	w.WriteU(uint64(m.Course), 9)
	w.WriteBool(m.GNSS)
	w.WriteU(uint64(m.Spare), 1)
}

func writeLonLat(w *bitfield.Writer, v float64, n int) {
	w.WriteI(int64(v*600000.0), n)
}

func writeSpeed10(w *bitfield.Writer, v float64, n int) {
	w.WriteU(uint64(v*10.0), n)
}

func writeCourse10(w *bitfield.Writer, v float64, n int) {
	w.WriteU(uint64(v*10.0), n)
}

func writeDraught(w *bitfield.Writer, v float64) {
	w.WriteU(uint64(v*10.0), 8)
}
