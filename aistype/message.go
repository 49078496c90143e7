// Package aistype defines the tagged-variant AIS message ADT: one Go
// struct per message type (1-27, with the conditional sub-variants
// types 16/18-24/25/26 require), sharing a common Header.
package aistype

// Header is embedded in every message variant and carries the three
// fields common to all 27 AIS types.
type Header struct {
	Type   int
	Repeat uint8
	MMSI   uint32
}

// Message is implemented by every concrete message variant.
type Message interface {
	MsgType() int
	GetRepeat() uint8
	GetMMSI() uint32
}

func (h Header) MsgType() int     { return h.Type }
func (h Header) GetRepeat() uint8 { return h.Repeat }
func (h Header) GetMMSI() uint32  { return h.MMSI }

// CommState is the decoded form of the 19/20-bit "radio" SOTDMA/ITDMA
// communication-state field carried by types 1/2/3/4/9/11/18.
type CommState struct {
	SyncState     SyncState
	IsItdma       bool
	SlotTimeout   uint8  // SOTDMA only
	SubMessage    uint16 // SOTDMA only, interpreted per SlotTimeout
	KeepFlag      bool   // ITDMA only
	SlotIncrement uint16 // ITDMA only
	NumSlots      uint8  // ITDMA only
}

// RateOfTurn is the decoded form of the signed 8-bit "turn" field
// carried by types 1/2/3
type RateOfTurn struct {
	Raw              int8
	DegreesPerMinute float64
	NotAvailable     bool
	TurningRightFast bool
	TurningLeftFast  bool
}

// PositionReportA is types 1, 2, and 3 (Class A position report using
// SOTDMA or ITDMA, distinguished only by Header.Type).
type PositionReportA struct {
	Header
	Status    NavigationStatus
	Turn      RateOfTurn
	Speed     float64 // knots
	Accuracy  bool
	Lon       float64
	Lat       float64
	Course    float64 // degrees
	Heading   uint16
	Second    uint8
	Maneuver  ManeuverIndicator
	Spare     uint8
	Raim      bool
	Radio     CommState
}

// BaseStationReport is type 4 (and, via Header.Type, type 11's UTC/date response).
type BaseStationReport struct {
	Header
	Year, Month, Day     int
	Hour, Minute, Second int
	Accuracy             bool
	Lon, Lat             float64
	Epfd                 EpfdType
	Spare                uint16
	Raim                 bool
	Radio                CommState
}

// StaticVoyageData is type 5.
type StaticVoyageData struct {
	Header
	AisVersion  uint8
	IMO         uint32
	CallSign    string
	ShipName    string
	ShipType    ShipType
	ToBow       uint16
	ToStern     uint16
	ToPort      uint16
	ToStarboard uint16
	Epfd        EpfdType
	Month, Day  int
	Hour, Minute int
	Draught     float64
	Destination string
	Dte         bool
	Spare       uint8
}

// BinaryAddressed is type 6.
type BinaryAddressed struct {
	Header
	SeqNo      uint8
	DestMMSI   uint32
	Retransmit bool
	Spare      uint8
	DAC        uint16
	FID        uint8
	Data       []byte
}

// BinaryAcknowledge is type 7 (and, via Header.Type, type 13).
type BinaryAcknowledge struct {
	Header
	Spare    uint8
	MMSI1    uint32
	MMSISeq1 uint8
	MMSI2    uint32
	MMSISeq2 uint8
	MMSI3    uint32
	MMSISeq3 uint8
	MMSI4    uint32
	MMSISeq4 uint8
}

// BinaryBroadcast is type 8.
type BinaryBroadcast struct {
	Header
	Spare uint8
	DAC   uint16
	FID   uint8
	Data  []byte
}

// SARAircraftPosition is type 9.
type SARAircraftPosition struct {
	Header
	Altitude uint16
	Speed    float64
	Accuracy bool
	Lon, Lat float64
	Course   float64
	Second   uint8
	Reserved uint8
	Dte      bool
	Spare    uint8
	Assigned bool
	Raim     bool
	Radio    CommState
}

// UTCDateInquiry is type 10.
type UTCDateInquiry struct {
	Header
	Spare1   uint8
	DestMMSI uint32
	Spare2   uint8
}

// SafetyRelatedMessage is type 12 (addressed) or 14 (broadcast, no DestMMSI).
type SafetyRelatedMessage struct {
	Header
	SeqNo      uint8
	DestMMSI   uint32
	Retransmit bool
	Spare      uint8
	Text       string
}

// Interrogation is type 15.
type Interrogation struct {
	Header
	Spare1            uint8
	MMSI1             uint32
	Type1_1           uint8
	Offset1_1         uint16
	Spare2            uint8
	Type1_2           uint8
	Offset1_2         uint16
	Spare3            uint8
	MMSI2             uint32
	Type2_1           uint8
	Offset2_1         uint16
	Spare4            uint8
}

// AssignedSlot is one (mmsi, offset, increment) triple in an
// AssignmentModeCommand.
type AssignedSlot struct {
	MMSI      uint32
	Offset    uint16
	Increment uint16
}

// AssignmentModeCommand is type 16. Slots has length 1 or 2: a 96-bit
// payload carries only the first triple, a 144-bit payload carries both.
type AssignmentModeCommand struct {
	Header
	Spare uint8
	Slots []AssignedSlot
}

// DGNSSBroadcast is type 17.
type DGNSSBroadcast struct {
	Header
	Spare1   uint8
	Lon, Lat float64
	Spare2   uint8
	Data     []byte
}

// PositionReportB is type 18 (Standard Class B CS position report).
type PositionReportB struct {
	Header
	Reserved  uint8
	Speed     float64
	Accuracy  bool
	Lon, Lat  float64
	Course    float64
	Heading   uint16
	Second    uint8
	Reserved2 uint8
	CSUnit    bool
	Display   bool
	DSC       bool
	Band      bool
	Msg22     bool
	Assigned  bool
	Raim      bool
	Radio     CommState
}

// PositionReportBExtended is type 19 (Extended Class B CS position report).
type PositionReportBExtended struct {
	Header
	Reserved    uint8
	Speed       float64
	Accuracy    bool
	Lon, Lat    float64
	Course      float64
	Heading     uint16
	Second      uint8
	Regional    uint8
	ShipName    string
	ShipType    ShipType
	ToBow       uint16
	ToStern     uint16
	ToPort      uint16
	ToStarboard uint16
	Epfd        EpfdType
	Raim        bool
	Dte         bool
	Assigned    bool
	Spare       uint8
}

// DataLinkSlot is one (offset, number, timeout, increment) group in a
// DataLinkManagement message.
type DataLinkSlot struct {
	Offset    uint16
	Number    uint8
	Timeout   uint8
	Increment uint16
}

// DataLinkManagement is type 20.
type DataLinkManagement struct {
	Header
	Spare uint8
	Slots [4]DataLinkSlot
}

// AidToNavigationReport is type 21.
type AidToNavigationReport struct {
	Header
	AidType     NavAid
	ShipName    string
	Accuracy    bool
	Lon, Lat    float64
	ToBow       uint16
	ToStern     uint16
	ToPort      uint16
	ToStarboard uint16
	Epfd        EpfdType
	Second      uint8
	OffPosition bool
	Regional    uint8
	Raim        bool
	VirtualAid  bool
	Assigned    bool
	Spare       uint8
	NameExt     string
}

// ChannelManagement is type 22. Addressed selects which of the two
// mutually exclusive sub-layouts (destination MMSIs vs. a jurisdiction
// rectangle) applies
type ChannelManagement struct {
	Header
	Spare1    uint8
	ChannelA  uint16
	ChannelB  uint16
	TxRx      uint8
	Power     bool
	Addressed bool

	// Valid when Addressed is true.
	Dest1 uint32
	Dest2 uint32

	// Valid when Addressed is false.
	NELon, NELat float64
	SWLon, SWLat float64

	BandA    bool
	BandB    bool
	ZoneSize uint8
	Spare2   uint32
}

// GroupAssignmentCommand is type 23.
type GroupAssignmentCommand struct {
	Header
	Spare1       uint8
	NELon, NELat float64
	SWLon, SWLat float64
	StationType  StationType
	ShipType     ShipType
	Spare2       uint32
	TxRx         TransmitMode
	Interval     uint8
	Quiet        uint8
	Spare3       uint8
}

// StaticDataReport is type 24. PartNo selects which fields are
// populated; for Part B on an auxiliary craft (MMSI beginning with 98)
// MothershipMMSI is populated instead of the four dimension fields.
type StaticDataReport struct {
	Header
	PartNo uint8

	// Part A (PartNo == 0)
	ShipName string

	// Part B (PartNo == 1)
	ShipType       ShipType
	VendorID       string
	Model          uint8
	Serial         uint32
	CallSign       string
	ToBow          uint16
	ToStern        uint16
	ToPort         uint16
	ToStarboard    uint16
	IsAuxiliary    bool
	MothershipMMSI uint32
}

// BinarySingleSlotMessage is type 25. Addressed and Structured select
// among the four sub-layouts
type BinarySingleSlotMessage struct {
	Header
	Addressed  bool
	Structured bool
	DestMMSI   uint32
	AppID      uint16
	Data       []byte
}

// BinaryMultiSlotMessage is type 26, identical discriminants to 25 plus
// a trailing 20-bit radio field.
type BinaryMultiSlotMessage struct {
	Header
	Addressed  bool
	Structured bool
	DestMMSI   uint32
	AppID      uint16
	Data       []byte
	Radio      uint32
}

// LongRangeBroadcast is type 27.
type LongRangeBroadcast struct {
	Header
	Accuracy bool
	Raim     bool
	Status   NavigationStatus
	Lon, Lat float64
	Speed    float64
	Course   float64
	GNSS     bool
	Spare    uint8
}
