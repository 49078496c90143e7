package aistype

// NavigationStatus is the type 1/2/3 "status" field, per ITU-R M.1371
// Table 53.
type NavigationStatus uint8

const (
	StatusUnderWayUsingEngine  NavigationStatus = 0
	StatusAtAnchor             NavigationStatus = 1
	StatusNotUnderCommand      NavigationStatus = 2
	StatusRestrictedManoeuvre  NavigationStatus = 3
	StatusConstrainedByDraught NavigationStatus = 4
	StatusMoored               NavigationStatus = 5
	StatusAground              NavigationStatus = 6
	StatusEngagedInFishing     NavigationStatus = 7
	StatusUnderWaySailing      NavigationStatus = 8
	StatusReservedHSC          NavigationStatus = 9
	StatusReservedWIG          NavigationStatus = 10
	StatusReserved11           NavigationStatus = 11
	StatusReserved12           NavigationStatus = 12
	StatusReserved13           NavigationStatus = 13
	StatusAISSARTActive        NavigationStatus = 14
	StatusNotDefined           NavigationStatus = 15
)

func (s NavigationStatus) String() string {
	switch s {
	case StatusUnderWayUsingEngine:
		return "under way using engine"
	case StatusAtAnchor:
		return "at anchor"
	case StatusNotUnderCommand:
		return "not under command"
	case StatusRestrictedManoeuvre:
		return "restricted manoeuvrability"
	case StatusConstrainedByDraught:
		return "constrained by her draught"
	case StatusMoored:
		return "moored"
	case StatusAground:
		return "aground"
	case StatusEngagedInFishing:
		return "engaged in fishing"
	case StatusUnderWaySailing:
		return "under way sailing"
	case StatusAISSARTActive:
		return "AIS-SART is active"
	default:
		return "not defined (default)"
	}
}

// ManeuverIndicator is the type 1/2/3/9 "maneuver" field.
type ManeuverIndicator uint8

const (
	ManeuverNotAvailable ManeuverIndicator = 0
	ManeuverNoSpecial    ManeuverIndicator = 1
	ManeuverSpecial      ManeuverIndicator = 2
)

func (m ManeuverIndicator) String() string {
	switch m {
	case ManeuverNoSpecial:
		return "no special maneuver"
	case ManeuverSpecial:
		return "special maneuver"
	default:
		return "not available"
	}
}

// EpfdType is the "epfd" positioning device field (types 4/5/19/21).
type EpfdType uint8

const (
	EpfdUndefined  EpfdType = 0
	EpfdGPS        EpfdType = 1
	EpfdGLONASS    EpfdType = 2
	EpfdGPSGLONASS EpfdType = 3
	EpfdLoranC     EpfdType = 4
	EpfdChayka     EpfdType = 5
	EpfdIntegrated EpfdType = 6
	EpfdSurveyed   EpfdType = 7
	EpfdGalileo    EpfdType = 8
)

func (e EpfdType) String() string {
	switch e {
	case EpfdGPS:
		return "GPS"
	case EpfdGLONASS:
		return "GLONASS"
	case EpfdGPSGLONASS:
		return "GPS/GLONASS"
	case EpfdLoranC:
		return "Loran-C"
	case EpfdChayka:
		return "Chayka"
	case EpfdIntegrated:
		return "integrated navigation system"
	case EpfdSurveyed:
		return "surveyed"
	case EpfdGalileo:
		return "Galileo"
	default:
		return "undefined"
	}
}

// ShipType is the "shiptype"/"ship_type" field (types 5/19/24/23),
// collapsed to the decade ranges the ITU-R M.1371 ship-type table
// actually distinguishes.
type ShipType uint8

func (s ShipType) String() string {
	v := uint8(s)
	switch {
	case v == 0:
		return "not available"
	case v >= 1 && v <= 19:
		return "reserved"
	case v == 20:
		return "wing in ground (WIG)"
	case v >= 21 && v <= 29:
		return "wing in ground (WIG), reserved"
	case v == 30:
		return "fishing"
	case v == 31:
		return "towing"
	case v == 32:
		return "towing: length exceeds 200m or breadth exceeds 25m"
	case v == 33:
		return "dredging or underwater ops"
	case v == 34:
		return "diving ops"
	case v == 35:
		return "military ops"
	case v == 36:
		return "sailing"
	case v == 37:
		return "pleasure craft"
	case v >= 40 && v <= 49:
		return "high speed craft"
	case v == 50:
		return "pilot vessel"
	case v == 51:
		return "search and rescue vessel"
	case v == 52:
		return "tug"
	case v == 53:
		return "port tender"
	case v == 54:
		return "anti-pollution equipment"
	case v == 55:
		return "law enforcement"
	case v == 58:
		return "medical transport"
	case v == 59:
		return "noncombatant ship"
	case v >= 60 && v <= 69:
		return "passenger"
	case v >= 70 && v <= 79:
		return "cargo"
	case v >= 80 && v <= 89:
		return "tanker"
	case v >= 90 && v <= 99:
		return "other type"
	default:
		return "reserved"
	}
}

// NavAid is the type 21 "aid_type" field. Values follow ITU-R M.1371
// Table 17.
type NavAid uint8

const (
	NavAidDefault                         NavAid = 0
	NavAidReferencePoint                  NavAid = 1
	NavAidRACON                           NavAid = 2
	NavAidFixedStructure                  NavAid = 3
	NavAidLightWithoutSectors             NavAid = 5
	NavAidLightWithSectors                NavAid = 6
	NavAidLeadingLightFront               NavAid = 7
	NavAidLeadingLightRear                NavAid = 8
	NavAidBeaconCardinalN                 NavAid = 9
	NavAidBeaconCardinalE                 NavAid = 10
	NavAidBeaconCardinalS                 NavAid = 11
	NavAidBeaconCardinalW                 NavAid = 12
	NavAidBeaconPortHand                  NavAid = 13
	NavAidBeaconStarboardHand             NavAid = 14
	NavAidBeaconPreferredChannelPort      NavAid = 15
	NavAidBeaconPreferredChannelStarboard NavAid = 16
	NavAidBeaconIsolatedDanger            NavAid = 17
	NavAidBeaconSafeWater                 NavAid = 18
	NavAidBeaconSpecialMark               NavAid = 19
	NavAidCardinalMarkN                   NavAid = 20
	NavAidCardinalMarkE                   NavAid = 21
	NavAidCardinalMarkS                   NavAid = 22
	NavAidCardinalMarkW                   NavAid = 23
	NavAidPortHandMark                    NavAid = 24
	NavAidStarboardHandMark               NavAid = 25
	NavAidPreferredChannelPortHand        NavAid = 26
	NavAidPreferredChannelStarboardHand   NavAid = 27
	NavAidIsolatedDanger                  NavAid = 28
	NavAidSafeWater                       NavAid = 29
	NavAidSpecialMark                     NavAid = 30
	NavAidLightVessel                     NavAid = 31
)

func (n NavAid) String() string {
	if n == NavAidDefault {
		return "default, type of AtoN not specified"
	}
	if n >= 20 && n <= 31 {
		return "floating aid to navigation"
	}
	if n >= 1 && n <= 19 {
		return "fixed aid to navigation"
	}
	return "reserved"
}

// StationType is the type 23 "station_type" field. Values follow
// ITU-R M.1371 Table 75.
type StationType uint8

const (
	StationAll                  StationType = 0
	StationClassAOnly           StationType = 1
	StationClassBAISOnly        StationType = 2
	StationSAR                  StationType = 3
	StationAtoNStation          StationType = 4
	StationClassBSelfOrganizing StationType = 5
	StationClassBCS             StationType = 6
	StationInlandWaterways      StationType = 7
)

func (s StationType) String() string {
	switch s {
	case StationAll:
		return "all types of mobile stations"
	case StationClassAOnly:
		return "Class A mobile stations only"
	case StationClassBAISOnly:
		return "all types of Class B mobile stations"
	case StationSAR:
		return "SAR airborne mobile station"
	case StationAtoNStation:
		return "aid to navigation station"
	case StationClassBSelfOrganizing:
		return "Class B shipborne mobile station (SOTDMA)"
	case StationClassBCS:
		return "Class B shipborne mobile station (CS)"
	case StationInlandWaterways:
		return "inland waterways"
	default:
		return "reserved"
	}
}

// TransmitMode is the type 23 "txrx" field.
type TransmitMode uint8

const (
	TransmitTxATxBRxARxB TransmitMode = 0
	TransmitTxARxARxB    TransmitMode = 1
	TransmitTxBRxARxB    TransmitMode = 2
	TransmitReserved     TransmitMode = 3
)

func (t TransmitMode) String() string {
	switch t {
	case TransmitTxATxBRxARxB:
		return "Tx A/Tx B, Rx A/Rx B"
	case TransmitTxARxARxB:
		return "Tx A, Rx A/Rx B"
	case TransmitTxBRxARxB:
		return "Tx B, Rx A/Rx B"
	default:
		return "reserved"
	}
}

// SyncState is the 2-bit sync_state sub-field of the "radio" SOTDMA/ITDMA
// communication-state field.
type SyncState uint8

const (
	SyncUTCDirect      SyncState = 0
	SyncUTCIndirect    SyncState = 1
	SyncBaseStation    SyncState = 2
	SyncStationAligned SyncState = 3
)

func (s SyncState) String() string {
	switch s {
	case SyncUTCDirect:
		return "UTC direct"
	case SyncUTCIndirect:
		return "UTC indirect"
	case SyncBaseStation:
		return "synchronized to a base station"
	default:
		return "synchronized to another station"
	}
}
