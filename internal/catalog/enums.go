package catalog

import (
	"fmt"
	"sort"
)

// Enum maps the int32 values of one enumeration to their names.
type Enum struct {
	name   string
	names  map[int32]string
	values map[string]int32
}

func newEnum(name string, names map[int32]string) *Enum {
	e := &Enum{name: name, names: names, values: make(map[string]int32, len(names))}
	for v, n := range names {
		e.values[n] = v
	}
	return e
}

// Name returns the enumeration name.
func (e *Enum) Name() string { return e.name }

// Label returns the member name of v, or its number when v is not a member.
func (e *Enum) Label(v int32) string {
	if n, ok := e.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", e.name, v)
}

// Has reports whether v is a member.
func (e *Enum) Has(v int32) bool {
	_, ok := e.names[v]
	return ok
}

// Parse resolves a member name.
func (e *Enum) Parse(name string) (int32, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Values lists the members in ascending order.
func (e *Enum) Values() []int32 {
	out := make([]int32, 0, len(e.names))
	for v := range e.names {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NavigationStatus is the AIS navigational status of a vessel.
type NavigationStatus int32

const (
	NavigationStatusUnderWayUsingEngine NavigationStatus = iota
	NavigationStatusAtAnchor
	NavigationStatusNotUnderCommand
	NavigationStatusRestrictedManeuverability
	NavigationStatusConstrainedByHerDraught
	NavigationStatusMoored
	NavigationStatusAground
	NavigationStatusEngagedInFishing
	NavigationStatusUnderWaySailing
	NavigationStatusNotDefined NavigationStatus = 15
)

type PositionAccuracy int32

const (
	PositionAccuracyLow PositionAccuracy = iota
	PositionAccuracyHigh
)

type Raim int32

const (
	RaimNotInUse Raim = iota
	RaimInUse
)

type ManeuverIndicator int32

const (
	ManeuverIndicatorNotAvailable ManeuverIndicator = iota
	ManeuverIndicatorNoSpecialManeuver
	ManeuverIndicatorSpecialManeuver
)

// TrackFlags marks which members of a track value carry data.
type TrackFlags int32

const (
	TrackFlagsNone     TrackFlags = 0
	TrackFlagsStatus   TrackFlags = 1
	TrackFlagsPosition TrackFlags = 2
	TrackFlagsSpeed    TrackFlags = 4
	TrackFlagsCourse   TrackFlags = 8
	TrackFlagsHeading  TrackFlags = 16
)

type TrackStatus int32

const (
	TrackStatusUnknown TrackStatus = iota
	TrackStatusNew
	TrackStatusTracked
	TrackStatusNoPositionUpdate
	TrackStatusLost
	TrackStatusKilled
)

type RadarImageType int32

const (
	RadarImageTypeMaskedProcessed RadarImageType = iota
	RadarImageTypeFullRaw
	RadarImageTypeMaskedRaw
	RadarImageTypeVideoMask
	RadarImageTypeTrackMask
	RadarImageTypeSpillRaw
	RadarImageTypeSpillProcessed
	RadarImageTypeRawUnscanConverted
	RadarImageTypeNoTrackInitMask
)

var enums = map[string]*Enum{}

func defineEnum(name string, names map[int32]string) {
	enums[name] = newEnum(name, names)
}

// LookupEnum returns the enumeration a FieldEnum field refers to.
func LookupEnum(name string) (*Enum, bool) {
	e, ok := enums[name]
	return e, ok
}

// EnumNames lists every enumeration in the catalog.
func EnumNames() []string {
	out := make([]string, 0, len(enums))
	for n := range enums {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func init() {
	defineEnum("NavigationStatus", map[int32]string{
		0: "UnderWayUsingEngine", 1: "AtAnchor", 2: "NotUnderCommand", 3: "RestrictedManeuverability",
		4: "ConstrainedByHerDraught", 5: "Moored", 6: "Aground", 7: "EngagedInFishing", 8: "UnderWaySailing",
		9: "ReservedForFutureAmendmentOfNavigationalStatusForHsc", 10: "ReservedForFutureAmendmentOfNavigationalStatusForWig",
		11: "ReservedForFutureUse1", 12: "ReservedForFutureUse2", 13: "ReservedForFutureUse3",
		14: "AisSartIsActive", 15: "NotDefined",
	})
	defineEnum("PositionAccuracy", map[int32]string{0: "Low", 1: "High"})
	defineEnum("Raim", map[int32]string{0: "NotInUse", 1: "InUse"})
	defineEnum("ManeuverIndicator", map[int32]string{0: "NotAvailable", 1: "NoSpecialManeuver", 2: "SpecialManeuver"})
	defineEnum("PositionFixType", map[int32]string{
		0: "Undefined1", 1: "Gps", 2: "Glonass", 3: "CombinedGpsAndGlonass", 4: "LoranC", 5: "Chayka",
		6: "IntegratedNavigationSystem", 7: "Surveyed", 8: "Galileo", 15: "Undefined2",
	})
	defineEnum("ShipType", shipTypes())
	defineEnum("TrackFlags", map[int32]string{0: "None", 1: "Status", 2: "Position", 4: "Speed", 8: "Course", 16: "Heading"})
	defineEnum("TrackFlags3D", map[int32]string{0: "None", 1: "Status", 2: "Position", 4: "Speed", 8: "Course", 16: "RateOfClimb"})
	defineEnum("TrackStatus", map[int32]string{
		0: "Unknown", 1: "New", 2: "Tracked", 3: "NoPositionUpdate", 4: "Lost", 5: "Killed", 6: "DIW",
		7: "UnderWayUsingEngine", 8: "AtAnchor", 9: "NotUnderCommand", 10: "RestrictedManeuverability",
		11: "ConstrainedByDraught", 12: "Moored", 13: "Aground", 14: "EngagedInFishing", 15: "UnderWaySailing",
		16: "ReservedForFutureAmendmentOfNavigationalStatusForHSC", 17: "ReservedForFutureAmendmentOfNavigationalStatusForWIG",
		18: "ReservedForFutureUse1", 19: "ReservedForFutureUse2", 20: "ReservedForFutureUse3", 21: "ReservedForFutureUse",
		22: "AisSartIsActive", 23: "NotDefined",
	})
	defineEnum("RadarImageType", map[int32]string{
		0: "MaskedProcessed", 1: "FullRaw", 2: "MaskedRaw", 3: "VideoMask", 4: "TrackMask",
		5: "SpillRaw", 6: "SpillProcessed", 7: "RawUnscanConverted", 8: "NoTrackInitMask",
	})
	defineEnum("ZoneAlarmType", map[int32]string{0: "None", 1: "Intrusion", 2: "Speed", 3: "Entered", 4: "Exited"})
	defineEnum("AlarmState", map[int32]string{
		0: "Unknown", 1: "Entering", 2: "Raised", 3: "Identified", 4: "Acknowledged", 5: "Leaving", 6: "Cleared", 7: "AutoCleared",
	})
}

// shipTypes follows the ITU-R M.1371 type codes. The 40s and 60s through 90s
// share one layout: base, hazardous categories A-D, four reserved codes and
// a no-additional-information code.
func shipTypes() map[int32]string {
	m := map[int32]string{
		0: "NotAvailable", 20: "WingInGround",
		21: "WingInGroundHazardousCategoryA", 22: "WingInGroundHazardousCategoryB",
		23: "WingInGroundHazardousCategoryC", 24: "WingInGroundHazardousCategoryD",
		25: "WingInGroundReserved1", 26: "WingInGroundReserved2", 27: "WingInGroundReserved3",
		28: "WingInGroundReserved4", 29: "WingInGroundReserved5",
		30: "Fishing", 31: "Towing", 32: "TowingLarge", 33: "DredgingOrUnderwaterOps", 34: "DivingOps",
		35: "MilitaryOps", 36: "Sailing", 37: "PleasureCraft", 38: "Reserved1", 39: "Reserved2",
		50: "PilotVessel", 51: "SearchAndRescueVessel", 52: "Tug", 53: "PortTender", 54: "AntiPollutionEquipment",
		55: "LawEnforcement", 56: "SpareLocalVessel1", 57: "SpareLocalVessel2", 58: "MedicalTransport",
		59: "NonCombatantShip",
	}
	for base, name := range map[int32]string{40: "HighSpeedCraft", 60: "Passenger", 70: "Cargo", 80: "Tanker", 90: "OtherType"} {
		m[base] = name
		for i, c := range []string{"A", "B", "C", "D"} {
			m[base+1+int32(i)] = name + "HazardousCategory" + c
		}
		for i := range int32(4) {
			m[base+5+i] = fmt.Sprintf("%sReserved%d", name, i+1)
		}
		m[base+9] = name + "NoAdditionalInformation"
	}
	return m
}
