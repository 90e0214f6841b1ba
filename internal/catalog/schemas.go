package catalog

import (
	"sync"

	"barrelman/pkg/domain"
)

func field(name string, t domain.FieldType) domain.Field { return domain.Field{Name: name, Type: t} }

func opt(name string, t domain.FieldType) domain.Field {
	return domain.Field{Name: name, Type: t, Nullable: true}
}

func enum(name, enumName string) domain.Field {
	return domain.Field{Name: name, Type: domain.FieldEnum, Enum: enumName}
}

var (
	aisMessageFields = []domain.Field{
		field("AisDevice", domain.FieldGUID),
		field("ReceivedTimestamp", domain.FieldTime),
		field("MessageSequenceNumber", domain.FieldInt64),
		field("Repeat", domain.FieldInt32),
		opt("Mmsi", domain.FieldGUID),
	}
	classAPositionFields = []domain.Field{
		enum("NavigationStatus", "NavigationStatus"),
		opt("RateOfTurn", domain.FieldInt32),
		field("SpeedOverGround", domain.FieldFloat64),
		enum("PositionAccuracy", "PositionAccuracy"),
		field("Longitude", domain.FieldFloat64),
		field("Latitude", domain.FieldFloat64),
		field("CourseOverGround", domain.FieldFloat64),
		opt("TrueHeading", domain.FieldInt32),
		field("Timestamp", domain.FieldInt32),
		enum("ManeuverIndicator", "ManeuverIndicator"),
		field("Spare", domain.FieldInt32),
		enum("Raim", "Raim"),
		field("RadioStatus", domain.FieldInt32),
	}
	baseStationReportFields = []domain.Field{
		field("Timestamp", domain.FieldTime),
		enum("PositionAccuracy", "PositionAccuracy"),
		field("Longitude", domain.FieldFloat64),
		field("Latitude", domain.FieldFloat64),
		enum("PositionFixType", "PositionFixType"),
		field("Spare", domain.FieldInt32),
		enum("Raim", "Raim"),
		field("RadioStatus", domain.FieldInt32),
	}
	staticAndVoyageFields = []domain.Field{
		field("AisVersion", domain.FieldInt32),
		opt("ImoNumber", domain.FieldGUID),
		opt("Callsign", domain.FieldGUID),
		opt("ShipName", domain.FieldGUID),
		enum("ShipType", "ShipType"),
		field("DimensionToBow", domain.FieldInt32),
		field("DimensionToStern", domain.FieldInt32),
		field("DimensionToPort", domain.FieldInt32),
		field("DimensionToStarboard", domain.FieldInt32),
		enum("PositionFixType", "PositionFixType"),
		opt("EstimatedTimeOfArrival", domain.FieldTime),
		field("Draught", domain.FieldFloat64),
		field("Destination", domain.FieldString),
		field("DataTerminalReady", domain.FieldBool),
		field("Spare", domain.FieldInt32),
	}
	staticDataPartAFields = []domain.Field{
		{Name: "PartNumber", Type: domain.FieldInt32, Default: 0},
		opt("ShipName", domain.FieldGUID),
		field("Spare", domain.FieldInt32),
	}
	staticDataPartBFields = []domain.Field{
		{Name: "PartNumber", Type: domain.FieldInt32, Default: 1},
		enum("ShipType", "ShipType"),
		field("VendorId", domain.FieldString),
		field("UnitModelCode", domain.FieldInt32),
		field("SerialNumber", domain.FieldInt32),
		opt("Callsign", domain.FieldGUID),
		field("DimensionToBow", domain.FieldInt32),
		field("DimensionToStern", domain.FieldInt32),
		field("DimensionToPort", domain.FieldInt32),
		field("DimensionToStarboard", domain.FieldInt32),
		opt("MothershipMmsi", domain.FieldGUID),
		enum("PositionFixType", "PositionFixType"),
		field("Spare", domain.FieldInt32),
	}
	trackBaseFields = []domain.Field{
		field("Tracker", domain.FieldGUID),
		field("TrackNumber", domain.FieldInt64),
		field("Timestamp", domain.FieldTime),
	}
	trackValueFields = []domain.Field{
		field("Track", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		enum("Flags", "TrackFlags"),
		enum("Status", "TrackStatus"),
		field("Latitude", domain.FieldFloat64),
		field("Longitude", domain.FieldFloat64),
		field("Speed", domain.FieldFloat64),
		field("Course", domain.FieldFloat64),
		field("Heading", domain.FieldFloat64),
	}
	trackValue3DFields = []domain.Field{
		field("Track", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		enum("Flags", "TrackFlags3D"),
		enum("Status", "TrackStatus"),
		field("Latitude", domain.FieldFloat64),
		field("Longitude", domain.FieldFloat64),
		field("Altitude", domain.FieldFloat64),
		field("Speed", domain.FieldFloat64),
		field("Course", domain.FieldFloat64),
		field("RateOfClimb", domain.FieldFloat64),
	}
	radarConfigurationFields = []domain.Field{
		field("Radar", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		field("RadarProtocolVersion", domain.FieldInt32),
		field("RadarIPAddress", domain.FieldString),
		field("RadarPort", domain.FieldInt32),
		field("RadarConfigurationPort", domain.FieldInt32),
		field("SkipMagicTimeout", domain.FieldDuration),
		field("ReadTimeout", domain.FieldDuration),
		field("SynchronizationInterval", domain.FieldDuration),
		field("TargetsRefreshRate", domain.FieldInt32),
		field("Range", domain.FieldInt32),
		field("SectorCount", domain.FieldInt32),
		field("SectorOffset", domain.FieldInt32),
		field("ImageColor", domain.FieldUInt32),
		opt("ImageSubstitutionColor", domain.FieldUInt32),
		field("TransparentColor", domain.FieldUInt32),
		field("ImageScaleFactorX", domain.FieldFloat64),
		field("ImageOffsetX", domain.FieldFloat64),
		field("ImageScaleFactorY", domain.FieldFloat64),
		field("ImageOffsetY", domain.FieldFloat64),
		{Name: "RadarImageType", Type: domain.FieldEnum, Enum: "RadarImageType", Default: RadarImageTypeMaskedProcessed},
		field("TrackColor", domain.FieldUInt32),
		field("VectorColor", domain.FieldUInt32),
		field("EnableNmea", domain.FieldBool),
		field("NmeaReceiverIPAddress", domain.FieldString),
		field("NmeaReceiverPort", domain.FieldInt32),
		field("NmeaReceiverSourceId", domain.FieldString),
	}
	zoneFields = []domain.Field{
		field("Name", domain.FieldString),
		field("Longitude", domain.FieldFloat64),
		field("Latitude", domain.FieldFloat64),
		enum("AlarmType", "ZoneAlarmType"),
		field("AlarmTime", domain.FieldDuration),
		field("RadarTrackMinimumLifetime", domain.FieldDuration),
		field("Speed", domain.FieldFloat64),
		field("StrokeColor", domain.FieldUInt32),
		field("FillColor", domain.FieldUInt32),
	}
	zoneTrackAlarmFields = []domain.Field{
		field("Track", domain.FieldGUID),
		field("Zone", domain.FieldGUID),
		opt("RadarTrack", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		field("Latitude", domain.FieldFloat64),
		field("Longitude", domain.FieldFloat64),
		field("Speed", domain.FieldFloat64),
		opt("Course", domain.FieldFloat64),
		opt("Heading", domain.FieldFloat64),
		field("EnterLatitude", domain.FieldFloat64),
		field("EnterLongitude", domain.FieldFloat64),
		opt("LeaveLatitude", domain.FieldFloat64),
		opt("LeaveLongitude", domain.FieldFloat64),
	}
)

// own holds the fields a kind adds on top of its parent's table.
var own = map[domain.Kind][]domain.Field{
	domain.KindAisMessage:                           aisMessageFields,
	domain.KindAisPositionReportClassAMessageBase:   classAPositionFields,
	domain.KindAisBaseStationReportMessage:          baseStationReportFields,
	domain.KindAisStaticAndVoyageRelatedDataMessage: staticAndVoyageFields,
	domain.KindAisStaticDataReportMessage:           {field("PartNumber", domain.FieldInt32)},
	domain.KindAisStaticDataReportPartAMessage:      staticDataPartAFields,
	domain.KindAisStaticDataReportPartBMessage:      staticDataPartBFields,

	domain.KindTrackBase:    trackBaseFields,
	domain.KindTrackValue:   trackValueFields,
	domain.KindTrackValue3D: trackValue3DFields,

	domain.KindRadarConfiguration: radarConfigurationFields,

	domain.KindZone:           zoneFields,
	domain.KindCircularZone:   {field("Radius", domain.FieldFloat64)},
	domain.KindPolygonZone:    {field("Polygon", domain.FieldBinary)},
	domain.KindZoneTrackAlarm: zoneTrackAlarmFields,

	domain.KindCountry: {
		field("Name", domain.FieldString),
		field("Code", domain.FieldInt32),
		field("Alpha2", domain.FieldString),
		field("Alpha3", domain.FieldString),
	},
	domain.KindVesselType:   {field("Name", domain.FieldString), field("Code", domain.FieldInt32)},
	domain.KindAircraftType: {field("Name", domain.FieldString)},

	domain.KindAisDeviceRawMessage: {
		field("AisDevice", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		field("IsSent", domain.FieldBool),
		field("Message", domain.FieldString),
	},
	domain.KindAlarmStateChange: {
		field("Alarm", domain.FieldGUID),
		field("Timestamp", domain.FieldTime),
		enum("State", "AlarmState"),
	},
}

func init() {
	scalar := map[domain.Kind]domain.FieldType{
		domain.KindBinaryTimeseriesValue:    domain.FieldBinary,
		domain.KindBooleanTimeseriesValue:   domain.FieldBool,
		domain.KindByteTimeseriesValue:      domain.FieldByte,
		domain.KindDateTimeTimeseriesValue:  domain.FieldTime,
		domain.KindDoubleTimeseriesValue:    domain.FieldFloat64,
		domain.KindGuidTimeseriesValue:      domain.FieldGUID,
		domain.KindInt16TimeseriesValue:     domain.FieldInt16,
		domain.KindInt32TimeseriesValue:     domain.FieldInt32,
		domain.KindInt64TimeseriesValue:     domain.FieldInt64,
		domain.KindReferenceTimeseriesValue: domain.FieldGUID,
		domain.KindSByteTimeseriesValue:     domain.FieldInt16,
		domain.KindSingleTimeseriesValue:    domain.FieldFloat64,
		domain.KindStringTimeseriesValue:    domain.FieldString,
		domain.KindTimeSpanTimeseriesValue:  domain.FieldDuration,
		domain.KindUInt16TimeseriesValue:    domain.FieldInt32,
		domain.KindUInt32TimeseriesValue:    domain.FieldUInt32,
		domain.KindUInt64TimeseriesValue:    domain.FieldInt64,
	}
	for kind, t := range scalar {
		own[kind] = timeseriesValue(opt("Value", t))
	}
	own[domain.KindGeoPosition2DTimeseriesValue] = timeseriesValue(
		opt("Latitude", domain.FieldFloat64), opt("Longitude", domain.FieldFloat64))
	own[domain.KindGeoPosition3DTimeseriesValue] = timeseriesValue(
		opt("Latitude", domain.FieldFloat64), opt("Longitude", domain.FieldFloat64), opt("Altitude", domain.FieldFloat64))
	own[domain.KindPosition2DTimeseriesValue] = timeseriesValue(
		opt("X", domain.FieldFloat64), opt("Y", domain.FieldFloat64))
	own[domain.KindPosition3DTimeseriesValue] = timeseriesValue(
		opt("X", domain.FieldFloat64), opt("Y", domain.FieldFloat64), opt("Z", domain.FieldFloat64))
}

func timeseriesValue(values ...domain.Field) []domain.Field {
	return append([]domain.Field{field("Timeseries", domain.FieldGUID), field("Timestamp", domain.FieldTime)}, values...)
}

var (
	schemaMu sync.Mutex
	schemas  = map[domain.Kind]*domain.Schema{}
)

// Schema returns the field table of a catalog kind: its parent's table
// followed by the fields the kind adds. Kinds outside the catalog yield nil.
func Schema(kind domain.Kind) *domain.Schema {
	if !kind.Valid() {
		return nil
	}
	schemaMu.Lock()
	defer schemaMu.Unlock()
	return schemaLocked(kind)
}

func schemaLocked(kind domain.Kind) *domain.Schema {
	if s, ok := schemas[kind]; ok {
		return s
	}
	var s *domain.Schema
	if p, ok := parents[kind]; ok {
		s = schemaLocked(p).Extend(kind, own[kind]...)
	} else {
		s = domain.NewSchema(kind, own[kind]...)
	}
	schemas[kind] = s
	return s
}
