// Package catalog registers the Barrelman kind catalog: the type hierarchy,
// field tables, enumerations and the rules that ship with it.
package catalog

import (
	"slices"

	"barrelman/pkg/domain"
)

// children lists the direct subtypes of every kind that has any. Kinds that
// appear neither as a key nor as a child are hierarchy roots.
var children = map[domain.Kind][]domain.Kind{
	domain.KindAisMessage: {
		domain.KindAidToNavigationReportMessage,
		domain.KindAisAddressedSafetyRelatedMessage,
		domain.KindAisBaseStationReportMessage,
		domain.KindAisBinaryAcknowledgeMessage,
		domain.KindAisBinaryAddressedMessage,
		domain.KindAisBinaryBroadcastMessage,
		domain.KindAisDataLinkManagementMessage,
		domain.KindAisExtendedClassBCsPositionReportMessage,
		domain.KindAisInterrogationMessage,
		domain.KindAisPositionReportClassAMessageBase,
		domain.KindAisPositionReportForLongRangeApplicationsMessage,
		domain.KindAisSafetyRelatedAcknowledgmentMessage,
		domain.KindAisStandardClassBCsPositionReportMessage,
		domain.KindAisStandardSarAircraftPositionReportMessage,
		domain.KindAisStaticAndVoyageRelatedDataMessage,
		domain.KindAisStaticDataReportMessage,
		domain.KindAisUtcAndDateInquiryMessage,
		domain.KindAisUtcAndDateResponseMessage,
	},
	domain.KindAisPositionReportClassAMessageBase: {
		domain.KindAisPositionReportClassAAssignedScheduleMessage,
		domain.KindAisPositionReportClassAMessage,
		domain.KindAisPositionReportClassAResponseToInterrogationMessage,
	},
	domain.KindAisStaticDataReportMessage: {
		domain.KindAisStaticDataReportPartAMessage,
		domain.KindAisStaticDataReportPartBMessage,
	},
	domain.KindCameraCommand: {
		domain.KindCameraCommandAbsoluteMove,
		domain.KindCameraCommandAdjustPanTiltZoom,
		domain.KindCameraCommandContinuousMove,
		domain.KindCameraCommandGeoMove,
		domain.KindCameraCommandRelativeMove,
		domain.KindCameraCommandReleasePTZOwnership,
		domain.KindCameraCommandRequestPTZOwnership,
		domain.KindCameraCommandSetAutoFocus,
		domain.KindCameraCommandSetBlackAndWhite,
		domain.KindCameraCommandSetFollowed,
		domain.KindCameraCommandSetInfraRedLamp,
		domain.KindCameraCommandSetWasher,
		domain.KindCameraCommandSetWiper,
		domain.KindCameraCommandStop,
	},
	domain.KindCatalogElement: {domain.KindCatalog, domain.KindElement},
	domain.KindIdentity: {
		domain.KindCallsign,
		domain.KindInternationalMaritimeOrganizationNumber,
		domain.KindMaritimeMobileServiceIdentity,
		domain.KindName,
	},
	domain.KindItem: {domain.KindBaseStation, domain.KindDevice, domain.KindFacility, domain.KindTrackableItem},
	domain.KindDevice: {
		domain.KindCameraDevice,
		domain.KindGNSSDevice,
		domain.KindGyroDevice,
		domain.KindLineInputDevice,
		domain.KindOilSpillDetectorDevice,
		domain.KindRadioDevice,
		domain.KindRadomeDevice,
		domain.KindTrackerDevice,
		domain.KindWeatherStationDevice,
	},
	domain.KindTrackerDevice:    {domain.KindAisDevice, domain.KindRadarDevice},
	domain.KindTrackableItem:    {domain.KindAircraft, domain.KindAisAidToNavigation, domain.KindVehicle, domain.KindVessel},
	domain.KindNamespaceElement: {domain.KindElementType, domain.KindNamespace},
	domain.KindProperty: {
		domain.KindBinaryProperty,
		domain.KindBooleanProperty,
		domain.KindByteProperty,
		domain.KindDateTimeProperty,
		domain.KindDoubleProperty,
		domain.KindGuidProperty,
		domain.KindInt16Property,
		domain.KindInt32Property,
		domain.KindInt64Property,
		domain.KindReferenceProperty,
		domain.KindSByteProperty,
		domain.KindSingleProperty,
		domain.KindStringProperty,
		domain.KindTimeseriesProperty,
		domain.KindTimeSpanProperty,
		domain.KindUInt16Property,
		domain.KindUInt32Property,
		domain.KindUInt64Property,
	},
	domain.KindTimeseriesProperty: {
		domain.KindBinaryTimeseriesProperty,
		domain.KindBooleanTimeseriesProperty,
		domain.KindByteTimeseriesProperty,
		domain.KindDateTimeTimeseriesProperty,
		domain.KindDoubleTimeseriesProperty,
		domain.KindGuidTimeseriesProperty,
		domain.KindInt16TimeseriesProperty,
		domain.KindInt32TimeseriesProperty,
		domain.KindInt64TimeseriesProperty,
		domain.KindReferenceTimeseriesProperty,
		domain.KindSByteTimeseriesProperty,
		domain.KindSingleTimeseriesProperty,
		domain.KindStringTimeseriesProperty,
		domain.KindTimeSpanTimeseriesProperty,
		domain.KindUInt16TimeseriesProperty,
		domain.KindUInt32TimeseriesProperty,
		domain.KindUInt64TimeseriesProperty,
	},
	domain.KindPropertyDefinition: {
		domain.KindBinaryPropertyDefinition,
		domain.KindBooleanPropertyDefinition,
		domain.KindBytePropertyDefinition,
		domain.KindDateTimePropertyDefinition,
		domain.KindDoublePropertyDefinition,
		domain.KindGuidPropertyDefinition,
		domain.KindInt16PropertyDefinition,
		domain.KindInt32PropertyDefinition,
		domain.KindInt64PropertyDefinition,
		domain.KindReferencePropertyDefinition,
		domain.KindSBytePropertyDefinition,
		domain.KindSinglePropertyDefinition,
		domain.KindStringPropertyDefinition,
		domain.KindTimeseriesPropertyDefinition,
		domain.KindTimeSpanPropertyDefinition,
		domain.KindUInt16PropertyDefinition,
		domain.KindUInt32PropertyDefinition,
		domain.KindUInt64PropertyDefinition,
	},
	domain.KindTimeseriesPropertyDefinition: {
		domain.KindBinaryTimeseriesPropertyDefinition,
		domain.KindBooleanTimeseriesPropertyDefinition,
		domain.KindByteTimeseriesPropertyDefinition,
		domain.KindDateTimeTimeseriesPropertyDefinition,
		domain.KindDoubleTimeseriesPropertyDefinition,
		domain.KindGuidTimeseriesPropertyDefinition,
		domain.KindInt16TimeseriesPropertyDefinition,
		domain.KindInt32TimeseriesPropertyDefinition,
		domain.KindInt64TimeseriesPropertyDefinition,
		domain.KindReferenceTimeseriesPropertyDefinition,
		domain.KindSByteTimeseriesPropertyDefinition,
		domain.KindSingleTimeseriesPropertyDefinition,
		domain.KindStringTimeseriesPropertyDefinition,
		domain.KindTimeSpanTimeseriesPropertyDefinition,
		domain.KindUInt16TimeseriesPropertyDefinition,
		domain.KindUInt32TimeseriesPropertyDefinition,
		domain.KindUInt64TimeseriesPropertyDefinition,
	},
	domain.KindRadarCommand:             {domain.KindRadarCommandGetStatus},
	domain.KindRadarCommandReply:        {domain.KindRadarCommandReplyGetStatus},
	domain.KindSecurityIdentifier:       {domain.KindSecurityLogin, domain.KindSecurityRole},
	domain.KindTimeseriesCatalogElement: {domain.KindTimeseries, domain.KindTimeseriesCatalog},
	domain.KindTimeseries: {
		domain.KindBinaryTimeseries,
		domain.KindBooleanTimeseries,
		domain.KindByteTimeseries,
		domain.KindDateTimeTimeseries,
		domain.KindDoubleTimeseries,
		domain.KindGeoPosition2DTimeseries,
		domain.KindGeoPosition3DTimeseries,
		domain.KindGuidTimeseries,
		domain.KindInt16Timeseries,
		domain.KindInt32Timeseries,
		domain.KindInt64Timeseries,
		domain.KindPosition2DTimeseries,
		domain.KindPosition3DTimeseries,
		domain.KindReferenceTimeseries,
		domain.KindSByteTimeseries,
		domain.KindSingleTimeseries,
		domain.KindStringTimeseries,
		domain.KindTimeSpanTimeseries,
		domain.KindUInt16Timeseries,
		domain.KindUInt32Timeseries,
		domain.KindUInt64Timeseries,
	},
	domain.KindBooleanTimeseries: {
		domain.KindAisAidToNavigationOffPositionTimeseries,
		domain.KindDeviceEnabledTimeseries,
		domain.KindRadarAutomaticSensitivityTimeControlTimeseries,
		domain.KindRadarBlankSector1Timeseries,
		domain.KindRadarBlankSector2Timeseries,
		domain.KindRadarEnableAutomaticFrequencyControlTimeseries,
		domain.KindRadarEnableFastTimeConstantTimeseries,
		domain.KindRadarEnableSensitivityTimeControlTimeseries,
		domain.KindRadarPowerOnTimeseries,
		domain.KindRadarSaveSettingsTimeseries,
		domain.KindRadarTrackingTimeseries,
		domain.KindMediaProxySessionEnabledTimeseries,
		domain.KindMediaServiceEnabledTimeseries,
	},
	domain.KindDoubleTimeseries: {
		domain.KindGNSSAltitudeTimeseries,
		domain.KindGNSSLatitudeTimeseries,
		domain.KindGNSSLongitudeTimeseries,
		domain.KindGyroCourseTimeseries,
		domain.KindGyroHeadingMagneticNorthTimeseries,
		domain.KindGyroHeadingTrueNorthTimeseries,
		domain.KindGyroPitchTimeseries,
		domain.KindGyroRateOfTurnTimeseries,
		domain.KindGyroRollTimeseries,
		domain.KindGyroSpeedTimeseries,
		domain.KindRadarLatitudeTimeseries,
		domain.KindRadarLongitudeTimeseries,
		domain.KindRadomeDewPointTimeseries,
		domain.KindRadomePressureTimeseries,
		domain.KindRadomeTemperatureTimeseries,
		domain.KindVesselDraughtTimeseries,
		domain.KindViewLatitudeTimeseries,
		domain.KindViewLongitudeTimeseries,
		domain.KindViewZoomLevelTimeseries,
		domain.KindWeatherStationAbsoluteHumidityTimeseries,
		domain.KindWeatherStationAirTemperatureTimeseries,
		domain.KindWeatherStationBarometricPressureTimeseries,
		domain.KindWeatherStationDewPointTimeseries,
		domain.KindWeatherStationRelativeHumidityTimeseries,
		domain.KindWeatherStationWaterTemperatureTimeseries,
		domain.KindWeatherStationWindDirectionTimeseries,
		domain.KindWeatherStationWindSpeedTimeseries,
	},
	domain.KindGeoPosition2DTimeseries: {domain.KindAisAidToNavigationPositionTimeseries},
	domain.KindInt32Timeseries: {
		domain.KindRadarAzimuthOffsetTimeseries,
		domain.KindRadarFastTimeConstantLevelTimeseries,
		domain.KindRadarFastTimeConstantModeTimeseries,
		domain.KindRadarPulseTimeseries,
		domain.KindRadarSector1EndTimeseries,
		domain.KindRadarSector1StartTimeseries,
		domain.KindRadarSector2EndTimeseries,
		domain.KindRadarSector2StartTimeseries,
		domain.KindRadarSensitivityTimeControlLevelTimeseries,
		domain.KindRadarTuningTimeseries,
		domain.KindVesselPersonsOnBoardTimeseries,
	},
	domain.KindUInt32Timeseries: {domain.KindRadomeStatusTimeseries},
	domain.KindTrackBase:        {domain.KindTrack, domain.KindTrack3D},
	domain.KindZone:             {domain.KindCircularZone, domain.KindPolygonZone},
}

// abstractKinds take part in the hierarchy but have no factory.
var abstractKinds = map[domain.Kind]struct{}{
	domain.KindAisMessage:                         {},
	domain.KindAisPositionReportClassAMessageBase: {},
	domain.KindCatalogElement:                     {},
	domain.KindDevice:                             {},
	domain.KindIdentity:                           {},
	domain.KindItem:                               {},
	domain.KindNamespaceElement:                   {},
	domain.KindProperty:                           {},
	domain.KindPropertyDefinition:                 {},
	domain.KindSecurityIdentifier:                 {},
	domain.KindTimeseries:                         {},
	domain.KindTimeseriesCatalogElement:           {},
	domain.KindTimeseriesProperty:                 {},
	domain.KindTimeseriesPropertyDefinition:       {},
	domain.KindTrackBase:                          {},
	domain.KindTrackableItem:                      {},
	domain.KindTrackerDevice:                      {},
	domain.KindZone:                               {},
}

var parents = func() map[domain.Kind]domain.Kind {
	out := make(map[domain.Kind]domain.Kind)
	for parent, kids := range children {
		for _, k := range kids {
			out[k] = parent
		}
	}
	return out
}()

// Parent returns the direct supertype of kind.
func Parent(kind domain.Kind) (domain.Kind, bool) {
	p, ok := parents[kind]
	return p, ok
}

// Ancestors returns the supertype chain of kind, nearest parent first.
func Ancestors(kind domain.Kind) []domain.Kind {
	var chain []domain.Kind
	for p, ok := parents[kind]; ok; p, ok = parents[p] {
		chain = append(chain, p)
	}
	return chain
}

// Abstract reports whether kind cannot be instantiated.
func Abstract(kind domain.Kind) bool {
	_, ok := abstractKinds[kind]
	return ok
}

// Children returns the direct subtypes of kind.
func Children(kind domain.Kind) []domain.Kind {
	return slices.Clone(children[kind])
}

// registrationOrder yields every catalog kind with each parent ahead of its
// subtypes: roots in tag order, then a depth-first walk of their subtypes.
func registrationOrder() []domain.Kind {
	out := make([]domain.Kind, 0, len(domain.CatalogKinds()))
	var walk func(k domain.Kind)
	walk = func(k domain.Kind) {
		out = append(out, k)
		for _, c := range children[k] {
			walk(c)
		}
	}
	for _, k := range domain.CatalogKinds() {
		if _, child := parents[k]; !child {
			walk(k)
		}
	}
	return out
}
