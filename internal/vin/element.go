// Package vin decodes 17-character Vehicle Identification Numbers against
// the NHTSA vPIC reference schema: checksum validation, WMI extraction,
// schema/pattern resolution, and typed attribute accessors.
package vin

// ElementId identifies a row in the vPIC Element table. Values are the
// Element.Id primary keys used throughout the Pattern and VehicleSpecPattern
// tables; they are not sequential and must match the reference database.
type ElementId int64

const (
	ElementBodyClass                   ElementId = 5
	ElementManufacturerCountry         ElementId = 8
	ElementEngineCylinderCount         ElementId = 9
	ElementEngineDisplacement          ElementId = 13
	ElementVehicleDoorCount            ElementId = 14
	ElementDriveType                   ElementId = 15
	ElementEngineModel                 ElementId = 18
	ElementFuelType                    ElementId = 24
	ElementVehicleWeightRating         ElementId = 25
	ElementVehicleModel                ElementId = 28
	ElementPlantCity                   ElementId = 31
	ElementNumberOfSeats               ElementId = 33
	ElementSteeringLocation            ElementId = 36
	ElementTransmissionStyle           ElementId = 37
	ElementTrim                        ElementId = 38
	ElementWindows                     ElementId = 40
	ElementAxleCount                   ElementId = 41
	ElementBrakeSystem                 ElementId = 42
	ElementAirbagLocationsCurtain      ElementId = 55
	ElementAirbagLocationsSeatCushion  ElementId = 56
	ElementNumberOfRows                ElementId = 61
	ElementValveTrainDesign            ElementId = 62
	ElementTransmissionSpeeds          ElementId = 63
	ElementAirbagLocationsFront        ElementId = 65
	ElementFuelDeliveryType            ElementId = 67
	ElementAirbagLocationsKnee         ElementId = 69
	ElementPlantCountry                ElementId = 75
	ElementPlantCompanyName            ElementId = 76
	ElementPlantState                  ElementId = 77
	ElementSeatbeltType                ElementId = 79
	ElementABS                         ElementId = 86
	ElementElectronicStabilityControl ElementId = 99
	ElementTractionControl            ElementId = 100
	ElementBackupCamera                ElementId = 104
	ElementAirbagLocationsSide         ElementId = 107
	ElementWheelSizeFront              ElementId = 119
	ElementWheelSizeRear               ElementId = 120
	ElementVehicleBasePrice            ElementId = 136
	ElementHasTurbo                    ElementId = 135
	ElementTopSpeedMPH                 ElementId = 139
	ElementEngineManufacturer          ElementId = 146
	ElementDynamicBrakeSupport         ElementId = 170
	ElementAutoReverseSystem           ElementId = 172
	ElementACN                         ElementId = 174
	ElementKeylessIgnition             ElementId = 176
	ElementDaytimeRunningLight         ElementId = 177
	ElementSemiAutoHeadlampBeamSwitch  ElementId = 179
	ElementAdaptiveDrivingBeam         ElementId = 180
)
