package vin

import (
	"time"

	"github.com/provrb/obdium/internal/obderr"
)

// ModelYear decodes the model year from VIN position 10 (0-indexed 9) per
// NHTSA's ModelYear2 algorithm, then applies the 30-year rollover: vehicles
// whose VehicleTypeId falls in the car/light-truck range (or is a light
// truck, VehicleTypeId 3 with TruckTypeId 1) and whose position-7 digit is
// numeric are assumed to belong to the earlier of the two 30-year cycles
// position 10 could denote; any year still beyond next calendar year is
// rolled back once more.
func (v *VIN) ModelYear() (int, error) {
	vehicleTypeID, err := v.VehicleTypeID()
	if err != nil {
		return 0, err
	}
	truckTypeID, err := v.TruckTypeID()
	if err != nil {
		return 0, err
	}

	carOrLightTruck := (vehicleTypeID >= 2 && vehicleTypeID <= 7) || (vehicleTypeID == 3 && truckTypeID == 1)
	return decodeModelYear(v.raw[9], v.raw[6], carOrLightTruck, time.Now())
}

// decodeModelYear is ModelYear's pure core, split out for testability: given
// the position-10 year character, the position-7 character, whether this
// VIN's vehicle type counts as car/light-truck, and the current time (for
// the "still in the future" rollover check), it returns the decoded year.
func decodeModelYear(pos10, pos7 byte, carOrLightTruck bool, now time.Time) (int, error) {
	var year int
	switch {
	case pos10 >= 'A' && pos10 <= 'H':
		year = 2010 + int(pos10-'A')
	case pos10 >= 'J' && pos10 <= 'N':
		year = 2010 + int(pos10-'A') - 1
	case pos10 == 'P':
		year = 2023
	case pos10 >= 'R' && pos10 <= 'T':
		year = 2010 + int(pos10-'A') - 3
	case pos10 >= 'V' && pos10 <= 'Y':
		year = 2010 + int(pos10-'A') - 4
	case pos10 >= '1' && pos10 <= '9':
		year = 2031 + int(pos10-'1')
	default:
		return 0, obderr.InvalidCharacterErr(pos10, 9, "got invalid character for model year")
	}

	if carOrLightTruck && pos7 >= '0' && pos7 <= '9' {
		year -= 30
	}

	if year > now.Year()+1 {
		year -= 30
	}

	return year, nil
}

// Manufacturer is the vPIC Manufacturer table name for this VIN's
// ManufacturerId.
func (v *VIN) Manufacturer() (string, error) {
	id, err := v.ManufacturerID()
	if err != nil {
		return "", err
	}
	db, err := v.connection()
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, "Manufacturer", id)
}

// Make is the vPIC Make table name for this VIN's MakeId.
func (v *VIN) Make() (string, error) {
	id, err := v.MakeID()
	if err != nil {
		return "", err
	}
	db, err := v.connection()
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, "Make", id)
}

// Model is the vPIC Model table name for this VIN's resolved ModelID.
func (v *VIN) Model() (string, error) {
	id, err := v.ModelID()
	if err != nil {
		return "", err
	}
	db, err := v.connection()
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, "Model", id)
}

// VehicleType is the vPIC VehicleType table name for this WMI's VehicleTypeId.
func (v *VIN) VehicleType() (string, error) {
	id, err := v.VehicleTypeID()
	if err != nil {
		return "", err
	}
	db, err := v.connection()
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, "VehicleType", id)
}

func (v *VIN) stringAttribute(elementID ElementId) (string, error) {
	row, err := v.queryPattern(elementID)
	if err != nil {
		return "", err
	}
	return row.attributeID, nil
}

func (v *VIN) intAttribute(elementID ElementId) (int64, error) {
	row, err := v.queryPattern(elementID)
	if err != nil {
		return 0, err
	}
	return parseID(row.attributeID)
}

func (v *VIN) lookupAttribute(elementID ElementId, table string) (string, error) {
	id, err := v.intAttribute(elementID)
	if err != nil {
		return "", err
	}
	db, err := v.connection()
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, table, id)
}

func (v *VIN) vspecIntAttribute(elementID ElementId) (int64, error) {
	row, err := v.queryVSpecPattern(elementID)
	if err != nil {
		return 0, err
	}
	return parseID(row.attributeID)
}

func (v *VIN) vspecFloatAttribute(elementID ElementId) (float64, error) {
	row, err := v.queryVSpecPattern(elementID)
	if err != nil {
		return 0, err
	}
	return parseFloat(row.attributeID)
}

// parseFloat parses a reference-database attribute value as a decimal
// number, surfacing a malformed value as ParseError rather than silently
// reporting 0.0.
func parseFloat(s string) (float64, error) {
	var intPart, frac float64
	var fracDiv float64 = 1
	neg := false
	seenDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i == 0 && c == '-':
			neg = true
		case c == '.':
			if seenDot {
				return 0, obderr.Msg(obderr.ParseError, "malformed attribute value "+s)
			}
			seenDot = true
		case c >= '0' && c <= '9':
			if seenDot {
				fracDiv *= 10
				frac = frac*10 + float64(c-'0')
			} else {
				intPart = intPart*10 + float64(c-'0')
			}
		default:
			return 0, obderr.Msg(obderr.ParseError, "malformed attribute value "+s)
		}
	}
	if len(s) == 0 || (len(s) == 1 && neg) {
		return 0, obderr.Msg(obderr.ParseError, "malformed attribute value "+s)
	}
	val := intPart + frac/fracDiv
	if neg {
		val = -val
	}
	return val, nil
}

func (v *VIN) EngineModel() (string, error) { return v.stringAttribute(ElementEngineModel) }

func (v *VIN) CylinderCount() (int64, error) { return v.intAttribute(ElementEngineCylinderCount) }

func (v *VIN) EngineDisplacement() (float64, error) {
	row, err := v.queryPattern(ElementEngineDisplacement)
	if err != nil {
		return 0, err
	}
	return parseFloat(row.attributeID)
}

func (v *VIN) FuelType() (string, error) { return v.lookupAttribute(ElementFuelType, "FuelType") }

func (v *VIN) ValveTrainDesign() (string, error) {
	return v.lookupAttribute(ElementValveTrainDesign, "ValvetrainDesign")
}

func (v *VIN) FuelDeliveryType() (string, error) {
	return v.lookupAttribute(ElementFuelDeliveryType, "FuelDeliveryType")
}

func (v *VIN) HasTurbo() (bool, error) {
	id, err := v.intAttribute(ElementHasTurbo)
	if err != nil {
		return false, err
	}
	return id == 1, nil
}

func (v *VIN) EngineManufacturer() (string, error) {
	return v.stringAttribute(ElementEngineManufacturer)
}

func (v *VIN) VehicleDoorCount() (string, error) { return v.stringAttribute(ElementVehicleDoorCount) }

func (v *VIN) PlantCountry() (string, error) { return v.lookupAttribute(ElementPlantCountry, "Country") }

func (v *VIN) PlantCity() (string, error) { return v.stringAttribute(ElementPlantCity) }

func (v *VIN) BodyClass() (string, error) { return v.lookupAttribute(ElementBodyClass, "BodyStyle") }

func (v *VIN) TransmissionStyle() (string, error) {
	return v.getVSpecFromPattern(ElementTransmissionStyle)
}

func (v *VIN) SteeringLocation() (string, error) {
	return v.getVSpecFromPattern(ElementSteeringLocation)
}

func (v *VIN) ABSAvailability() (string, error) { return v.getVSpecFromPattern(ElementABS) }

func (v *VIN) KeylessIgnitionAvailability() (string, error) {
	return v.getVSpecFromPattern(ElementKeylessIgnition)
}

func (v *VIN) AirbagLocationsFront() (string, error) {
	return v.lookupAttribute(ElementAirbagLocationsFront, "AirBagLocFront")
}

func (v *VIN) AirbagLocationsKnee() (string, error) {
	return v.lookupAttribute(ElementAirbagLocationsKnee, "AirBagLocKnee")
}

func (v *VIN) AirbagLocationsSide() (string, error) {
	return v.lookupAttribute(ElementAirbagLocationsSide, "AirBagLocations")
}

func (v *VIN) AirbagLocationsCurtain() (string, error) {
	return v.lookupAttribute(ElementAirbagLocationsCurtain, "AirBagLocations")
}

func (v *VIN) AirbagLocationsSeatCushion() (string, error) {
	return v.lookupAttribute(ElementAirbagLocationsSeatCushion, "AirBagLocations")
}

func (v *VIN) DriveType() (string, error) { return v.lookupAttribute(ElementDriveType, "DriveType") }

func (v *VIN) AxleCount() (int64, error) { return v.vspecIntAttribute(ElementAxleCount) }

func (v *VIN) BrakeSystem() (string, error) {
	return v.lookupAttribute(ElementBrakeSystem, "BrakeSystem")
}

func (v *VIN) ElectronicStabilityControl() (string, error) {
	return v.getVSpecFromPattern(ElementElectronicStabilityControl)
}

func (v *VIN) TractionControl() (string, error) {
	return v.getVSpecFromPattern(ElementTractionControl)
}

func (v *VIN) WindowsAutoReverse() (string, error) {
	return v.getVSpecFromPattern(ElementAutoReverseSystem)
}

func (v *VIN) VehicleWeightRating() (string, error) {
	return v.lookupAttribute(ElementVehicleWeightRating, "GrossVehicleWeightRating")
}

func (v *VIN) PlantCompany() (string, error) { return v.stringAttribute(ElementPlantCompanyName) }

// PlantState falls back to "Not Applicable" rather than propagating the
// lookup error, matching the source — some schemas simply have no plant
// state row and that's a legitimate, not exceptional, outcome.
func (v *VIN) PlantState() (string, error) {
	s, err := v.stringAttribute(ElementPlantState)
	if err != nil {
		return "Not Applicable", nil
	}
	return s, nil
}

// VehicleTopSpeed is in miles per hour.
func (v *VIN) VehicleTopSpeed() (int64, error) { return v.vspecIntAttribute(ElementTopSpeedMPH) }

// FrontWheelSize is in inches.
func (v *VIN) FrontWheelSize() (int64, error) { return v.vspecIntAttribute(ElementWheelSizeFront) }

// RearWheelSize is in inches.
func (v *VIN) RearWheelSize() (int64, error) { return v.vspecIntAttribute(ElementWheelSizeRear) }

func (v *VIN) DynamicBrakeSupport() (string, error) {
	return v.getVSpecFromPattern(ElementDynamicBrakeSupport)
}

func (v *VIN) BackupCamera() (string, error) { return v.getVSpecFromPattern(ElementBackupCamera) }

func (v *VIN) AutomaticCrashNotification() (string, error) { return v.getVSpecFromPattern(ElementACN) }

func (v *VIN) DaytimeRunningLight() (string, error) {
	return v.getVSpecFromPattern(ElementDaytimeRunningLight)
}

func (v *VIN) SemiAutoHeadlampBeamSwitching() (string, error) {
	return v.getVSpecFromPattern(ElementSemiAutoHeadlampBeamSwitch)
}

func (v *VIN) AdaptiveDrivingBeam() (string, error) {
	return v.getVSpecFromPattern(ElementAdaptiveDrivingBeam)
}

func (v *VIN) TransmissionSpeeds() (int64, error) {
	return v.vspecIntAttribute(ElementTransmissionSpeeds)
}

func (v *VIN) VehicleBasePrice() (float64, error) {
	return v.vspecFloatAttribute(ElementVehicleBasePrice)
}

func (v *VIN) Trim() (string, error) { return v.stringAttribute(ElementTrim) }

func (v *VIN) SeatbeltType() (string, error) {
	return v.lookupAttribute(ElementSeatbeltType, "SeatBeltsAll")
}

func (v *VIN) NumberOfSeats() (int64, error) { return v.vspecIntAttribute(ElementNumberOfSeats) }

func (v *VIN) NumberOfRows() (int64, error) { return v.vspecIntAttribute(ElementNumberOfRows) }

func (v *VIN) ManufacturerCountry() (string, error) {
	return v.lookupAttribute(ElementManufacturerCountry, "Country")
}

func (v *VIN) Windows() (string, error) { return v.getVSpecFromPattern(ElementWindows) }
