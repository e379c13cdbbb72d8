package scalar

import "fmt"

// Scalar is a (value, unit) pair, the core numeric type this client
// hands back from every PID reader.
type Scalar struct {
	Value float64
	Unit  Unit
}

// NoDataScalar returns the sentinel "no reading" scalar. It is never an error value;
// it is a first-class in-band result (see obderr policy notes).
func NoDataScalar() Scalar {
	return Scalar{Value: 0, Unit: NoData}
}

// IsNoData reports whether s carries the no-data sentinel.
func (s Scalar) IsNoData() bool {
	return s.Unit == NoData
}

func (s Scalar) String() string {
	if s.Unit == NoData {
		return "NO DATA"
	}
	return fmt.Sprintf("%v%s", s.Value, s.Unit)
}

// Add preserves the left operand's unit, same as the original Rust impl:
// callers are responsible for only combining dimensionally compatible
// scalars.
func (s Scalar) Add(other Scalar) Scalar {
	return Scalar{Value: s.Value + other.Value, Unit: s.Unit}
}

// Sub preserves the left operand's unit.
func (s Scalar) Sub(other Scalar) Scalar {
	return Scalar{Value: s.Value - other.Value, Unit: s.Unit}
}

// Convert converts s to target, returning (converted, true) if the pair is
// in the partial conversion relation, or (zero, false) otherwise.
func (s Scalar) Convert(target Unit) (Scalar, bool) {
	v := s.Value
	switch {
	case s.Unit == Kilometers && target == Meters:
		return Scalar{v * 1000.0, Meters}, true
	case s.Unit == Meters && target == Kilometers:
		return Scalar{v / 1000.0, Kilometers}, true
	case (s.Unit == KilometersPerHour && target == MilesPerHour) ||
		(s.Unit == Kilometers && target == Miles):
		return Scalar{v / 1.609, target}, true
	case (s.Unit == MilesPerHour && target == KilometersPerHour) ||
		(s.Unit == Miles && target == Kilometers):
		return Scalar{v * 1.609, target}, true
	case s.Unit == Kilometers && target == Feet:
		return Scalar{v * 83281.0, Feet}, true
	case s.Unit == Feet && target == Kilometers:
		return Scalar{v / 83281.0, Kilometers}, true
	case s.Unit == Celsius && target == Fahrenheit:
		return Scalar{(v * 1.8) + 32.0, Fahrenheit}, true
	case s.Unit == Fahrenheit && target == Celsius:
		return Scalar{(v - 32.0) * (1.0 / 1.8), Celsius}, true
	case s.Unit == Seconds && target == Minutes:
		return Scalar{v / 60.0, Minutes}, true
	case s.Unit == Seconds && target == Hours:
		return Scalar{v / 3600.0, Hours}, true
	case s.Unit == Minutes && target == Seconds:
		return Scalar{v * 60.0, Seconds}, true
	case s.Unit == Minutes && target == Hours:
		return Scalar{v / 60.0, Hours}, true
	case s.Unit == Hours && target == Seconds:
		return Scalar{v * 3600.0, Seconds}, true
	case s.Unit == Hours && target == Minutes:
		return Scalar{v * 60.0, Minutes}, true
	case s.Unit == LitresPerHour && target == GallonsPerHour:
		return Scalar{v * 0.264172, GallonsPerHour}, true
	case s.Unit == GallonsPerHour && target == LitresPerHour:
		return Scalar{v / 0.264172, LitresPerHour}, true
	case s.Unit == NewtonMeters && target == FootPounds:
		return Scalar{v * 0.73756, FootPounds}, true
	case s.Unit == FootPounds && target == NewtonMeters:
		return Scalar{v / 0.73756, NewtonMeters}, true
	case s.Unit == KiloPascal && target == PSI:
		return Scalar{v / 6.895, PSI}, true
	case s.Unit == PSI && target == KiloPascal:
		return Scalar{v * 6.895, KiloPascal}, true
	case s.Unit == KiloPascal && target == Pascal:
		return Scalar{v * 1000.0, Pascal}, true
	case s.Unit == Pascal && target == KiloPascal:
		return Scalar{v / 1000.0, KiloPascal}, true
	default:
		return Scalar{}, false
	}
}

// Preferences bundles the unit each quantity class should be rendered in.
// Zero value (all Unknown) means "use canonical units".
type Preferences struct {
	Speed      Unit
	Distance   Unit
	Temp       Unit
	Torque     Unit
	Pressure   Unit
	FlowRate   Unit
}

// DefaultPreferences mirrors UnitPreferences::default from the source.
func DefaultPreferences() Preferences {
	return Preferences{
		Speed:    KilometersPerHour,
		Distance: Kilometers,
		Temp:     Celsius,
		Torque:   NewtonMeters,
		Pressure: KiloPascal,
		FlowRate: LitresPerHour,
	}
}

// preferredUnitFor selects the preference bucket matching unit's class, or
// unit itself when the quantity has no preference-bearing class.
func preferredUnitFor(prefs Preferences, unit Unit) Unit {
	switch unit {
	case KilometersPerHour, MilesPerHour:
		return prefs.Speed
	case Kilometers, Miles, Meters, Feet:
		return prefs.Distance
	case Celsius, Fahrenheit, Degrees:
		return prefs.Temp
	case NewtonMeters, FootPounds:
		return prefs.Torque
	case KiloPascal, Pascal, PSI:
		return prefs.Pressure
	case LitresPerHour, GallonsPerHour:
		return prefs.FlowRate
	default:
		return unit
	}
}

// New constructs a Scalar for value/unit, converting it to the caller's
// preferred unit for that quantity class if one is set and a conversion
// exists. Units with no entry in prefs, or with no conversion path, are
// emitted in their canonical unit.
func New(value float64, unit Unit, prefs *Preferences) Scalar {
	if prefs == nil {
		return Scalar{Value: value, Unit: unit}
	}

	target := preferredUnitFor(*prefs, unit)
	if target == unit || target == Unknown {
		return Scalar{Value: value, Unit: unit}
	}

	if converted, ok := (Scalar{Value: value, Unit: unit}).Convert(target); ok {
		return converted
	}
	return Scalar{Value: value, Unit: unit}
}
