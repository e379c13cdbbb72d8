package obd

import (
	"github.com/provrb/obdium/internal/response"
	"github.com/provrb/obdium/internal/scalar"
)

// EngineType distinguishes spark-ignition from compression-ignition
// engines, selected from PID 0101 byte B bit 3, per §4.6.
type EngineType int

const (
	SparkIgnition EngineType = iota
	CompressionIgnition
)

func (e EngineType) String() string {
	if e == CompressionIgnition {
		return "CompressionIgnition"
	}
	return "SparkIgnition"
}

// scalarOf applies the session's preference bundle (if any) to a
// canonical (value, unit) pair.
func (s *Session) scalarOf(value float64, unit scalar.Unit) scalar.Scalar {
	return scalar.New(value, unit, s.prefs)
}

// query1 issues a service-01 PID request and maps its response through
// op, returning no-data on an empty payload, per §4.6/§4.13.
func (s *Session) query1(pid byte, op func(response.Response) scalar.Scalar) scalar.Scalar {
	r := s.Query(pidCmd(0x01, pid))
	return response.MapNoData(r, scalar.NoDataScalar(), op)
}

// RPM reads PID 010C: ((256*A)+B)/4, canonical unit RPM.
func (s *Session) RPM() scalar.Scalar {
	return s.query1(0x0C, func(r response.Response) scalar.Scalar {
		v := float64(256*r.A()+r.B()) / 4.0
		return s.scalarOf(v, scalar.RPM)
	})
}

// EngineLoad reads PID 0104: A/2.55, canonical unit Percent.
func (s *Session) EngineLoad() scalar.Scalar {
	return s.query1(0x04, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())/2.55, scalar.Percent)
	})
}

// CoolantTemp reads PID 0105: A-40, canonical unit Celsius.
func (s *Session) CoolantTemp() scalar.Scalar {
	return s.query1(0x05, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())-40, scalar.Celsius)
	})
}

// fuelTrim reads a single fuel-trim PID: (100*A/128)-100, canonical Percent.
func (s *Session) fuelTrim(pid byte) scalar.Scalar {
	return s.query1(pid, func(r response.Response) scalar.Scalar {
		return s.scalarOf((100*float64(r.A())/128)-100, scalar.Percent)
	})
}

// ShortTermFuelTrimBank1 reads PID 0106.
func (s *Session) ShortTermFuelTrimBank1() scalar.Scalar { return s.fuelTrim(0x06) }

// LongTermFuelTrimBank1 reads PID 0107.
func (s *Session) LongTermFuelTrimBank1() scalar.Scalar { return s.fuelTrim(0x07) }

// ShortTermFuelTrimBank2 reads PID 0108.
func (s *Session) ShortTermFuelTrimBank2() scalar.Scalar { return s.fuelTrim(0x08) }

// LongTermFuelTrimBank2 reads PID 0109.
func (s *Session) LongTermFuelTrimBank2() scalar.Scalar { return s.fuelTrim(0x09) }

// VehicleSpeed reads PID 010D: A, canonical unit km/h.
func (s *Session) VehicleSpeed() scalar.Scalar {
	return s.query1(0x0D, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A()), scalar.KilometersPerHour)
	})
}

// IntakeAirTemp reads PID 010F: A-40, canonical Celsius.
func (s *Session) IntakeAirTemp() scalar.Scalar {
	return s.query1(0x0F, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())-40, scalar.Celsius)
	})
}

// MAFRate reads PID 0110: ((256*A)+B)/100, canonical unit GramsPerSecond.
func (s *Session) MAFRate() scalar.Scalar {
	return s.query1(0x10, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B())/100.0, scalar.GramsPerSecond)
	})
}

// ThrottlePosition reads PID 0111: A*100/255, canonical Percent.
func (s *Session) ThrottlePosition() scalar.Scalar {
	return s.query1(0x11, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())*100/255, scalar.Percent)
	})
}

// O2Reading is the (voltage, short-term-fuel-trim) pair returned by PIDs
// 0114-011B.
type O2Reading struct {
	Voltage scalar.Scalar
	STFT    scalar.Scalar
}

// O2Sensor reads one of PIDs 0114-011B: V=A/200, STFT=(100*B/128)-100.
// sensor is 0-indexed against 0114 (so O2Sensor(0) reads 0114).
func (s *Session) O2Sensor(sensor int) O2Reading {
	pid := byte(0x14 + sensor)
	r := s.Query(pidCmd(0x01, pid))
	return response.MapNoData(r, O2Reading{scalar.NoDataScalar(), scalar.NoDataScalar()}, func(r response.Response) O2Reading {
		return O2Reading{
			Voltage: s.scalarOf(float64(r.A())/200.0, scalar.Volts),
			STFT:    s.scalarOf((100*float64(r.B())/128)-100, scalar.Percent),
		}
	})
}

// O2AFRReading is the (ratio, voltage) pair returned by PIDs 0124-012B.
type O2AFRReading struct {
	Ratio   scalar.Scalar
	Voltage scalar.Scalar
}

// O2SensorAFR reads one of PIDs 0124-012B: ratio=(2/65536)*(256A+B),
// V=(8/65536)*(256C+D). sensor is 0-indexed against 0124.
func (s *Session) O2SensorAFR(sensor int) O2AFRReading {
	pid := byte(0x24 + sensor)
	r := s.Query(pidCmd(0x01, pid))
	return response.MapNoData(r, O2AFRReading{scalar.NoDataScalar(), scalar.NoDataScalar()}, func(r response.Response) O2AFRReading {
		ratio := (2.0 / 65536.0) * float64(256*r.A()+r.B())
		v := (8.0 / 65536.0) * float64(256*r.C()+r.D())
		return O2AFRReading{
			Ratio:   s.scalarOf(ratio, scalar.Ratio),
			Voltage: s.scalarOf(v, scalar.Volts),
		}
	})
}

// BarometricPressure reads PID 0133: A, canonical unit kPa.
func (s *Session) BarometricPressure() scalar.Scalar {
	return s.query1(0x33, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A()), scalar.KiloPascal)
	})
}

// IntakeManifoldPressure reads PID 010B: A, canonical unit kPa. Grounded
// on the same single-byte-pressure shape as 0133; needed by
// BoostGaugePressure.
func (s *Session) IntakeManifoldPressure() scalar.Scalar {
	return s.query1(0x0B, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A()), scalar.KiloPascal)
	})
}

// BoostGaugePressure is the derived reader in §4.6: intake-manifold
// pressure minus barometric pressure, reported in PSI.
func (s *Session) BoostGaugePressure() scalar.Scalar {
	intake := s.IntakeManifoldPressure()
	baro := s.BarometricPressure()
	if intake.IsNoData() || baro.IsNoData() {
		return scalar.NoDataScalar()
	}
	diff := scalar.Scalar{Value: intake.Value - baro.Value, Unit: scalar.KiloPascal}
	if psi, ok := diff.Convert(scalar.PSI); ok {
		return psi
	}
	return diff
}

// catalystTemp reads a catalyst-temperature PID (013C-013F):
// ((256A+B)/10)-40, canonical Celsius.
func (s *Session) catalystTemp(pid byte) scalar.Scalar {
	return s.query1(pid, func(r response.Response) scalar.Scalar {
		v := (float64(256*r.A()+r.B())/10.0) - 40
		return s.scalarOf(v, scalar.Celsius)
	})
}

// CatalystTempBank1Sensor1 reads PID 013C.
func (s *Session) CatalystTempBank1Sensor1() scalar.Scalar { return s.catalystTemp(0x3C) }

// CatalystTempBank2Sensor1 reads PID 013D.
func (s *Session) CatalystTempBank2Sensor1() scalar.Scalar { return s.catalystTemp(0x3D) }

// CatalystTempBank1Sensor2 reads PID 013E.
func (s *Session) CatalystTempBank1Sensor2() scalar.Scalar { return s.catalystTemp(0x3E) }

// CatalystTempBank2Sensor2 reads PID 013F.
func (s *Session) CatalystTempBank2Sensor2() scalar.Scalar { return s.catalystTemp(0x3F) }

// ControlModuleVoltage reads PID 0142: (256A+B)/1000, canonical Volt.
func (s *Session) ControlModuleVoltage() scalar.Scalar {
	return s.query1(0x42, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B())/1000.0, scalar.Volts)
	})
}

// FuelAirCommandedEquivReading is the (ratio, voltage, current, pressure)
// quadruple returned by PID 014F.
type FuelAirCommandedEquivReading struct {
	Ratio    scalar.Scalar
	Voltage  scalar.Scalar
	Current  scalar.Scalar
	Pressure scalar.Scalar
}

// FuelAirCommandedEquiv reads PID 014F: (A, B, C, D*10), canonical
// (ratio, V, mA, kPa).
func (s *Session) FuelAirCommandedEquiv() FuelAirCommandedEquivReading {
	r := s.Query(pidCmd(0x01, 0x4F))
	zero := FuelAirCommandedEquivReading{
		scalar.NoDataScalar(), scalar.NoDataScalar(), scalar.NoDataScalar(), scalar.NoDataScalar(),
	}
	return response.MapNoData(r, zero, func(r response.Response) FuelAirCommandedEquivReading {
		return FuelAirCommandedEquivReading{
			Ratio:    s.scalarOf(float64(r.A()), scalar.Ratio),
			Voltage:  s.scalarOf(float64(r.B()), scalar.Volts),
			Current:  s.scalarOf(float64(r.C()), scalar.Milliampere),
			Pressure: s.scalarOf(float64(r.D())*10, scalar.KiloPascal),
		}
	})
}

// OilTemp reads PID 015C: A-40, canonical Celsius.
func (s *Session) OilTemp() scalar.Scalar {
	return s.query1(0x5C, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())-40, scalar.Celsius)
	})
}

// FuelInjectionTiming reads PID 015D: ((256A+B)/128)-210, canonical
// Degree.
func (s *Session) FuelInjectionTiming() scalar.Scalar {
	return s.query1(0x5D, func(r response.Response) scalar.Scalar {
		v := (float64(256*r.A()+r.B())/128.0) - 210
		return s.scalarOf(v, scalar.Degrees)
	})
}

// DemandEngineTorque reads PID 0161: A-125, canonical Percent.
func (s *Session) DemandEngineTorque() scalar.Scalar {
	return s.query1(0x61, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())-125, scalar.Percent)
	})
}

// ActualEngineTorque reads PID 0162: A-125, canonical Percent.
func (s *Session) ActualEngineTorque() scalar.Scalar {
	return s.query1(0x62, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A())-125, scalar.Percent)
	})
}

// ReferenceEngineTorque reads PID 0163: 256A+B, canonical Nm.
func (s *Session) ReferenceEngineTorque() scalar.Scalar {
	return s.query1(0x63, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.NewtonMeters)
	})
}

// DieselEngineRuntime reads PID 017F: B*2^24+C*2^16+D*2^8+E, canonical
// Second. This is the compression-ignition counterpart to the spark
// engine's uptime PID (011F), selected via engine type per §4.6.
func (s *Session) DieselEngineRuntime() scalar.Scalar {
	return s.query1(0x7F, func(r response.Response) scalar.Scalar {
		v := float64(r.B())*16777216 + float64(r.C())*65536 + float64(r.D())*256 + float64(r.E())
		return s.scalarOf(v, scalar.Seconds)
	})
}

// EngineRuntime reads PID 011F: 256A+B, canonical Second. This is the
// spark-ignition runtime PID; EngineRuntimeFor selects between this and
// DieselEngineRuntime by engine type.
func (s *Session) EngineRuntime() scalar.Scalar {
	return s.query1(0x1F, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.Seconds)
	})
}

// EngineRuntimeFor selects 011F or 017F by engine type, per §4.6's
// engine-type selection rule.
func (s *Session) EngineRuntimeFor(et EngineType) scalar.Scalar {
	if et == CompressionIgnition {
		return s.DieselEngineRuntime()
	}
	return s.EngineRuntime()
}

// CylinderFuelRate reads PID 01A2: (256A+B)/32, canonical
// MilligramsPerStroke.
func (s *Session) CylinderFuelRate() scalar.Scalar {
	return s.query1(0xA2, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B())/32.0, scalar.MiligramsPerStroke)
	})
}

// Odometer reads PID 01A6: (A*2^24+B*2^16+C*2^8+D)/10, canonical Km.
func (s *Session) Odometer() scalar.Scalar {
	return s.query1(0xA6, func(r response.Response) scalar.Scalar {
		v := (float64(r.A())*16777216 + float64(r.B())*65536 + float64(r.C())*256 + float64(r.D())) / 10.0
		return s.scalarOf(v, scalar.Kilometers)
	})
}

// pid0101 queries the single byte-group most readiness and engine-type
// queries are derived from; every call issues a fresh request.
func (s *Session) pid0101() response.Response {
	return s.Query(pidCmd(0x01, 0x01))
}

// EngineType resolves PID 0101 byte B bit 3: 0 -> spark, nonzero ->
// compression, per §4.6/§9 (the non-zero branch is the only other
// reachable value by construction, so there is no third arm to guard
// beyond SparkIgnition/CompressionIgnition).
func (s *Session) EngineType() EngineType {
	r := s.pid0101()
	if r.IsNoData() {
		return SparkIgnition
	}
	if r.B()&0b00001000 != 0 {
		return CompressionIgnition
	}
	return SparkIgnition
}
