package obd

import (
	"strconv"

	"github.com/provrb/obdium/internal/dicts"
)

// BankNumber selects which O2/catalyst/EGR bank a Mode 06 test targets.
type BankNumber int

const (
	Bank1 BankNumber = iota + 1
	Bank2
)

// SensorNumber selects which O2 sensor within a bank a test targets.
type SensorNumber int

const (
	Sensor1 SensorNumber = iota + 1
	Sensor2
	Sensor3
	Sensor4
)

// CylinderNumber selects a misfire-per-cylinder test, 1..12.
type CylinderNumber int

// EvapLeakSize selects which EVAP leak-detection test to run.
type EvapLeakSize int

const (
	EvapLeakLarge  EvapLeakSize = iota // 0.150"
	EvapLeakMedium                     // 0.090"
	EvapLeakSmall                      // 0.040"
	EvapLeakTiny                       // 0.020"
)

// MonitorTest is one Mode 06 test result, grounded on
// original_source/backend/src/mid.rs's MonitorTest.
type MonitorTest struct {
	Value uint64
	Min   uint64
	Max   uint64
	MID   string
}

// HasPassed reports whether Value falls within [Min, Max].
func (t MonitorTest) HasPassed() bool {
	return t.Value >= t.Min && t.Value <= t.Max
}

func noMonitorTest(mid string) MonitorTest {
	return MonitorTest{MID: mid}
}

// runMonitorTest issues the 4-hex-char Mode 06 command mid (e.g.
// "0621") and parses value=A, min=B, max=C, single-byte width, per
// §4.9/§9 (the source treats all monitor-test limits as single bytes;
// this is preserved rather than "corrected" to the two-byte convention
// some standards expect for specific MIDs).
func (s *Session) runMonitorTest(mid string) MonitorTest {
	r := s.Query(pidCmdStr(mid))
	if r.IsNoData() {
		return noMonitorTest(mid)
	}
	return MonitorTest{
		Value: uint64(r.A()),
		Min:   uint64(r.B()),
		Max:   uint64(r.C()),
		MID:   mid,
	}
}

// GetSupportedMIDs issues Mode 06 PID 00 and parses the five bitmap
// bytes A..E into the set of supported MIDs at bases 0x01, 0x21, 0x41,
// 0x61, 0x81, per §4.9.
func (s *Session) GetSupportedMIDs() map[string]string {
	mids := map[string]string{}
	r := s.Query(pidCmdStr("0600"))
	if r.IsNoData() {
		return mids
	}

	bases := []struct {
		byteVal int
		base    int
	}{
		{r.A(), 0x01},
		{r.B(), 0x21},
		{r.C(), 0x41},
		{r.D(), 0x61},
		{r.E(), 0x81},
	}
	for _, bb := range bases {
		for bit := 0; bit < 8; bit++ {
			if bb.byteVal&(1<<bit) == 0 {
				continue
			}
			mid := bb.base + bit
			midStr := "06" + upperHex2(byte(mid))
			mids[midStr] = dicts.MIDName(midStr)
		}
	}
	return mids
}

// TestOxygenSensorMonitor runs the O2 sensor monitor for the given
// bank/sensor pair (MIDs 0601-0608).
func (s *Session) TestOxygenSensorMonitor(bank BankNumber, sensor SensorNumber) MonitorTest {
	mids := map[[2]int]string{
		{1, 1}: "0601", {1, 2}: "0602", {1, 3}: "0603", {1, 4}: "0604",
		{2, 1}: "0605", {2, 2}: "0606", {2, 3}: "0607", {2, 4}: "0608",
	}
	mid, ok := mids[[2]int{int(bank), int(sensor)}]
	if !ok {
		return noMonitorTest("")
	}
	return s.runMonitorTest(mid)
}

// TestCatalystMonitor runs the catalyst monitor for a bank (MIDs 0621/0622).
func (s *Session) TestCatalystMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0621", "0622"))
}

// TestEGRMonitor runs the EGR monitor for a bank (MIDs 0631/0632).
func (s *Session) TestEGRMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0631", "0632"))
}

// TestVVTMonitor runs the variable valve timing monitor for a bank
// (MIDs 0635/0636).
func (s *Session) TestVVTMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0635", "0636"))
}

// TestEVAPMonitor runs the EVAP leak monitor for a given leak size
// (MIDs 0639-063C).
func (s *Session) TestEVAPMonitor(leakSize EvapLeakSize) MonitorTest {
	mid := map[EvapLeakSize]string{
		EvapLeakLarge:  "0639",
		EvapLeakMedium: "063A",
		EvapLeakSmall:  "063B",
		EvapLeakTiny:   "063C",
	}[leakSize]
	return s.runMonitorTest(mid)
}

// TestPurgeFlowMonitor runs the EVAP purge flow monitor (MID 063D).
func (s *Session) TestPurgeFlowMonitor() MonitorTest {
	return s.runMonitorTest("063D")
}

// TestOxygenSensorHeater runs the O2 sensor heater monitor for a
// bank/sensor pair (MIDs 0641-0648).
func (s *Session) TestOxygenSensorHeater(bank BankNumber, sensor SensorNumber) MonitorTest {
	mids := map[[2]int]string{
		{1, 1}: "0641", {1, 2}: "0642", {1, 3}: "0643", {1, 4}: "0644",
		{2, 1}: "0645", {2, 2}: "0646", {2, 3}: "0647", {2, 4}: "0648",
	}
	mid, ok := mids[[2]int{int(bank), int(sensor)}]
	if !ok {
		return noMonitorTest("")
	}
	return s.runMonitorTest(mid)
}

// TestHeatedCatalystMonitor runs the heated catalyst monitor for a bank
// (MIDs 0661/0662).
func (s *Session) TestHeatedCatalystMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0661", "0662"))
}

// TestSecondaryAirMonitor runs the secondary air monitor for id 1..4
// (MIDs 0671-0674).
func (s *Session) TestSecondaryAirMonitor(id int) MonitorTest {
	if id < 1 || id > 4 {
		return noMonitorTest("")
	}
	return s.runMonitorTest("067" + strconv.Itoa(id))
}

// TestFuelSystemMonitor runs the fuel system monitor for a bank (MIDs
// 0681/0682).
func (s *Session) TestFuelSystemMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0681", "0682"))
}

// TestBoostPressureControlMonitor runs the boost pressure control
// monitor for a bank (MIDs 0685/0686).
func (s *Session) TestBoostPressureControlMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0685", "0686"))
}

// TestNOxAbsorberMonitor runs the NOx absorber monitor for a bank
// (MIDs 0690/0691).
func (s *Session) TestNOxAbsorberMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0690", "0691"))
}

// TestNOxCatalystMonitor runs the NOx catalyst monitor for a bank
// (MIDs 0698/0699).
func (s *Session) TestNOxCatalystMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "0698", "0699"))
}

// TestMisfireMonitorGeneral runs the general misfire monitor (MID 06A1).
func (s *Session) TestMisfireMonitorGeneral() MonitorTest {
	return s.runMonitorTest("06A1")
}

var misfireCylinderMIDs = []string{
	"06A2", "06A3", "06A4", "06A5", "06A6", "06A7",
	"06A8", "06A9", "06AA", "06AB", "06AC", "06AD",
}

// TestMisfireCylinderMonitor runs the per-cylinder misfire monitor for
// cylinder 1..12 (MIDs 06A2-06AD).
func (s *Session) TestMisfireCylinderMonitor(cylinder CylinderNumber) MonitorTest {
	idx := int(cylinder) - 1
	if idx < 0 || idx >= len(misfireCylinderMIDs) {
		return noMonitorTest("")
	}
	return s.runMonitorTest(misfireCylinderMIDs[idx])
}

// TestPMFilterMonitor runs the particulate-filter monitor for a bank
// (MIDs 06B0/06B1).
func (s *Session) TestPMFilterMonitor(bank BankNumber) MonitorTest {
	return s.runMonitorTest(bankMID(bank, "06B0", "06B1"))
}

func bankMID(bank BankNumber, bank1, bank2 string) string {
	if bank == Bank2 {
		return bank2
	}
	return bank1
}
