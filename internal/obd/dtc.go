package obd

import (
	"log"
	"strconv"
	"strings"

	"github.com/provrb/obdium/internal/command"
	"github.com/provrb/obdium/internal/obderr"
	"github.com/provrb/obdium/internal/response"
	"github.com/provrb/obdium/internal/scalar"
	"github.com/provrb/obdium/internal/transport"
)

// TroubleCodeCategory is the top-level DTC system, selected by the two
// high bits of the DTC's first byte, per §4.7.
type TroubleCodeCategory int

const (
	Powertrain TroubleCodeCategory = iota
	Chassis
	Body
	Network
	UnknownCategory
)

// SystemLetter returns the single-character DTC system prefix.
func (c TroubleCodeCategory) SystemLetter() byte {
	switch c {
	case Powertrain:
		return 'P'
	case Chassis:
		return 'C'
	case Body:
		return 'B'
	case Network:
		return 'U'
	default:
		return '?'
	}
}

func (c TroubleCodeCategory) String() string {
	switch c {
	case Powertrain:
		return "Powertrain"
	case Chassis:
		return "Chassis"
	case Body:
		return "Body"
	case Network:
		return "Network"
	default:
		return "Unknown"
	}
}

// TroubleCode is one decoded DTC, with its code-description lookup
// applied eagerly at construction, grounded on
// original_source/backend/src/pid/diagnostics.rs's TroubleCode::new.
type TroubleCode struct {
	Category    TroubleCodeCategory
	DTC         string
	Description string
	Permanent   bool
}

// DescriptionLookup resolves a DTC string to its human description. A
// session has none until one is attached with SetCodeDescriptions.
type DescriptionLookup interface {
	Describe(dtc string) (string, error)
}

func newTroubleCode(lookup DescriptionLookup, category TroubleCodeCategory, dtc string, permanent bool) TroubleCode {
	tc := TroubleCode{Category: category, DTC: dtc, Permanent: permanent, Description: "none"}
	if lookup == nil {
		return tc
	}
	if desc, err := lookup.Describe(dtc); err == nil && desc != "" {
		tc.Description = desc
	}
	return tc
}

// SetCodeDescriptions attaches the lookup used to populate
// TroubleCode.Description.
func (s *Session) SetCodeDescriptions(lookup DescriptionLookup) {
	s.codeDescriptions = lookup
}

// GetNumTroubleCodes reads PID 0101 byte A masked to its low 7 bits.
func (s *Session) GetNumTroubleCodes() int {
	r := s.pid0101()
	return r.A() & 0x7F
}

// CheckEngineLight reads PID 0101 byte A bit 7 (the MIL status bit).
func (s *Session) CheckEngineLight() bool {
	r := s.pid0101()
	return r.A()&0x80 != 0
}

// GetTroubleCodes issues Service 03 (current codes), skipping the round
// trip entirely if GetNumTroubleCodes reports zero.
func (s *Session) GetTroubleCodes() []TroubleCode {
	if s.GetNumTroubleCodes() == 0 {
		return nil
	}
	req := command.NewService([2]byte{'0', '3'})
	raw := s.rawQuery(req)
	return s.decodeTroubleCodes(raw)
}

// GetPermanentTroubleCodes issues Service 0A.
func (s *Session) GetPermanentTroubleCodes() []TroubleCode {
	req := command.NewService([2]byte{'0', 'A'})
	raw := s.rawQuery(req)
	return s.decodeTroubleCodes(raw)
}

// GetFreezeFrameDTC issues PID 0102.
func (s *Session) GetFreezeFrameDTC() []TroubleCode {
	raw := s.rawQuery(pidCmdStr("0102"))
	return s.decodeTroubleCodes(raw)
}

// rawQuery sends req and returns the unparsed reply text (trailing
// prompt stripped), used by the DTC path which needs the whole
// multi-line response rather than a single parsed payload.
func (s *Session) rawQuery(req command.Command) string {
	if err := s.send(req); err != nil {
		log.Printf("obd: send_command failed for %q: %v", req.String(), err)
		return ""
	}
	if s.replaying {
		entry, ok := s.replayed(req)
		if !ok {
			return ""
		}
		return entry.Raw
	}
	raw, err := s.tr.ReadUntil(transport.Prompt)
	if err != nil {
		log.Printf("obd: when getting dtc: %v", err)
		return ""
	}
	s.maybeRecord(req, raw)
	return raw
}

// decodeTroubleCodes implements the §4.7 decode pipeline verbatim,
// grounded on diagnostics.rs's decode_trouble_codes.
func (s *Session) decodeTroubleCodes(raw string) []TroubleCode {
	if raw == "" {
		return nil
	}
	// Drop the ECU header token (3 hex chars) leading any line of 3 or more
	// tokens, then join everything without whitespace.
	var binding string
	for _, line := range strings.FieldsFunc(raw, func(c rune) bool { return c == '\r' || c == '\n' }) {
		tokens := strings.Fields(line)
		if len(tokens) >= 3 && len(tokens[0]) == 3 {
			tokens = tokens[1:]
		}
		binding += strings.Join(tokens, "")
	}

	var sanitized string
	var permanent bool
	switch {
	case strings.Contains(binding, "43"):
		sanitized = joinFilteredChunks(strings.Split(binding, "43"))
		permanent = false
	case strings.Contains(binding, "4A"):
		sanitized = joinFilteredChunks(strings.Split(binding, "4A"))
		permanent = true
	default:
		return nil
	}

	if strings.Contains(strings.ToLower(sanitized), "nodata") {
		return nil
	}

	var codes []TroubleCode
	for i := 0; i+4 <= len(sanitized); i += 4 {
		chunk := sanitized[i : i+4]
		left, errL := strconv.ParseUint(chunk[0:2], 16, 8)
		right, errR := strconv.ParseUint(chunk[2:4], 16, 8)
		if errL != nil {
			left = 0
		}
		if errR != nil {
			right = 0
		}
		if left == 0 && right == 0 {
			break
		}

		l := byte(left)
		bit7 := (l & 0b1000_0000) >> 7
		bit6 := (l & 0b0100_0000) >> 6
		bit5 := (l & 0b0010_0000) >> 5
		bit4 := (l & 0b0001_0000) >> 4
		c2 := (bit5 << 1) | bit4
		newLeft := l & 0b0000_1111

		var category TroubleCodeCategory
		switch {
		case bit7 == 0 && bit6 == 0:
			category = Powertrain
		case bit7 == 0 && bit6 == 1:
			category = Chassis
		case bit7 == 1 && bit6 == 0:
			category = Body
		case bit7 == 1 && bit6 == 1:
			category = Network
		default:
			category = UnknownCategory
		}

		dtcCode := string(category.SystemLetter()) +
			strings.ToUpper(strconv.FormatUint(uint64(c2), 16)) +
			strings.ToUpper(strconv.FormatUint(uint64(newLeft), 16)) +
			upperHex2(byte(right))

		codes = append(codes, newTroubleCode(s.codeDescriptions, category, dtcCode, permanent))
	}
	return codes
}

func upperHex2(b byte) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return strings.ToUpper(s)
}

// joinFilteredChunks keeps only split chunks of length >= 4, repeatedly
// trims trailing "00" pairs from each, and concatenates — the
// conservative multi-ECU splitter behavior inherited verbatim from the
// source (see design notes; not "improved").
func joinFilteredChunks(chunks []string) string {
	var b strings.Builder
	for _, chunk := range chunks {
		if len(chunk) < 4 {
			continue
		}
		for strings.HasSuffix(chunk, "00") {
			chunk = chunk[:len(chunk)-2]
		}
		b.WriteString(chunk)
	}
	return b.String()
}

// ClearTroubleCodes issues Service 04; success iff the echo is exactly
// "44".
func (s *Session) ClearTroubleCodes() error {
	req := command.NewService([2]byte{'0', '4'})
	r := s.Query(req)
	if strings.ReplaceAll(r.Formatted, " ", "") == "44" {
		return nil
	}
	return obderr.New(obderr.DTCClearFailed)
}

// Test is one readiness-monitor result, mirroring
// diagnostics.rs's Test struct.
type Test struct {
	Name      string
	Available bool
	Complete  bool
}

func noDataTest() Test { return Test{Name: "Unknown"} }

// GetCommonTestsStatus reads PID 0101 byte A for the three common
// tests: Components, Fuel System, Misfire.
func (s *Session) GetCommonTestsStatus() [3]Test {
	r := s.pid0101()
	if r.IsNoData() {
		return [3]Test{noDataTest(), noDataTest(), noDataTest()}
	}
	byteA := r.A()
	components := Test{"Components", byteA&0b0000_0100 != 0, byteA&0b0100_0000 == 0}
	fuelSystem := Test{"Fuel System", byteA&0b0000_0010 != 0, byteA&0b0010_0000 == 0}
	misfire := Test{"Misfire", byteA&0b0000_0001 != 0, byteA&0b0001_0000 == 0}
	return [3]Test{components, fuelSystem, misfire}
}

var sparkAdvancedNames = [8]string{
	"EGR and/or VVT System",
	"Oxygen Sensor Heater",
	"Oxygen Sensor",
	"Gasoline Particulate Filter",
	"Secondary Air System",
	"Evaporative System",
	"Heated Catalyst",
	"Catalyst",
}

var compressionAdvancedNames = [8]string{
	"EGR and/or VVT System",
	"PM filter monitoring",
	"Exhaust Gas Sensor",
	"Reserved",
	"Boost Pressure",
	"Reserved",
	"NOx/SCR Monitor",
	"NMHC Catalyst",
}

// GetAdvancedTestsStatus reads PID 0101 bytes C and D, naming each of
// the 8 positions per the engine type, per §4.8.
func (s *Session) GetAdvancedTestsStatus() [8]Test {
	engineType := s.EngineType()
	r := s.pid0101()
	var tests [8]Test
	if r.IsNoData() {
		for i := range tests {
			tests[i] = noDataTest()
		}
		return tests
	}

	cByte, dByte := r.C(), r.D()
	names := sparkAdvancedNames
	if engineType == CompressionIgnition {
		names = compressionAdvancedNames
	}

	for index := range tests {
		bit := 1 << (7 - index)
		available := cByte&bit != 0
		complete := available && dByte&bit == 0
		tests[index] = Test{Name: names[index], Available: available, Complete: complete}
	}
	return tests
}

// OBDStandard names the PID 011C byte A value per J1979's standard
// enumeration.
func OBDStandard(code int) string {
	switch code {
	case 1:
		return "OBD-II as defined by CARB"
	case 2:
		return "OBD as defined by the EPA"
	case 3:
		return "OBD and OBD-II"
	case 4:
		return "OBD-I"
	case 5:
		return "Not OBD compliant"
	case 6:
		return "EOBD"
	case 7:
		return "EOBD and OBD-II"
	case 8:
		return "EOBD and OBD"
	case 9:
		return "EOBD, OBD and OBD-II"
	case 10:
		return "JOBD"
	case 11:
		return "JOBD and OBD-II"
	case 12:
		return "JOBD and EOBD"
	case 13:
		return "JOBD, EOBD and OBD-II"
	case 17:
		return "Engine Manufacturer Diagnostics"
	case 18:
		return "Engine Manufacturer Diagnostics Enhanced"
	case 19:
		return "Heavy Duty On-Board Diagnostics (Child/Partial)"
	case 20:
		return "Heavy Duty On-Board Diagnostics"
	case 21:
		return "World Wide Harmonized OBD"
	case 23:
		return "Heavy Duty Euro OBD Stage I without NOx control"
	case 24:
		return "Heavy Duty Euro OBD Stage I with NOx control"
	case 25:
		return "Heavy Duty Euro OBD Stage II without NOx control"
	case 26:
		return "Heavy Duty Euro OBD Stage II with NOx control"
	case 28:
		return "Brazil OBD Phase 1"
	case 29:
		return "Brazil OBD Phase 2"
	case 30:
		return "Korean OBD"
	case 31:
		return "India OBD I"
	case 32:
		return "India OBD II"
	case 33:
		return "Heavy Duty Euro OBD Stage VI"
	default:
		return "No data"
	}
}

// GetOBDStandards reads PID 011C and names its standard.
func (s *Session) GetOBDStandards() string {
	r := s.Query(pidCmdStr("011C"))
	return OBDStandard(r.A())
}

// AuxInputStatus reads PID 011E bit 0.
func (s *Session) AuxInputStatus() string {
	r := s.Query(pidCmdStr("011E"))
	if r.A()&1 != 0 {
		return "Active"
	}
	return "Inactive"
}

// WarmUpsSinceCodesCleared reads PID 0130: A, unitless count.
func (s *Session) WarmUpsSinceCodesCleared() scalar.Scalar {
	return s.query1(0x30, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(r.A()), scalar.Ratio)
	})
}

// DistanceTraveledSinceCodesCleared reads PID 0131: 256A+B, canonical Km.
func (s *Session) DistanceTraveledSinceCodesCleared() scalar.Scalar {
	return s.query1(0x31, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.Kilometers)
	})
}

// DistanceTraveledWithMIL reads PID 0121: 256A+B, canonical Km.
func (s *Session) DistanceTraveledWithMIL() scalar.Scalar {
	return s.query1(0x21, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.Kilometers)
	})
}

// TimeRunWithMIL reads PID 014D: 256A+B, canonical Minutes.
func (s *Session) TimeRunWithMIL() scalar.Scalar {
	return s.query1(0x4D, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.Minutes)
	})
}

// TimeSinceCodesCleared reads PID 014E: 256A+B, canonical Minutes.
func (s *Session) TimeSinceCodesCleared() scalar.Scalar {
	return s.query1(0x4E, func(r response.Response) scalar.Scalar {
		return s.scalarOf(float64(256*r.A()+r.B()), scalar.Minutes)
	})
}
