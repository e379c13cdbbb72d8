// Package dicts carries the static reference catalogs this client
// consults but never mutates at runtime: the J1979 PID table and the
// Mode 06 MID name table. Grounded on
// original_source/backend/src/dicts.rs's PID_INFOS and
// original_source/backend/src/mid.rs's check_mid name table.
package dicts

// PIDInfo describes one entry in the standard PID catalog: its mode,
// its canonical unit string, its human name, and (when documented as a
// fixed J1979 arithmetic expression rather than a bitfield/string
// decode) the formula text shown in the reference tables. Formula is
// advisory/documentation only — the typed readers in internal/obd
// implement the exact arithmetic themselves rather than evaluating
// this string.
type PIDInfo struct {
	PID     string
	Mode    string
	Unit    string
	Name    string
	Formula string
}

// PIDCatalog is the full J1979 Service 01 PID table.
var PIDCatalog = []PIDInfo{
	{PID: "01", Mode: "01", Unit: "", Name: "Monitor status since DTCs cleared", Formula: ""},
	{PID: "02", Mode: "01", Unit: "", Name: "DTC that caused freeze frame to be stored", Formula: ""},
	{PID: "03", Mode: "01", Unit: "", Name: "Fuel system status", Formula: ""},
	{PID: "04", Mode: "01", Unit: "%", Name: "Engine load", Formula: "100/255 * A"},
	{PID: "05", Mode: "01", Unit: "°C", Name: "Coolant temp.", Formula: "A - 40"},
	{PID: "06", Mode: "01", Unit: "%", Name: "Short term fuel trim (Bank 1)", Formula: "(100/128 * A) - 100"},
	{PID: "07", Mode: "01", Unit: "%", Name: "Long term fuel trim (Bank 1)", Formula: "(100/128 * A) - 100"},
	{PID: "08", Mode: "01", Unit: "%", Name: "Short term fuel trim (Bank 2)", Formula: "(100/128 * A) - 100"},
	{PID: "09", Mode: "01", Unit: "%", Name: "Long term fuel trim (Bank 2)", Formula: "(100/128 * A) - 100"},
	{PID: "0A", Mode: "01", Unit: "kPa", Name: "Fuel pressure", Formula: "3 * A"},
	{PID: "0B", Mode: "01", Unit: "kPa", Name: "Intake manifold abs. pressure", Formula: "A"},
	{PID: "0C", Mode: "01", Unit: "RPM", Name: "Engine speed", Formula: "((256 * A)+B) / 4"},
	{PID: "0D", Mode: "01", Unit: "km/h", Name: "Vehicle speed", Formula: "A"},
	{PID: "0E", Mode: "01", Unit: "°", Name: "Timing advance", Formula: "A/2 - 64"},
	{PID: "0F", Mode: "01", Unit: "°C", Name: "Intake air temp.", Formula: "A - 40"},
	{PID: "10", Mode: "01", Unit: "g/s", Name: "MAF airflow rate", Formula: "((256 * A)+B) / 100"},
	{PID: "11", Mode: "01", Unit: "%", Name: "Throttle pos.", Formula: "100/255 * A"},
	{PID: "12", Mode: "01", Unit: "", Name: "Commanded secondary air status", Formula: ""},
	{PID: "13", Mode: "01", Unit: "", Name: "Oxygen sensors present (in 2 banks)", Formula: ""},
	{PID: "14", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 1 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "15", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 2 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "16", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 3 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "17", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 4 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "18", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 5 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "19", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 6 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "1A", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 7 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "1B", Mode: "01", Unit: "(V, %)", Name: "Oxygen Sensor 8 (A: Voltage B: STFT)", Formula: "V: A / 200 %: 100/128B - 100"},
	{PID: "1C", Mode: "01", Unit: "", Name: "OBD standards this vehicle conforms to", Formula: ""},
	{PID: "1D", Mode: "01", Unit: "", Name: "Oxygen sensors present (in 4 banks)", Formula: ""},
	{PID: "1E", Mode: "01", Unit: "", Name: "Aux input status", Formula: ""},
	{PID: "1F", Mode: "01", Unit: "s", Name: "Engine runtime (Session)", Formula: "(256 * A) + B"},
	{PID: "21", Mode: "01", Unit: "km", Name: "Dist. with check engine light", Formula: "(256 * A) + B"},
	{PID: "22", Mode: "01", Unit: "kPa", Name: "Fuel Rail Pressure", Formula: "0.079(256A + B)"},
	{PID: "23", Mode: "01", Unit: "kPa", Name: "Fuel Rail Gauge Pressure", Formula: "10(256A + B)"},
	{PID: "24", Mode: "01", Unit: "ratio", Name: "O2 Sensor (1) AFR", Formula: "2/65536(256A+B)"},
	{PID: "24", Mode: "01", Unit: "ratio", Name: "O2 Sensor (1) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "25", Mode: "01", Unit: "ratio", Name: "O2 Sensor (2) AFR", Formula: "ratio: 2/65536(256A+B)"},
	{PID: "25", Mode: "01", Unit: "V", Name: "O2 Sensor (2) Voltage (2)", Formula: " 8/65536(256C+D"},
	{PID: "26", Mode: "01", Unit: "ratio", Name: "O2 Sensor (3) AFR", Formula: "2/65536(256A+B)"},
	{PID: "26", Mode: "01", Unit: "V", Name: "O2 Sensor (3) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "27", Mode: "01", Unit: "ratio", Name: "O2 Sensor (4) AFR", Formula: "2/65536(256A+B)"},
	{PID: "27", Mode: "01", Unit: "V", Name: "O2 Sensor (4) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "28", Mode: "01", Unit: "ratio", Name: "O2 Sensor (5) AFR (2)", Formula: "2/65536(256A+B)"},
	{PID: "28", Mode: "01", Unit: "V", Name: "O2 Sensor (5) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "29", Mode: "01", Unit: "ratio", Name: "O2 Sensor (6) AFR", Formula: "2/65536(256A+B)"},
	{PID: "29", Mode: "01", Unit: "V", Name: "O2 Sensor (6) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "2A", Mode: "01", Unit: "ratio", Name: "O2 Sensor (7) AFR", Formula: "2/65536(256A+B)"},
	{PID: "2A", Mode: "01", Unit: "V", Name: "O2 Sensor (7) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "2B", Mode: "01", Unit: "ratio", Name: "O2 Sensor (8) AFR", Formula: "2/65536(256A+B)"},
	{PID: "2B", Mode: "01", Unit: "V", Name: "O2 Sensor (8) Voltage (2)", Formula: "8/65536(256C+D)"},
	{PID: "2C", Mode: "01", Unit: "%", Name: "Commanded EGR", Formula: "100/255 * A"},
	{PID: "2D", Mode: "01", Unit: "%", Name: "EGR Error", Formula: "(100/128 * A) - 100"},
	{PID: "2E", Mode: "01", Unit: "%", Name: "Commanded EVAP purge", Formula: "100/255 * A"},
	{PID: "2F", Mode: "01", Unit: "%", Name: "Fuel Tank Level Input", Formula: "100/255 * A"},
	{PID: "30", Mode: "01", Unit: "", Name: "Warm-ups since codes cleared", Formula: "A"},
	{PID: "31", Mode: "01", Unit: "km", Name: "Dist. since codes cleared", Formula: "(256 * A)+B"},
	{PID: "32", Mode: "01", Unit: "Pa", Name: "EVAP System Vapor Pressure", Formula: "((256 * A)+B) / 4"},
	{PID: "33", Mode: "01", Unit: "kPa", Name: "Absolute Barometric Pressure", Formula: "A"},
	{PID: "34", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 1 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "35", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 2 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "36", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 3 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "37", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 4 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "38", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 5 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "39", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 6 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "3A", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 7 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "3B", Mode: "01", Unit: "(ratio, mA)", Name: "Oxygen Sensor 8 (AB: AFR CD: Current)", Formula: "(ratio: 2/65536(256A+B) mA: ((256C + D) / 256) - 128"},
	{PID: "3C", Mode: "01", Unit: "°C", Name: "Catalyst Temp. (Bank 1: Sensor 1)", Formula: "(((256 * A)+B) / 10) - 40"},
	{PID: "3D", Mode: "01", Unit: "°C", Name: "Catalyst Temp. (Bank 2: Sensor 1)", Formula: "(((256 * A)+B) / 10) - 40"},
	{PID: "3E", Mode: "01", Unit: "°C", Name: "Catalyst Temp. (Bank 1: Sensor 2)", Formula: "(((256 * A)+B) / 10) - 40"},
	{PID: "3F", Mode: "01", Unit: "°C", Name: "Catalyst Temp. (Bank 2: Sensor 2)", Formula: "(((256 * A)+B) / 10) - 40"},
	{PID: "41", Mode: "01", Unit: "", Name: "Monitor status this drive cycle", Formula: ""},
	{PID: "42", Mode: "01", Unit: "V", Name: "Control module voltage", Formula: "((256 * A)+B) / 1000"},
	{PID: "43", Mode: "01", Unit: "%", Name: "Absolute load value", Formula: "(100/255) * (256A + B)"},
	{PID: "44", Mode: "01", Unit: "ratio", Name: "Commanded Air-Fuel Equivalence Ratio", Formula: "(2/65536) * (256A + B)"},
	{PID: "45", Mode: "01", Unit: "%", Name: "Relative throttle pos.", Formula: "100/255 * A"},
	{PID: "46", Mode: "01", Unit: "°C", Name: "Ambient air temp.", Formula: "A - 40"},
	{PID: "47", Mode: "01", Unit: "%", Name: "Abs. throttle pos. (B)", Formula: "100/255 * A"},
	{PID: "4D", Mode: "01", Unit: "mins", Name: "Time with check engine light", Formula: "256A + B"},
	{PID: "4F", Mode: "01", Unit: "ratio, V, mA, kPa", Name: "Max. value for AFR, O2 sensor voltage and current, and intake manifold abs. pressure", Formula: "A, B, C, D * 10"},
	{PID: "50", Mode: "01", Unit: "g/s", Name: "MAF maximum airflow rate", Formula: "A * 10"},
	{PID: "51", Mode: "01", Unit: "", Name: "Fuel Type", Formula: ""},
	{PID: "52", Mode: "01", Unit: "%", Name: "Ethanol fuel percentage", Formula: "100/255 * A"},
	{PID: "53", Mode: "01", Unit: "kPa", Name: "Absolute Evap system Vapor Pressure", Formula: "((256 * A)+B) / 200"},
	{PID: "54", Mode: "01", Unit: "Pa", Name: "Evap system vapor pressure", Formula: "(256 * A) + B"},
	{PID: "55", Mode: "01", Unit: "%", Name: "Short term secondary oxygen sensor trim, A: bank 1, B: bank 3", Formula: "100/128(A OR B) - 100"},
	{PID: "56", Mode: "01", Unit: "%", Name: "Long term secondary oxygen sensor trim, A: bank 1, B: bank 3", Formula: "100/128(A OR B) - 100"},
	{PID: "57", Mode: "01", Unit: "%", Name: "Short term secondary oxygen sensor trim, A: bank 2, B: bank 4", Formula: "100/128(A OR B) - 100"},
	{PID: "58", Mode: "01", Unit: "%", Name: "Long term secondary oxygen sensor trim, A: bank 2, B: bank 4", Formula: "100/128(A OR B) - 100"},
	{PID: "59", Mode: "01", Unit: "kPa", Name: "Fuel rail absolute pressure", Formula: "10(256A + B)"},
	{PID: "5A", Mode: "01", Unit: "%", Name: "Relative accelerator pedal position", Formula: "100/255 * A"},
	{PID: "5B", Mode: "01", Unit: "%", Name: "Hybrid battery pack remaining life", Formula: "100/255 * A"},
	{PID: "5C", Mode: "01", Unit: "°C", Name: "Engine oil temp. (mode 01)", Formula: "A - 40"},
	{PID: "5D", Mode: "01", Unit: "°", Name: "Fuel injection timing", Formula: "(((256 * A)+B) / 128) - 210"},
	{PID: "5E", Mode: "01", Unit: "L/h", Name: "Engine fuel rate", Formula: "((256 * A)+B) / 20"},
	{PID: "5F", Mode: "01", Unit: "", Name: "Emission requirements to which vehicle is designed", Formula: ""},
	{PID: "61", Mode: "01", Unit: "%", Name: "Drivers demand engine torque", Formula: "A - 125"},
	{PID: "62", Mode: "01", Unit: "%", Name: "Actual engine torque", Formula: "A - 125"},
	{PID: "63", Mode: "01", Unit: "Nm", Name: "Reference engine torque", Formula: "256A + B"},
	{PID: "64", Mode: "01", Unit: "%", Name: "Engine percent torque data", Formula: "Subtract 125 from A - E"},
	{PID: "65", Mode: "01", Unit: "", Name: "Auxiliary input / output supported", Formula: ""},
	{PID: "66", Mode: "01", Unit: "g/s", Name: "Mass air flow sensor", Formula: "{A0}== Sensor A Supported"},
	{PID: "67", Mode: "01", Unit: "°C", Name: "Engine coolant temperature", Formula: "{A0}== Sensor 1 Supported"},
	{PID: "68", Mode: "01", Unit: "°C", Name: "Intake air temperature sensor", Formula: "{A0}== Sensor 1 Supported"},
	{PID: "6A", Mode: "01", Unit: "", Name: "Commanded Diesel intake air flow control and relative intake air flow position", Formula: ""},
	{PID: "6B", Mode: "01", Unit: "", Name: "Exhaust gas recirculation temperature", Formula: ""},
	{PID: "6C", Mode: "01", Unit: "", Name: "Commanded throttle actuator control and relative throttle position", Formula: ""},
	{PID: "6D", Mode: "01", Unit: "", Name: "Fuel pressure control system", Formula: ""},
	{PID: "6E", Mode: "01", Unit: "", Name: "Injection pressure control system", Formula: ""},
	{PID: "6F", Mode: "01", Unit: "", Name: "Turbocharger compressor inlet pressure", Formula: ""},
	{PID: "70", Mode: "01", Unit: "", Name: "Boost pressure control", Formula: ""},
	{PID: "71", Mode: "01", Unit: "", Name: "Variable Geometry turbo (VGT) control", Formula: ""},
	{PID: "72", Mode: "01", Unit: "", Name: "Wastegate control", Formula: ""},
	{PID: "73", Mode: "01", Unit: "", Name: "Exhaust pressure", Formula: ""},
	{PID: "74", Mode: "01", Unit: "RPM", Name: "Turbocharger RPM", Formula: ""},
	{PID: "75", Mode: "01", Unit: "°C", Name: "Turbocharger temperature", Formula: ""},
	{PID: "76", Mode: "01", Unit: "°C", Name: "Turbocharger temperature", Formula: ""},
	{PID: "77", Mode: "01", Unit: "°C", Name: "Charge air cooler temperature (CACT)", Formula: ""},
	{PID: "78", Mode: "01", Unit: "°C", Name: "Exhaust Gas temperature (EGT) Bank 1", Formula: ""},
	{PID: "79", Mode: "01", Unit: "°C", Name: "Exhaust Gas temperature (EGT) Bank 2", Formula: ""},
	{PID: "7A", Mode: "01", Unit: "", Name: "Diesel particulate filter (DPF)", Formula: ""},
	{PID: "7B", Mode: "01", Unit: "", Name: "Diesel particulate filter (DPF)", Formula: ""},
	{PID: "7C", Mode: "01", Unit: "°C", Name: "Diesel Particulate filter (DPF) temperature", Formula: "(((256 * A)+B) / 10) - 40"},
	{PID: "7D", Mode: "01", Unit: "", Name: "NOx NTE", Formula: ""},
	{PID: "7E", Mode: "01", Unit: "", Name: "PM NTE", Formula: ""},
	{PID: "7F", Mode: "01", Unit: "s", Name: "Engine runtime", Formula: "B(2^24) + C(2^16) + D(2^8) + E"},
	{PID: "81", Mode: "01", Unit: "", Name: "Engine runtime for Auxiliary Emissions Control Device(AECD)", Formula: ""},
	{PID: "82", Mode: "01", Unit: "", Name: "Engine runtime for Auxiliary Emissions Control Device(AECD)", Formula: ""},
	{PID: "83", Mode: "01", Unit: "", Name: "NOx sensor", Formula: ""},
	{PID: "84", Mode: "01", Unit: "", Name: "Manifold surface temperature", Formula: ""},
	{PID: "85", Mode: "01", Unit: "%", Name: "NOx reagent system", Formula: "100/255 * F"},
	{PID: "86", Mode: "01", Unit: "", Name: "Particulate matter (PM) sensor", Formula: ""},
	{PID: "88", Mode: "01", Unit: "", Name: "SCR Induce System", Formula: ""},
	{PID: "89", Mode: "01", Unit: "", Name: "Run Time for AECD #11-#15", Formula: ""},
	{PID: "8A", Mode: "01", Unit: "", Name: "Run Time for AECD #16-#20", Formula: ""},
	{PID: "8B", Mode: "01", Unit: "", Name: "Diesel Aftertreatment", Formula: ""},
	{PID: "8C", Mode: "01", Unit: "", Name: "O2 Sensor (Wide Range)", Formula: ""},
	{PID: "8D", Mode: "01", Unit: "%", Name: "Throttle Position G", Formula: ""},
	{PID: "8E", Mode: "01", Unit: "%", Name: "Engine Friction - Percent Torque", Formula: "A - 125"},
	{PID: "8F", Mode: "01", Unit: "", Name: "PM Sensor Bank 1 & 2", Formula: ""},
	{PID: "90", Mode: "01", Unit: "h", Name: "WWH-OBD Vehicle OBD System Information", Formula: ""},
	{PID: "91", Mode: "01", Unit: "h", Name: "WWH-OBD Vehicle OBD System Information", Formula: ""},
	{PID: "92", Mode: "01", Unit: "", Name: "Fuel System Control", Formula: ""},
	{PID: "93", Mode: "01", Unit: "h", Name: "WWH-OBD Vehicle OBD Counters support", Formula: ""},
	{PID: "94", Mode: "01", Unit: "", Name: "NOx Warning And Inducement System", Formula: ""},
	{PID: "98", Mode: "01", Unit: "°C", Name: "Exhaust Gas Temperature Sensor", Formula: ""},
	{PID: "99", Mode: "01", Unit: "°C", Name: "Exhaust Gas Temperature Sensor", Formula: ""},
	{PID: "9A", Mode: "01", Unit: "", Name: "Hybrid/EV Vehicle System Data, Battery, Voltage", Formula: ""},
	{PID: "9B", Mode: "01", Unit: "%", Name: "Diesel Exhaust Fluid Sensor Data", Formula: "100/255 * D"},
	{PID: "9C", Mode: "01", Unit: "", Name: "O2 Sensor Data", Formula: ""},
	{PID: "9D", Mode: "01", Unit: "g/s", Name: "Engine Fuel Rate", Formula: ""},
	{PID: "9E", Mode: "01", Unit: "kg/h", Name: "Engine Exhaust Flow Rate", Formula: ""},
	{PID: "9F", Mode: "01", Unit: "", Name: "Fuel System Percentage Use", Formula: ""},
	{PID: "A1", Mode: "01", Unit: "ppm", Name: "NOx Sensor Corrected Data", Formula: ""},
	{PID: "A2", Mode: "01", Unit: "mg/stroke", Name: "Cylinder Fuel Rate", Formula: "((256 * A)+B) / 32"},
	{PID: "A3", Mode: "01", Unit: "Pa", Name: "Evap System Vapor Pressure", Formula: ""},
	{PID: "A4", Mode: "01", Unit: "ratio", Name: "Transmission Actual Gear", Formula: "((256 * C) + D) / 1000"},
	{PID: "A5", Mode: "01", Unit: "%", Name: "Commanded Diesel Exhaust Fluid Dosing", Formula: "B / 2"},
	{PID: "A6", Mode: "01", Unit: "", Name: "Odometer", Formula: "(A(2^24) + B(2^16) + C(2^8) + D) / 10"},
	{PID: "A7", Mode: "01", Unit: "", Name: "NOx Sensor Concentration Sensors 3 and 4", Formula: ""},
	{PID: "A8", Mode: "01", Unit: "", Name: "NOx Sensor Corrected Concentration Sensors 3 and 4", Formula: ""},
	{PID: "A9", Mode: "01", Unit: "", Name: "ABS Disable Switch State", Formula: "{A0}= 1:Supported; 0:Unsupported"},
	{PID: "C3", Mode: "01", Unit: "%", Name: "Fuel Level Input A/B", Formula: ""},
	{PID: "C4", Mode: "01", Unit: "seconds / Count", Name: "Exhaust Particulate Control System Diagnostic Time/Count", Formula: ""},
	{PID: "C5", Mode: "01", Unit: "kPa", Name: "Fuel Pressure A and B", Formula: ""},
	{PID: "C7", Mode: "01", Unit: "km", Name: "Distance Since Reflash or Module Replacement", Formula: ""},}

// pidIndex lazily built lookup from 2-hex-char PID to its catalog entry.
var pidIndex map[string]PIDInfo

// LookupPID returns the catalog entry for a 2-hex-char PID (e.g. "0C"),
// and whether it was found.
func LookupPID(pid string) (PIDInfo, bool) {
	if pidIndex == nil {
		pidIndex = make(map[string]PIDInfo, len(PIDCatalog))
		for _, info := range PIDCatalog {
			pidIndex[info.PID] = info
		}
	}
	info, ok := pidIndex[pid]
	return info, ok
}
