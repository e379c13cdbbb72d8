package dicts

// MIDNames maps a 4-hex-char Mode 06 MID (e.g. "0621") to its
// human-readable test name, grounded on mid.rs's check_mid match arms.
// An unlisted MID names "Unknown Monitor", matching the source's
// fallback arm.
var MIDNames = map[string]string{
	"0601": "O2 Sensor Monitor Bank 1 - Sensor 1",
	"0602": "O2 Sensor Monitor Bank 1 - Sensor 2",
	"0603": "O2 Sensor Monitor Bank 1 - Sensor 3",
	"0604": "O2 Sensor Monitor Bank 1 - Sensor 4",
	"0605": "O2 Sensor Monitor Bank 2 - Sensor 1",
	"0606": "O2 Sensor Monitor Bank 2 - Sensor 2",
	"0607": "O2 Sensor Monitor Bank 2 - Sensor 3",
	"0608": "O2 Sensor Monitor Bank 2 - Sensor 4",
	"0609": "O2 Sensor Monitor Bank 3 - Sensor 1",
	"060A": "O2 Sensor Monitor Bank 3 - Sensor 2",
	"060B": "O2 Sensor Monitor Bank 3 - Sensor 3",
	"060C": "O2 Sensor Monitor Bank 3 - Sensor 4",
	"060D": "O2 Sensor Monitor Bank 4 - Sensor 1",
	"060E": "O2 Sensor Monitor Bank 4 - Sensor 2",
	"060F": "O2 Sensor Monitor Bank 4 - Sensor 3",
	"0610": "O2 Sensor Monitor Bank 4 - Sensor 4",
	"0621": "Catalyst Monitor Bank 1",
	"0622": "Catalyst Monitor Bank 2",
	"0623": "Catalyst Monitor Bank 3",
	"0624": "Catalyst Monitor Bank 4",
	"0631": "EGR Monitor Bank 1",
	"0632": "EGR Monitor Bank 2",
	"0633": "EGR Monitor Bank 3",
	"0634": "EGR Monitor Bank 4",
	"0635": "VVT Monitor Bank 1",
	"0636": "VVT Monitor Bank 2",
	"0637": "VVT Monitor Bank 3",
	"0638": "VVT Monitor Bank 4",
	"0639": "EVAP Monitor (Cap Off / 0.150\")",
	"063A": "EVAP Monitor (0.090\")",
	"063B": "EVAP Monitor (0.040\")",
	"063C": "EVAP Monitor (0.020\")",
	"063D": "Purge Flow Monitor",
	"0641": "O2 Sensor Heater Monitor Bank 1 - Sensor 1",
	"0642": "O2 Sensor Heater Monitor Bank 1 - Sensor 2",
	"0643": "O2 Sensor Heater Monitor Bank 1 - Sensor 3",
	"0644": "O2 Sensor Heater Monitor Bank 1 - Sensor 4",
	"0645": "O2 Sensor Heater Monitor Bank 2 - Sensor 1",
	"0646": "O2 Sensor Heater Monitor Bank 2 - Sensor 2",
	"0647": "O2 Sensor Heater Monitor Bank 2 - Sensor 3",
	"0648": "O2 Sensor Heater Monitor Bank 2 - Sensor 4",
	"0649": "O2 Sensor Heater Monitor Bank 3 - Sensor 1",
	"064A": "O2 Sensor Heater Monitor Bank 3 - Sensor 2",
	"064B": "O2 Sensor Heater Monitor Bank 3 - Sensor 3",
	"064C": "O2 Sensor Heater Monitor Bank 3 - Sensor 4",
	"064D": "O2 Sensor Heater Monitor Bank 4 - Sensor 1",
	"064E": "O2 Sensor Heater Monitor Bank 4 - Sensor 2",
	"064F": "O2 Sensor Heater Monitor Bank 4 - Sensor 3",
	"0650": "O2 Sensor Heater Monitor Bank 4 - Sensor 4",
	"0661": "Heated Catalyst Monitor Bank 1",
	"0662": "Heated Catalyst Monitor Bank 2",
	"0663": "Heated Catalyst Monitor Bank 3",
	"0664": "Heated Catalyst Monitor Bank 4",
	"0671": "Secondary Air Monitor 1",
	"0672": "Secondary Air Monitor 2",
	"0673": "Secondary Air Monitor 3",
	"0674": "Secondary Air Monitor 4",
	"0681": "Fuel System Monitor Bank 1",
	"0682": "Fuel System Monitor Bank 2",
	"0683": "Fuel System Monitor Bank 3",
	"0684": "Fuel System Monitor Bank 4",
	"0685": "Boost Pressure Control Monitor Bank 1",
	"0686": "Boost Pressure Control Monitor Bank 2",
	"0690": "NOx Absorber Monitor Bank 1",
	"0691": "NOx Absorber Monitor Bank 2",
	"0698": "NOx Catalyst Monitor Bank 1",
	"0699": "NOx Catalyst Monitor Bank 2",
	"06A1": "Misfire Monitor General Data",
	"06A2": "Misfire Cylinder 1 Data",
	"06A3": "Misfire Cylinder 2 Data",
	"06A4": "Misfire Cylinder 3 Data",
	"06A5": "Misfire Cylinder 4 Data",
	"06A6": "Misfire Cylinder 5 Data",
	"06A7": "Misfire Cylinder 6 Data",
	"06A8": "Misfire Cylinder 7 Data",
	"06A9": "Misfire Cylinder 8 Data",
	"06AA": "Misfire Cylinder 9 Data",
	"06AB": "Misfire Cylinder 10 Data",
	"06AC": "Misfire Cylinder 11 Data",
	"06AD": "Misfire Cylinder 12 Data",
	"06B0": "PM Filter Monitor Bank 1",
	"06B1": "PM Filter Monitor Bank 2",
}

// MIDName resolves mid (e.g. "0621") to its test name, or "Unknown
// Monitor" if unlisted.
func MIDName(mid string) string {
	if name, ok := MIDNames[mid]; ok {
		return name
	}
	return "Unknown Monitor"
}
