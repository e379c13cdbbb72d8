package common

// DTCCode is a diagnostic trouble code published over MQTT: the SAE J2012
// code string (e.g. "P0133"), its category, whether it was read from the
// permanent-codes list (Mode 0A), and when it was observed.
type DTCCode struct {
	DTC       string `json:"dtc"`
	Category  string `json:"category"`
	Permanent bool   `json:"permanent"`
	Timestamp int64  `json:"timestamp"`
}
