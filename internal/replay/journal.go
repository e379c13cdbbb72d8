// Package replay implements the record/replay journal layer: intercepting
// the transport boundary so recorded sessions can be replayed without a
// live serial connection, per §4.10.
package replay

import (
	"encoding/json"
	"os"
	"time"

	"github.com/provrb/obdium/internal/command"
)

// ReplaySleep approximates vehicle latency during replay.
const ReplaySleep = 300 * time.Millisecond

// RequestType mirrors the Command Kind tag persisted alongside each entry,
// so a replayed response can be parsed through the right path.
type RequestType string

const (
	RequestTypePID      RequestType = "PIDCommand"
	RequestTypeAT       RequestType = "ATCommand"
	RequestTypeService  RequestType = "ServiceQuery"
	RequestTypeArbitrary RequestType = "Arbitrary"
)

func requestTypeFor(k command.Kind) RequestType {
	switch k {
	case command.KindPID:
		return RequestTypePID
	case command.KindAT:
		return RequestTypeAT
	case command.KindService:
		return RequestTypeService
	default:
		return RequestTypeArbitrary
	}
}

// Entry is one recorded request/response pair.
type Entry struct {
	Request     string      `json:"request"`
	RequestType RequestType `json:"request_type"`
	Response    string      `json:"response"`
	Played      bool        `json:"played"`
}

// Journal owns one JSON file of recorded request/response entries.
type Journal struct {
	path string
}

// Open points a Journal at path, creating an empty file if it doesn't exist.
func Open(path string) (*Journal, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
			return nil, err
		}
	}
	return &Journal{path: path}, nil
}

func (j *Journal) read() ([]Entry, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, err
	}
	if len(bytesTrimSpace(data)) == 0 {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (j *Journal) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, data, 0o600)
}

func bytesTrimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Record appends one request/response round-trip, read-modify-write,
// pretty-printed on every write, per §4.10.
func (j *Journal) Record(req command.Command, rawResponse string) error {
	entries, err := j.read()
	if err != nil {
		return err
	}
	entries = append(entries, Entry{
		Request:     req.String(),
		RequestType: requestTypeFor(req.Kind()),
		Response:    rawResponse,
		Played:      false,
	})
	return j.write(entries)
}

// Next scans for the first unplayed entry matching req's encoded string,
// marks it played, persists the change, and returns (entry, true). If no
// matching unplayed entry exists, returns (zero, false) — callers treat
// this as "no data".
func (j *Journal) Next(req command.Command) (Entry, bool) {
	entries, err := j.read()
	if err != nil {
		return Entry{}, false
	}

	wire := req.String()
	for i := range entries {
		if entries[i].Request == wire && !entries[i].Played {
			entries[i].Played = true
			found := entries[i]
			_ = j.write(entries)
			return found, true
		}
	}
	return Entry{}, false
}

// ResetPlayed clears every Played flag, invoked when replay is toggled on.
func (j *Journal) ResetPlayed() error {
	entries, err := j.read()
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].Played = false
	}
	return j.write(entries)
}
