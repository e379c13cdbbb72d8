package obd

import (
	"strconv"
	"strings"

	"github.com/provrb/obdium/internal/obderr"
	"github.com/provrb/obdium/internal/transport"
)

// ReadVIN issues Service 09 PID 02 and reassembles the ISO-TP segmented
// reply into the 17-character VIN (§4.5). The frame shape is structurally
// the same as J1939's BAM transport: a first frame carrying a length
// header followed by numbered consecutive frames, all feeding one
// reassembly buffer.
func (s *Session) ReadVIN() (string, error) {
	req := pidCmdStr("0902")
	if err := s.send(req); err != nil {
		return "", err
	}

	var raw string
	if s.replaying {
		entry, ok := s.replayed(req)
		if !ok {
			return "", obderr.New(obderr.InvalidResponse)
		}
		raw = entry.Formatted
	} else {
		r, err := s.tr.ReadUntil(transport.Prompt)
		if err != nil {
			return "", err
		}
		raw = r
		s.maybeRecord(req, raw)
	}

	vin, err := reassembleISOTP(raw)
	if err != nil {
		return "", err
	}
	if len(vin) != 17 {
		return "", obderr.New(obderr.InvalidVinLength)
	}
	return vin, nil
}

// reassembleISOTP walks the normalized multi-line reply and accumulates
// data bytes from the first frame and every consecutive frame, per the
// layout in §4.5.
func reassembleISOTP(raw string) (string, error) {
	normalized := strings.ReplaceAll(raw, "\r", "\n")

	var data []byte
	for _, line := range strings.Split(normalized, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) > 0 && len(tokens[0]) == 3 {
			tokens = tokens[1:] // drop the responding-ECU identifier
		}
		if len(tokens) < 2 {
			continue
		}

		switch tokens[0] {
		case "10":
			if len(tokens) < 6 {
				continue
			}
			data = append(data, hexTokensToBytes(tokens[5:])...)
		case "21", "22", "23", "24":
			data = append(data, hexTokensToBytes(tokens[1:])...)
		}
	}

	if len(data) == 0 {
		return "", obderr.New(obderr.InvalidResponse)
	}
	return string(data), nil
}

func hexTokensToBytes(tokens []string) []byte {
	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			continue
		}
		out = append(out, byte(n))
	}
	return out
}
