// Package response implements the Response model and parser: extracting
// responding-ECU identifiers, payload size, service echo and payload bytes
// out of an ELM327 reply, per §4.4/§4.5 of the protocol design.
package response

import (
	"strconv"
	"strings"
)

// Response carries the raw/normalized text of one ELM327 reply plus
// everything derived from it.
type Response struct {
	Raw              string
	Formatted        string
	Service          [2]byte
	RespondingECUs   []string
	PayloadSize      int
	payload          string
	payloadComputed  bool
}

// NoData builds the sentinel empty Response (payload_size == 0).
func NoData() Response {
	return Response{}
}

// IsNoData reports whether r carries no payload, per the invariant in §3:
// payload_size == 0 means the Response is semantically "no data".
func (r Response) IsNoData() bool {
	return r.PayloadSize == 0
}

// MapNoData invokes op(r) unless r is no-data, in which case it returns
// noData without calling op — callers pass a function producing a Scalar.
func MapNoData[T any](r Response, noData T, op func(Response) T) T {
	if r.IsNoData() {
		return noData
	}
	return op(r)
}

// extractECUNames returns the 3-hex-char leading token of every line that
// has at least 3 whitespace-separated tokens, in order of first appearance
// (duplicates kept once), per §4.4 step 2.
func extractECUNames(s string) []string {
	seen := map[string]bool{}
	var names []string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := fields[0]
		if len(name) != 3 {
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// extractPayloadSize returns the second whitespace-separated token of the
// first line, parsed as hex, per §4.4 step 3.
func extractPayloadSize(s string) int {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0
	}
	n, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

func stripECUNames(s string, names []string) string {
	for _, n := range names {
		s = strings.ReplaceAll(s, n, "")
	}
	return s
}

// formatPairs reformats a contiguous hex string as space-separated byte
// pairs, e.g. "410C1AF8" -> "41 0C 1A F8".
func formatPairs(s string) string {
	var b strings.Builder
	for i := 0; i+1 < len(s); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
		b.WriteByte(s[i+1])
	}
	// odd trailing byte: keep it, matching the Rust chunks(2) behavior of
	// yielding a short final chunk.
	if len(s)%2 == 1 {
		if len(s) > 1 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[len(s)-1])
	}
	return b.String()
}

// ParsePID parses a raw multi-line PID-query reply per §4.4.
func ParsePID(raw string) (Response, error) {
	normalized := strings.ReplaceAll(raw, "SEARCHING...", "")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	payloadSize := extractPayloadSize(normalized)
	ecuNames := extractECUNames(normalized)

	stripped := strings.ReplaceAll(normalized, " ", "")
	stripped = strings.ReplaceAll(stripped, "\n", "")
	// Match the two-hex-digit-uppercase form used on the wire.
	hexTok := strings.ToUpper(strconv.FormatInt(int64(payloadSize), 16))
	if len(hexTok) == 1 {
		hexTok = "0" + hexTok
	}
	stripped = strings.Replace(stripped, hexTok, "", 1)

	stripped = stripECUNames(stripped, ecuNames)

	if strings.Contains(stripped, "NODATA") {
		return Response{}, errNoData
	}
	if len(stripped) < 2 {
		return Response{}, errInvalidResponse
	}

	formatted := formatPairs(stripped)
	noWhitespace := strings.ReplaceAll(formatted, " ", "")
	if len(noWhitespace) < 2 {
		return Response{}, errInvalidResponse
	}

	r := Response{
		Raw:            raw,
		Formatted:      formatted,
		RespondingECUs: ecuNames,
		PayloadSize:    payloadSize,
		Service:        [2]byte{noWhitespace[0], noWhitespace[1]},
	}
	r.payload, r.payloadComputed = r.computePayload(), true
	return r, nil
}

// computePayload extracts the payload substring from Formatted per the
// echo-detection rules in §4.4: a Service-01 echo starts with 0x41, a
// Mode-22 echo starts with "62" and the payload begins 9 chars into the
// space-separated Formatted string instead of 6. The result has no spaces.
func (r Response) computePayload() string {
	f := r.Formatted
	if strings.HasPrefix(f, "62") {
		if len(f) < 9 {
			return ""
		}
		return strings.ReplaceAll(f[9:], " ", "")
	}
	if strings.HasPrefix(f, "41") {
		if len(f) < 6 {
			return ""
		}
		return strings.ReplaceAll(f[6:], " ", "")
	}
	return ""
}

// PayloadBytes splits the extracted payload into its constituent hex byte
// strings, e.g. "1AF8" -> ["1A", "F8"].
func (r Response) PayloadBytes() [][]byte {
	payload := r.payload
	if !r.payloadComputed {
		payload = r.computePayload()
	}
	if payload == "" {
		return nil
	}
	var out [][]byte
	for i := 0; i+1 < len(payload); i += 2 {
		out = append(out, []byte{payload[i], payload[i+1]})
	}
	return out
}

func (r Response) component(idx int) int {
	bytes := r.PayloadBytes()
	if idx >= len(bytes) {
		return 0
	}
	n, err := strconv.ParseUint(string(bytes[idx]), 16, 8)
	if err != nil {
		return 0
	}
	return int(n)
}

// A, B, C, D, E return the Nth payload byte as an integer in [0, 255], or
// 0 if that position is absent.
func (r Response) A() int { return r.component(0) }
func (r Response) B() int { return r.component(1) }
func (r Response) C() int { return r.component(2) }
func (r Response) D() int { return r.component(3) }
func (r Response) E() int { return r.component(4) }
