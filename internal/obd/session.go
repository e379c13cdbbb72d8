// Package obd implements the OBD session: init handshake, command
// routing (with freeze-frame redirection), ISO-TP reassembly, the PID
// reader catalog, DTC read/clear, Mode 06 monitor tests and Mode 22
// dynamic-formula evaluation. Grounded on
// original_source/backend/src/obd.rs plus the pid/*.rs readers, and on
// the teacher's dispatch-by-PID switch style (internal/j1587/j1587.go).
package obd

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/provrb/obdium/internal/command"
	"github.com/provrb/obdium/internal/obderr"
	"github.com/provrb/obdium/internal/replay"
	"github.com/provrb/obdium/internal/response"
	"github.com/provrb/obdium/internal/scalar"
	"github.com/provrb/obdium/internal/transport"
)

// Session owns the transport and all per-connection state. It is
// single-threaded with respect to the transport: only one outbound
// request may be in flight (§5). Callers needing concurrency wrap a
// Session in their own synchronization — it does not prescribe one
// (design note, §9).
type Session struct {
	tr *transport.Transport

	version string

	freezeFrame bool

	recording bool
	replaying bool
	journal   *replay.Journal

	prefs *scalar.Preferences

	codeDescriptions DescriptionLookup
}

// New constructs a disconnected Session.
func New() *Session {
	return &Session{tr: transport.New()}
}

// SetPreferences attaches a unit-preferences bundle used by every PID
// reader when constructing its Scalar result.
func (s *Session) SetPreferences(p scalar.Preferences) {
	s.prefs = &p
}

// Version returns the adapter identification string captured from the
// ATZ reply during init, "" if never connected.
func (s *Session) Version() string { return s.version }

// Connected reports whether the underlying transport is open (replay
// sessions report true without ever opening a transport).
func (s *Session) Connected() bool {
	return s.replaying || s.tr.Connected()
}

// SetFreezeFrame toggles the freeze-frame redirection flag (§4.1).
func (s *Session) SetFreezeFrame(state bool) {
	s.freezeFrame = state
}

// Record points the session at a JSON journal file and starts appending
// every request/response round-trip to it. Recording and replay are
// mutually exclusive: starting a recording disables replay.
func (s *Session) Record(path string) error {
	j, err := replay.Open(path)
	if err != nil {
		log.Printf("obd: failed to open journal %q for recording: %v", path, err)
		return err
	}
	s.journal = j
	s.recording = true
	s.replaying = false
	return nil
}

// StopRecording disables recording without discarding the journal handle.
func (s *Session) StopRecording() {
	s.recording = false
}

// Replay toggles replay mode. Enabling replay resets all Played flags in
// the journal and disables recording, per §4.10.
func (s *Session) Replay(state bool, path string) error {
	if state {
		j, err := replay.Open(path)
		if err != nil {
			return err
		}
		s.journal = j
		if err := s.journal.ResetPlayed(); err != nil {
			log.Printf("obd: failed to reset played flags: %v", err)
		}
		s.recording = false
	}
	s.replaying = state
	return nil
}

// Connect opens the serial transport at port/baud and runs the init
// handshake (§4.3). A replaying session skips the transport entirely.
func (s *Session) Connect(port string, baud int) error {
	if s.replaying {
		return nil
	}
	if s.tr.Connected() {
		return nil
	}
	if err := s.tr.Open(port, baud); err != nil {
		return err
	}
	if err := s.init(); err != nil {
		_ = s.tr.Close()
		return err
	}
	return nil
}

// Disconnect closes the transport, aborting any in-flight read.
func (s *Session) Disconnect() error {
	return s.tr.Close()
}

type initStep struct {
	at       string
	expectOK bool
}

var initSequence = []initStep{
	{"ATZ", false},
	{"ATE0", true},
	{"ATL0", true},
	{"ATH1", true},
	{"ATSP0", true},
}

// init runs the five-step AT handshake in §4.3. Any deviation yields
// InitFailed and leaves the caller to tear the session down.
func (s *Session) init() error {
	for _, step := range initSequence {
		cmd := command.NewAT([]byte(step.at))
		if err := s.send(cmd); err != nil {
			return obderr.Wrap(obderr.InitFailed, err)
		}
		reply, err := s.tr.ReadUntil(transport.Prompt)
		if err != nil {
			return obderr.Wrap(obderr.InitFailed, err)
		}
		formatted := strings.ReplaceAll(reply, "\r", "")

		if step.at == "ATZ" {
			s.version = formatted
			continue
		}
		if !strings.Contains(formatted, "OK") {
			log.Printf("obd: init step %s got unexpected reply %q", step.at, formatted)
			return obderr.Msg(obderr.InitFailed, "init step "+step.at+" did not reply OK")
		}
	}
	return nil
}

// send writes cmd's framed bytes to the transport. A replaying session
// is a no-op here; the response comes from the journal instead.
func (s *Session) send(cmd command.Command) error {
	if s.replaying {
		return nil
	}
	return s.tr.Write(cmd.Bytes())
}

// maybeRecord appends a request/response round trip to the journal if
// recording is enabled.
func (s *Session) maybeRecord(cmd command.Command, raw string) {
	if !s.recording || s.journal == nil {
		return
	}
	if err := s.journal.Record(cmd, raw); err != nil {
		log.Printf("obd: failed to record request: %v", err)
	}
}

// getATResponse reads to the prompt and returns the response with CRs
// stripped (no PID-specific parsing applied).
func (s *Session) getATResponse() (response.Response, string, error) {
	raw, err := s.tr.ReadUntil(transport.Prompt)
	if err != nil {
		return response.Response{}, raw, err
	}
	return response.Response{Raw: raw, Formatted: strings.ReplaceAll(raw, "\r", "")}, raw, nil
}

// getPIDResponse reads to the prompt and parses it as a PID reply.
func (s *Session) getPIDResponse() (response.Response, string, error) {
	raw, err := s.tr.ReadUntil(transport.Prompt)
	if err != nil {
		return response.Response{}, raw, err
	}
	r, perr := response.ParsePID(raw)
	return r, raw, perr
}

// Query issues request (after freeze-frame redirection) and returns the
// parsed Response, per §4.1/§4.13. Send, read and parse errors degrade
// to Response.NoData rather than propagating (only send errors are
// logged), matching the source's OBD::query behavior.
func (s *Session) Query(request command.Command) response.Response {
	if s.freezeFrame && request.Kind() == command.KindPID {
		request.RedirectFreezeFrame()
	}

	if err := s.send(request); err != nil {
		log.Printf("obd: send_command failed for %q: %v", request.String(), err)
		return response.NoData()
	}

	if s.replaying {
		entry, ok := s.replayed(request)
		if !ok {
			return response.NoData()
		}
		return entry
	}

	r, raw, err := s.getPIDResponse()
	if err != nil {
		r = response.NoData()
	}
	s.maybeRecord(request, raw)
	return r
}

// replayed resolves request against the journal, sleeping ReplaySleep to
// approximate vehicle latency, and parses the stored response through
// the path matching its recorded request type.
func (s *Session) replayed(request command.Command) (response.Response, bool) {
	if s.journal == nil {
		return response.Response{}, false
	}
	entry, found := s.journal.Next(request)
	if !found {
		return response.Response{}, false
	}
	time.Sleep(replay.ReplaySleep)

	switch entry.RequestType {
	case replay.RequestTypePID:
		r, err := response.ParsePID(entry.Response)
		if err != nil {
			return response.NoData(), true
		}
		return r, true
	default:
		return response.Response{Raw: entry.Response, Formatted: entry.Response}, true
	}
}

// GetProtocol queries the adapter's currently selected protocol string.
func (s *Session) GetProtocol() (string, error) {
	req := command.NewAT([]byte("AT DP"))
	if err := s.send(req); err != nil {
		return "", err
	}
	if s.replaying {
		entry, ok := s.replayed(req)
		if !ok {
			return "", obderr.New(obderr.InvalidResponse)
		}
		return entry.Formatted, nil
	}
	r, raw, err := s.getATResponse()
	if err != nil {
		return "", err
	}
	s.maybeRecord(req, raw)
	return r.Formatted, nil
}

// pidCmd builds a 4-char ASCII hex PID Command from a service byte and
// PID byte, e.g. pidCmd(0x01, 0x0C) -> "010C".
func pidCmd(service, pid byte) command.Command {
	s := strings.ToUpper(hex2(service) + hex2(pid))
	return command.NewPID([4]byte{s[0], s[1], s[2], s[3]})
}

// pidCmdStr builds a PID Command from a literal 4-char hex string, e.g.
// "0621".
func pidCmdStr(s string) command.Command {
	return command.NewPID([4]byte{s[0], s[1], s[2], s[3]})
}

func hex2(b byte) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}
