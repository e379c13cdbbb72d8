// Package command implements the outbound Command sum type: a PID query,
// an AT adapter-control command, a raw service query, an arbitrary string,
// or the empty Default.
package command

import "github.com/provrb/obdium/internal/obderr"

// Kind tags which variant a Command currently holds, grounded on the
// teacher's common.CommandType tagged-struct pattern.
type Kind int

const (
	KindDefault Kind = iota
	KindPID
	KindAT
	KindService
	KindArbitrary
)

// Command carries exactly one variant's payload at a time; only the
// setter matching the current Kind mutates the instance (Default is the
// only Kind any setter may promote from).
type Command struct {
	kind      Kind
	pid       [4]byte
	at        []byte
	svc       [2]byte
	arbitrary string
}

// NewPID builds a PID command from its 4 ASCII hex bytes.
func NewPID(pid [4]byte) Command {
	return Command{kind: KindPID, pid: pid}
}

// NewAT builds an AT command; the caller is expected to pass a literal
// beginning with "AT" of at least 3 bytes (SetAT enforces this on mutation,
// construction trusts the caller as the source does).
func NewAT(at []byte) Command {
	return Command{kind: KindAT, at: at}
}

// NewService builds a raw service-query command from its 2 ASCII hex bytes.
func NewService(svc [2]byte) Command {
	return Command{kind: KindService, svc: svc}
}

// NewArbitrary builds a free-text command.
func NewArbitrary(msg string) Command {
	return Command{kind: KindArbitrary, arbitrary: msg}
}

// Kind reports the active variant.
func (c Command) Kind() Kind {
	return c.kind
}

// SetPID mutates c in place if it is Default or already a PID command.
func (c *Command) SetPID(pid [4]byte) {
	if c.kind == KindDefault {
		c.kind = KindPID
	}
	if c.kind != KindPID {
		return
	}
	c.pid = pid
	c.at = nil
}

// SetAT mutates c in place if it is Default or already an AT command.
// Returns false (without mutating) if at is shorter than 3 bytes.
func (c *Command) SetAT(at []byte) bool {
	if len(at) < 3 {
		return false
	}
	if c.kind == KindDefault {
		c.kind = KindAT
	}
	if c.kind != KindAT {
		return false
	}
	c.pid = [4]byte{}
	c.at = at
	return true
}

// SetService mutates c in place if it is Default or already a service command.
func (c *Command) SetService(svc [2]byte) {
	if c.kind == KindDefault {
		c.kind = KindService
	}
	if c.kind != KindService {
		return
	}
	c.svc = svc
}

// PID returns the PID payload, zero value if c is not a PID command.
func (c Command) PID() [4]byte { return c.pid }

// AT returns the AT payload, nil if c is not an AT command.
func (c Command) AT() []byte { return c.at }

// Service returns the service payload, zero value if c is not a service command.
func (c Command) Service() [2]byte { return c.svc }

// Message returns the arbitrary payload, "" if c is not an arbitrary command.
func (c Command) Message() string { return c.arbitrary }

// Bytes renders c to the wire bytes the transport writes before the
// terminator, per §4.1 of the encoder spec.
func (c Command) Bytes() []byte {
	switch c.kind {
	case KindPID:
		return append([]byte(nil), c.pid[:]...)
	case KindAT:
		return append([]byte(nil), c.at...)
	case KindService:
		return append([]byte(nil), c.svc[:]...)
	case KindArbitrary:
		return []byte(c.arbitrary)
	default:
		return nil
	}
}

// String renders c the same way Bytes does, as UTF-8 text.
func (c Command) String() string {
	return string(c.Bytes())
}

// RedirectFreezeFrame rewrites a PID command whose first two bytes spell
// service "01" to service "02" in place, per §4.1 freeze-frame redirection.
// All other command kinds are left untouched.
func (c *Command) RedirectFreezeFrame() {
	if c.kind != KindPID {
		return
	}
	if c.pid[0] == '0' && c.pid[1] == '1' {
		c.pid[1] = '2'
	}
}

// Validate returns InvalidCommand if c is the empty Default variant, which
// is never a legal value to transmit.
func (c Command) Validate() error {
	if c.kind == KindDefault {
		return obderr.Msg(obderr.InvalidCommand, "attempt to transmit a Default command")
	}
	return nil
}
