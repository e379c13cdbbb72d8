// Package transport implements the serial link to the ELM327 adapter:
// opening the port, writing framed commands, and reading until the
// adapter's prompt byte. Grounded on the teacher's tarm/serial wiring
// (main.go, cmd/agent-j1587/bus.go) and its byte-at-a-time read loop
// (internal/j1587/j1587.go's readFrames).
package transport

import (
	"log"
	"strings"
	"time"

	"github.com/tarm/serial"

	"github.com/provrb/obdium/internal/obderr"
)

// Prompt is the ELM327 prompt byte terminating every response.
const Prompt = '>'

// readTimeout matches §4.2: the port is opened with a 3-second read
// timeout, the only escape from a hung link.
const readTimeout = 3 * time.Second

// interByteSleep is the poll interval used by ReadUntil on a zero-byte
// read, grounded on the teacher's readFrames loop.
const interByteSleep = 10 * time.Millisecond

// Transport owns the open serial port.
type Transport struct {
	port *serial.Port
	name string
	baud int
}

// New constructs a disconnected Transport.
func New() *Transport {
	return &Transport{}
}

// Open acquires the serial port at the given baud rate.
func (t *Transport) Open(portName string, baud int) error {
	cfg := &serial.Config{
		Name:        portName,
		Baud:        baud,
		ReadTimeout: readTimeout,
	}
	port, err := serial.OpenPort(cfg)
	if err != nil {
		return obderr.Wrap(obderr.ConnectionFailed, err)
	}
	t.port = port
	t.name = portName
	t.baud = baud
	return nil
}

// Connected reports whether the port is open.
func (t *Transport) Connected() bool {
	return t.port != nil
}

// Name returns the configured port name, "" if disconnected.
func (t *Transport) Name() string { return t.name }

// Baud returns the configured baud rate, 0 if disconnected.
func (t *Transport) Baud() int { return t.baud }

// Close releases the serial port.
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}

// Write clears both serial buffers, then writes cmd followed by the
// 0x0D terminator, per §4.1.
func (t *Transport) Write(cmd []byte) error {
	if t.port == nil {
		return obderr.New(obderr.NoConnection)
	}
	t.port.Flush()

	if len(cmd) == 0 {
		return nil
	}

	framed := append(append([]byte(nil), cmd...), '\r')
	if _, err := t.port.Write(framed); err != nil {
		return obderr.Wrap(obderr.TransportWrite, err)
	}
	return nil
}

// ReadUntil reads one byte at a time until terminator is seen (not
// included in the result), sleeping interByteSleep on a zero-byte read
// and returning whatever has been accumulated on a read error, per §4.2.
func (t *Transport) ReadUntil(terminator byte) (string, error) {
	if t.port == nil {
		return "", obderr.New(obderr.NoConnection)
	}

	var buf [1]byte
	var sb strings.Builder

	for {
		n, err := t.port.Read(buf[:])
		if n == 1 {
			if buf[0] == terminator {
				break
			}
			sb.WriteByte(buf[0])
			continue
		}
		if err != nil {
			log.Printf("transport: read error, returning accumulated buffer: %v", err)
			break
		}
		time.Sleep(interByteSleep)
	}

	response := sb.String()
	if strings.Contains(response, "UNABLE TO CONNECT") {
		return response, obderr.New(obderr.NoConnection)
	}
	return response, nil
}
