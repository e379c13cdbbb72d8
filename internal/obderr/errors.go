// Package obderr defines the closed set of error kinds this client raises,
// per the "no-data is never an error" policy: transport failures propagate,
// a missing reading does not.
package obderr

import "fmt"

// Kind is a closed enumeration of error categories.
type Kind int

const (
	Unspecified Kind = iota
	ConnectionFailed
	NoConnection
	InitFailed
	InvalidResponse
	InvalidCommand
	NoData
	DTCClearFailed
	TransportRead
	TransportWrite
	InvalidVinLength
	InvalidCharacter
	InvalidCheckDigit
	VPICConnectFailed
	VPICNoLookupTable
	VPICQueryError
	NoResultsFound
	InvalidVinSchemaId
	InvalidVSpecSchemaId
	InvalidVSpecPatternId
	ParseError
)

func (k Kind) String() string {
	switch k {
	case ConnectionFailed:
		return "ConnectionFailed"
	case NoConnection:
		return "NoConnection"
	case InitFailed:
		return "InitFailed"
	case InvalidResponse:
		return "InvalidResponse"
	case InvalidCommand:
		return "InvalidCommand"
	case NoData:
		return "NoData"
	case DTCClearFailed:
		return "DTCClearFailed"
	case TransportRead:
		return "TransportRead"
	case TransportWrite:
		return "TransportWrite"
	case InvalidVinLength:
		return "InvalidVinLength"
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidCheckDigit:
		return "InvalidCheckDigit"
	case VPICConnectFailed:
		return "VPICConnectFailed"
	case VPICNoLookupTable:
		return "VPICNoLookupTable"
	case VPICQueryError:
		return "VPICQueryError"
	case NoResultsFound:
		return "NoResultsFound"
	case InvalidVinSchemaId:
		return "InvalidVinSchemaId"
	case InvalidVSpecSchemaId:
		return "InvalidVSpecSchemaId"
	case InvalidVSpecPatternId:
		return "InvalidVSpecPatternId"
	case ParseError:
		return "ParseError"
	default:
		return "Unspecified"
	}
}

// Error is the single error type every package in this module returns. It
// carries a Kind plus an optional wrapped cause and structured detail
// fields used by a handful of kinds (InvalidCharacter, InvalidCheckDigit).
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	// Detail fields, populated only for the kinds that need them.
	Char     byte
	Position int
	Expected byte
	Found    byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, obderr.New(kind)) match any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New builds a bare *Error carrying only a Kind, usable as an errors.Is sentinel.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap builds an *Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Msg builds an *Error of the given kind with a free-text message.
func Msg(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// InvalidCharacterErr builds the structured InvalidCharacter error.
func InvalidCharacterErr(ch byte, pos int, msg string) *Error {
	return &Error{Kind: InvalidCharacter, Char: ch, Position: pos, Message: msg}
}

// InvalidCheckDigitErr builds the structured InvalidCheckDigit error.
func InvalidCheckDigitErr(expected, found byte) *Error {
	return &Error{Kind: InvalidCheckDigit, Expected: expected, Found: found}
}
