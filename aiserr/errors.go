// Package aiserr defines the distinguishable error taxonomy shared by
// the nmea, assembler, decode, and encode packages.
package aiserr

import "fmt"

// Kind identifies a class of error so callers can errors.As into an
// *Error and branch on Kind without string matching.
type Kind int

const (
	// KindUnknown is the zero value and should not be constructed directly.
	KindUnknown Kind = iota
	// KindInvalidChecksum covers a sentence or tag block XOR mismatch.
	KindInvalidChecksum
	// KindUnknownMessageType covers msg_type outside 1..27.
	KindUnknownMessageType
	// KindNonPrintableCharacter covers payload bytes outside the ASCII-6 alphabet.
	KindNonPrintableCharacter
	// KindMissingMultipartMessage covers an encode/decode request against a partial fragment set.
	KindMissingMultipartMessage
	// KindMissingPayload covers a zero-length assembled payload.
	KindMissingPayload
	// KindInvalidNMEAMessage covers a framing violation.
	KindInvalidNMEAMessage
	// KindInvalidData covers an encoder value exceeding its field width or enum domain.
	KindInvalidData
	// KindTooManyMessages covers a fragment count/index outside 1..9.
	KindTooManyMessages
)

func (k Kind) String() string {
	switch k {
	case KindInvalidChecksum:
		return "invalid_checksum"
	case KindUnknownMessageType:
		return "unknown_message_type"
	case KindNonPrintableCharacter:
		return "non_printable_character"
	case KindMissingMultipartMessage:
		return "missing_multipart_message"
	case KindMissingPayload:
		return "missing_payload"
	case KindInvalidNMEAMessage:
		return "invalid_nmea_message"
	case KindInvalidData:
		return "invalid_data"
	case KindTooManyMessages:
		return "too_many_messages"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned across package boundaries
// for any condition in the taxonomy above.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Kind == kind
}
