package pdu

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownType is returned when no factory is registered for a (version, type) pair.
	ErrUnknownType = errors.New("pdu: unknown PDU type")
	// ErrInvalidLength is returned for a header length shorter than the header itself.
	ErrInvalidLength = errors.New("pdu: invalid length")
	// ErrPDUTooLarge is returned by MarshalWithLength when the PDU does not fit the 16-bit length field.
	ErrPDUTooLarge = errors.New("pdu: PDU exceeds 65535 bytes")
)

// DecodeError reports a failure to decode the record at Offset in a buffer.
type DecodeError struct {
	Offset  int
	Version ProtocolVersion
	Type    Type
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pdu: %s (%s) at offset %d: %v", e.Type, e.Version, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
