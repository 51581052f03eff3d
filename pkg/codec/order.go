package codec

import (
	"encoding/binary"
	"strings"

	"github.com/cockroachdb/errors"
)

// ByteOrder selects how multi-byte primitives are laid out on the wire.
// It is configured per Reader/Writer, never detected from the data.
type ByteOrder uint8

const (
	// BigEndian is network byte order, the order DIS uses on the wire.
	BigEndian ByteOrder = iota
	// LittleEndian is used by some recorders and test harnesses.
	LittleEndian
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o ByteOrder) impl() byteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// String returns "big" or "little".
func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}

// Uint16 decodes the first two bytes of b in this byte order.
func (o ByteOrder) Uint16(b []byte) uint16 {
	return o.impl().Uint16(b)
}

// PutUint16 encodes v into the first two bytes of b in this byte order.
func (o ByteOrder) PutUint16(b []byte, v uint16) {
	o.impl().PutUint16(b, v)
}

// ParseByteOrder accepts "big", "network", "be", "little" and "le" in any case.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "network", "big-endian":
		return BigEndian, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	default:
		return BigEndian, errors.Wrapf(ErrInvalidByteOrder, "%q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so byte orders read naturally in config files.
func (o ByteOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
