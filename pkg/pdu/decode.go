package pdu

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/disgo/pkg/codec"
)

// Unmarshal decodes the PDU at the start of buf using the default registry.
// Bytes after the first PDU are ignored.
func Unmarshal(buf []byte, order codec.ByteOrder) (PDU, error) {
	return UnmarshalWith(buf, DefaultRegistry(), order)
}

// UnmarshalWith is Unmarshal with an explicit registry.
func UnmarshalWith(buf []byte, reg *Registry, order codec.ByteOrder) (PDU, error) {
	f, err := peek(buf, 0, order)
	fail := func(err error) (PDU, error) {
		return nil, &DecodeError{Offset: 0, Version: f.version, Type: f.typ, Err: err}
	}
	if err != nil {
		return fail(err)
	}
	if f.length == 0 {
		return fail(errors.Wrap(ErrInvalidLength, "zero length"))
	}
	p, err := reg.New(f.version, f.typ)
	if err != nil {
		return fail(err)
	}
	if err := codec.Unmarshal(buf[:f.length], order, p); err != nil {
		return fail(err)
	}
	return p, nil
}

// UnmarshalAll decodes every PDU in buf. On error it returns the PDUs decoded
// before the failure together with the error that stopped the scan.
func UnmarshalAll(buf []byte, order codec.ByteOrder) ([]PDU, error) {
	s := NewScanner(buf, Options{Order: order})
	var out []PDU
	for s.Next() {
		out = append(out, s.PDU())
	}
	return out, s.Err()
}

// SplitRaw splits buf into the byte ranges of its PDUs without decoding them.
// Every framed record is returned, whatever its type. The slices alias buf.
func SplitRaw(buf []byte, order codec.ByteOrder) ([][]byte, error) {
	var out [][]byte
	for off := 0; off < len(buf); {
		f, err := peek(buf, off, order)
		if err != nil {
			return out, &DecodeError{Offset: off, Version: f.version, Type: f.typ, Err: err}
		}
		if f.length == 0 {
			break
		}
		out = append(out, buf[off:off+f.length])
		off += f.length
	}
	return out, nil
}

// MarshalWithLength sets the header length to the PDU's marshalled size and
// then marshals it. Use it for anything that goes on the wire.
func MarshalWithLength(p PDU, order codec.ByteOrder) ([]byte, error) {
	size := codec.Size(p)
	if size > math.MaxUint16 {
		return nil, errors.Wrapf(ErrPDUTooLarge, "%s is %d bytes", p.Type(), size)
	}
	p.PDUHeader().Length = uint16(size)
	return codec.Marshal(p, order)
}
