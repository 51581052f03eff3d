package codec

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Reader is a forward-only cursor over a byte buffer.
//
// Errors are sticky: once a read fails, every later read returns a zero value
// and Err reports the first failure. This keeps field-by-field decoding free
// of per-call error checks.
type Reader struct {
	buf   []byte
	off   int
	order byteOrder
	err   error
}

// NewReader returns a Reader over buf using the given byte order.
func NewReader(buf []byte, order ByteOrder) *Reader {
	return &Reader{buf: buf, order: order.impl()}
}

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.buf)-r.off < n {
		r.err = errors.Wrapf(ErrTruncated, "need %d bytes at offset %d, %d remaining",
			n, r.off, len(r.buf)-r.off)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Uint8 reads one byte.
func (r *Reader) Uint8() uint8 {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint16 reads a 16-bit unsigned integer.
func (r *Reader) Uint16() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return r.order.Uint16(b)
}

// Uint32 reads a 32-bit unsigned integer.
func (r *Reader) Uint32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return r.order.Uint32(b)
}

// Uint64 reads a 64-bit unsigned integer.
func (r *Reader) Uint64() uint64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return r.order.Uint64(b)
}

func (r *Reader) Int8() int8   { return int8(r.Uint8()) }
func (r *Reader) Int16() int16 { return int16(r.Uint16()) }
func (r *Reader) Int32() int32 { return int32(r.Uint32()) }
func (r *Reader) Int64() int64 { return int64(r.Uint64()) }

// Float32 reads an IEEE 754 single.
func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Float64 reads an IEEE 754 double.
func (r *Reader) Float64() float64 {
	return math.Float64frombits(r.Uint64())
}

// ReadFull fills dst from the buffer.
func (r *Reader) ReadFull(dst []byte) {
	b := r.next(len(dst))
	if b == nil {
		clear(dst)
		return
	}
	copy(dst, b)
}

// Bytes returns a copy of the next n bytes, or nil when n is zero.
func (r *Reader) Bytes(n int) []byte {
	b := r.next(n)
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) {
	r.next(n)
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Fail records err unless an earlier error is already set.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
