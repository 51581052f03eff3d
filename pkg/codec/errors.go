package codec

import "github.com/cockroachdb/errors"

var (
	// ErrTruncated is returned when a read would run past the end of the buffer.
	ErrTruncated = errors.New("codec: truncated buffer")
	// ErrCountOverflow is returned when a collection is too long for its count field.
	ErrCountOverflow = errors.New("codec: count exceeds field width")
	// ErrCountExceedsBuffer is returned when a decoded count promises more
	// elements than the remaining bytes could hold.
	ErrCountExceedsBuffer = errors.New("codec: count exceeds remaining bytes")
	// ErrInvalidByteOrder is returned by ParseByteOrder.
	ErrInvalidByteOrder = errors.New("codec: invalid byte order")
)
