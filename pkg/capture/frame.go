package capture

import (
	"hash/crc32"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/disgo/pkg/codec"
)

// idLength is the binary size of a KSUID.
const idLength = 20

// FrameHeaderSize is the number of bytes before the PDU in an encoded frame.
const FrameHeaderSize = 4 + 4 + 8 + idLength + 1 + 3

// MaxPDUSize bounds the PDU length a frame header may claim. DIS lengths are 16-bit.
const MaxPDUSize = 1<<16 - 1

// Frame is one captured PDU with its capture metadata.
type Frame struct {
	CRC32     uint32          // CRC32 over every field after itself
	Length    uint32          // Length of PDU in bytes
	Timestamp uint64          // Capture time, Unix nanoseconds
	ID        ksuid.KSUID     // Capture ID, sortable by capture time
	Order     codec.ByteOrder // Byte order the PDU was captured in
	PDU       []byte          // Raw PDU bytes
}

// NewFrame wraps pdu in a frame stamped with the current time and a fresh ID.
func NewFrame(pdu []byte, order codec.ByteOrder) *Frame {
	now := time.Now()
	return &Frame{
		Length:    uint32(len(pdu)),
		Timestamp: uint64(now.UnixNano()),
		ID:        ksuid.New(),
		Order:     order,
		PDU:       pdu,
	}
}

// Encode serializes the frame, filling in its CRC.
// Format: [CRC32(4)][Length(4)][Timestamp(8)][ID(20)][Order(1)][Reserved(3)][PDU]
// All integers are little-endian.
func (f *Frame) Encode() ([]byte, error) {
	if len(f.PDU) > MaxPDUSize {
		return nil, errors.Wrapf(ErrFrameTooLarge, "%d bytes", len(f.PDU))
	}
	f.Length = uint32(len(f.PDU))
	f.CRC32 = f.calculateCRC32()

	w := codec.NewWriterSize(codec.LittleEndian, f.Size())
	w.Uint32(f.CRC32)
	f.writeBody(w)
	return w.Bytes(), w.Err()
}

// DecodeFrame parses an encoded frame. It does not check the CRC; call Validate.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, errors.Wrapf(ErrShortFrame, "%d bytes, header needs %d", len(data), FrameHeaderSize)
	}

	r := codec.NewReader(data, codec.LittleEndian)
	f := &Frame{
		CRC32:     r.Uint32(),
		Length:    r.Uint32(),
		Timestamp: r.Uint64(),
	}
	var id [idLength]byte
	r.ReadFull(id[:])
	f.ID = ksuid.KSUID(id)
	f.Order = codec.ByteOrder(r.Uint8())
	r.Skip(3)

	if f.Length > MaxPDUSize {
		return nil, errors.Wrapf(ErrCorruption, "frame claims a %d byte PDU", f.Length)
	}
	if r.Remaining() < int(f.Length) {
		return nil, errors.Wrapf(ErrShortFrame, "PDU needs %d bytes, %d remaining", f.Length, r.Remaining())
	}
	f.PDU = data[FrameHeaderSize : FrameHeaderSize+int(f.Length)]
	return f, nil
}

// Validate checks the frame's CRC and byte order.
func (f *Frame) Validate() error {
	if got := f.calculateCRC32(); f.CRC32 != got {
		return errors.Wrapf(ErrCorruption, "CRC32 mismatch: stored %08x, computed %08x", f.CRC32, got)
	}
	if f.Order != codec.BigEndian && f.Order != codec.LittleEndian {
		return errors.Wrapf(ErrCorruption, "unknown byte order %d", uint8(f.Order))
	}
	return nil
}

// Size returns the encoded size of the frame.
func (f *Frame) Size() int {
	return FrameHeaderSize + len(f.PDU)
}

// Time returns the capture timestamp.
func (f *Frame) Time() time.Time {
	return time.Unix(0, int64(f.Timestamp))
}

func (f *Frame) writeBody(w *codec.Writer) {
	w.Uint32(f.Length)
	w.Uint64(f.Timestamp)
	w.Write(f.ID[:])
	w.Uint8(uint8(f.Order))
	w.Zero(3)
	w.Write(f.PDU)
}

func (f *Frame) calculateCRC32() uint32 {
	w := codec.NewWriterSize(codec.LittleEndian, f.Size()-4)
	f.writeBody(w)
	return crc32.ChecksumIEEE(w.Bytes())
}
