package codec

import "math"

// Writer appends primitives to a growing byte slice.
// Like Reader, it keeps the first error and ignores writes after it.
type Writer struct {
	buf   []byte
	order byteOrder
	err   error
}

// NewWriter returns an empty Writer using the given byte order.
func NewWriter(order ByteOrder) *Writer {
	return &Writer{order: order.impl()}
}

// NewWriterSize returns a Writer with capacity for n bytes.
func NewWriterSize(order ByteOrder, n int) *Writer {
	return &Writer{buf: make([]byte, 0, n), order: order.impl()}
}

func (w *Writer) Uint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = w.order.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = w.order.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	if w.err != nil {
		return
	}
	w.buf = w.order.AppendUint64(w.buf, v)
}

func (w *Writer) Int8(v int8)   { w.Uint8(uint8(v)) }
func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }
func (w *Writer) Int32(v int32) { w.Uint32(uint32(v)) }
func (w *Writer) Int64(v int64) { w.Uint64(uint64(v)) }

func (w *Writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }
func (w *Writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }

// Write appends p verbatim.
func (w *Writer) Write(p []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, p...)
}

// Zero appends n zero bytes.
func (w *Writer) Zero(n int) {
	if w.err != nil || n <= 0 {
		return
	}
	for range n {
		w.buf = append(w.buf, 0)
	}
}

// Bytes returns the bytes written so far. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len is the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Err returns the first error recorded with Fail.
func (w *Writer) Err() error { return w.err }

// Fail records err unless an earlier error is already set.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
