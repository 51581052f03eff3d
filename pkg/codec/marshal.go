package codec

import "github.com/cockroachdb/errors"

// Marshal encodes r in the given byte order. On error no bytes are returned.
func Marshal(r Record, order ByteOrder) ([]byte, error) {
	w := NewWriterSize(order, Size(r))
	if err := MarshalTo(w, r); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo appends r to w.
func MarshalTo(w *Writer, r Record) error {
	r.VisitFields(&encoder{w: w})
	return w.Err()
}

// Size returns the number of bytes Marshal would produce for r.
func Size(r Record) int {
	s := &sizer{}
	r.VisitFields(s)
	return s.n
}

type encoder struct {
	w *Writer
}

func (e *encoder) Uint8(_ string, p *uint8)     { e.w.Uint8(*p) }
func (e *encoder) Uint16(_ string, p *uint16)   { e.w.Uint16(*p) }
func (e *encoder) Uint32(_ string, p *uint32)   { e.w.Uint32(*p) }
func (e *encoder) Uint64(_ string, p *uint64)   { e.w.Uint64(*p) }
func (e *encoder) Int8(_ string, p *int8)       { e.w.Int8(*p) }
func (e *encoder) Int16(_ string, p *int16)     { e.w.Int16(*p) }
func (e *encoder) Int32(_ string, p *int32)     { e.w.Int32(*p) }
func (e *encoder) Int64(_ string, p *int64)     { e.w.Int64(*p) }
func (e *encoder) Float32(_ string, p *float32) { e.w.Float32(*p) }
func (e *encoder) Float64(_ string, p *float64) { e.w.Float64(*p) }
func (e *encoder) Bytes(_ string, p []byte)     { e.w.Write(p) }

func (e *encoder) Record(_ string, r Record) {
	r.VisitFields(e)
}

func (e *encoder) Count(name string, width Width, n int) int {
	e.sized(name, width, uint64(n))
	return n
}

func (e *encoder) Derived(name string, width Width, value func() uint64) {
	if e.w.Err() != nil {
		return
	}
	e.sized(name, width, value())
}

func (e *encoder) sized(name string, width Width, v uint64) {
	if v > width.Max() {
		e.w.Fail(errors.Wrapf(ErrCountOverflow, "%s: %d does not fit in %d bytes", name, v, width))
		return
	}
	switch width {
	case Width8:
		e.w.Uint8(uint8(v))
	case Width16:
		e.w.Uint16(uint16(v))
	default:
		e.w.Uint32(uint32(v))
	}
}

func (e *encoder) Opaque(name string, p *[]byte, n int, align int) {
	if len(*p) != n {
		e.w.Fail(errors.Newf("codec: %s holds %d bytes, count says %d", name, len(*p), n))
		return
	}
	e.w.Write(*p)
	e.w.Zero(padding(n, align))
}

func (e *encoder) List(_ string, _ int, list ListAccess) {
	for i := range list.Len() {
		list.At(i).VisitFields(e)
	}
}

type sizer struct {
	n int
}

func (s *sizer) Uint8(string, *uint8)     { s.n++ }
func (s *sizer) Uint16(string, *uint16)   { s.n += 2 }
func (s *sizer) Uint32(string, *uint32)   { s.n += 4 }
func (s *sizer) Uint64(string, *uint64)   { s.n += 8 }
func (s *sizer) Int8(string, *int8)       { s.n++ }
func (s *sizer) Int16(string, *int16)     { s.n += 2 }
func (s *sizer) Int32(string, *int32)     { s.n += 4 }
func (s *sizer) Int64(string, *int64)     { s.n += 8 }
func (s *sizer) Float32(string, *float32) { s.n += 4 }
func (s *sizer) Float64(string, *float64) { s.n += 8 }
func (s *sizer) Bytes(_ string, p []byte) { s.n += len(p) }

func (s *sizer) Record(_ string, r Record) {
	r.VisitFields(s)
}

func (s *sizer) Count(_ string, width Width, n int) int {
	s.n += int(width)
	return n
}

// Derived never evaluates value: the derived value may itself call Size.
func (s *sizer) Derived(_ string, width Width, _ func() uint64) {
	s.n += int(width)
}

func (s *sizer) Opaque(_ string, _ *[]byte, n int, align int) {
	s.n += n + padding(n, align)
}

func (s *sizer) List(_ string, _ int, list ListAccess) {
	for i := range list.Len() {
		list.At(i).VisitFields(s)
	}
}
