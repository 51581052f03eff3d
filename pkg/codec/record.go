package codec

// Width is the byte width of a count or derived-length field.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// Max returns the largest value representable in w bytes.
func (w Width) Max() uint64 {
	return uint64(1)<<(8*uint(w)) - 1
}

// Record is any fixed-layout wire structure: a PDU or a nested record.
//
// VisitFields must call the visitor once per field in wire order. That single
// declaration drives marshal, unmarshal, size, equality, hashing and dumps, so
// none of them can drift from the others.
type Record interface {
	VisitFields(v Visitor)
}

// Visitor receives the fields of a Record in wire order.
//
// Pointer arguments let one declaration serve both directions: encoders read
// through them, decoders write through them.
type Visitor interface {
	Uint8(name string, p *uint8)
	Uint16(name string, p *uint16)
	Uint32(name string, p *uint32)
	Uint64(name string, p *uint64)
	Int8(name string, p *int8)
	Int16(name string, p *int16)
	Int32(name string, p *int32)
	Int64(name string, p *int64)
	Float32(name string, p *float32)
	Float64(name string, p *float64)

	// Bytes visits a fixed-length byte array.
	Bytes(name string, p []byte)

	// Record visits a nested record.
	Record(name string, r Record)

	// Count visits a count field of the given width for a collection whose
	// live length is n. Encoders write n; decoders read the wire value. The
	// return value is the element count the matching collection must use.
	Count(name string, width Width, n int) int

	// Derived visits a field computed from the rest of the record, such as a
	// length in 32-bit words. Encoders write value(); decoders skip it.
	Derived(name string, width Width, value func() uint64)

	// Opaque visits n bytes held in *p followed by zero padding up to a
	// multiple of align.
	Opaque(name string, p *[]byte, n int, align int)

	// List visits n repeated sub-records. Use VisitList rather than calling
	// this directly.
	List(name string, n int, list ListAccess)
}

// ListAccess gives visitors uniform access to a slice of records.
type ListAccess interface {
	Len() int
	// Resize replaces the slice with n fresh zero-valued elements.
	Resize(n int)
	At(i int) Record
	// MinSize is the marshalled size of a zero-valued element.
	MinSize() int
}

type sliceAccess[T any, P interface {
	*T
	Record
}] struct {
	s *[]T
}

func (a sliceAccess[T, P]) Len() int { return len(*a.s) }

func (a sliceAccess[T, P]) Resize(n int) {
	if n == 0 {
		*a.s = nil
		return
	}
	*a.s = make([]T, n)
}

func (a sliceAccess[T, P]) At(i int) Record { return P(&(*a.s)[i]) }

func (a sliceAccess[T, P]) MinSize() int {
	var zero T
	return Size(P(&zero))
}

// VisitList visits the records of *s. n must be the value returned by the
// list's Count call.
func VisitList[T any, P interface {
	*T
	Record
}](v Visitor, name string, n int, s *[]T) {
	v.List(name, n, sliceAccess[T, P]{s: s})
}

func padding(n, align int) int {
	if align <= 1 {
		return 0
	}
	return (align - n%align) % align
}
