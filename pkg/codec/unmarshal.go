package codec

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Unmarshal decodes data into r. Trailing bytes after the record are ignored;
// use UnmarshalFrom when the caller needs to know how much was consumed.
//
// On error r may be partially populated and must be discarded.
func Unmarshal(data []byte, order ByteOrder, r Record) error {
	return UnmarshalFrom(NewReader(data, order), r)
}

// UnmarshalFrom decodes r from the reader's current position.
func UnmarshalFrom(rd *Reader, r Record) error {
	d := &decoder{r: rd}
	r.VisitFields(d)
	return rd.Err()
}

type decoder struct {
	r    *Reader
	path []string
	// failed is set once the first error has been annotated with its field path.
	failed bool
}

func (d *decoder) check(name string) {
	if d.failed || d.r.err == nil {
		return
	}
	d.failed = true
	d.r.err = errors.Wrapf(d.r.err, "field %s", d.fieldPath(name))
}

func (d *decoder) fieldPath(name string) string {
	if len(d.path) == 0 {
		return name
	}
	return strings.Join(d.path, ".") + "." + name
}

func (d *decoder) Uint8(name string, p *uint8)     { *p = d.r.Uint8(); d.check(name) }
func (d *decoder) Uint16(name string, p *uint16)   { *p = d.r.Uint16(); d.check(name) }
func (d *decoder) Uint32(name string, p *uint32)   { *p = d.r.Uint32(); d.check(name) }
func (d *decoder) Uint64(name string, p *uint64)   { *p = d.r.Uint64(); d.check(name) }
func (d *decoder) Int8(name string, p *int8)       { *p = d.r.Int8(); d.check(name) }
func (d *decoder) Int16(name string, p *int16)     { *p = d.r.Int16(); d.check(name) }
func (d *decoder) Int32(name string, p *int32)     { *p = d.r.Int32(); d.check(name) }
func (d *decoder) Int64(name string, p *int64)     { *p = d.r.Int64(); d.check(name) }
func (d *decoder) Float32(name string, p *float32) { *p = d.r.Float32(); d.check(name) }
func (d *decoder) Float64(name string, p *float64) { *p = d.r.Float64(); d.check(name) }

func (d *decoder) Bytes(name string, p []byte) {
	d.r.ReadFull(p)
	d.check(name)
}

func (d *decoder) Record(name string, r Record) {
	if d.r.err != nil {
		return
	}
	d.path = append(d.path, name)
	r.VisitFields(d)
	d.path = d.path[:len(d.path)-1]
}

func (d *decoder) Count(name string, width Width, _ int) int {
	n := int(d.read(width))
	d.check(name)
	return n
}

func (d *decoder) Derived(name string, width Width, _ func() uint64) {
	d.read(width)
	d.check(name)
}

func (d *decoder) read(width Width) uint64 {
	switch width {
	case Width8:
		return uint64(d.r.Uint8())
	case Width16:
		return uint64(d.r.Uint16())
	default:
		return uint64(d.r.Uint32())
	}
}

func (d *decoder) Opaque(name string, p *[]byte, n int, align int) {
	*p = d.r.Bytes(n)
	d.r.Skip(padding(n, align))
	d.check(name)
}

func (d *decoder) List(name string, n int, list ListAccess) {
	if d.r.err != nil {
		return
	}
	if n > 0 {
		minSize := max(list.MinSize(), 1)
		if n > d.r.Remaining()/minSize {
			d.r.Fail(errors.Wrapf(ErrCountExceedsBuffer, "%d elements of at least %d bytes, %d bytes remaining",
				n, minSize, d.r.Remaining()))
			d.check(name)
			return
		}
	}
	list.Resize(n)
	for i := range n {
		d.Record(name, list.At(i))
		if d.r.err != nil {
			return
		}
	}
}
