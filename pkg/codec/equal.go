package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are the same record type with identical field
// values in wire order. Nested records compare structurally, lists compare
// element-wise, and floats compare by bit pattern so NaN payloads and signed
// zeros must match exactly.
func Equal(a, b Record) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return slices.EqualFunc(flatten(a), flatten(b), func(x, y token) bool {
		return x.kind == y.kind && x.bits == y.bits && bytes.Equal(x.data, y.data)
	})
}

// Hash returns a structural hash of r consistent with Equal.
func Hash(r Record) uint64 {
	d := xxhash.New()
	var scratch [9]byte
	for _, t := range flatten(r) {
		scratch[0] = byte(t.kind)
		binary.LittleEndian.PutUint64(scratch[1:], t.bits)
		_, _ = d.Write(scratch[:])
		if t.kind == kindBytes {
			_, _ = d.Write(t.data)
		}
	}
	return d.Sum64()
}

type tokenKind uint8

const (
	kindUint tokenKind = iota + 1
	kindInt
	kindFloat32
	kindFloat64
	kindBytes
	kindCount
)

type token struct {
	kind tokenKind
	bits uint64
	data []byte
}

func flatten(r Record) []token {
	f := &flattener{}
	r.VisitFields(f)
	return f.tokens
}

// flattener reduces a record to a linear token stream. Derived fields are
// skipped since they are functions of the fields that are visited.
type flattener struct {
	tokens []token
}

func (f *flattener) uint(v uint64) { f.tokens = append(f.tokens, token{kind: kindUint, bits: v}) }
func (f *flattener) int(v int64)   { f.tokens = append(f.tokens, token{kind: kindInt, bits: uint64(v)}) }

func (f *flattener) Uint8(_ string, p *uint8)   { f.uint(uint64(*p)) }
func (f *flattener) Uint16(_ string, p *uint16) { f.uint(uint64(*p)) }
func (f *flattener) Uint32(_ string, p *uint32) { f.uint(uint64(*p)) }
func (f *flattener) Uint64(_ string, p *uint64) { f.uint(*p) }
func (f *flattener) Int8(_ string, p *int8)     { f.int(int64(*p)) }
func (f *flattener) Int16(_ string, p *int16)   { f.int(int64(*p)) }
func (f *flattener) Int32(_ string, p *int32)   { f.int(int64(*p)) }
func (f *flattener) Int64(_ string, p *int64)   { f.int(*p) }

func (f *flattener) Float32(_ string, p *float32) {
	f.tokens = append(f.tokens, token{kind: kindFloat32, bits: uint64(math.Float32bits(*p))})
}

func (f *flattener) Float64(_ string, p *float64) {
	f.tokens = append(f.tokens, token{kind: kindFloat64, bits: math.Float64bits(*p)})
}

func (f *flattener) Bytes(_ string, p []byte) {
	f.tokens = append(f.tokens, token{kind: kindBytes, bits: uint64(len(p)), data: p})
}

func (f *flattener) Record(_ string, r Record) { r.VisitFields(f) }

func (f *flattener) Count(_ string, _ Width, n int) int {
	f.tokens = append(f.tokens, token{kind: kindCount, bits: uint64(n)})
	return n
}

func (f *flattener) Derived(string, Width, func() uint64) {}

func (f *flattener) Opaque(_ string, p *[]byte, _ int, _ int) {
	f.tokens = append(f.tokens, token{kind: kindBytes, bits: uint64(len(*p)), data: *p})
}

func (f *flattener) List(_ string, _ int, list ListAccess) {
	for i := range list.Len() {
		list.At(i).VisitFields(f)
	}
}
