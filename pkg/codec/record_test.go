package codec

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float32
}

func (p *point) VisitFields(v Visitor) {
	v.Float32("x", &p.X)
	v.Float32("y", &p.Y)
}

// sample exercises every visitor method except the wide integers.
type sample struct {
	ID     uint16
	Kind   uint8
	Name   [4]byte
	Points []point
	Blob   []byte
}

func (s *sample) VisitFields(v Visitor) {
	v.Uint16("id", &s.ID)
	v.Uint8("kind", &s.Kind)
	n := v.Count("pointCount", Width8, len(s.Points))
	v.Bytes("name", s.Name[:])
	blobLen := v.Count("blobLength", Width16, len(s.Blob))
	v.Derived("totalWords", Width8, func() uint64 { return uint64(Size(s) / 4) })
	VisitList(v, "points", n, &s.Points)
	v.Opaque("blob", &s.Blob, blobLen, 4)
}

type wrapper struct {
	Seq   uint32
	Inner sample
}

func (w *wrapper) VisitFields(v Visitor) {
	v.Uint32("seq", &w.Seq)
	v.Record("inner", &w.Inner)
}

type wide struct {
	A uint64
	B int8
	C int16
	D int32
	E int64
	F float64
}

func (w *wide) VisitFields(v Visitor) {
	v.Uint64("a", &w.A)
	v.Int8("b", &w.B)
	v.Int16("c", &w.C)
	v.Int32("d", &w.D)
	v.Int64("e", &w.E)
	v.Float64("f", &w.F)
}

func newSample() *sample {
	return &sample{
		ID:     0x0102,
		Kind:   3,
		Name:   [4]byte{'a', 'b', 'c', 'd'},
		Points: []point{{X: 1, Y: 2}},
		Blob:   []byte{0xAA},
	}
}

func TestMarshal_BigEndianLayout(t *testing.T) {
	data, err := Marshal(newSample(), BigEndian)
	require.NoError(t, err)

	want := []byte{
		0x01, 0x02, // id
		0x03,                   // kind
		0x01,                   // pointCount
		'a', 'b', 'c', 'd', // name
		0x00, 0x01, // blobLength
		0x05,                   // totalWords
		0x3f, 0x80, 0x00, 0x00, // x
		0x40, 0x00, 0x00, 0x00, // y
		0xAA, 0x00, 0x00, 0x00, // blob + pad
	}
	assert.Equal(t, want, data)
	assert.Equal(t, len(want), Size(newSample()))
}

func TestMarshal_LittleEndianLayout(t *testing.T) {
	data, err := Marshal(newSample(), LittleEndian)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x02, 0x01}, data[0:2])
	assert.Equal(t, []byte{0x01, 0x00}, data[8:10])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, data[11:15])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   *sample
	}{
		{"single point", newSample()},
		{"empty collections", &sample{ID: 9}},
		{"many points", &sample{Points: make([]point, 40), Blob: bytes.Repeat([]byte{1}, 9)}},
		{"aligned blob", &sample{Blob: []byte{1, 2, 3, 4}}},
	}

	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		for _, tt := range tests {
			t.Run(order.String()+"/"+tt.name, func(t *testing.T) {
				data, err := Marshal(tt.in, order)
				require.NoError(t, err)
				assert.Len(t, data, Size(tt.in))

				var out sample
				require.NoError(t, Unmarshal(data, order, &out))
				assert.True(t, Equal(tt.in, &out))
				assert.Equal(t, Hash(tt.in), Hash(&out))
				assert.Len(t, out.Points, len(tt.in.Points))
			})
		}
	}
}

func TestRoundTrip_WidePrimitives(t *testing.T) {
	in := &wide{A: math.MaxUint64, B: -1, C: math.MinInt16, D: -123456, E: math.MinInt64, F: -0.125}
	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		data, err := Marshal(in, order)
		require.NoError(t, err)
		assert.Len(t, data, 8+1+2+4+8+8)

		var out wide
		require.NoError(t, Unmarshal(data, order, &out))
		assert.Equal(t, *in, out)
	}
}

func TestUnmarshal_ZeroCountsYieldNil(t *testing.T) {
	data, err := Marshal(&sample{Points: []point{}, Blob: []byte{}}, BigEndian)
	require.NoError(t, err)

	var out sample
	require.NoError(t, Unmarshal(data, BigEndian, &out))
	assert.Nil(t, out.Points)
	assert.Nil(t, out.Blob)
}

func TestUnmarshal_CountIsReadFromWire(t *testing.T) {
	data, err := Marshal(newSample(), BigEndian)
	require.NoError(t, err)

	// Pre-populated collections must not influence decoding.
	out := sample{Points: make([]point, 5), Blob: []byte{1, 2, 3}}
	require.NoError(t, Unmarshal(data, BigEndian, &out))
	assert.Len(t, out.Points, 1)
	assert.Equal(t, []byte{0xAA}, out.Blob)
}

func TestUnmarshal_Truncated(t *testing.T) {
	data, err := Marshal(newSample(), BigEndian)
	require.NoError(t, err)

	var out sample
	err = Unmarshal(data[:5], BigEndian, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.Contains(t, err.Error(), "field name")

	for i := range len(data) {
		err := Unmarshal(data[:i], BigEndian, &sample{})
		require.Error(t, err, "prefix %d", i)
		assert.True(t, errors.Is(err, ErrTruncated) || errors.Is(err, ErrCountExceedsBuffer), "prefix %d", i)
	}
}

func TestUnmarshal_NestedFieldPath(t *testing.T) {
	data, err := Marshal(&wrapper{Seq: 1, Inner: *newSample()}, BigEndian)
	require.NoError(t, err)

	err = Unmarshal(data[:10], BigEndian, &wrapper{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field inner.name")
}

func TestUnmarshal_CountExceedsBuffer(t *testing.T) {
	data := []byte{
		0x00, 0x01, 0x00,
		0xC8, // 200 points
		'a', 'b', 'c', 'd',
		0x00, 0x00,
		0x00,
	}
	err := Unmarshal(data, BigEndian, &sample{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountExceedsBuffer))
	assert.Contains(t, err.Error(), "points")
}

func TestMarshal_CountOverflow(t *testing.T) {
	s := &sample{Points: make([]point, 256)}
	data, err := Marshal(s, BigEndian)
	assert.Nil(t, data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountOverflow))
	assert.Contains(t, err.Error(), "pointCount")
}

func TestUnmarshalFrom_Sequential(t *testing.T) {
	a, err := Marshal(newSample(), BigEndian)
	require.NoError(t, err)
	b, err := Marshal(&sample{ID: 77}, BigEndian)
	require.NoError(t, err)

	rd := NewReader(append(a, b...), BigEndian)
	var first, second sample
	require.NoError(t, UnmarshalFrom(rd, &first))
	assert.Equal(t, len(a), rd.Offset())
	require.NoError(t, UnmarshalFrom(rd, &second))
	assert.Equal(t, uint16(77), second.ID)
	assert.Zero(t, rd.Remaining())
}

func TestEqual(t *testing.T) {
	base := newSample()

	t.Run("identical", func(t *testing.T) {
		assert.True(t, Equal(base, newSample()))
	})

	t.Run("scalar differs", func(t *testing.T) {
		other := newSample()
		other.Kind = 4
		assert.False(t, Equal(base, other))
	})

	t.Run("list element differs", func(t *testing.T) {
		other := newSample()
		other.Points[0].Y = 2.5
		assert.False(t, Equal(base, other))
	})

	t.Run("list length differs", func(t *testing.T) {
		other := newSample()
		other.Points = append(other.Points, point{})
		assert.False(t, Equal(base, other))
	})

	t.Run("nan equals itself", func(t *testing.T) {
		a := &wide{F: math.NaN()}
		b := &wide{F: math.NaN()}
		assert.True(t, Equal(a, b))
	})

	t.Run("signed zeros differ", func(t *testing.T) {
		assert.False(t, Equal(&wide{F: 0}, &wide{F: math.Copysign(0, -1)}))
	})

	t.Run("different types", func(t *testing.T) {
		assert.False(t, Equal(&point{}, &wide{}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.True(t, Equal(nil, nil))
		assert.False(t, Equal(base, nil))
	})
}

func TestHash_DiffersOnContent(t *testing.T) {
	a := newSample()
	b := newSample()
	b.Blob = []byte{0xAB}
	assert.NotEqual(t, Hash(a), Hash(b))
	assert.Equal(t, Hash(a), Hash(newSample()))
}

func TestDump(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Dump(&buf, "sample", newSample()))

	want := strings.Join([]string{
		"sample",
		"  id: 258",
		"  kind: 3",
		"  pointCount: 1",
		"  name: 61626364",
		"  blobLength: 1",
		"  totalWords: 5",
		"  points: [1]",
		"    [0]",
		"      x: 1",
		"      y: 2",
		"  blob: aa",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTree_Nested(t *testing.T) {
	tree := Tree("wrapper", &wrapper{Seq: 5})
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "seq", tree.Children[0].Name)
	assert.Equal(t, "5", tree.Children[0].Value)
	assert.Equal(t, "inner", tree.Children[1].Name)
	assert.Equal(t, "-", tree.Children[1].Children[len(tree.Children[1].Children)-1].Value)
}

func TestWidthMax(t *testing.T) {
	assert.Equal(t, uint64(0xFF), Width8.Max())
	assert.Equal(t, uint64(0xFFFF), Width16.Max())
	assert.Equal(t, uint64(0xFFFFFFFF), Width32.Max())
}
