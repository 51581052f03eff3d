package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitField_GetSet(t *testing.T) {
	f := NewBitField[uint16]("mid", 4, 3)
	assert.Equal(t, uint16(0x0070), f.Mask)
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, uint16(7), f.Max())

	w := f.Set(0, 5)
	assert.Equal(t, uint16(0x0050), w)
	assert.Equal(t, uint16(5), f.Get(w))

	// Out-of-range values are masked to the field.
	assert.Equal(t, uint16(0x0070), f.Set(0, 0xFF))
	assert.Equal(t, uint16(0x8001|0x0070), f.Set(0x8001, 0xFF))
}

func TestBitField_Boundaries(t *testing.T) {
	low := NewBitField[uint32]("low", 0, 1)
	high := NewBitField[uint32]("high", 31, 1)
	full := NewBitField[uint32]("full", 0, 32)

	assert.Equal(t, uint32(1), low.Get(0xFFFFFFFF))
	assert.Equal(t, uint32(1), high.Get(0x80000000))
	assert.Equal(t, uint32(0), high.Get(0x7FFFFFFF))
	assert.Equal(t, uint32(0xFFFFFFFF), full.Mask)
	assert.Equal(t, 32, full.Width())
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout[uint8]
		wantErr string
	}{
		{
			name: "tiles",
			layout: Layout[uint8]{
				NewBitField[uint8]("a", 0, 3),
				NewBitField[uint8]("b", 3, 4),
				NewBitField[uint8]("c", 7, 1),
			},
		},
		{
			name: "overlap",
			layout: Layout[uint8]{
				NewBitField[uint8]("a", 0, 4),
				NewBitField[uint8]("b", 3, 5),
			},
			wantErr: "overlaps",
		},
		{
			name: "gap",
			layout: Layout[uint8]{
				NewBitField[uint8]("a", 0, 3),
				NewBitField[uint8]("b", 4, 4),
			},
			wantErr: "unassigned",
		},
		{
			name:    "empty mask",
			layout:  Layout[uint8]{{Name: "z"}},
			wantErr: "empty mask",
		},
		{
			name:    "split mask",
			layout:  Layout[uint8]{{Name: "s", Mask: 0b1010_0000, Shift: 5}},
			wantErr: "not contiguous",
		},
		{
			name:    "wrong shift",
			layout:  Layout[uint8]{{Name: "w", Mask: 0xFF, Shift: 1}},
			wantErr: "does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLayout_PackUnpack(t *testing.T) {
	l := Layout[uint16]{
		NewBitField[uint16]("a", 0, 4),
		NewBitField[uint16]("b", 4, 8),
		NewBitField[uint16]("c", 12, 4),
	}
	require.NoError(t, l.Validate())

	word := l.Pack([]uint16{0xA, 0xBC, 0xD})
	assert.Equal(t, uint16(0xDBCA), word)
	assert.Equal(t, []uint16{0xA, 0xBC, 0xD}, l.Unpack(word))

	assert.Equal(t, uint16(0x00C3), l.Pack([]uint16{3, 0xC}))
	assert.Equal(t, uint16(0xFFFF), l.Pack(l.Unpack(0xFFFF)))
}
