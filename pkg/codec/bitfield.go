package codec

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Word is the set of unsigned integers a bit-packed struct can be stored in.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitField describes one sub-field of a packed word.
type BitField[W Word] struct {
	Name  string
	Mask  W
	Shift uint
}

// NewBitField builds the field occupying width bits starting at bit shift.
func NewBitField[W Word](name string, shift, width uint) BitField[W] {
	mask := ((uint64(1) << width) - 1) << shift
	return BitField[W]{Name: name, Mask: W(mask), Shift: shift}
}

// Get extracts the field from word: (word & Mask) >> Shift.
func (f BitField[W]) Get(word W) W {
	return (word & f.Mask) >> f.Shift
}

// Set ORs v into word at the field's position. Bits of v beyond the field
// width are dropped rather than spilling into neighbouring fields.
func (f BitField[W]) Set(word, v W) W {
	return word | ((v << f.Shift) & f.Mask)
}

// Width is the number of bits the field occupies.
func (f BitField[W]) Width() int {
	return bits.OnesCount64(uint64(f.Mask))
}

// Max is the largest value the field can hold.
func (f BitField[W]) Max() W {
	return f.Mask >> f.Shift
}

// Layout is the ordered list of fields of one packed struct.
type Layout[W Word] []BitField[W]

// Validate checks that the fields are contiguous, do not overlap, and together
// cover every bit of W.
func (l Layout[W]) Validate() error {
	var seen W
	for _, f := range l {
		if f.Mask == 0 {
			return errors.Newf("bitfield %s: empty mask", f.Name)
		}
		if uint(bits.TrailingZeros64(uint64(f.Mask))) != f.Shift {
			return errors.Newf("bitfield %s: shift %d does not match mask %#x", f.Name, f.Shift, uint64(f.Mask))
		}
		if m := f.Max(); m&(m+1) != 0 {
			return errors.Newf("bitfield %s: mask %#x is not contiguous", f.Name, uint64(f.Mask))
		}
		if seen&f.Mask != 0 {
			return errors.Newf("bitfield %s: overlaps bits %#x", f.Name, uint64(seen&f.Mask))
		}
		seen |= f.Mask
	}
	if seen != ^W(0) {
		return errors.Newf("bitfield layout leaves bits %#x unassigned", uint64(^seen))
	}
	return nil
}

// Unpack returns every field value of word in layout order.
func (l Layout[W]) Unpack(word W) []W {
	out := make([]W, len(l))
	for i, f := range l {
		out[i] = f.Get(word)
	}
	return out
}

// Pack is the inverse of Unpack. Missing trailing values are treated as zero.
func (l Layout[W]) Pack(values []W) W {
	var word W
	for i, f := range l {
		if i >= len(values) {
			break
		}
		word = f.Set(word, values[i])
	}
	return word
}
