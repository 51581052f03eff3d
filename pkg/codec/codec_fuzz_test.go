//go:build fuzz
// +build fuzz

package codec

import (
	"testing"
)

// FuzzUnmarshal checks that arbitrary input never panics and that anything
// which decodes re-encodes to an equal record.
func FuzzUnmarshal(f *testing.F) {
	seed, err := Marshal(newSample(), BigEndian)
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed, false)
	f.Add(seed[:7], true)
	f.Add([]byte{}, false)
	f.Add([]byte{0, 1, 2, 0xFF, 'a', 'b', 'c', 'd', 0xFF, 0xFF, 0}, false)

	f.Fuzz(func(t *testing.T, data []byte, little bool) {
		order := BigEndian
		if little {
			order = LittleEndian
		}

		var s sample
		if err := Unmarshal(data, order, &s); err != nil {
			return
		}

		encoded, err := Marshal(&s, order)
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		if len(encoded) != Size(&s) {
			t.Fatalf("size mismatch: encoded %d, Size %d", len(encoded), Size(&s))
		}

		var again sample
		if err := Unmarshal(encoded, order, &again); err != nil {
			t.Fatalf("decode of re-encoded record failed: %v", err)
		}
		if !Equal(&s, &again) {
			t.Fatalf("records differ after round trip")
		}
	})
}

// FuzzRoundTrip builds records from fuzzed fields and checks Marshal/Unmarshal agree.
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint16(1), uint8(2), []byte("blob"), uint8(3))
	f.Add(uint16(0), uint8(0), []byte{}, uint8(0))

	f.Fuzz(func(t *testing.T, id uint16, kind uint8, blob []byte, points uint8) {
		if len(blob) > 0xFFFF {
			t.Skip()
		}
		in := &sample{ID: id, Kind: kind, Blob: blob, Points: make([]point, points)}
		for i := range in.Points {
			in.Points[i] = point{X: float32(i), Y: float32(id)}
		}

		for _, order := range []ByteOrder{BigEndian, LittleEndian} {
			data, err := Marshal(in, order)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var out sample
			if err := Unmarshal(data, order, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !Equal(in, &out) || Hash(in) != Hash(&out) {
				t.Fatalf("round trip mismatch in %s", order)
			}
		}
	})
}
