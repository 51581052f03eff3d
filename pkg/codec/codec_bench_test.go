//go:build bench
// +build bench

package codec

import (
	"fmt"
	"testing"
)

func benchSample(points, blob int) *sample {
	s := &sample{ID: 1, Kind: 2, Points: make([]point, points), Blob: make([]byte, blob)}
	for i := range s.Points {
		s.Points[i] = point{X: float32(i), Y: -float32(i)}
	}
	return s
}

var benchSizes = []struct {
	points, blob int
}{
	{0, 0},
	{8, 64},
	{200, 4096},
}

func BenchmarkMarshal(b *testing.B) {
	for _, sz := range benchSizes {
		s := benchSample(sz.points, sz.blob)
		b.Run(fmt.Sprintf("points=%d/blob=%d", sz.points, sz.blob), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(Size(s)))
			for i := 0; i < b.N; i++ {
				if _, err := Marshal(s, BigEndian); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	for _, sz := range benchSizes {
		data, err := Marshal(benchSample(sz.points, sz.blob), BigEndian)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("points=%d/blob=%d", sz.points, sz.blob), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				var s sample
				if err := Unmarshal(data, BigEndian, &s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	s := benchSample(8, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Hash(s)
	}
}
