package codec_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ssargent/disgo/pkg/codec"
)

type waypoint struct {
	Lat, Lon float64
}

func (w *waypoint) VisitFields(v codec.Visitor) {
	v.Float64("lat", &w.Lat)
	v.Float64("lon", &w.Lon)
}

type route struct {
	ID     uint16
	Points []waypoint
}

func (r *route) VisitFields(v codec.Visitor) {
	v.Uint16("id", &r.ID)
	n := v.Count("pointCount", codec.Width16, len(r.Points))
	codec.VisitList(v, "points", n, &r.Points)
}

// ExampleMarshal demonstrates encoding and decoding a record with a counted list
func ExampleMarshal() {
	in := route{ID: 7, Points: []waypoint{{Lat: 1.5, Lon: -2}, {Lat: 3, Lon: 4}}}

	data, err := codec.Marshal(&in, codec.BigEndian)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded %d bytes, count bytes % x\n", len(data), data[2:4])

	var out route
	if err := codec.Unmarshal(data, codec.BigEndian, &out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Decoded %d points, equal: %t\n", len(out.Points), codec.Equal(&in, &out))

	// Output:
	// Encoded 36 bytes, count bytes 00 02
	// Decoded 2 points, equal: true
}

// ExampleDump demonstrates the indented field dump
func ExampleDump() {
	r := route{ID: 1, Points: []waypoint{{Lat: 0.5, Lon: 0.25}}}
	if err := codec.Dump(os.Stdout, "route", &r); err != nil {
		log.Fatal(err)
	}

	// Output:
	// route
	//   id: 1
	//   pointCount: 1
	//   points: [1]
	//     [0]
	//       lat: 0.5
	//       lon: 0.25
}
