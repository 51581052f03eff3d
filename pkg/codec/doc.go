// Package codec provides the binary field codec the DIS PDU types are built on.
//
// A wire structure implements Record by listing its fields, in wire order, to a
// Visitor. The same listing is walked by the encoder, the decoder, the sizer,
// the equality and hashing flattener, and the tree dumper:
//
//	func (p *Point) VisitFields(v codec.Visitor) {
//	    v.Float32("x", &p.X)
//	    v.Float32("y", &p.Y)
//	}
//
//	data, err := codec.Marshal(&p, codec.BigEndian)
//	err = codec.Unmarshal(data, codec.BigEndian, &p)
//
// # Primitives
//
// Integers of 8 to 64 bits (signed and unsigned) and IEEE 754 floats of 32 and
// 64 bits are written in the byte order chosen for the Reader or Writer. The
// order is configuration, never detected from the data. Fixed-length byte
// arrays are copied verbatim.
//
// # Collections
//
// A collection is preceded somewhere earlier in the record by a count field of
// 1, 2 or 4 bytes. Records never store the count: Visitor.Count is handed the
// live length when encoding and returns the wire value when decoding, so a
// count can never disagree with its collection. Counts too large for their
// field fail with ErrCountOverflow. Decoded counts that could not possibly fit
// in the remaining bytes fail with ErrCountExceedsBuffer before anything is
// allocated.
//
// Opaque fields carry a governed run of bytes followed by zero padding to an
// alignment boundary. Derived fields, such as lengths in 32-bit words, are
// computed on encode and skipped on decode.
//
// # Errors
//
// Reader and Writer keep the first error and turn later operations into
// no-ops. Decode errors are annotated with the dotted path of the field that
// failed, and wrap ErrTruncated or ErrCountExceedsBuffer so callers can test
// them with errors.Is.
//
// # Bit fields
//
// BitField and Layout describe sub-fields packed into one unsigned word.
// Layout.Validate checks that the fields tile the word exactly.
package codec
