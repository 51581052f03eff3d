// Package pdu defines the DIS protocol data units and the dispatcher that
// decodes them from raw buffers.
//
// # Header
//
// Every PDU starts with the same 12 bytes:
//
//	[Version(1)][ExerciseID(1)][Type(1)][Family(1)][Timestamp(4)][Length(2)][Status(1)][Padding(1)]
//
// Length is the size of the whole PDU including the header. MarshalWithLength
// computes and stores it before encoding; codec.Marshal on its own writes
// whatever the header holds.
//
// # Families
//
// Warfare, simulation management and radio PDUs share a longer prefix,
// modelled by embedding WarfareHeader, SimulationManagementHeader or
// RadioHeader. Each PDU's VisitFields visits its prefix first.
//
// # Collections
//
// PDUs expose repeated records as slices only. The wire counts are derived
// from the slice lengths when marshalling, so there is no count to keep in
// sync by hand.
//
// # Dispatch
//
// A Registry maps (version, type) to a factory. Scanner walks a buffer of
// concatenated PDUs, skipping unregistered types and stopping at a zero
// length, a framing error, or (unless Options.SkipCorrupt) a record that
// fails to decode. Unmarshal, UnmarshalAll and SplitRaw wrap the common cases.
package pdu
