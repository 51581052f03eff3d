package pdu

import "github.com/ssargent/disgo/pkg/codec"

// HeaderSize is the marshalled size of Header.
const HeaderSize = 12

// Wire offsets of the header fields the dispatcher peeks at.
const (
	versionOffset = 0
	typeOffset    = 2
	lengthOffset  = 8
)

// PDU is a complete DIS message.
type PDU interface {
	codec.Record
	PDUHeader() *Header
	Type() Type
}

// Header is the 12-byte prefix shared by every PDU.
type Header struct {
	ProtocolVersion ProtocolVersion
	ExerciseID      uint8
	PDUType         Type
	ProtocolFamily  Family
	Timestamp       uint32
	// Length is the total PDU size in bytes. MarshalWithLength keeps it in step
	// with the body; plain codec.Marshal writes whatever it holds.
	Length uint16
	// Status is the DIS 7 PDU status byte (see PduStatus); earlier versions treat it as padding.
	Status  uint8
	Padding uint8
}

func (h *Header) init(t Type) {
	h.ProtocolVersion = DefaultVersion
	h.PDUType = t
	h.ProtocolFamily = t.Family()
}

// PDUHeader returns h, giving every PDU that embeds a header access to it.
func (h *Header) PDUHeader() *Header { return h }

// Type returns the PDU type tag.
func (h *Header) Type() Type { return h.PDUType }

// PduStatus decodes the status byte.
func (h *Header) PduStatus() PduStatus { return PduStatusFromWire(h.Status) }

func (h *Header) VisitFields(v codec.Visitor) {
	v.Uint8("protocolVersion", (*uint8)(&h.ProtocolVersion))
	v.Uint8("exerciseID", &h.ExerciseID)
	v.Uint8("pduType", (*uint8)(&h.PDUType))
	v.Uint8("protocolFamily", (*uint8)(&h.ProtocolFamily))
	v.Uint32("timestamp", &h.Timestamp)
	v.Uint16("length", &h.Length)
	v.Uint8("pduStatus", &h.Status)
	v.Uint8("padding", &h.Padding)
}

// WarfareHeader prefixes the Fire and Detonation PDUs.
type WarfareHeader struct {
	Header
	FiringEntityID EntityID
	TargetEntityID EntityID
}

func (h *WarfareHeader) VisitFields(v codec.Visitor) {
	h.Header.VisitFields(v)
	v.Record("firingEntityID", &h.FiringEntityID)
	v.Record("targetEntityID", &h.TargetEntityID)
}

// SimulationManagementHeader prefixes the simulation management PDUs.
type SimulationManagementHeader struct {
	Header
	OriginatingEntityID EntityID
	ReceivingEntityID   EntityID
}

func (h *SimulationManagementHeader) VisitFields(v codec.Visitor) {
	h.Header.VisitFields(v)
	v.Record("originatingEntityID", &h.OriginatingEntityID)
	v.Record("receivingEntityID", &h.ReceivingEntityID)
}

// RadioHeader prefixes the Transmitter, Signal and Receiver PDUs.
type RadioHeader struct {
	Header
	EntityID EntityID
	RadioID  uint16
}

func (h *RadioHeader) VisitFields(v codec.Visitor) {
	h.Header.VisitFields(v)
	v.Record("entityID", &h.EntityID)
	v.Uint16("radioID", &h.RadioID)
}
