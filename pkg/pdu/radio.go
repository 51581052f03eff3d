package pdu

import "github.com/ssargent/disgo/pkg/codec"

// Transmitter describes the state of a radio transmitter.
type Transmitter struct {
	RadioHeader
	RadioEntityType            RadioEntityType
	TransmitState              uint8
	InputSource                uint8
	Padding1                   uint16
	AntennaLocation            Vector3Double
	RelativeAntennaLocation    Vector3Float
	AntennaPatternType         uint16
	Frequency                  uint64
	TransmitFrequencyBandwidth float32
	Power                      float32
	ModulationType             ModulationType
	CryptoSystem               uint16
	CryptoKeyID                uint16
	Padding2                   uint16
	Padding3                   uint8
	ModulationParameters       []byte
	AntennaPattern             []byte
}

func NewTransmitter() *Transmitter {
	p := &Transmitter{}
	p.init(TypeTransmitter)
	return p
}

func (p *Transmitter) VisitFields(v codec.Visitor) {
	p.RadioHeader.VisitFields(v)
	v.Record("radioEntityType", &p.RadioEntityType)
	v.Uint8("transmitState", &p.TransmitState)
	v.Uint8("inputSource", &p.InputSource)
	v.Uint16("padding1", &p.Padding1)
	v.Record("antennaLocation", &p.AntennaLocation)
	v.Record("relativeAntennaLocation", &p.RelativeAntennaLocation)
	v.Uint16("antennaPatternType", &p.AntennaPatternType)
	antenna := v.Count("antennaPatternLength", codec.Width16, len(p.AntennaPattern))
	v.Uint64("frequency", &p.Frequency)
	v.Float32("transmitFrequencyBandwidth", &p.TransmitFrequencyBandwidth)
	v.Float32("power", &p.Power)
	v.Record("modulationType", &p.ModulationType)
	v.Uint16("cryptoSystem", &p.CryptoSystem)
	v.Uint16("cryptoKeyId", &p.CryptoKeyID)
	mod := v.Count("modulationParameterLength", codec.Width8, len(p.ModulationParameters))
	v.Uint16("padding2", &p.Padding2)
	v.Uint8("padding3", &p.Padding3)
	v.Opaque("modulationParameters", &p.ModulationParameters, mod, 1)
	v.Opaque("antennaPattern", &p.AntennaPattern, antenna, 1)
}

// Signal carries encoded audio or data from a radio.
type Signal struct {
	RadioHeader
	EncodingScheme uint16
	TDLType        uint16
	SampleRate     uint32
	Samples        uint16
	// Data is sent with its length in bits and padded to a 32-bit boundary.
	Data []byte
}

func NewSignal() *Signal {
	p := &Signal{}
	p.init(TypeSignal)
	return p
}

func (p *Signal) VisitFields(v codec.Visitor) {
	p.RadioHeader.VisitFields(v)
	v.Uint16("encodingScheme", &p.EncodingScheme)
	v.Uint16("tdlType", &p.TDLType)
	v.Uint32("sampleRate", &p.SampleRate)
	bits := v.Count("dataLength", codec.Width16, len(p.Data)*8)
	v.Uint16("samples", &p.Samples)
	v.Opaque("data", &p.Data, (bits+7)/8, 4)
}

// Encoding decodes the encoding scheme word.
func (p *Signal) Encoding() EncodingScheme {
	return EncodingSchemeFromWire(p.EncodingScheme)
}

// Receiver describes the state of a radio receiver.
type Receiver struct {
	RadioHeader
	ReceiverState       uint16
	Padding1            uint16
	ReceivedPower       float32
	TransmitterEntityID EntityID
	TransmitterRadioID  uint16
}

func NewReceiver() *Receiver {
	p := &Receiver{}
	p.init(TypeReceiver)
	return p
}

func (p *Receiver) VisitFields(v codec.Visitor) {
	p.RadioHeader.VisitFields(v)
	v.Uint16("receiverState", &p.ReceiverState)
	v.Uint16("padding1", &p.Padding1)
	v.Float32("receivedPower", &p.ReceivedPower)
	v.Record("transmitterEntityId", &p.TransmitterEntityID)
	v.Uint16("transmitterRadioId", &p.TransmitterRadioID)
}
