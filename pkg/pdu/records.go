package pdu

import (
	"bytes"

	"github.com/ssargent/disgo/pkg/codec"
)

// EntityID identifies a simulated entity within an exercise.
type EntityID struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

func (e *EntityID) VisitFields(v codec.Visitor) {
	v.Uint16("site", &e.Site)
	v.Uint16("application", &e.Application)
	v.Uint16("entity", &e.Entity)
}

// EventID identifies an event such as a fire or a collision.
type EventID struct {
	Site        uint16
	Application uint16
	EventNumber uint16
}

func (e *EventID) VisitFields(v codec.Visitor) {
	v.Uint16("site", &e.Site)
	v.Uint16("application", &e.Application)
	v.Uint16("eventNumber", &e.EventNumber)
}

type Vector3Float struct {
	X, Y, Z float32
}

func (r *Vector3Float) VisitFields(v codec.Visitor) {
	v.Float32("x", &r.X)
	v.Float32("y", &r.Y)
	v.Float32("z", &r.Z)
}

type Vector3Double struct {
	X, Y, Z float64
}

func (r *Vector3Double) VisitFields(v codec.Visitor) {
	v.Float64("x", &r.X)
	v.Float64("y", &r.Y)
	v.Float64("z", &r.Z)
}

// Orientation holds Euler angles in radians.
type Orientation struct {
	Psi, Theta, Phi float32
}

func (o *Orientation) VisitFields(v codec.Visitor) {
	v.Float32("psi", &o.Psi)
	v.Float32("theta", &o.Theta)
	v.Float32("phi", &o.Phi)
}

type EntityType struct {
	Kind        uint8
	Domain      uint8
	Country     uint16
	Category    uint8
	Subcategory uint8
	Specific    uint8
	Extra       uint8
}

func (e *EntityType) VisitFields(v codec.Visitor) {
	v.Uint8("entityKind", &e.Kind)
	v.Uint8("domain", &e.Domain)
	v.Uint16("country", &e.Country)
	v.Uint8("category", &e.Category)
	v.Uint8("subcategory", &e.Subcategory)
	v.Uint8("specific", &e.Specific)
	v.Uint8("extra", &e.Extra)
}

type RadioEntityType struct {
	Kind                uint8
	Domain              uint8
	Country             uint16
	Category            uint8
	NomenclatureVersion uint8
	Nomenclature        uint16
}

func (e *RadioEntityType) VisitFields(v codec.Visitor) {
	v.Uint8("entityKind", &e.Kind)
	v.Uint8("domain", &e.Domain)
	v.Uint16("country", &e.Country)
	v.Uint8("category", &e.Category)
	v.Uint8("nomenclatureVersion", &e.NomenclatureVersion)
	v.Uint16("nomenclature", &e.Nomenclature)
}

// BurstDescriptor describes the munition fired or detonated.
type BurstDescriptor struct {
	Munition EntityType
	Warhead  uint16
	Fuse     uint16
	Quantity uint16
	Rate     uint16
}

func (b *BurstDescriptor) VisitFields(v codec.Visitor) {
	v.Record("munition", &b.Munition)
	v.Uint16("warhead", &b.Warhead)
	v.Uint16("fuse", &b.Fuse)
	v.Uint16("quantity", &b.Quantity)
	v.Uint16("rate", &b.Rate)
}

// ArticulationParameter describes one articulated or attached part.
type ArticulationParameter struct {
	ParameterTypeDesignator uint8
	ChangeIndicator         uint8
	PartAttachedTo          uint16
	ParameterType           int32
	ParameterValue          float64
}

func (a *ArticulationParameter) VisitFields(v codec.Visitor) {
	v.Uint8("parameterTypeDesignator", &a.ParameterTypeDesignator)
	v.Uint8("changeIndicator", &a.ChangeIndicator)
	v.Uint16("partAttachedTo", &a.PartAttachedTo)
	v.Int32("parameterType", &a.ParameterType)
	v.Float64("parameterValue", &a.ParameterValue)
}

type DeadReckoningParameter struct {
	Algorithm          uint8
	OtherParameters    [15]byte
	LinearAcceleration Vector3Float
	AngularVelocity    Vector3Float
}

func (d *DeadReckoningParameter) VisitFields(v codec.Visitor) {
	v.Uint8("deadReckoningAlgorithm", &d.Algorithm)
	v.Bytes("otherParameters", d.OtherParameters[:])
	v.Record("entityLinearAcceleration", &d.LinearAcceleration)
	v.Record("entityAngularVelocity", &d.AngularVelocity)
}

// MarkingASCII is the character set value for plain ASCII markings.
const MarkingASCII uint8 = 1

// Marking is the 11-character label shown for an entity.
type Marking struct {
	CharacterSet uint8
	Characters   [11]byte
}

func (m *Marking) VisitFields(v codec.Visitor) {
	v.Uint8("characterSet", &m.CharacterSet)
	v.Bytes("characters", m.Characters[:])
}

// String returns the characters up to the first NUL.
func (m Marking) String() string {
	if i := bytes.IndexByte(m.Characters[:], 0); i >= 0 {
		return string(m.Characters[:i])
	}
	return string(m.Characters[:])
}

// SetString stores s as an ASCII marking, truncated to 11 bytes and NUL padded.
func (m *Marking) SetString(s string) {
	m.CharacterSet = MarkingASCII
	m.Characters = [11]byte{}
	copy(m.Characters[:], s)
}

type ClockTime struct {
	Hour         int32
	TimePastHour uint32
}

func (c *ClockTime) VisitFields(v codec.Visitor) {
	v.Int32("hour", &c.Hour)
	v.Uint32("timePastHour", &c.TimePastHour)
}

type FixedDatum struct {
	ID    uint32
	Value uint32
}

func (d *FixedDatum) VisitFields(v codec.Visitor) {
	v.Uint32("fixedDatumID", &d.ID)
	v.Uint32("fixedDatumValue", &d.Value)
}

// VariableDatum carries an opaque value whose length is sent in bits. The
// value is padded on the wire to a 64-bit boundary.
type VariableDatum struct {
	ID    uint32
	Value []byte
}

func (d *VariableDatum) VisitFields(v codec.Visitor) {
	v.Uint32("variableDatumID", &d.ID)
	bits := v.Count("variableDatumLength", codec.Width32, len(d.Value)*8)
	v.Opaque("variableDatumValue", &d.Value, (bits+7)/8, 8)
}

type SupplyQuantity struct {
	SupplyType EntityType
	Quantity   float32
}

func (s *SupplyQuantity) VisitFields(v codec.Visitor) {
	v.Record("supplyType", &s.SupplyType)
	v.Float32("quantity", &s.Quantity)
}

type EmitterSystem struct {
	EmitterName     uint16
	Function        uint8
	EmitterIDNumber uint8
}

func (e *EmitterSystem) VisitFields(v codec.Visitor) {
	v.Uint16("emitterName", &e.EmitterName)
	v.Uint8("function", &e.Function)
	v.Uint8("emitterIdNumber", &e.EmitterIDNumber)
}

type FundamentalParameterData struct {
	Frequency                float32
	FrequencyRange           float32
	EffectiveRadiatedPower   float32
	PulseRepetitionFrequency float32
	PulseWidth               float32
	BeamAzimuthCenter        float32
	BeamAzimuthSweep         float32
	BeamElevationCenter      float32
	BeamElevationSweep       float32
	BeamSweepSync            float32
}

func (f *FundamentalParameterData) VisitFields(v codec.Visitor) {
	v.Float32("frequency", &f.Frequency)
	v.Float32("frequencyRange", &f.FrequencyRange)
	v.Float32("effectiveRadiatedPower", &f.EffectiveRadiatedPower)
	v.Float32("pulseRepetitionFrequency", &f.PulseRepetitionFrequency)
	v.Float32("pulseWidth", &f.PulseWidth)
	v.Float32("beamAzimuthCenter", &f.BeamAzimuthCenter)
	v.Float32("beamAzimuthSweep", &f.BeamAzimuthSweep)
	v.Float32("beamElevationCenter", &f.BeamElevationCenter)
	v.Float32("beamElevationSweep", &f.BeamElevationSweep)
	v.Float32("beamSweepSync", &f.BeamSweepSync)
}

type TrackJamTarget struct {
	TrackJam  EntityID
	EmitterID uint8
	BeamID    uint8
}

func (t *TrackJamTarget) VisitFields(v codec.Visitor) {
	v.Record("trackJam", &t.TrackJam)
	v.Uint8("emitterID", &t.EmitterID)
	v.Uint8("beamID", &t.BeamID)
}

// BeamData is one beam of an emitter system. Its length field counts 32-bit
// words including the track/jam targets.
type BeamData struct {
	BeamIDNumber        uint8
	BeamParameterIndex  uint16
	Parameters          FundamentalParameterData
	BeamFunction        uint8
	HighDensityTrackJam uint8
	Padding             uint8
	JammingModeSequence uint32
	TrackJamTargets     []TrackJamTarget
}

func (b *BeamData) VisitFields(v codec.Visitor) {
	v.Derived("beamDataLength", codec.Width8, func() uint64 { return uint64(codec.Size(b) / 4) })
	v.Uint8("beamIDNumber", &b.BeamIDNumber)
	v.Uint16("beamParameterIndex", &b.BeamParameterIndex)
	v.Record("fundamentalParameterData", &b.Parameters)
	v.Uint8("beamFunction", &b.BeamFunction)
	n := v.Count("numberOfTrackJamTargets", codec.Width8, len(b.TrackJamTargets))
	v.Uint8("highDensityTrackJam", &b.HighDensityTrackJam)
	v.Uint8("padding", &b.Padding)
	v.Uint32("jammingModeSequence", &b.JammingModeSequence)
	codec.VisitList(v, "trackJamTargets", n, &b.TrackJamTargets)
}

// EmitterSystemData is one emitter system of an Electromagnetic Emission PDU.
type EmitterSystemData struct {
	Padding       uint16
	EmitterSystem EmitterSystem
	Location      Vector3Float
	Beams         []BeamData
}

func (s *EmitterSystemData) VisitFields(v codec.Visitor) {
	v.Derived("systemDataLength", codec.Width8, func() uint64 { return uint64(codec.Size(s) / 4) })
	n := v.Count("numberOfBeams", codec.Width8, len(s.Beams))
	v.Uint16("emissionsPadding2", &s.Padding)
	v.Record("emitterSystem", &s.EmitterSystem)
	v.Record("location", &s.Location)
	codec.VisitList(v, "beams", n, &s.Beams)
}

// ModulationType describes a transmitter's modulation. SpreadSpectrum is a
// bit-packed word, see SpreadSpectrum.
type ModulationType struct {
	SpreadSpectrum uint16
	Major          uint16
	Detail         uint16
	System         uint16
}

func (m *ModulationType) VisitFields(v codec.Visitor) {
	v.Uint16("spreadSpectrum", &m.SpreadSpectrum)
	v.Uint16("major", &m.Major)
	v.Uint16("detail", &m.Detail)
	v.Uint16("system", &m.System)
}

// SpreadSpectrumFlags decodes the spread spectrum word.
func (m *ModulationType) SpreadSpectrumFlags() SpreadSpectrum {
	return SpreadSpectrumFromWire(m.SpreadSpectrum)
}
