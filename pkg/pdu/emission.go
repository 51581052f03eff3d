package pdu

import "github.com/ssargent/disgo/pkg/codec"

// ElectromagneticEmission describes the active emitters of an entity.
type ElectromagneticEmission struct {
	Header
	EmittingEntityID     EntityID
	EventID              EventID
	StateUpdateIndicator uint8
	Padding              uint16
	Systems              []EmitterSystemData
}

func NewElectromagneticEmission() *ElectromagneticEmission {
	p := &ElectromagneticEmission{}
	p.init(TypeElectromagneticEmission)
	return p
}

func (p *ElectromagneticEmission) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("emittingEntityID", &p.EmittingEntityID)
	v.Record("eventID", &p.EventID)
	v.Uint8("stateUpdateIndicator", &p.StateUpdateIndicator)
	n := v.Count("numberOfSystems", codec.Width8, len(p.Systems))
	v.Uint16("paddingForEmissionsPdu", &p.Padding)
	codec.VisitList(v, "systems", n, &p.Systems)
}

// Designator reports a laser designator spot.
type Designator struct {
	Header
	DesignatingEntityID    EntityID
	CodeName               uint16
	DesignatedEntityID     EntityID
	DesignatorCode         uint16
	Power                  float32
	Wavelength             float32
	SpotWrtDesignated      Vector3Float
	SpotLocation           Vector3Double
	DeadReckoningAlgorithm int8
	Padding1               uint16
	Padding2               int8
	LinearAcceleration     Vector3Float
}

func NewDesignator() *Designator {
	p := &Designator{}
	p.init(TypeDesignator)
	return p
}

func (p *Designator) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("designatingEntityID", &p.DesignatingEntityID)
	v.Uint16("codeName", &p.CodeName)
	v.Record("designatedEntityID", &p.DesignatedEntityID)
	v.Uint16("designatorCode", &p.DesignatorCode)
	v.Float32("designatorPower", &p.Power)
	v.Float32("designatorWavelength", &p.Wavelength)
	v.Record("designatorSpotWrtDesignated", &p.SpotWrtDesignated)
	v.Record("designatorSpotLocation", &p.SpotLocation)
	v.Int8("deadReckoningAlgorithm", &p.DeadReckoningAlgorithm)
	v.Uint16("padding1", &p.Padding1)
	v.Int8("padding2", &p.Padding2)
	v.Record("entityLinearAcceleration", &p.LinearAcceleration)
}
