package pdu

import "github.com/ssargent/disgo/pkg/codec"

// Fire reports the firing of a weapon.
type Fire struct {
	WarfareHeader
	MunitionID       EntityID
	EventID          EventID
	FireMissionIndex uint32
	Location         Vector3Double
	BurstDescriptor  BurstDescriptor
	Velocity         Vector3Float
	Range            float32
}

func NewFire() *Fire {
	p := &Fire{}
	p.init(TypeFire)
	return p
}

func (p *Fire) VisitFields(v codec.Visitor) {
	p.WarfareHeader.VisitFields(v)
	v.Record("munitionID", &p.MunitionID)
	v.Record("eventID", &p.EventID)
	v.Uint32("fireMissionIndex", &p.FireMissionIndex)
	v.Record("locationInWorldCoordinates", &p.Location)
	v.Record("burstDescriptor", &p.BurstDescriptor)
	v.Record("velocity", &p.Velocity)
	v.Float32("range", &p.Range)
}

// Detonation reports the impact or detonation of a munition.
type Detonation struct {
	WarfareHeader
	MunitionID             EntityID
	EventID                EventID
	Velocity               Vector3Float
	Location               Vector3Double
	BurstDescriptor        BurstDescriptor
	LocationInEntity       Vector3Float
	DetonationResult       uint8
	Padding                uint16
	ArticulationParameters []ArticulationParameter
}

func NewDetonation() *Detonation {
	p := &Detonation{}
	p.init(TypeDetonation)
	return p
}

func (p *Detonation) VisitFields(v codec.Visitor) {
	p.WarfareHeader.VisitFields(v)
	v.Record("munitionID", &p.MunitionID)
	v.Record("eventID", &p.EventID)
	v.Record("velocity", &p.Velocity)
	v.Record("locationInWorldCoordinates", &p.Location)
	v.Record("burstDescriptor", &p.BurstDescriptor)
	v.Record("locationInEntityCoordinates", &p.LocationInEntity)
	v.Uint8("detonationResult", &p.DetonationResult)
	n := v.Count("numberOfArticulationParameters", codec.Width8, len(p.ArticulationParameters))
	v.Uint16("pad", &p.Padding)
	codec.VisitList(v, "articulationParameters", n, &p.ArticulationParameters)
}
