package pdu

import "github.com/ssargent/disgo/pkg/codec"

// EntityState reports the position, motion and appearance of one entity.
type EntityState struct {
	Header
	EntityID               EntityID
	ForceID                uint8
	EntityType             EntityType
	AlternativeEntityType  EntityType
	LinearVelocity         Vector3Float
	Location               Vector3Double
	Orientation            Orientation
	Appearance             uint32
	DeadReckoning          DeadReckoningParameter
	Marking                Marking
	Capabilities           uint32
	ArticulationParameters []ArticulationParameter
}

func NewEntityState() *EntityState {
	p := &EntityState{}
	p.init(TypeEntityState)
	return p
}

func (p *EntityState) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("entityID", &p.EntityID)
	v.Uint8("forceId", &p.ForceID)
	n := v.Count("numberOfArticulationParameters", codec.Width8, len(p.ArticulationParameters))
	v.Record("entityType", &p.EntityType)
	v.Record("alternativeEntityType", &p.AlternativeEntityType)
	v.Record("entityLinearVelocity", &p.LinearVelocity)
	v.Record("entityLocation", &p.Location)
	v.Record("entityOrientation", &p.Orientation)
	v.Uint32("entityAppearance", &p.Appearance)
	v.Record("deadReckoningParameters", &p.DeadReckoning)
	v.Record("marking", &p.Marking)
	v.Uint32("capabilities", &p.Capabilities)
	codec.VisitList(v, "articulationParameters", n, &p.ArticulationParameters)
}

// LandAppearance decodes Appearance as a land platform appearance.
func (p *EntityState) LandAppearance() LandPlatformAppearance {
	return LandPlatformAppearanceFromWire(p.Appearance)
}

// SetLandAppearance encodes a into Appearance.
func (p *EntityState) SetLandAppearance(a LandPlatformAppearance) {
	p.Appearance = a.ToWire()
}

// EntityCapabilities decodes Capabilities.
func (p *EntityState) EntityCapabilities() EntityCapabilities {
	return EntityCapabilitiesFromWire(p.Capabilities)
}

// Collision reports a collision between an entity and another entity or object.
type Collision struct {
	Header
	IssuingEntityID   EntityID
	CollidingEntityID EntityID
	EventID           EventID
	CollisionType     uint8
	Padding           uint8
	Velocity          Vector3Float
	Mass              float32
	Location          Vector3Float
}

func NewCollision() *Collision {
	p := &Collision{}
	p.init(TypeCollision)
	return p
}

func (p *Collision) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("issuingEntityID", &p.IssuingEntityID)
	v.Record("collidingEntityID", &p.CollidingEntityID)
	v.Record("eventID", &p.EventID)
	v.Uint8("collisionType", &p.CollisionType)
	v.Uint8("pad", &p.Padding)
	v.Record("velocity", &p.Velocity)
	v.Float32("mass", &p.Mass)
	v.Record("location", &p.Location)
}
