package pdu

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// Factory returns a new, empty PDU of one concrete type.
type Factory func() PDU

type registryKey struct {
	version ProtocolVersion
	typ     Type
}

// Registry maps (protocol version, PDU type) to the factory for that PDU.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[registryKey]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[registryKey]Factory)}
}

// Register adds or replaces the factory for (version, t).
func (r *Registry) Register(version ProtocolVersion, t Type, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[registryKey{version, t}] = f
}

// Lookup returns the factory for (version, t).
func (r *Registry) Lookup(version ProtocolVersion, t Type) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[registryKey{version, t}]
	return f, ok
}

// New returns a fresh PDU for (version, t).
func (r *Registry) New(version ProtocolVersion, t Type) (PDU, error) {
	f, ok := r.Lookup(version, t)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "type %d, version %d", uint8(t), uint8(version))
	}
	return f(), nil
}

// Types returns the PDU types registered for version, in ascending order.
func (r *Registry) Types(version ProtocolVersion) []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Type
	for k := range r.factories {
		if k.version == version {
			out = append(out, k.typ)
		}
	}
	slices.Sort(out)
	return out
}

var builtin = map[Type]Factory{
	TypeEntityState:             func() PDU { return NewEntityState() },
	TypeFire:                    func() PDU { return NewFire() },
	TypeDetonation:              func() PDU { return NewDetonation() },
	TypeCollision:               func() PDU { return NewCollision() },
	TypeServiceRequest:          func() PDU { return NewServiceRequest() },
	TypeResupplyOffer:           func() PDU { return NewResupplyOffer() },
	TypeResupplyReceived:        func() PDU { return NewResupplyReceived() },
	TypeResupplyCancel:          func() PDU { return NewResupplyCancel() },
	TypeRepairComplete:          func() PDU { return NewRepairComplete() },
	TypeRepairResponse:          func() PDU { return NewRepairResponse() },
	TypeCreateEntity:            func() PDU { return NewCreateEntity() },
	TypeRemoveEntity:            func() PDU { return NewRemoveEntity() },
	TypeStartResume:             func() PDU { return NewStartResume() },
	TypeStopFreeze:              func() PDU { return NewStopFreeze() },
	TypeAcknowledge:             func() PDU { return NewAcknowledge() },
	TypeActionRequest:           func() PDU { return NewActionRequest() },
	TypeActionResponse:          func() PDU { return NewActionResponse() },
	TypeDataQuery:               func() PDU { return NewDataQuery() },
	TypeSetData:                 func() PDU { return NewSetData() },
	TypeData:                    func() PDU { return NewData() },
	TypeEventReport:             func() PDU { return NewEventReport() },
	TypeComment:                 func() PDU { return NewComment() },
	TypeElectromagneticEmission: func() PDU { return NewElectromagneticEmission() },
	TypeDesignator:              func() PDU { return NewDesignator() },
	TypeTransmitter:             func() PDU { return NewTransmitter() },
	TypeSignal:                  func() PDU { return NewSignal() },
	TypeReceiver:                func() PDU { return NewReceiver() },
}

// NewDefaultRegistry returns a registry holding every PDU in this package
// for DIS versions 5, 6 and 7.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, v := range []ProtocolVersion{Version1995, Version1998, Version2012} {
		for t, f := range builtin {
			r.Register(v, t, f)
		}
	}
	return r
}

// DefaultRegistry returns the shared registry used when Options.Registry is nil.
var DefaultRegistry = sync.OnceValue(NewDefaultRegistry)
