package pdu

import "strconv"

// ProtocolVersion is header byte 0.
type ProtocolVersion uint8

const (
	Version1995 ProtocolVersion = 5 // IEEE 1278.1-1995
	Version1998 ProtocolVersion = 6 // IEEE 1278.1a-1998
	Version2012 ProtocolVersion = 7 // IEEE 1278.1-2012

	// DefaultVersion is stamped into PDUs built by the New* constructors.
	DefaultVersion = Version1998
)

func (v ProtocolVersion) String() string {
	switch v {
	case Version1995:
		return "DIS 5"
	case Version1998:
		return "DIS 6"
	case Version2012:
		return "DIS 7"
	default:
		return "version " + strconv.Itoa(int(v))
	}
}

// Type is the PDU type tag in header byte 2.
type Type uint8

const (
	TypeOther Type = iota
	TypeEntityState
	TypeFire
	TypeDetonation
	TypeCollision
	TypeServiceRequest
	TypeResupplyOffer
	TypeResupplyReceived
	TypeResupplyCancel
	TypeRepairComplete
	TypeRepairResponse
	TypeCreateEntity
	TypeRemoveEntity
	TypeStartResume
	TypeStopFreeze
	TypeAcknowledge
	TypeActionRequest
	TypeActionResponse
	TypeDataQuery
	TypeSetData
	TypeData
	TypeEventReport
	TypeComment
	TypeElectromagneticEmission
	TypeDesignator
	TypeTransmitter
	TypeSignal
	TypeReceiver
)

var typeNames = [...]string{
	TypeOther:                   "Other",
	TypeEntityState:             "EntityState",
	TypeFire:                    "Fire",
	TypeDetonation:              "Detonation",
	TypeCollision:               "Collision",
	TypeServiceRequest:          "ServiceRequest",
	TypeResupplyOffer:           "ResupplyOffer",
	TypeResupplyReceived:        "ResupplyReceived",
	TypeResupplyCancel:          "ResupplyCancel",
	TypeRepairComplete:          "RepairComplete",
	TypeRepairResponse:          "RepairResponse",
	TypeCreateEntity:            "CreateEntity",
	TypeRemoveEntity:            "RemoveEntity",
	TypeStartResume:             "StartResume",
	TypeStopFreeze:              "StopFreeze",
	TypeAcknowledge:             "Acknowledge",
	TypeActionRequest:           "ActionRequest",
	TypeActionResponse:          "ActionResponse",
	TypeDataQuery:               "DataQuery",
	TypeSetData:                 "SetData",
	TypeData:                    "Data",
	TypeEventReport:             "EventReport",
	TypeComment:                 "Comment",
	TypeElectromagneticEmission: "ElectromagneticEmission",
	TypeDesignator:              "Designator",
	TypeTransmitter:             "Transmitter",
	TypeSignal:                  "Signal",
	TypeReceiver:                "Receiver",
}

// String returns the PDU name, or the number for types outside the table.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Family returns the protocol family the type belongs to.
func (t Type) Family() Family {
	switch {
	case t == TypeEntityState, t == TypeCollision:
		return FamilyEntityInformation
	case t == TypeFire, t == TypeDetonation:
		return FamilyWarfare
	case t >= TypeServiceRequest && t <= TypeRepairResponse:
		return FamilyLogistics
	case t >= TypeCreateEntity && t <= TypeComment:
		return FamilySimulationManagement
	case t == TypeElectromagneticEmission, t == TypeDesignator:
		return FamilyDistributedEmission
	case t >= TypeTransmitter && t <= TypeReceiver:
		return FamilyRadioCommunication
	default:
		return FamilyOther
	}
}

// ParseType accepts a PDU name (case-sensitive, as returned by String) or a number.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return Type(n), true
}

// Family is the protocol family in header byte 3.
type Family uint8

const (
	FamilyOther Family = iota
	FamilyEntityInformation
	FamilyWarfare
	FamilyLogistics
	FamilyRadioCommunication
	FamilySimulationManagement
	FamilyDistributedEmission
)

func (f Family) String() string {
	switch f {
	case FamilyOther:
		return "Other"
	case FamilyEntityInformation:
		return "EntityInformation"
	case FamilyWarfare:
		return "Warfare"
	case FamilyLogistics:
		return "Logistics"
	case FamilyRadioCommunication:
		return "RadioCommunication"
	case FamilySimulationManagement:
		return "SimulationManagement"
	case FamilyDistributedEmission:
		return "DistributedEmissionRegeneration"
	default:
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
}
