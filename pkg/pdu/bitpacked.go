package pdu

import (
	"strconv"

	"github.com/ssargent/disgo/pkg/codec"
)

// Bit-packed words. Each view has a layout listing its fields from the least
// significant bit up; the layouts tile their word exactly, so ToWire and the
// matching FromWire are inverses for every bit pattern.

func flag[W codec.Word](b bool) W {
	if b {
		return 1
	}
	return 0
}

// PduStatusLayout is the DIS 7 header status byte.
var PduStatusLayout = codec.Layout[uint8]{
	codec.NewBitField[uint8]("transferredEntityIndicator", 0, 1),
	codec.NewBitField[uint8]("lvcIndicator", 1, 2),
	codec.NewBitField[uint8]("coupledExtensionIndicator", 3, 1),
	codec.NewBitField[uint8]("typeSpecific", 4, 2),
	codec.NewBitField[uint8]("reserved", 6, 2),
}

// PduStatus is the decoded header status byte. TypeSpecific carries the
// indicator whose meaning depends on the PDU type (fire type, detonation
// type, radio attached, intercom attached and so on).
type PduStatus struct {
	TransferredEntity bool
	LVC               uint8
	CoupledExtension  bool
	TypeSpecific      uint8
	Reserved          uint8
}

func (s PduStatus) ToWire() uint8 {
	return PduStatusLayout.Pack([]uint8{
		flag[uint8](s.TransferredEntity),
		s.LVC,
		flag[uint8](s.CoupledExtension),
		s.TypeSpecific,
		s.Reserved,
	})
}

func PduStatusFromWire(w uint8) PduStatus {
	f := PduStatusLayout.Unpack(w)
	return PduStatus{
		TransferredEntity: f[0] != 0,
		LVC:               f[1],
		CoupledExtension:  f[2] != 0,
		TypeSpecific:      f[3],
		Reserved:          f[4],
	}
}

// DamageState is the damage field of an entity appearance.
type DamageState uint8

const (
	DamageNone DamageState = iota
	DamageSlight
	DamageModerate
	DamageDestroyed
)

func (d DamageState) String() string {
	switch d {
	case DamageNone:
		return "NoDamage"
	case DamageSlight:
		return "SlightDamage"
	case DamageModerate:
		return "ModerateDamage"
	case DamageDestroyed:
		return "Destroyed"
	default:
		return strconv.Itoa(int(d))
	}
}

// HatchState is the hatch field of a land platform appearance.
type HatchState uint8

const (
	HatchNotApplicable HatchState = iota
	HatchClosed
	HatchPopped
	HatchPoppedPersonVisible
	HatchOpen
	HatchOpenPersonVisible
)

func (h HatchState) String() string {
	switch h {
	case HatchNotApplicable:
		return "NotApplicable"
	case HatchClosed:
		return "Closed"
	case HatchPopped:
		return "Popped"
	case HatchPoppedPersonVisible:
		return "PoppedPersonVisible"
	case HatchOpen:
		return "Open"
	case HatchOpenPersonVisible:
		return "OpenPersonVisible"
	default:
		return strconv.Itoa(int(h))
	}
}

// LandPlatformAppearanceLayout is the 32-bit appearance word of land platforms.
var LandPlatformAppearanceLayout = codec.Layout[uint32]{
	codec.NewBitField[uint32]("paintScheme", 0, 1),
	codec.NewBitField[uint32]("mobilityKill", 1, 1),
	codec.NewBitField[uint32]("firePowerKill", 2, 1),
	codec.NewBitField[uint32]("damage", 3, 2),
	codec.NewBitField[uint32]("smoke", 5, 2),
	codec.NewBitField[uint32]("trailingEffects", 7, 2),
	codec.NewBitField[uint32]("hatch", 9, 3),
	codec.NewBitField[uint32]("headLights", 12, 1),
	codec.NewBitField[uint32]("tailLights", 13, 1),
	codec.NewBitField[uint32]("brakeLights", 14, 1),
	codec.NewBitField[uint32]("flaming", 15, 1),
	codec.NewBitField[uint32]("launcherRaised", 16, 1),
	codec.NewBitField[uint32]("camouflageType", 17, 2),
	codec.NewBitField[uint32]("concealed", 19, 1),
	codec.NewBitField[uint32]("unused20", 20, 1),
	codec.NewBitField[uint32]("frozen", 21, 1),
	codec.NewBitField[uint32]("powerPlantOn", 22, 1),
	codec.NewBitField[uint32]("deactivated", 23, 1),
	codec.NewBitField[uint32]("tentExtended", 24, 1),
	codec.NewBitField[uint32]("rampDown", 25, 1),
	codec.NewBitField[uint32]("blackoutLights", 26, 1),
	codec.NewBitField[uint32]("blackoutBrakeLights", 27, 1),
	codec.NewBitField[uint32]("spotLights", 28, 1),
	codec.NewBitField[uint32]("interiorLights", 29, 1),
	codec.NewBitField[uint32]("unused30", 30, 2),
}

// LandPlatformAppearance is the decoded appearance of a land platform.
// Unused bits are kept so that decode and encode are exact inverses.
type LandPlatformAppearance struct {
	PaintScheme         bool
	MobilityKill        bool
	FirePowerKill       bool
	Damage              DamageState
	Smoke               uint8
	TrailingEffects     uint8
	Hatch               HatchState
	HeadLights          bool
	TailLights          bool
	BrakeLights         bool
	Flaming             bool
	LauncherRaised      bool
	CamouflageType      uint8
	Concealed           bool
	Unused20            bool
	Frozen              bool
	PowerPlantOn        bool
	Deactivated         bool
	TentExtended        bool
	RampDown            bool
	BlackoutLights      bool
	BlackoutBrakeLights bool
	SpotLights          bool
	InteriorLights      bool
	Unused30            uint8
}

func (a LandPlatformAppearance) ToWire() uint32 {
	return LandPlatformAppearanceLayout.Pack([]uint32{
		flag[uint32](a.PaintScheme),
		flag[uint32](a.MobilityKill),
		flag[uint32](a.FirePowerKill),
		uint32(a.Damage),
		uint32(a.Smoke),
		uint32(a.TrailingEffects),
		uint32(a.Hatch),
		flag[uint32](a.HeadLights),
		flag[uint32](a.TailLights),
		flag[uint32](a.BrakeLights),
		flag[uint32](a.Flaming),
		flag[uint32](a.LauncherRaised),
		uint32(a.CamouflageType),
		flag[uint32](a.Concealed),
		flag[uint32](a.Unused20),
		flag[uint32](a.Frozen),
		flag[uint32](a.PowerPlantOn),
		flag[uint32](a.Deactivated),
		flag[uint32](a.TentExtended),
		flag[uint32](a.RampDown),
		flag[uint32](a.BlackoutLights),
		flag[uint32](a.BlackoutBrakeLights),
		flag[uint32](a.SpotLights),
		flag[uint32](a.InteriorLights),
		uint32(a.Unused30),
	})
}

func LandPlatformAppearanceFromWire(w uint32) LandPlatformAppearance {
	f := LandPlatformAppearanceLayout.Unpack(w)
	return LandPlatformAppearance{
		PaintScheme:         f[0] != 0,
		MobilityKill:        f[1] != 0,
		FirePowerKill:       f[2] != 0,
		Damage:              DamageState(f[3]),
		Smoke:               uint8(f[4]),
		TrailingEffects:     uint8(f[5]),
		Hatch:               HatchState(f[6]),
		HeadLights:          f[7] != 0,
		TailLights:          f[8] != 0,
		BrakeLights:         f[9] != 0,
		Flaming:             f[10] != 0,
		LauncherRaised:      f[11] != 0,
		CamouflageType:      uint8(f[12]),
		Concealed:           f[13] != 0,
		Unused20:            f[14] != 0,
		Frozen:              f[15] != 0,
		PowerPlantOn:        f[16] != 0,
		Deactivated:         f[17] != 0,
		TentExtended:        f[18] != 0,
		RampDown:            f[19] != 0,
		BlackoutLights:      f[20] != 0,
		BlackoutBrakeLights: f[21] != 0,
		SpotLights:          f[22] != 0,
		InteriorLights:      f[23] != 0,
		Unused30:            uint8(f[24]),
	}
}

// EntityCapabilitiesLayout is the 32-bit capabilities word of the Entity State PDU.
var EntityCapabilitiesLayout = codec.Layout[uint32]{
	codec.NewBitField[uint32]("ammunitionSupply", 0, 1),
	codec.NewBitField[uint32]("fuelSupply", 1, 1),
	codec.NewBitField[uint32]("recovery", 2, 1),
	codec.NewBitField[uint32]("repair", 3, 1),
	codec.NewBitField[uint32]("reserved", 4, 28),
}

type EntityCapabilities struct {
	AmmunitionSupply bool
	FuelSupply       bool
	Recovery         bool
	Repair           bool
	Reserved         uint32
}

func (c EntityCapabilities) ToWire() uint32 {
	return EntityCapabilitiesLayout.Pack([]uint32{
		flag[uint32](c.AmmunitionSupply),
		flag[uint32](c.FuelSupply),
		flag[uint32](c.Recovery),
		flag[uint32](c.Repair),
		c.Reserved,
	})
}

func EntityCapabilitiesFromWire(w uint32) EntityCapabilities {
	f := EntityCapabilitiesLayout.Unpack(w)
	return EntityCapabilities{
		AmmunitionSupply: f[0] != 0,
		FuelSupply:       f[1] != 0,
		Recovery:         f[2] != 0,
		Repair:           f[3] != 0,
		Reserved:         f[4],
	}
}

// SpreadSpectrumLayout is the first word of a transmitter's modulation type.
var SpreadSpectrumLayout = codec.Layout[uint16]{
	codec.NewBitField[uint16]("frequencyHopping", 0, 1),
	codec.NewBitField[uint16]("pseudoNoise", 1, 1),
	codec.NewBitField[uint16]("timeHopping", 2, 1),
	codec.NewBitField[uint16]("reserved", 3, 13),
}

type SpreadSpectrum struct {
	FrequencyHopping bool
	PseudoNoise      bool
	TimeHopping      bool
	Reserved         uint16
}

func (s SpreadSpectrum) ToWire() uint16 {
	return SpreadSpectrumLayout.Pack([]uint16{
		flag[uint16](s.FrequencyHopping),
		flag[uint16](s.PseudoNoise),
		flag[uint16](s.TimeHopping),
		s.Reserved,
	})
}

func SpreadSpectrumFromWire(w uint16) SpreadSpectrum {
	f := SpreadSpectrumLayout.Unpack(w)
	return SpreadSpectrum{
		FrequencyHopping: f[0] != 0,
		PseudoNoise:      f[1] != 0,
		TimeHopping:      f[2] != 0,
		Reserved:         f[3],
	}
}

// EncodingClass is the top two bits of a Signal PDU encoding scheme.
type EncodingClass uint8

const (
	EncodedAudio EncodingClass = iota
	RawBinaryData
	ApplicationSpecificData
	DatabaseIndex
)

func (c EncodingClass) String() string {
	switch c {
	case EncodedAudio:
		return "EncodedAudio"
	case RawBinaryData:
		return "RawBinaryData"
	case ApplicationSpecificData:
		return "ApplicationSpecificData"
	case DatabaseIndex:
		return "DatabaseIndex"
	default:
		return strconv.Itoa(int(c))
	}
}

// EncodingSchemeLayout is the Signal PDU encoding scheme word.
var EncodingSchemeLayout = codec.Layout[uint16]{
	codec.NewBitField[uint16]("encodingType", 0, 14),
	codec.NewBitField[uint16]("encodingClass", 14, 2),
}

// EncodingScheme is the decoded Signal PDU encoding word. For encoded audio
// Type is the audio encoding; for raw binary data it is the number of TDL
// messages in the PDU.
type EncodingScheme struct {
	Type  uint16
	Class EncodingClass
}

func (e EncodingScheme) ToWire() uint16 {
	return EncodingSchemeLayout.Pack([]uint16{e.Type, uint16(e.Class)})
}

func EncodingSchemeFromWire(w uint16) EncodingScheme {
	f := EncodingSchemeLayout.Unpack(w)
	return EncodingScheme{Type: f[0], Class: EncodingClass(f[1])}
}
