package pdu

// Samples returns one populated PDU of every type in this package, in type
// order. Every slice holds at least one element so that the result exercises
// each count and list path.
func Samples() []PDU {
	entity := EntityID{Site: 1, Application: 2, Entity: 3}
	target := EntityID{Site: 1, Application: 2, Entity: 99}
	event := EventID{Site: 1, Application: 2, EventNumber: 7}
	tank := EntityType{Kind: 1, Domain: 1, Country: 225, Category: 1, Subcategory: 1, Specific: 3}
	round := EntityType{Kind: 2, Domain: 9, Country: 225, Category: 2, Subcategory: 14}
	burst := BurstDescriptor{Munition: round, Warhead: 1000, Fuse: 100, Quantity: 1, Rate: 0}
	artic := []ArticulationParameter{
		{ParameterTypeDesignator: 0, ChangeIndicator: 1, PartAttachedTo: 0, ParameterType: 4096 + 11, ParameterValue: 0.785},
	}
	supplies := []SupplyQuantity{{SupplyType: EntityType{Kind: 6, Domain: 1, Category: 1}, Quantity: 500}}
	datums := DatumRecords{
		FixedDatums:    []FixedDatum{{ID: 240000, Value: 12}},
		VariableDatums: []VariableDatum{{ID: 240001, Value: []byte("hello")}},
	}
	clock := ClockTime{Hour: 12, TimePastHour: 180000}

	es := NewEntityState()
	es.EntityID = entity
	es.ForceID = 1
	es.EntityType = tank
	es.LinearVelocity = Vector3Float{X: 5, Y: 0.5, Z: 0}
	es.Location = Vector3Double{X: 4517579.5, Y: 1007566.25, Z: 4374624.75}
	es.Orientation = Orientation{Psi: 1.57, Theta: 0, Phi: -0.1}
	es.SetLandAppearance(LandPlatformAppearance{Damage: DamageSlight, Hatch: HatchOpen, HeadLights: true, PowerPlantOn: true})
	es.Capabilities = EntityCapabilities{FuelSupply: true}.ToWire()
	es.DeadReckoning = DeadReckoningParameter{Algorithm: 2, LinearAcceleration: Vector3Float{X: 0.1}}
	es.Marking.SetString("T72 ALPHA")
	es.ArticulationParameters = artic

	fire := NewFire()
	fire.FiringEntityID = entity
	fire.TargetEntityID = target
	fire.MunitionID = EntityID{Site: 1, Application: 2, Entity: 500}
	fire.EventID = event
	fire.FireMissionIndex = 4
	fire.Location = es.Location
	fire.BurstDescriptor = burst
	fire.Velocity = Vector3Float{X: 10, Y: 0, Z: -2.5}
	fire.Range = 1500

	det := NewDetonation()
	det.FiringEntityID = entity
	det.TargetEntityID = target
	det.MunitionID = fire.MunitionID
	det.EventID = event
	det.Velocity = Vector3Float{X: 300, Y: 10, Z: -20}
	det.Location = Vector3Double{X: 4517600, Y: 1007500, Z: 4374600}
	det.BurstDescriptor = burst
	det.LocationInEntity = Vector3Float{X: 1, Y: 0.5, Z: 1.25}
	det.DetonationResult = 1
	det.ArticulationParameters = artic

	col := NewCollision()
	col.IssuingEntityID = entity
	col.CollidingEntityID = target
	col.EventID = event
	col.CollisionType = 1
	col.Velocity = Vector3Float{X: 2, Y: 2}
	col.Mass = 42000
	col.Location = Vector3Float{X: 1, Y: 2, Z: 3}

	sr := NewServiceRequest()
	sr.RequestingEntityID = entity
	sr.ServicingEntityID = target
	sr.ServiceTypeRequested = 1
	sr.Supplies = supplies

	offer := NewResupplyOffer()
	offer.ReceivingEntityID = entity
	offer.SupplyingEntityID = target
	offer.Supplies = supplies

	received := NewResupplyReceived()
	received.ReceivingEntityID = entity
	received.SupplyingEntityID = target
	received.Supplies = supplies

	cancel := NewResupplyCancel()
	cancel.ReceivingEntityID = entity
	cancel.SupplyingEntityID = target

	rc := NewRepairComplete()
	rc.ReceivingEntityID = entity
	rc.RepairingEntityID = target
	rc.Repair = 4000

	rr := NewRepairResponse()
	rr.ReceivingEntityID = entity
	rr.RepairingEntityID = target
	rr.RepairResult = 1

	create := NewCreateEntity()
	create.OriginatingEntityID = entity
	create.ReceivingEntityID = target
	create.RequestID = 1

	remove := NewRemoveEntity()
	remove.OriginatingEntityID = entity
	remove.ReceivingEntityID = target
	remove.RequestID = 2

	start := NewStartResume()
	start.OriginatingEntityID = entity
	start.ReceivingEntityID = target
	start.RealWorldTime = clock
	start.SimulationTime = ClockTime{Hour: 0, TimePastHour: 1000}
	start.RequestID = 3

	stop := NewStopFreeze()
	stop.OriginatingEntityID = entity
	stop.ReceivingEntityID = target
	stop.RealWorldTime = clock
	stop.Reason = 2
	stop.FrozenBehavior = 1
	stop.RequestID = 4

	ack := NewAcknowledge()
	ack.OriginatingEntityID = target
	ack.ReceivingEntityID = entity
	ack.AcknowledgeFlag = 1
	ack.ResponseFlag = 1
	ack.RequestID = 3

	areq := NewActionRequest()
	areq.OriginatingEntityID = entity
	areq.ReceivingEntityID = target
	areq.RequestID = 5
	areq.ActionID = 10
	areq.DatumRecords = datums

	aresp := NewActionResponse()
	aresp.OriginatingEntityID = target
	aresp.ReceivingEntityID = entity
	aresp.RequestID = 5
	aresp.RequestStatus = 2
	aresp.DatumRecords = datums

	query := NewDataQuery()
	query.OriginatingEntityID = entity
	query.ReceivingEntityID = target
	query.RequestID = 6
	query.TimeInterval = 1000
	query.DatumRecords = datums

	set := NewSetData()
	set.OriginatingEntityID = entity
	set.ReceivingEntityID = target
	set.RequestID = 7
	set.DatumRecords = datums

	data := NewData()
	data.OriginatingEntityID = target
	data.ReceivingEntityID = entity
	data.RequestID = 6
	data.DatumRecords = datums

	report := NewEventReport()
	report.OriginatingEntityID = entity
	report.ReceivingEntityID = target
	report.EventType = 2
	report.DatumRecords = datums

	comment := NewComment()
	comment.OriginatingEntityID = entity
	comment.ReceivingEntityID = EntityID{Site: 0xFFFF, Application: 0xFFFF, Entity: 0xFFFF}
	comment.DatumRecords = DatumRecords{VariableDatums: []VariableDatum{{ID: 31000, Value: []byte("exercise start")}}}

	ee := NewElectromagneticEmission()
	ee.EmittingEntityID = entity
	ee.EventID = event
	ee.StateUpdateIndicator = 1
	ee.Systems = []EmitterSystemData{{
		EmitterSystem: EmitterSystem{EmitterName: 2505, Function: 2, EmitterIDNumber: 1},
		Location:      Vector3Float{X: 0, Y: 0, Z: 3},
		Beams: []BeamData{{
			BeamIDNumber:       1,
			BeamParameterIndex: 1,
			Parameters: FundamentalParameterData{
				Frequency: 9.4e9, FrequencyRange: 1e7, EffectiveRadiatedPower: 80,
				PulseRepetitionFrequency: 1000, PulseWidth: 1.5,
			},
			BeamFunction:    1,
			TrackJamTargets: []TrackJamTarget{{TrackJam: target, EmitterID: 1, BeamID: 1}},
		}},
	}}

	des := NewDesignator()
	des.DesignatingEntityID = entity
	des.CodeName = 1
	des.DesignatedEntityID = target
	des.DesignatorCode = 1688
	des.Power = 2.5
	des.Wavelength = 1.064
	des.SpotWrtDesignated = Vector3Float{X: 0.5}
	des.SpotLocation = det.Location
	des.DeadReckoningAlgorithm = 1

	tx := NewTransmitter()
	tx.EntityID = entity
	tx.RadioID = 1
	tx.RadioEntityType = RadioEntityType{Kind: 7, Domain: 1, Country: 225, Category: 1, NomenclatureVersion: 1, Nomenclature: 2}
	tx.TransmitState = 2
	tx.InputSource = 1
	tx.AntennaLocation = es.Location
	tx.Frequency = 30_000_000
	tx.TransmitFrequencyBandwidth = 25000
	tx.Power = 35
	tx.ModulationType = ModulationType{
		SpreadSpectrum: SpreadSpectrum{FrequencyHopping: true}.ToWire(),
		Major:          1, Detail: 2, System: 1,
	}
	tx.ModulationParameters = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	tx.AntennaPattern = []byte{0xA0, 0xA1, 0xA2, 0xA3}

	sig := NewSignal()
	sig.EntityID = entity
	sig.RadioID = 1
	sig.EncodingScheme = EncodingScheme{Class: EncodedAudio, Type: 1}.ToWire()
	sig.SampleRate = 8000
	sig.Samples = 6
	sig.Data = []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}

	rx := NewReceiver()
	rx.EntityID = target
	rx.RadioID = 1
	rx.ReceiverState = 2
	rx.ReceivedPower = -60.5
	rx.TransmitterEntityID = entity
	rx.TransmitterRadioID = 1

	return []PDU{
		es, fire, det, col, sr, offer, received, cancel, rc, rr,
		create, remove, start, stop, ack, areq, aresp, query, set, data, report, comment,
		ee, des, tx, sig, rx,
	}
}
