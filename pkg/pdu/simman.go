package pdu

import "github.com/ssargent/disgo/pkg/codec"

// DatumRecords is the pair of datum lists carried by several simulation
// management PDUs. Both counts precede both lists on the wire.
type DatumRecords struct {
	FixedDatums    []FixedDatum
	VariableDatums []VariableDatum
}

func (d *DatumRecords) visit(v codec.Visitor) {
	nf := v.Count("numberOfFixedDatumRecords", codec.Width32, len(d.FixedDatums))
	nv := v.Count("numberOfVariableDatumRecords", codec.Width32, len(d.VariableDatums))
	codec.VisitList(v, "fixedDatums", nf, &d.FixedDatums)
	codec.VisitList(v, "variableDatums", nv, &d.VariableDatums)
}

type CreateEntity struct {
	SimulationManagementHeader
	RequestID uint32
}

func NewCreateEntity() *CreateEntity {
	p := &CreateEntity{}
	p.init(TypeCreateEntity)
	return p
}

func (p *CreateEntity) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
}

type RemoveEntity struct {
	SimulationManagementHeader
	RequestID uint32
}

func NewRemoveEntity() *RemoveEntity {
	p := &RemoveEntity{}
	p.init(TypeRemoveEntity)
	return p
}

func (p *RemoveEntity) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
}

type StartResume struct {
	SimulationManagementHeader
	RealWorldTime  ClockTime
	SimulationTime ClockTime
	RequestID      uint32
}

func NewStartResume() *StartResume {
	p := &StartResume{}
	p.init(TypeStartResume)
	return p
}

func (p *StartResume) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Record("realWorldTime", &p.RealWorldTime)
	v.Record("simulationTime", &p.SimulationTime)
	v.Uint32("requestID", &p.RequestID)
}

type StopFreeze struct {
	SimulationManagementHeader
	RealWorldTime  ClockTime
	Reason         uint8
	FrozenBehavior uint8
	Padding1       uint16
	RequestID      uint32
}

func NewStopFreeze() *StopFreeze {
	p := &StopFreeze{}
	p.init(TypeStopFreeze)
	return p
}

func (p *StopFreeze) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Record("realWorldTime", &p.RealWorldTime)
	v.Uint8("reason", &p.Reason)
	v.Uint8("frozenBehavior", &p.FrozenBehavior)
	v.Uint16("padding1", &p.Padding1)
	v.Uint32("requestID", &p.RequestID)
}

type Acknowledge struct {
	SimulationManagementHeader
	AcknowledgeFlag uint16
	ResponseFlag    uint16
	RequestID       uint32
}

func NewAcknowledge() *Acknowledge {
	p := &Acknowledge{}
	p.init(TypeAcknowledge)
	return p
}

func (p *Acknowledge) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint16("acknowledgeFlag", &p.AcknowledgeFlag)
	v.Uint16("responseFlag", &p.ResponseFlag)
	v.Uint32("requestID", &p.RequestID)
}

type ActionRequest struct {
	SimulationManagementHeader
	RequestID uint32
	ActionID  uint32
	DatumRecords
}

func NewActionRequest() *ActionRequest {
	p := &ActionRequest{}
	p.init(TypeActionRequest)
	return p
}

func (p *ActionRequest) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
	v.Uint32("actionID", &p.ActionID)
	p.DatumRecords.visit(v)
}

type ActionResponse struct {
	SimulationManagementHeader
	RequestID     uint32
	RequestStatus uint32
	DatumRecords
}

func NewActionResponse() *ActionResponse {
	p := &ActionResponse{}
	p.init(TypeActionResponse)
	return p
}

func (p *ActionResponse) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
	v.Uint32("requestStatus", &p.RequestStatus)
	p.DatumRecords.visit(v)
}

// DataQuery asks for the values of the listed datum IDs. The datum records
// carry IDs only; their values are ignored by receivers.
type DataQuery struct {
	SimulationManagementHeader
	RequestID    uint32
	TimeInterval uint32
	DatumRecords
}

func NewDataQuery() *DataQuery {
	p := &DataQuery{}
	p.init(TypeDataQuery)
	return p
}

func (p *DataQuery) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
	v.Uint32("timeInterval", &p.TimeInterval)
	p.DatumRecords.visit(v)
}

type SetData struct {
	SimulationManagementHeader
	RequestID uint32
	Padding1  uint32
	DatumRecords
}

func NewSetData() *SetData {
	p := &SetData{}
	p.init(TypeSetData)
	return p
}

func (p *SetData) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
	v.Uint32("padding1", &p.Padding1)
	p.DatumRecords.visit(v)
}

type Data struct {
	SimulationManagementHeader
	RequestID uint32
	Padding1  uint32
	DatumRecords
}

func NewData() *Data {
	p := &Data{}
	p.init(TypeData)
	return p
}

func (p *Data) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("requestID", &p.RequestID)
	v.Uint32("padding1", &p.Padding1)
	p.DatumRecords.visit(v)
}

type EventReport struct {
	SimulationManagementHeader
	EventType uint32
	Padding1  uint32
	DatumRecords
}

func NewEventReport() *EventReport {
	p := &EventReport{}
	p.init(TypeEventReport)
	return p
}

func (p *EventReport) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	v.Uint32("eventType", &p.EventType)
	v.Uint32("padding1", &p.Padding1)
	p.DatumRecords.visit(v)
}

// Comment carries free-form datums, typically text in variable datums.
type Comment struct {
	SimulationManagementHeader
	DatumRecords
}

func NewComment() *Comment {
	p := &Comment{}
	p.init(TypeComment)
	return p
}

func (p *Comment) VisitFields(v codec.Visitor) {
	p.SimulationManagementHeader.VisitFields(v)
	p.DatumRecords.visit(v)
}
