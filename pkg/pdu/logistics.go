package pdu

import "github.com/ssargent/disgo/pkg/codec"

type ServiceRequest struct {
	Header
	RequestingEntityID   EntityID
	ServicingEntityID    EntityID
	ServiceTypeRequested uint8
	Padding              uint16
	Supplies             []SupplyQuantity
}

func NewServiceRequest() *ServiceRequest {
	p := &ServiceRequest{}
	p.init(TypeServiceRequest)
	return p
}

func (p *ServiceRequest) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("requestingEntityID", &p.RequestingEntityID)
	v.Record("servicingEntityID", &p.ServicingEntityID)
	v.Uint8("serviceTypeRequested", &p.ServiceTypeRequested)
	n := v.Count("numberOfSupplyTypes", codec.Width8, len(p.Supplies))
	v.Uint16("serviceRequestPadding", &p.Padding)
	codec.VisitList(v, "supplies", n, &p.Supplies)
}

// resupply is the shared body of the Resupply Offer and Resupply Received PDUs.
type resupply struct {
	ReceivingEntityID EntityID
	SupplyingEntityID EntityID
	Padding1          uint8
	Padding2          uint16
	Supplies          []SupplyQuantity
}

func (r *resupply) visit(v codec.Visitor) {
	v.Record("receivingEntityID", &r.ReceivingEntityID)
	v.Record("supplyingEntityID", &r.SupplyingEntityID)
	n := v.Count("numberOfSupplyTypes", codec.Width8, len(r.Supplies))
	v.Uint8("padding1", &r.Padding1)
	v.Uint16("padding2", &r.Padding2)
	codec.VisitList(v, "supplies", n, &r.Supplies)
}

type ResupplyOffer struct {
	Header
	resupply
}

func NewResupplyOffer() *ResupplyOffer {
	p := &ResupplyOffer{}
	p.init(TypeResupplyOffer)
	return p
}

func (p *ResupplyOffer) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	p.resupply.visit(v)
}

type ResupplyReceived struct {
	Header
	resupply
}

func NewResupplyReceived() *ResupplyReceived {
	p := &ResupplyReceived{}
	p.init(TypeResupplyReceived)
	return p
}

func (p *ResupplyReceived) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	p.resupply.visit(v)
}

type ResupplyCancel struct {
	Header
	ReceivingEntityID EntityID
	SupplyingEntityID EntityID
}

func NewResupplyCancel() *ResupplyCancel {
	p := &ResupplyCancel{}
	p.init(TypeResupplyCancel)
	return p
}

func (p *ResupplyCancel) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("receivingEntityID", &p.ReceivingEntityID)
	v.Record("supplyingEntityID", &p.SupplyingEntityID)
}

type RepairComplete struct {
	Header
	ReceivingEntityID EntityID
	RepairingEntityID EntityID
	Repair            uint16
	Padding           uint16
}

func NewRepairComplete() *RepairComplete {
	p := &RepairComplete{}
	p.init(TypeRepairComplete)
	return p
}

func (p *RepairComplete) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("receivingEntityID", &p.ReceivingEntityID)
	v.Record("repairingEntityID", &p.RepairingEntityID)
	v.Uint16("repair", &p.Repair)
	v.Uint16("padding2", &p.Padding)
}

type RepairResponse struct {
	Header
	ReceivingEntityID EntityID
	RepairingEntityID EntityID
	RepairResult      uint8
	Padding1          uint16
	Padding2          uint8
}

func NewRepairResponse() *RepairResponse {
	p := &RepairResponse{}
	p.init(TypeRepairResponse)
	return p
}

func (p *RepairResponse) VisitFields(v codec.Visitor) {
	p.Header.VisitFields(v)
	v.Record("receivingEntityID", &p.ReceivingEntityID)
	v.Record("repairingEntityID", &p.RepairingEntityID)
	v.Uint8("repairResult", &p.RepairResult)
	v.Uint16("padding1", &p.Padding1)
	v.Uint8("padding2", &p.Padding2)
}
