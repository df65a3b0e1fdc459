package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shipment struct {
	ID              string
	SenderName      string
	SenderLastName  string
	NationalID      string
	OperationNumber string
	Description     string
	Destination     Destination
	WeightTons      decimal.Decimal
	Price           decimal.Decimal
	Status          Status
	CreatedAt       time.Time
}

type ShipmentModify struct {
	ID              *string
	SenderName      *string
	SenderLastName  *string
	NationalID      *string
	OperationNumber *string
	Description     *string
	Destination     *Destination
	WeightTons      *decimal.Decimal
	Price           *decimal.Decimal
	Status          *Status
}

// ShipmentView is a shipment decorated with what the client may do with it.
type ShipmentView struct {
	Shipment
	Editable bool
	Progress []ProgressStep
}

// Progress is the lifecycle position of a bare status.
type Progress struct {
	Status   Status
	Editable bool
	Steps    []ProgressStep
}

type ProgressStep struct {
	Status  Status
	Reached bool
}

type Destination string

const (
	Lima     Destination = "Lima"
	Cusco    Destination = "Cusco"
	Trujillo Destination = "Trujillo"
	Arequipa Destination = "Arequipa"
)

const DefaultDestination = Lima

func (d Destination) String() string {
	return string(d)
}

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusShipped   Status = "enviado"
	StatusInTransit Status = "en camino"
	StatusDelivered Status = "entregado"
	StatusCancelled Status = "cancelado"
)

const DefaultStatus = StatusPending

func (s Status) String() string {
	return string(s)
}
