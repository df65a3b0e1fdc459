package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportLine struct {
	Count      int
	WeightTons decimal.Decimal
	Revenue    decimal.Decimal
}

type Report struct {
	GeneratedAt   time.Time
	Total         ReportLine
	ByStatus      map[Status]ReportLine
	ByDestination map[Destination]ReportLine
}
