package shipment

import (
	"time"

	"envios/internal/entities"
)

func buildReport(shipments []entities.Shipment, generatedAt time.Time) *entities.Report {
	report := &entities.Report{
		GeneratedAt:   generatedAt,
		ByStatus:      make(map[entities.Status]entities.ReportLine),
		ByDestination: make(map[entities.Destination]entities.ReportLine),
	}

	for _, shipment := range shipments {
		report.Total = addLine(report.Total, shipment)
		report.ByStatus[shipment.Status] = addLine(report.ByStatus[shipment.Status], shipment)
		report.ByDestination[shipment.Destination] = addLine(report.ByDestination[shipment.Destination], shipment)
	}

	return report
}

// addLine counts every shipment. Revenue leaves cancelado out since nothing is
// charged for a cancelled shipment.
func addLine(line entities.ReportLine, shipment entities.Shipment) entities.ReportLine {
	line.Count++
	line.WeightTons = line.WeightTons.Add(shipment.WeightTons)
	if shipment.Status != entities.StatusCancelled {
		line.Revenue = line.Revenue.Add(shipment.Price)
	}
	return line
}
