package converters

import (
	"envios/internal/entities"
	"envios/internal/generated/dto"
	"github.com/AlekSi/pointer"
)

func Envio(shipment entities.Shipment) dto.Envio {
	return dto.Envio{
		ID:              shipment.ID,
		Nombre:          shipment.SenderName,
		Apellido:        pointer.ToStringOrNil(shipment.SenderLastName),
		Dni:             pointer.ToStringOrNil(shipment.NationalID),
		NumeroOperacion: pointer.ToStringOrNil(shipment.OperationNumber),
		Descripcion:     pointer.ToStringOrNil(shipment.Description),
		Destino:         shipment.Destination.String(),
		Estado:          shipment.Status.String(),
		Precio:          shipment.Price.String(),
		Toneladas:       shipment.WeightTons.String(),
		CreatedAt:       shipment.CreatedAt,
	}
}

func Envios(shipments []entities.Shipment) []dto.Envio {
	envios := make([]dto.Envio, 0, len(shipments))
	for _, shipment := range shipments {
		envios = append(envios, Envio(shipment))
	}
	return envios
}

func EnvioDetail(view entities.ShipmentView) dto.EnvioDetail {
	envio := Envio(view.Shipment)

	return dto.EnvioDetail{
		ID:              envio.ID,
		Nombre:          envio.Nombre,
		Apellido:        envio.Apellido,
		Dni:             envio.Dni,
		NumeroOperacion: envio.NumeroOperacion,
		Descripcion:     envio.Descripcion,
		Destino:         envio.Destino,
		Estado:          envio.Estado,
		Precio:          envio.Precio,
		Toneladas:       envio.Toneladas,
		CreatedAt:       envio.CreatedAt,
		Editable:        view.Editable,
		Progreso:        ProgressSteps(view.Progress),
	}
}

// ProgressSteps never returns nil so the field always encodes as a list.
func ProgressSteps(steps []entities.ProgressStep) []dto.ProgressStep {
	out := make([]dto.ProgressStep, 0, len(steps))
	for _, step := range steps {
		out = append(out, dto.ProgressStep{
			Estado:    step.Status.String(),
			Alcanzado: step.Reached,
		})
	}
	return out
}

func Session(session entities.Session) dto.Session {
	return dto.Session{
		Token:     session.Token,
		Username:  session.Username,
		Role:      dto.SessionRole(session.Role),
		ExpiresAt: session.ExpiresAt,
	}
}

func StatusChanges(changes []entities.StatusChange) []dto.StatusChange {
	out := make([]dto.StatusChange, 0, len(changes))
	for _, change := range changes {
		out = append(out, dto.StatusChange{
			EventId:     change.EventID,
			EnvioId:     change.ShipmentID,
			Desde:       change.From.String(),
			Hacia:       change.To.String(),
			CambiadoPor: change.ChangedBy,
			Fecha:       change.OccurredAt,
		})
	}
	return out
}

func Report(report entities.Report) dto.Report {
	out := dto.Report{
		GeneratedAt: report.GeneratedAt,
		Total:       reportLine(report.Total),
		PorEstado:   make(map[string]dto.ReportLine, len(report.ByStatus)),
		PorDestino:  make(map[string]dto.ReportLine, len(report.ByDestination)),
	}
	for status, line := range report.ByStatus {
		out.PorEstado[status.String()] = reportLine(line)
	}
	for destination, line := range report.ByDestination {
		out.PorDestino[destination.String()] = reportLine(line)
	}
	return out
}

func reportLine(line entities.ReportLine) dto.ReportLine {
	return dto.ReportLine{
		Cantidad:  line.Count,
		Toneladas: line.WeightTons.String(),
		Ingresos:  line.Revenue.String(),
	}
}
