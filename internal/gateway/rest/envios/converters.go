package envios

import (
	"envios/internal/entities"
	"github.com/shopspring/decimal"
)

// toDomain yields nil for an answer that carries no shipment, such as an
// acknowledgement like {"message": "..."}.
func toDomain(m *envioModel) *entities.Shipment {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entities.Shipment{
		ID:              m.ID,
		SenderName:      m.Nombre,
		SenderLastName:  m.Apellido,
		NationalID:      m.DNI,
		OperationNumber: m.NumeroOperacion,
		Description:     m.Descripcion,
		Destination:     entities.Destination(m.Destino),
		WeightTons:      decimal.Decimal(m.Toneladas),
		Price:           decimal.Decimal(m.Precio),
		Status:          entities.Status(m.Estado),
		CreatedAt:       m.CreatedAt,
	}
}

func toDomainList(models []envioModel) []entities.Shipment {
	if len(models) == 0 {
		return []entities.Shipment{}
	}

	res := make([]entities.Shipment, 0, len(models))
	for i := range models {
		// a record without id cannot be fetched or edited later
		if shipment := toDomain(&models[i]); shipment != nil {
			res = append(res, *shipment)
		}
	}
	return res
}

func fromDomainCreate(m entities.ShipmentModify) envioCreateRequest {
	req := envioCreateRequest{
		Estado: entities.DefaultStatus.String(),
	}
	if m.SenderName != nil {
		req.Nombre = *m.SenderName
	}
	if m.SenderLastName != nil {
		req.Apellido = *m.SenderLastName
	}
	if m.NationalID != nil {
		req.DNI = *m.NationalID
	}
	if m.OperationNumber != nil {
		req.NumeroOperacion = *m.OperationNumber
	}
	if m.Description != nil {
		req.Descripcion = *m.Description
	}
	if m.Destination != nil {
		req.Destino = m.Destination.String()
	}
	if m.Status != nil {
		req.Estado = m.Status.String()
	}
	if m.Price != nil {
		req.Precio = amount(*m.Price)
	}
	if m.WeightTons != nil {
		req.Toneladas = amount(*m.WeightTons)
	}
	return req
}

func fromDomainPatch(m entities.ShipmentModify) envioPatchRequest {
	var req envioPatchRequest
	if m.WeightTons != nil {
		w := amount(*m.WeightTons)
		req.Toneladas = &w
	}
	if m.Price != nil {
		p := amount(*m.Price)
		req.Precio = &p
	}
	if m.Description != nil {
		req.Descripcion = m.Description
	}
	return req
}
