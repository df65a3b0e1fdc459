package shipment

import (
	"fmt"
	"strings"

	"envios/internal/entities"
	"envios/pkg/form"
)

func validateSession(session *entities.Session) error {
	if session == nil || session.Token == "" {
		return ErrUnauthenticated
	}
	return nil
}

func validateAdmin(session *entities.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if !session.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func validateShipmentID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidShipmentID
	}
	return id, nil
}

func validateRequired(v interface{}) error {
	if missing := form.Missing(v); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	return nil
}

func validateDigits(value string, sentinel error) error {
	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", sentinel, value)
		}
	}
	return nil
}

// createModify turns a validated creation form into the record sent upstream.
// Price comes from the pricing engine and status always starts as pendiente.
func (s *Shipment) createModify(f entities.ShipmentCreateForm) (*entities.ShipmentModify, error) {
	if err := validateRequired(f); err != nil {
		return nil, err
	}

	destination, err := s.pricing.ParseDestination(f.Destination)
	if err != nil {
		return nil, err
	}

	weight, err := s.pricing.ParseWeight(f.WeightTons)
	if err != nil {
		return nil, err
	}

	nationalID := strings.TrimSpace(f.NationalID)
	if err := validateDigits(nationalID, ErrInvalidNationalID); err != nil {
		return nil, err
	}

	operationNumber := strings.TrimSpace(f.OperationNumber)
	if err := validateDigits(operationNumber, ErrInvalidOperationNumber); err != nil {
		return nil, err
	}

	senderName := strings.TrimSpace(f.SenderName)
	senderLastName := strings.TrimSpace(f.SenderLastName)
	description := strings.TrimSpace(f.Description)
	price := s.pricing.ComputePrice(destination, weight)
	status := entities.DefaultStatus

	return &entities.ShipmentModify{
		SenderName:      &senderName,
		SenderLastName:  &senderLastName,
		NationalID:      &nationalID,
		OperationNumber: &operationNumber,
		Description:     &description,
		Destination:     &destination,
		WeightTons:      &weight,
		Price:           &price,
		Status:          &status,
	}, nil
}
