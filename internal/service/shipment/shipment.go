package shipment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"envios/internal/entities"
	"envios/internal/service/lifecycle"
	"envios/internal/service/pricing"
	"envios/pkg/inflight"
	"envios/pkg/logger"
	"github.com/google/uuid"
)

const unknownLabel = "unknown"

type Shipment struct {
	log       handlerLogger
	gateway   Gateway
	publisher EventPublisher
	history   HistoryReader
	pricing   *pricing.Engine
	tracker   *lifecycle.Tracker
	guard     *inflight.Guard
	now       func() time.Time
}

func New(
	log handlerLogger,
	gateway Gateway,
	publisher EventPublisher,
	history HistoryReader,
	pricingEngine *pricing.Engine,
	tracker *lifecycle.Tracker,
	guard *inflight.Guard,
) *Shipment {
	return &Shipment{
		log:       log,
		gateway:   gateway,
		publisher: publisher,
		history:   history,
		pricing:   pricingEngine,
		tracker:   tracker,
		guard:     guard,
		now:       time.Now,
	}
}

// Destinations feeds the destination picker.
func (s *Shipment) Destinations() []pricing.Rate {
	return s.pricing.Rates()
}

// Quote prices a shipment for preview. It never fails.
func (s *Shipment) Quote(destination, rawWeight string) pricing.Quote {
	quote := s.pricing.Quote(destination, rawWeight)

	label := quote.Destination.String()
	if quote.UnknownDestination {
		label = unknownLabel
	}
	QuotesTotal.WithLabelValues(label, strconv.FormatBool(!quote.UnknownDestination)).Inc()

	return quote
}

func (s *Shipment) Progress(rawStatus string) (*entities.Progress, error) {
	status, err := lifecycle.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	steps, err := lifecycle.Progress(status)
	if err != nil {
		return nil, err
	}

	return &entities.Progress{
		Status:   status,
		Editable: lifecycle.IsEditable(status),
		Steps:    steps,
	}, nil
}

func (s *Shipment) Create(ctx context.Context, session *entities.Session, f entities.ShipmentCreateForm) (*entities.Shipment, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	modify, err := s.createModify(f)
	if err != nil {
		return nil, err
	}

	var created *entities.Shipment
	err = s.guarded("create:"+session.Username, func() error {
		var err error
		created, err = s.gateway.CreateShipment(ctx, session.Token, *modify)
		return remoteError(err)
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	if created == nil {
		created = fromModify(*modify, s.now().UTC())
	}

	return created, nil
}

func (s *Shipment) List(ctx context.Context, session *entities.Session) ([]entities.Shipment, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	shipments, err := s.gateway.ListShipments(ctx, session.Token)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", remoteError(err))
	}

	return shipments, nil
}

func (s *Shipment) Get(ctx context.Context, session *entities.Session, id string) (*entities.ShipmentView, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	id, err := validateShipmentID(id)
	if err != nil {
		return nil, err
	}

	shipment, err := s.gateway.GetShipment(ctx, session.Token, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment %s: %w", id, remoteError(err))
	}

	return s.view(*shipment), nil
}

// Edit lets the owner change weight and description while the shipment is
// still pendiente. The price is recomputed from the stored destination.
func (s *Shipment) Edit(ctx context.Context, session *entities.Session, id string, f entities.ShipmentEditForm) (*entities.Shipment, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	id, err := validateShipmentID(id)
	if err != nil {
		return nil, err
	}

	if err := validateRequired(f); err != nil {
		return nil, err
	}

	weight, err := s.pricing.ParseWeight(f.WeightTons)
	if err != nil {
		return nil, err
	}

	var description *string
	if f.Description != nil {
		trimmed := strings.TrimSpace(*f.Description)
		description = &trimmed
	}

	var updated *entities.Shipment
	err = s.guarded("edit:"+id, func() error {
		current, err := s.gateway.GetShipment(ctx, session.Token, id)
		if err != nil {
			return remoteError(err)
		}

		if !lifecycle.IsEditable(current.Status) {
			return fmt.Errorf("%w: status is %q", ErrNotEditable, current.Status)
		}

		price := s.pricing.ComputePrice(current.Destination, weight)
		modify := entities.ShipmentModify{
			ID:          &id,
			WeightTons:  &weight,
			Price:       &price,
			Description: description,
		}

		updated, err = s.gateway.UpdateShipment(ctx, session.Token, modify)
		if err != nil {
			return remoteError(err)
		}

		if updated == nil {
			merged := *current
			merged.WeightTons = weight
			merged.Price = price
			if description != nil {
				merged.Description = *description
			}
			updated = &merged
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit shipment %s: %w", id, err)
	}

	return updated, nil
}

// UpdateStatus moves a shipment through its lifecycle. Only administrators
// may do it, and the tracker policy decides which moves are legal.
func (s *Shipment) UpdateStatus(ctx context.Context, session *entities.Session, id string, f entities.StatusForm) (*entities.Shipment, error) {
	if err := validateAdmin(session); err != nil {
		return nil, err
	}

	id, err := validateShipmentID(id)
	if err != nil {
		return nil, err
	}

	if err := validateRequired(f); err != nil {
		return nil, err
	}

	target, err := lifecycle.ParseStatus(f.Status)
	if err != nil {
		return nil, err
	}

	var (
		updated *entities.Shipment
		change  *entities.StatusChange
	)
	err = s.guarded("status:"+id, func() error {
		current, err := s.gateway.GetShipment(ctx, session.Token, id)
		if err != nil {
			return remoteError(err)
		}

		if err := s.tracker.CanTransition(current.Status, target); err != nil {
			return err
		}

		if current.Status == target {
			updated = current
			return nil
		}

		updated, err = s.gateway.UpdateStatus(ctx, session.Token, id, target)
		if err != nil {
			return remoteError(err)
		}

		if updated == nil {
			merged := *current
			merged.Status = target
			updated = &merged
		}

		change = &entities.StatusChange{
			EventID:    uuid.New(),
			ShipmentID: id,
			From:       current.Status,
			To:         target,
			ChangedBy:  session.Username,
			OccurredAt: s.now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update status of shipment %s: %w", id, err)
	}

	if change != nil {
		StatusChangesTotal.WithLabelValues(change.From.String(), change.To.String()).Inc()
		s.publish(ctx, *change)
	}

	return updated, nil
}

func (s *Shipment) Delete(ctx context.Context, session *entities.Session, id string) error {
	if err := validateAdmin(session); err != nil {
		return err
	}

	id, err := validateShipmentID(id)
	if err != nil {
		return err
	}

	err = s.guarded("delete:"+id, func() error {
		return remoteError(s.gateway.DeleteShipment(ctx, session.Token, id))
	})
	if err != nil {
		return fmt.Errorf("delete shipment %s: %w", id, err)
	}

	return nil
}

func (s *Shipment) Report(ctx context.Context, session *entities.Session) (*entities.Report, error) {
	if err := validateAdmin(session); err != nil {
		return nil, err
	}

	shipments, err := s.gateway.ListShipments(ctx, session.Token)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", remoteError(err))
	}

	return buildReport(shipments, s.now().UTC()), nil
}

func (s *Shipment) History(ctx context.Context, session *entities.Session, id string) ([]entities.StatusChange, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	id, err := validateShipmentID(id)
	if err != nil {
		return nil, err
	}

	changes, err := s.history.ListByShipment(ctx, entities.StatusChangeFilter{ShipmentID: id})
	if err != nil {
		return nil, fmt.Errorf("history of shipment %s: %w", id, err)
	}

	return changes, nil
}

// publish is best effort. A lost event leaves a gap in the history.
func (s *Shipment) publish(ctx context.Context, change entities.StatusChange) {
	if err := s.publisher.PublishStatusChange(ctx, change); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("shipment", change.ShipmentID),
			logger.NewField("event_id", change.EventID.String()),
		).Error("publish status change")
	}
}

func (s *Shipment) view(shipment entities.Shipment) *entities.ShipmentView {
	view := &entities.ShipmentView{
		Shipment: shipment,
		Editable: lifecycle.IsEditable(shipment.Status),
	}

	progress, err := lifecycle.Progress(shipment.Status)
	if err != nil {
		s.log.With(
			logger.NewField("shipment", shipment.ID),
			logger.NewField("error", err),
		).Warn("shipment has a status outside the lifecycle")
		return view
	}
	view.Progress = progress

	return view
}

func (s *Shipment) guarded(key string, fn func() error) error {
	err := s.guard.Do(key, fn)
	if errors.Is(err, inflight.ErrInFlight) {
		return fmt.Errorf("%w: %s", ErrInFlight, key)
	}
	return err
}

func fromModify(modify entities.ShipmentModify, createdAt time.Time) *entities.Shipment {
	shipment := &entities.Shipment{CreatedAt: createdAt}
	if modify.SenderName != nil {
		shipment.SenderName = *modify.SenderName
	}
	if modify.SenderLastName != nil {
		shipment.SenderLastName = *modify.SenderLastName
	}
	if modify.NationalID != nil {
		shipment.NationalID = *modify.NationalID
	}
	if modify.OperationNumber != nil {
		shipment.OperationNumber = *modify.OperationNumber
	}
	if modify.Description != nil {
		shipment.Description = *modify.Description
	}
	if modify.Destination != nil {
		shipment.Destination = *modify.Destination
	}
	if modify.WeightTons != nil {
		shipment.WeightTons = *modify.WeightTons
	}
	if modify.Price != nil {
		shipment.Price = *modify.Price
	}
	if modify.Status != nil {
		shipment.Status = *modify.Status
	}
	return shipment
}
