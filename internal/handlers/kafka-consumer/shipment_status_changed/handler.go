package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"envios/internal/entities"
	"envios/internal/service/history"
	"envios/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

type Handler struct {
	historyService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, historyService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		historyService:           historyService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or shutdown
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// must stop; the message is then left unmarked and will be redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("event_id", event.EventID),
		logger.NewField("to", event.To),
		logger.NewField("offset", message.Offset),
	)

	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad event id")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment.status.changed processing")

	change := entities.StatusChange{
		EventID:    eventID,
		ShipmentID: event.ShipmentID,
		From:       entities.Status(event.From),
		To:         entities.Status(event.To),
		ChangedBy:  event.ChangedBy,
		OccurredAt: event.OccurredAt,
	}

	err = h.historyService.Record(ctx, change)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, history.ErrDuplicateEvent):
			msgLog.Info("shipment.status.changed handler skipped duplicate event")

		case errors.Is(err, history.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler invalid event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to record event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment.status.changed: recorded")

	sess.MarkMessage(message, "")
	return false
}
