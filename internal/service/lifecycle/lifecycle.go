package lifecycle

import (
	"fmt"
	"strings"

	"envios/internal/entities"
)

// Order is the display and progression order of shipment statuses.
// cancelado sits last, so a cancelled shipment renders every step as reached.
var Order = []entities.Status{
	entities.StatusPending,
	entities.StatusShipped,
	entities.StatusInTransit,
	entities.StatusDelivered,
	entities.StatusCancelled,
}

type Tracker struct {
	policy Policy
}

func New(policy Policy) *Tracker {
	if policy == "" {
		policy = DefaultPolicy
	}
	return &Tracker{policy: policy}
}

func (t *Tracker) Policy() Policy {
	return t.policy
}

// ParseStatus normalises raw input (case, surrounding spaces) to a known status.
func ParseStatus(raw string) (entities.Status, error) {
	status := entities.Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, err := indexOf(status); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}

func IsEditable(status entities.Status) bool {
	return status == entities.StatusPending
}

func IsTerminal(status entities.Status) bool {
	return status == entities.StatusDelivered || status == entities.StatusCancelled
}

func ProgressIndex(status entities.Status) (int, error) {
	normalised := entities.Status(strings.ToLower(strings.TrimSpace(string(status))))
	idx, err := indexOf(normalised)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return idx, nil
}

// Progress marks every step up to the status as reached. Terminal statuses
// mark the whole track, so entregado also lights the cancelado slot. A plain
// index walk would leave that slot unlit for entregado (four of five steps).
func Progress(status entities.Status) ([]entities.ProgressStep, error) {
	idx, err := ProgressIndex(status)
	if err != nil {
		return nil, err
	}

	complete := IsTerminal(Order[idx])
	steps := make([]entities.ProgressStep, len(Order))
	for i, s := range Order {
		steps[i] = entities.ProgressStep{
			Status:  s,
			Reached: complete || i <= idx,
		}
	}
	return steps, nil
}

// CanTransition reports whether an administrator may move a shipment from
// one status to another under the configured policy.
func (t *Tracker) CanTransition(from, to entities.Status) error {
	fromIdx, err := ProgressIndex(from)
	if err != nil {
		return fmt.Errorf("current status: %w", err)
	}
	toIdx, err := ProgressIndex(to)
	if err != nil {
		return fmt.Errorf("target status: %w", err)
	}

	if fromIdx == toIdx {
		return nil
	}

	if IsTerminal(Order[fromIdx]) {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, Order[fromIdx])
	}

	if t.policy == PolicyMonotonic && toIdx < fromIdx {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, Order[fromIdx], Order[toIdx])
	}

	return nil
}

func indexOf(status entities.Status) (int, error) {
	for i, s := range Order {
		if s == status {
			return i, nil
		}
	}
	return -1, ErrUnknownStatus
}
