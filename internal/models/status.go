package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

var orderTransitions = map[OrderStatus]map[OrderStatus]struct{}{
	StatusPending:    {StatusProcessing: {}, StatusCancelled: {}},
	StatusProcessing: {StatusCompleted: {}, StatusCancelled: {}},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Open reports whether the order still needs production.
func (s OrderStatus) Open() bool {
	return s == StatusPending || s == StatusProcessing
}


// CheckTransition validates from → to against the allowed-transition table.
// Staying in the same status is always allowed.
func CheckTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if from == to {
		return nil
	}
	if _, ok := orderTransitions[from][to]; !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
