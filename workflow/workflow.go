// Package workflow validates order status transitions. Anything not in the
// transition table is rejected, including same-status requests.
package workflow

import (
	"fmt"

	"github.com/bellacucina/api/models"
)

var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady, models.StatusCancelled},
	models.StatusReady:     {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// Allowed returns the statuses reachable from the given status. Unknown
// statuses reach nothing.
func Allowed(from models.OrderStatus) []models.OrderStatus {
	return transitions[from]
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns nil if the move is legal, otherwise an
// *InvalidTransitionError naming both statuses.
func Transition(from, to models.OrderStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(s models.OrderStatus) bool {
	next, known := transitions[s]
	return known && len(next) == 0
}
