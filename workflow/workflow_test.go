package workflow

import (
	"errors"
	"testing"

	"github.com/bellacucina/api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusPending, models.StatusPreparing, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusReady, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusPreparing, models.StatusReady, true},
		{models.StatusPreparing, models.StatusCancelled, true},
		{models.StatusPreparing, models.StatusPending, false},
		{models.StatusPreparing, models.StatusCompleted, false},
		{models.StatusReady, models.StatusCompleted, true},
		{models.StatusReady, models.StatusCancelled, true},
		{models.StatusReady, models.StatusPreparing, false},
		{models.StatusReady, models.StatusPending, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCancelled, models.StatusPending, false},
		{"", models.StatusPending, false},
		{models.StatusPending, "", false},
	}
	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

// Every (from, to) pair not explicitly allowed must be rejected, including
// every self-transition.
func TestTransitionTableExactness(t *testing.T) {
	allowed := map[models.OrderStatus]map[models.OrderStatus]bool{
		models.StatusPending:   {models.StatusPreparing: true, models.StatusCancelled: true},
		models.StatusPreparing: {models.StatusReady: true, models.StatusCancelled: true},
		models.StatusReady:     {models.StatusCompleted: true, models.StatusCancelled: true},
	}
	for _, from := range models.OrderStatuses {
		for _, to := range models.OrderStatuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}

			err := Transition(from, to)
			if want && err != nil {
				t.Errorf("Transition(%q, %q) = %v, want nil", from, to, err)
			}
			if !want {
				var transitionErr *InvalidTransitionError
				if !errors.As(err, &transitionErr) {
					t.Errorf("Transition(%q, %q) = %v, want *InvalidTransitionError", from, to, err)
					continue
				}
				if transitionErr.From != from || transitionErr.To != to {
					t.Errorf("Transition(%q, %q) error carries (%q, %q)", from, to, transitionErr.From, transitionErr.To)
				}
			}
		}
	}
}

func TestTerminalStates(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   bool
	}{
		{models.StatusPending, false},
		{models.StatusPreparing, false},
		{models.StatusReady, false},
		{models.StatusCompleted, true},
		{models.StatusCancelled, true},
		{"Unknown", false},
	}
	for _, tt := range tests {
		if got := IsTerminal(tt.status); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}

	// no transition leaves a terminal state
	for _, from := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		if n := len(Allowed(from)); n != 0 {
			t.Errorf("Allowed(%q) has %d entries, want 0", from, n)
		}
	}
}
