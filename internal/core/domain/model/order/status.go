package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Pending ──> Processing ──> Shipped ──> Delivered
//	  │          │             │
//	  └──────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal states with no outgoing edges.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Draft is the initial status. Line items may only be changed while
	// the order is in Draft.
	Draft

	// Pending indicates the order has been submitted and awaits processing.
	Pending

	// Processing indicates stock has been reserved and the order is being
	// fulfilled.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal, but the order
	// is retained for the audit trail.
	Cancelled
)

// ErrInvalidTransition is the sentinel for rejected status transitions.
// Use errors.Is to detect it regardless of the concrete error value.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports an attempt to move an order along an edge
// that is not part of the legal status graph. It is surfaced to the caller
// and never retried automatically.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Draft:         "Draft",
		Pending:       "Pending",
		Processing:    "Processing",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getLegalEdges returns the legal status graph. A status maps to the set of
// statuses reachable from it in one transition.
func getLegalEdges() map[Status][]Status {
	return map[Status][]Status{
		Draft:      {Pending, Cancelled},
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the string representation of a status.
// Parsing is used at the transport boundary where the caller supplies the
// target status as text.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Pending, Processing, Shipped, Delivered,
// Cancelled. UnknownStatus (0) and any other values are invalid. This method
// is used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to target is part of the
// legal status graph, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getLegalEdges()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from s to target and returns the new status.
//
// Returns InvalidTransitionError if the edge is not part of the legal graph,
// including any move out of a terminal status and any move involving an
// invalid status value.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !s.CanTransitionTo(target) {
		return UnknownStatus, NewInvalidTransitionError(s, target)
	}

	return target, nil
}
