// Package order contains the order aggregate and its status state machine.
//
// An order is created in Draft, collects immutable line items while drafting,
// and then moves along the legal status graph:
//
//	Draft ──> Pending ──> Processing ──> Shipped ──> Delivered
//	  │          │             │
//	  └──────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Any edge not in the graph is rejected
// with InvalidTransitionError. Orders are never physically deleted; Cancelled
// is retained for the audit trail. Side effects of a transition (stock
// reservation, audit recording) are coordinated by the application layer's
// TransitionOrderCommandHandler; the aggregate only guards the graph and its
// own invariants.
package order
