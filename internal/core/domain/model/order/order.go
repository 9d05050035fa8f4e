package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderItemsAreFrozen is returned when line items are changed after
	// the order left Draft.
	ErrOrderItemsAreFrozen = errors.New("line items are immutable once the order leaves Draft")

	// ErrOrderHasNoItems is returned when an empty order is submitted.
	ErrOrderHasNoItems = errors.New("order needs at least one line item to leave Draft")
)

// Order is the aggregate root for the order workflow. It maintains these
// invariants:
//   - Status is always one of the six defined values and every observed
//     status sequence is a path through the legal-edge graph
//   - Line items are immutable once status leaves Draft
//   - An order needs at least one line item to leave Draft
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate validates transitions but performs no side effects; stock
// reservation and audit recording around a transition are the application
// layer's responsibility so they share one transactional boundary.
type Order struct {
	id          kernel.UUID
	number      string
	customerID  kernel.UUID
	status      Status
	items       []LineItem
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewOrder creates a new order in Draft with no line items.
// number is the human-readable order number assigned by the repository.
func NewOrder(id kernel.UUID, number string, customerID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// The status must be valid but is otherwise trusted; the persisted value is
// the result of earlier validated transitions.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	status Status,
	items []LineItem,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.items = append([]LineItem(nil), items...)
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items in insertion order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// TotalAmount returns the sum of all line item totals in minor units.
func (o *Order) TotalAmount() int64 {
	var total int64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CompletedAt returns the time the order reached a terminal status,
// or nil while it is still open.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// AddItem appends a line item to a Draft order.
//
// Adding a product that is already on the order merges the quantities and
// keeps the original unit price snapshot. Returns ErrOrderItemsAreFrozen if
// the order has left Draft.
func (o *Order) AddItem(item LineItem) error {
	if o.status != Draft {
		return ErrOrderItemsAreFrozen
	}

	for i, existing := range o.items {
		if existing.productID.IsEqual(item.productID) {
			merged, err := NewLineItem(existing.productID, existing.quantity+item.quantity, existing.unitPrice)
			if err != nil {
				return err
			}
			o.items[i] = merged
			o.touch()
			return nil
		}
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem deletes the line item referencing the given product from a
// Draft order. Returns ObjectNotFoundError if no such item exists.
func (o *Order) RemoveItem(productID kernel.UUID) error {
	if o.status != Draft {
		return ErrOrderItemsAreFrozen
	}

	for i, existing := range o.items {
		if existing.productID.IsEqual(productID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.touch()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("line item", productID.String())
}

// TransitionTo moves the order along a legal edge of the status graph.
//
// Returns InvalidTransitionError for any edge not in the graph and
// ErrOrderHasNoItems when an empty Draft order is submitted. On success the
// last-modified timestamp is refreshed, and the completion timestamp is set
// when the target is terminal. The order is left unchanged on any error.
func (o *Order) TransitionTo(target Status) error {
	if o.status == Draft && target == Pending && len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	if newStatus.IsTerminal() {
		completed := o.updatedAt
		o.completedAt = &completed
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}
