package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the aggregate root for one physical handoff, tied 1:1 to a
// marketplace order. It owns the delivery lifecycle state machine and the
// at-most-one-partner invariant, and emits notification directives on every
// accepted transition.
//
// Invariants:
//   - Status transitions follow the table in Status
//   - A partner is set if and only if the delivery has been assigned
//   - Per-state timestamps are set exactly when the state is entered and are
//     monotonically non-decreasing along the happy path
//   - Deliveries are never deleted; terminal states are retained as history
//
// Mutating methods only update the in-memory aggregate; persistence is the
// caller's responsibility via the repository, which also enforces the
// optimistic-concurrency version check that keeps a concurrent accept race
// honest at commit time.
type Delivery struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	partnerID  *kernel.UUID

	status Status

	pickupAddress   string
	deliveryAddress string

	estimatedDistanceKm float64
	deliveryFee         decimal.Decimal
	estimatedMinutes    int

	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	// version is the optimistic-concurrency token checked by the repository
	// on update.
	version int

	notifications []Notification

	isConstructed bool
}

// NewDelivery creates a pending, unassigned delivery for a placed order.
//
// Parameters:
//   - id: unique identifier for the delivery
//   - orderID: the order this delivery fulfills
//   - customerID: the ordering user, recipient of lifecycle notifications
//   - pickupAddress, deliveryAddress: non-empty display addresses
//   - estimatedDistanceKm: non-negative quoted distance
//   - deliveryFee: non-negative quoted fee in decimal currency units
//   - estimatedMinutes: non-negative quoted duration
//
// The delivery starts in Pending status with no partner and no timestamps.
func NewDelivery(
	id, orderID, customerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	estimatedDistanceKm float64,
	deliveryFee decimal.Decimal,
	estimatedMinutes int,
) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCustomerID(customerID),
		d.setAddresses(pickupAddress, deliveryAddress),
		d.setQuote(estimatedDistanceKm, deliveryFee, estimatedMinutes),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, re-checking the
// invariants the database cannot express: status validity, partner presence
// matching the status, and timestamps set exactly for the states already
// reached.
func RestoreDelivery(
	id, orderID, customerID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	pickupAddress, deliveryAddress string,
	estimatedDistanceKm float64,
	deliveryFee decimal.Decimal,
	estimatedMinutes int,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
	version int,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, customerID,
		pickupAddress, deliveryAddress,
		estimatedDistanceKm, deliveryFee, estimatedMinutes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}

	d.status = status
	d.partnerID = partnerID
	d.assignedAt = assignedAt
	d.pickedUpAt = pickedUpAt
	d.deliveredAt = deliveredAt
	d.version = version

	if err = d.validateConsistency(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the fulfilled order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// CustomerID returns the ordering user's identifier.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// Partner returns the assigned delivery partner's ID, or nil while pending.
func (d *Delivery) Partner() *kernel.UUID {
	return d.partnerID
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// PickupAddress returns the store-side address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DeliveryAddress returns the customer-side address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// EstimatedDistanceKm returns the quoted great-circle distance.
func (d *Delivery) EstimatedDistanceKm() float64 {
	return d.estimatedDistanceKm
}

// DeliveryFee returns the quoted fee in decimal currency units.
func (d *Delivery) DeliveryFee() decimal.Decimal {
	return d.deliveryFee
}

// EstimatedMinutes returns the quoted delivery duration.
func (d *Delivery) EstimatedMinutes() int {
	return d.estimatedMinutes
}

// AssignedAt returns when a partner accepted the delivery, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the package was collected, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the handoff completed, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Version returns the optimistic-concurrency token.
func (d *Delivery) Version() int {
	return d.version
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Assign records a delivery partner accepting this delivery.
//
// Enforces the at-most-one-partner invariant: a second accept on an assigned
// delivery fails with an AlreadyAssignedError naming the winner, so a lost
// accept race surfaces distinctly from an illegal transition. Accepting a
// delivery in any later state is an ordinary IllegalTransitionError. On
// success the status becomes Assigned, assignedAt is stamped, and a
// notification directive for the customer is queued.
func (d *Delivery) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if d.status == Assigned && d.partnerID != nil {
		return NewAlreadyAssignedError(d.id, *d.partnerID)
	}

	newStatus, err := d.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.partnerID = &partnerID
	d.assignedAt = &now
	d.notify(TemplateDeliveryAssigned)
	return nil
}

// MarkPickedUp records the partner collecting the package from the store.
// Stamps pickedUpAt and queues a customer notification.
func (d *Delivery) MarkPickedUp() error {
	newStatus, err := d.status.TransitionTo(PickedUp)
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.pickedUpAt = &now
	d.notify(TemplateDeliveryPickedUp)
	return nil
}

// MarkInTransit records the package leaving for the customer.
func (d *Delivery) MarkInTransit() error {
	newStatus, err := d.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.notify(TemplateDeliveryInTransit)
	return nil
}

// MarkDelivered records the completed handoff. Stamps deliveredAt.
// Delivered is terminal; no further transitions are possible.
func (d *Delivery) MarkDelivered() error {
	newStatus, err := d.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.deliveredAt = &now
	d.notify(TemplateDeliveryDelivered)
	return nil
}

// Cancel abandons the delivery. Only legal before pickup; clears no fields,
// the record is retained as history. Cancelled is terminal.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.notify(TemplateDeliveryCancelled)
	return nil
}

// TransitionTo dispatches a requested status change to the corresponding
// lifecycle method. Assigning requires a partner ID; every other target
// ignores it. This is the single entry point the status-update endpoint uses.
func (d *Delivery) TransitionTo(to Status, partnerID *kernel.UUID) error {
	switch to {
	case Assigned:
		if partnerID == nil {
			return errs.NewValueIsRequiredError("partnerId")
		}
		return d.Assign(*partnerID)
	case PickedUp:
		return d.MarkPickedUp()
	case InTransit:
		return d.MarkInTransit()
	case Delivered:
		return d.MarkDelivered()
	case Cancelled:
		return d.Cancel()
	case Pending, Unknown:
		return NewIllegalTransitionError(d.status, to)
	default:
		return NewIllegalTransitionError(d.status, to)
	}
}

// PullNotifications drains the directives queued by transitions since the
// last call. The application layer hands them to the Notifier port after the
// surrounding transaction commits.
func (d *Delivery) PullNotifications() []Notification {
	pulled := d.notifications
	d.notifications = nil
	return pulled
}

func (d *Delivery) notify(templateKey string) {
	d.notifications = append(d.notifications, Notification{
		RecipientID: d.customerID,
		TemplateKey: templateKey,
		DeliveryID:  d.id,
		OrderID:     d.orderID,
	})
}

// validateConsistency re-checks the timestamp-iff-state-reached and
// partner-presence invariants on restore.
func (d *Delivery) validateConsistency() error {
	switch d.status {
	case Pending:
		if d.partnerID != nil {
			return errs.NewValueIsInvalidErrorWithCause("deliveryPartnerId",
				errors.New("pending delivery must not have a partner"))
		}
		if d.assignedAt != nil || d.pickedUpAt != nil || d.deliveredAt != nil {
			return errs.NewValueIsInvalidErrorWithCause("timestamps",
				errors.New("pending delivery must have no lifecycle timestamps"))
		}
	case Assigned:
		if err := d.requirePartnerAndStamps(true, false, false); err != nil {
			return err
		}
	case PickedUp, InTransit:
		if err := d.requirePartnerAndStamps(true, true, false); err != nil {
			return err
		}
	case Delivered:
		if err := d.requirePartnerAndStamps(true, true, true); err != nil {
			return err
		}
	case Cancelled:
		// Cancellation is only legal before pickup, with or without a partner.
		if d.pickedUpAt != nil || d.deliveredAt != nil {
			return errs.NewValueIsInvalidErrorWithCause("timestamps",
				errors.New("cancelled delivery must not have pickup or delivery timestamps"))
		}
	case Unknown:
		return d.status.Validate()
	}

	return d.validateTimestampOrder()
}

func (d *Delivery) requirePartnerAndStamps(assigned, pickedUp, delivered bool) error {
	if d.partnerID == nil {
		return errs.NewValueIsRequiredError("deliveryPartnerId")
	}
	if assigned && d.assignedAt == nil {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	if pickedUp && d.pickedUpAt == nil {
		return errs.NewValueIsRequiredError("pickedUpAt")
	}
	if delivered && d.deliveredAt == nil {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	if !pickedUp && d.pickedUpAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickedUpAt",
			errors.New("timestamp set before state was reached"))
	}
	if !delivered && d.deliveredAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			errors.New("timestamp set before state was reached"))
	}
	return nil
}

// validateTimestampOrder enforces monotonically non-decreasing timestamps in
// state order.
func (d *Delivery) validateTimestampOrder() error {
	if d.assignedAt != nil && d.pickedUpAt != nil && d.pickedUpAt.Before(*d.assignedAt) {
		return errs.NewValueIsInvalidErrorWithCause("pickedUpAt",
			errors.New("pickedUpAt precedes assignedAt"))
	}
	if d.pickedUpAt != nil && d.deliveredAt != nil && d.deliveredAt.Before(*d.pickedUpAt) {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			errors.New("deliveredAt precedes pickedUpAt"))
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	d.pickupAddress = pickupAddress
	d.deliveryAddress = deliveryAddress
	return nil
}

func (d *Delivery) setQuote(estimatedDistanceKm float64, deliveryFee decimal.Decimal, estimatedMinutes int) error {
	if estimatedDistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDistance",
			fmt.Errorf("%f is negative", estimatedDistanceKm))
	}
	if deliveryFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%s is negative", deliveryFee))
	}
	if estimatedMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is negative", estimatedMinutes))
	}
	d.estimatedDistanceKm = estimatedDistanceKm
	d.deliveryFee = deliveryFee
	d.estimatedMinutes = estimatedMinutes
	return nil
}
