package order

import (
	"errors"
	"time"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a restaurant order in the system. It is the aggregate root that
// manages the order lifecycle from placement by its owner through the operational
// state changes applied by the restaurant operator.
//
// Order follows these invariants:
//   - Must have valid order and restaurant identifiers and a non-empty owner uid
//   - The owner uid is immutable once created
//   - Status only moves forward through the defined transition graph
//   - Tip, total charge and placement time are set exactly once, at placement
//   - A paid order can never be canceled or force-completed through the
//     status-update path
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order within its restaurant
	id kernel.UUID

	// restaurantID identifies the restaurant the order belongs to
	restaurantID kernel.UUID

	// uid is the owning user's identity, immutable once created
	uid string

	// number is the sequential order number assigned at creation
	number int

	// status represents the current state in the order lifecycle
	status Status

	// total is the monetary base amount of the order
	total kernel.Money

	// tip is the tip amount, rounded to the currency's minor unit at placement
	tip kernel.Money

	// totalCharge is total plus the unrounded tip, captured at placement
	totalCharge kernel.Money

	// phoneNumber and sendSMS drive customer notifications
	phoneNumber string
	sendSMS     bool

	// stripePaymentID marks the order as paid through the external payment
	// processor when present
	stripePaymentID *string

	// timePlaced is stamped exactly once, at placement
	timePlaced *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in the pre-placement ValidationOK state.
// Order creation itself (menu validation, numbering) happens upstream of this
// subsystem; this constructor exists for that upstream flow and for seeding.
//
// Parameters:
//   - id: unique identifier of the order
//   - restaurantID: identifier of the owning restaurant
//   - uid: identity of the ordering user (immutable afterwards)
//   - number: sequential order number (must be positive)
//   - total: monetary base amount (must not be negative)
//   - phoneNumber: customer phone number for notifications (may be empty)
//
// Returns the order in ValidationOK status with no tip, charge, or placement
// time set, or a validation error.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	uid string,
	number int,
	total kernel.Money,
	phoneNumber string,
) (*Order, error) {
	order := &Order{
		status:        ValidationOK,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setIDs(id, restaurantID),
		order.setOwner(uid),
		order.setNumber(number),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	order.phoneNumber = phoneNumber
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. All invariant-bearing fields are validated; money fields are taken
// as stored.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	uid string,
	number int,
	status Status,
	total kernel.Money,
	tip kernel.Money,
	totalCharge kernel.Money,
	phoneNumber string,
	sendSMS bool,
	stripePaymentID *string,
	timePlaced *time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setIDs(id, restaurantID),
		order.setOwner(uid),
		order.setNumber(number),
		order.setTotal(total),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.tip = tip
	order.totalCharge = totalCharge
	order.phoneNumber = phoneNumber
	order.sendSMS = sendSMS
	order.stripePaymentID = stripePaymentID
	order.timePlaced = timePlaced
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their composite identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id) && o.restaurantID.IsEqual(other.restaurantID)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// OwnerUID returns the identity of the user who owns the order.
func (o *Order) OwnerUID() string {
	return o.uid
}

// Number returns the sequential order number.
func (o *Order) Number() int {
	return o.number
}

// OrderNumber returns the human-readable order number ("#" + zero-padded).
func (o *Order) OrderNumber() string {
	return FormatOrderNumber(o.number)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the monetary base amount of the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Tip returns the tip amount stored at placement.
func (o *Order) Tip() kernel.Money {
	return o.tip
}

// TotalCharge returns the total charge captured at placement.
func (o *Order) TotalCharge() kernel.Money {
	return o.totalCharge
}

// PhoneNumber returns the customer phone number for notifications.
func (o *Order) PhoneNumber() string {
	return o.phoneNumber
}

// SendSMS reports whether the customer opted into SMS notifications.
func (o *Order) SendSMS() bool {
	return o.sendSMS
}

// StripePaymentID returns the external payment identifier, nil for unpaid orders.
func (o *Order) StripePaymentID() *string {
	return o.stripePaymentID
}

// IsPaid reports whether the order was paid through the external payment processor.
func (o *Order) IsPaid() bool {
	return o.stripePaymentID != nil
}

// TimePlaced returns the placement timestamp, nil before placement.
func (o *Order) TimePlaced() *time.Time {
	return o.timePlaced
}

// Place places the order on behalf of its owner.
//
// This method enforces the following business rules:
//   - The caller must be the order's owning user
//   - The order must be in ValidationOK status
//   - The tip must not be negative
//
// On success the order moves to Placed, the total charge is fixed as
// total plus the tip exactly as given, the tip field stores the tip rounded
// to the region's minor-unit granularity, the SMS opt-in is recorded, and
// the placement time is stamped. The status gate guarantees all of these are
// set exactly once over the order's life.
//
// Parameters:
//   - callerUID: the authenticated caller's identity
//   - tip: tip amount from the request (zero when absent)
//   - sendSMS: customer's SMS opt-in
//   - region: payment region resolved from deployment configuration
//   - placedAt: commit timestamp to stamp as the placement time
//
// Returns:
//   - nil on success
//   - PermissionDeniedError if the caller does not own the order
//   - FailedPreconditionError if the order was already placed or canceled
func (o *Order) Place(callerUID string, tip kernel.Money, sendSMS bool, region kernel.Region, placedAt time.Time) error {
	if err := region.Validate(); err != nil {
		return err
	}

	if callerUID != o.uid {
		return errs.NewPermissionDeniedError("the user is not the owner of this order")
	}

	if o.status != ValidationOK {
		return errs.NewFailedPreconditionError("the order has been already placed or canceled")
	}

	if tip.IsNegative() {
		return errs.NewValueIsInvalidError("tip")
	}

	o.status = Placed
	o.totalCharge = o.total.Add(tip)
	o.tip = tip.RoundToMultiple(region.Multiple())
	o.sendSMS = sendSMS
	o.timePlaced = &placedAt
	return nil
}

// ChangeStatus applies an operator status transition and returns the
// structured StatusChange result used for post-commit notification dispatch.
//
// The transition rules live in Status.ChangeTo. A second guard re-checks
// that a paid order is never canceled on this path; the target gate already
// rejects cancellation, the guard is retained to keep the invariant local.
//
// Returns:
//   - (StatusChange, nil) on a permitted transition
//   - (zero, FailedPreconditionError) when the current status is not changeable
//   - (zero, PermissionDeniedError) when the target is not authorized
func (o *Order) ChangeStatus(target Status) (StatusChange, error) {
	newStatus, key, err := o.status.ChangeTo(target, o.IsPaid())
	if err != nil {
		return StatusChange{}, err
	}

	if target == Canceled && o.IsPaid() {
		return StatusChange{}, errs.NewPermissionDeniedError("paid order can not be canceled like this")
	}

	change := StatusChange{
		From:         o.status,
		To:           newStatus,
		Notification: key,
		PhoneNumber:  o.phoneNumber,
		OrderNumber:  o.OrderNumber(),
		SendSMS:      o.sendSMS,
	}

	o.status = newStatus
	return change, nil
}

// setIDs validates and sets the order's composite identity.
// This is a private method used only during construction.
func (o *Order) setIDs(id, restaurantID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.id = id
	o.restaurantID = restaurantID
	return nil
}

// setOwner validates and sets the owning user's identity.
// This is a private method used only during construction.
func (o *Order) setOwner(uid string) error {
	if uid == "" {
		return errs.NewValueIsRequiredError("uid")
	}
	o.uid = uid
	return nil
}

// setNumber validates and sets the sequential order number.
// This is a private method used only during construction.
func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	o.number = number
	return nil
}

// setTotal validates and sets the order's base amount.
// This is a private method used only during construction.
func (o *Order) setTotal(total kernel.Money) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("total")
	}
	o.total = total
	return nil
}
