package order

import (
	"fmt"

	"ownplate/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions driven by this subsystem:
//
//	ValidationOK ──place──> Placed ──┬──> Accepted ──┐
//	                          │      │        │      │
//	                          │      └────────┘      │
//	                          │  (re-accept is a     │
//	                          │   permitted no-op)   │
//	                          ├──────────────────────┴──> CookingCompleted
//	                          └──────────> PickedUp (unpaid orders only)
//
// Canceled is reached only through the separate payment-reversal path;
// the status-update path rejects it.
//
// The numeric order of the constants is semantically meaningful: a larger
// value is further along the lifecycle, and forward-progress checks compare
// statuses with ">". New states must be inserted in lifecycle order.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// ValidationOK is the pre-placement state: the order contents have been
	// validated, and the order is waiting for its owner to place it.
	ValidationOK

	// Placed indicates the owner has placed the order and the restaurant
	// has not reacted to it yet.
	Placed

	// Accepted indicates the restaurant operator has accepted the order.
	Accepted

	// CookingCompleted indicates the kitchen has finished preparing the order.
	CookingCompleted

	// PickedUp indicates the customer has picked the order up.
	// This is a final state with no further transitions allowed.
	PickedUp

	// Canceled indicates the order was canceled. It is a final state reached
	// through the payment-reversal path, never through the status-update path.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		ValidationOK:     "ValidationOK",
		Placed:           "Placed",
		Accepted:         "Accepted",
		CookingCompleted: "CookingCompleted",
		PickedUp:         "PickedUp",
		Canceled:         "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		ValidationOK:     "ValidationOK",
		Placed:           "Placed",
		Accepted:         "Accepted",
		CookingCompleted: "CookingCompleted",
		PickedUp:         "PickedUp",
		Canceled:         "Canceled",
	}
}

// StatusFromString parses a status name into a Status value.
//
// Parsing is case-sensitive and accepts only valid status names;
// "Unknown" and unrecognized names yield a ValueIsInvalidError.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: ValidationOK, Placed, Accepted, CookingCompleted,
// PickedUp, Canceled. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, for which
// it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateChangeable checks whether the status-update path may move the
// order out of the current status (the source-state gate).
//
// Changeable statuses:
//   - Placed
//   - Accepted
//   - CookingCompleted
//
// Non-changeable statuses:
//   - ValidationOK (the order has not been placed yet)
//   - PickedUp, Canceled (final states)
//   - Unknown (invalid status)
//
// Returns:
//   - nil if the status-update path may act on the current status
//   - FailedPreconditionError otherwise
func (s Status) ValidateChangeable() error {
	switch s {
	case Placed, Accepted, CookingCompleted:
		return nil
	}
	return errs.NewFailedPreconditionErrorWithCause(
		"it is not possible to change state from the current state",
		fmt.Errorf("current status is %s", s.String()),
	)
}

// ChangeTo evaluates the transition from the current status to target on the
// operator status-update path and returns the resulting status together with
// the notification message key the transition calls for ("" when none).
//
// The source-state gate (ValidateChangeable) runs first. The target gate then
// decides per target:
//   - Accepted: always permitted; carries NotificationOrderAccepted only on
//     strict forward progress (target > current), so re-accepting an already
//     accepted order is a permitted no-op without a message
//   - CookingCompleted: always permitted; carries NotificationCookingCompleted
//   - PickedUp: permitted for unpaid orders only; paid orders are completed
//     through the payment-capture path
//   - Canceled and every other target: rejected with PermissionDeniedError
//
// Parameters:
//   - target: the requested status
//   - paid: whether the order carries an external payment
//
// Returns:
//   - (target, key, nil) on a permitted transition
//   - (0, "", error) when either gate rejects the transition
func (s Status) ChangeTo(target Status, paid bool) (Status, NotificationKey, error) {
	if err := s.ValidateChangeable(); err != nil {
		return 0, "", err
	}

	switch target {
	case Accepted:
		var key NotificationKey
		if target > s {
			key = NotificationOrderAccepted
		}
		return Accepted, key, nil

	case CookingCompleted:
		return CookingCompleted, NotificationCookingCompleted, nil

	case PickedUp:
		if paid {
			return 0, "", errs.NewPermissionDeniedErrorWithCause(
				"the user does not have an authority to perform this operation",
				fmt.Errorf("paid order can not be manually completed"),
			)
		}
		return PickedUp, "", nil
	}

	return 0, "", errs.NewPermissionDeniedErrorWithCause(
		"the user does not have an authority to perform this operation",
		fmt.Errorf("target status is %s", target.String()),
	)
}
