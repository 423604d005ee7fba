package order

import "fmt"

// NotificationKey identifies the customer message template a status
// transition calls for. The empty key means no message is due.
type NotificationKey string

const (
	// NotificationOrderAccepted tells the customer the restaurant accepted
	// the order. Sent on strict forward progress into Accepted.
	NotificationOrderAccepted NotificationKey = "msg_order_accepted"

	// NotificationCookingCompleted tells the customer the order is ready.
	NotificationCookingCompleted NotificationKey = "msg_cooking_completed"
)

// StatusChange is the structured result of a committed status transition.
// It carries everything the caller needs to compose the post-commit
// customer notification, so no state has to be captured from inside the
// transaction by closure: a transaction retry re-produces the whole value.
type StatusChange struct {
	// From and To record the applied transition.
	From Status
	To   Status

	// Notification is the message key assigned by the target gate,
	// empty when the transition carries no customer message.
	Notification NotificationKey

	// PhoneNumber, OrderNumber and SendSMS are captured from the order as
	// read inside the transaction, for use by the dispatcher afterwards.
	PhoneNumber string
	OrderNumber string
	SendSMS     bool
}

// ShouldNotify reports whether a customer message must be dispatched for
// this change: the customer opted in at placement and the transition
// assigned a message key.
func (c StatusChange) ShouldNotify() bool {
	return c.SendSMS && c.Notification != ""
}

// FormatOrderNumber renders the human-readable order number: "#" followed by
// the sequential number zero-padded to three digits, keeping only the last
// three digits of longer numbers (1 -> "#001", 1234 -> "#234").
func FormatOrderNumber(number int) string {
	s := fmt.Sprintf("%03d", number)
	return "#" + s[len(s)-3:]
}
