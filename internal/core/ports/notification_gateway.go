package ports

import "context"

// NotificationGateway delivers a text message to a customer phone number.
// Delivery is best-effort and not transactional: callers invoke it only
// after their business transaction has committed, and a delivery error must
// never be surfaced as the operation's failure.
type NotificationGateway interface {
	// Send dispatches a message from senderName to phoneNumber.
	Send(ctx context.Context, senderName, text, phoneNumber string) error
}
