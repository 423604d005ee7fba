// Package order provides domain entities and business logic for order management
// in the restaurant ordering system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, money, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - StatusChange: The structured result of a transition, carrying the
//     notification decision for post-commit dispatch
//
// Key business rules:
//   - Only the owning user can place an order, and only from ValidationOK
//   - Tip, total charge and placement time are fixed exactly once, at placement
//   - Operator transitions start only from Placed, Accepted or CookingCompleted
//   - A paid order can never be canceled or manually completed on this path
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
