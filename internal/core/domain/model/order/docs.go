// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, customer, title, service date and worker count
//   - Status follows a defined workflow: New -> ResponseReceived -> InProgress -> Completed,
//     with Cancelled reachable from New and ResponseReceived
//   - Completed and Cancelled are terminal and never re-entered
//   - The autoCompleted/autoCancelled markers are mutually exclusive and,
//     once set by the cutoff engine, never reset
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
