// Package kernel provides core domain primitives for the marketplace order
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - ServiceDate: A value object for the calendar day an order is scheduled on
//   - Scope: A value object narrowing which orders an engine run may touch
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
