// Package kernel provides core domain primitives shared by every aggregate in
// the transportation-booking system. It implements fundamental building blocks
// following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money and Currency: Monetary amounts in minor units validated against the reference currency set
//   - PhoneNumber: Phone numbers normalized to international format
//   - DateTimeInterval and DateRange: Validated time windows used for pickup scheduling and filtering
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
