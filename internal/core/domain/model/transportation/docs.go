// Package transportation provides domain entities and business logic for
// shipment requests. It implements the Transportation aggregate root with
// lifecycle management and address linking.
//
// The package includes:
//   - Transportation: the aggregate root tying a client, a named request,
//     a pickup window, and optional pickup/delivery address references
//   - Status: the request lifecycle state with wire names and display labels
//
// Key business rules:
//   - Requests must have a valid identifier, owner, name (at most 255
//     characters) and a pickup window with from <= to
//   - Requests start in the New status and finish in Completed, Cancelled,
//     or Refunded; finalized requests reject edits
//   - A cancelled request may still be refunded
//   - Requests are soft-deleted via a deleted-at marker
package transportation
