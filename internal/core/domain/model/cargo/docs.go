// Package cargo provides domain entities for physical items attached to a
// transportation request.
//
// The package includes:
//   - Cargo: an item belonging to a Transportation and the client who
//     registered it, carrying a physical description and a price
//   - Characteristics: the validated name, dimensions and weight of an item
//
// Key business rules:
//   - All dimensions and the weight must be at least 1
//   - The cargo name is limited to 255 characters
//   - Only the owning client may delete a cargo, and only through the
//     transportation it belongs to
//   - Cargo is soft-deleted via a deleted-at marker
package cargo
