// Package kernel provides the value objects shared across the rental domain
// model. It implements the fundamental building blocks used by every aggregate:
//
//   - ID: opaque numeric identifier for entities
//   - Money: non-negative amount with a 3-letter currency code
//   - Duration: non-negative rental duration in whole minutes
//   - Coordinate: geographic position with great-circle distance
//   - BatteryLevel: charge percentage with status tiers
//   - Email, Phone, DocumentNumber: normalized, format-validated identity fields
//
// Every value object is immutable, self-validating and compared by value:
// construction is the only validation point, so an invalid instance cannot be
// observed. Zero values fail Validate via the constructor guard pattern.
package kernel
