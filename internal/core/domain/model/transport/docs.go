// Package transport contains the Transport aggregate: a rentable vehicle.
//
// Transport is modeled as a tagged union rather than an inheritance
// hierarchy: a Type discriminator selects a variant payload (BicycleSpec or
// ElectricScooterSpec) and a capability set holding the variant's legal
// status transitions. Both variants currently share the same transition
// table, but the capability indirection lets them diverge without touching
// the aggregate.
package transport
