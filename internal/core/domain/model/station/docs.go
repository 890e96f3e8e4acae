// Package station contains the Station aggregate: a physical dock with a
// finite vehicle capacity. The aggregate keeps the occupancy invariant
// (current transports never exceed capacity) and exposes the predicates the
// rental rules depend on.
package station
