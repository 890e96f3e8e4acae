package kernel

import (
	"strconv"

	"ecomove/internal/pkg/errs"
)

// ID is an opaque numeric entity identifier, unique per entity type.
// Identifiers are assigned by the persistence layer; the zero value marks an
// entity that has not been persisted yet and fails Validate.
type ID int64

// NewID creates an ID from a raw positive integer.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks the ID refers to a persisted entity.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw numeric value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
