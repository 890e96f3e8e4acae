// Package user contains the User aggregate: a registered rider or
// administrator of the rental service. The aggregate owns its validated
// identity fields (email, phone, document number) and exposes the
// eligibility predicates the rental rules depend on.
package user
