// Package loan contains the Loan aggregate: a single rental session binding
// a user, a transport and origin/destination stations with a billed
// duration.
//
// Lifecycle transitions never mutate a Loan in place: Complete, Cancel,
// Extend and MarkOverdue return an Update payload naming exactly the fields
// that change, and the caller merges it through Apply into a new instance.
package loan
