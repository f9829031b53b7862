// Package resolve dereferences reference types against lexically scoped
// definition tables.
//
// Definitions accumulate downward: every type may declare local definitions,
// which shadow same-id definitions inherited from enclosing scopes for the
// type itself and everything nested below it. Callers that continue walking
// a resolved type must keep using the Definitions returned by Resolve.
package resolve
