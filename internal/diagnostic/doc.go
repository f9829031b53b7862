// Package diagnostic provides structured errors, warnings and notes
// collected while checking a mapping description.
//
// Key capabilities:
//   - Missing mandatory target fields
//   - Dangling constant and attribute references
//   - Duplicate or malformed mapping actions
//   - "Did you mean" suggestions for misspelled references
package diagnostic
