// Package match ranks element names by similarity so that dangling
// references can be reported with "did you mean" suggestions.
//
// Key functions:
//   - NormalizeName: folds case and separators before comparison
//   - Distance: rune-wise edit distance
//   - Suggest: closest candidates for a misspelled name
package match
