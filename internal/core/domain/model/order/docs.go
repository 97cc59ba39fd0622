// Package order provides the per-order quantity tally and the failures an
// order can be rejected with.
//
// The package includes:
//   - Tally: Counts of units per item identifier and per category for one order
//   - Failure types: Unknown item, missing category, repeated item, repeated category
//
// Key business rules:
//   - A tally only grows, one unit at a time
//   - For every category, its total equals the sum of the counts of its items
//   - A tally belongs to exactly one order and is never reused for another
//
// Failure messages are the exact reasons shown to the customer.
package order
