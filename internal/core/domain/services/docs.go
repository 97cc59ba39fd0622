// Package services provides domain services that work across the item catalog
// and the order tally.
//
// The package includes:
//   - OrderRenderer: Arranges a validated order canonically and formats it as text
package services
