// Package course provides the meal courses an order can be placed for and the
// rules that validate an order against its course.
//
// The package includes:
//   - Kind: The fixed set of course variants (Breakfast, Lunch, Dinner)
//   - Course: A catalog bound to the universal rules plus its variant rules
//
// Processing an order for any course:
//  1. Start from a fresh tally
//  2. Dinner only: add the default drink unconditionally
//  3. Add one unit per requested identifier, failing on the first unknown one
//  4. Add the default drink if no drink was requested
//  5. Require a main and a side
//  6. Apply the variant rules in order, failing on the first violation
//
// Variant rules:
//   - Breakfast: only Coffee may be ordered more than once
//   - Lunch: only sides may be ordered more than once, per item and per category
//   - Dinner: nothing may be ordered more than once and a dessert is required
package course
