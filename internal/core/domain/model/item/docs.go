// Package item provides the orderable items of a course and the catalog that
// resolves item identifiers.
//
// The package includes:
//   - Category: The classification of an item (Main, Side, Drink, Dessert)
//   - Item: An immutable value object with identifier, display name and category
//   - Catalog: The fixed set of items one course offers
//
// Key business rules:
//   - Identifier 0 is reserved for the default drink (Water) in every catalog
//   - Identifiers are non-negative and unique within a catalog
//   - Catalogs never change after construction
package item
