// Package kernel provides core domain primitives shared by the menu domain model.
//
// The package includes:
//   - UUID: A value object identifying one processed order, used to correlate
//     log records and API responses
package kernel
