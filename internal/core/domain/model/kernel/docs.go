// Package kernel provides core domain primitives for the fulfillment engine.
// It implements the fundamental value objects shared by every aggregate:
//
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Money: exact monetary amounts in minor currency units
//
// Kernel types are immutable value objects with validated constructors.
// They carry no behavior specific to any single aggregate and may be used
// from any layer.
package kernel
