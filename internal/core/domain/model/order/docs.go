// Package order implements the Order aggregate root: the lifecycle state
// machine, the barcode-verified packing checklist and the channel binding
// rules for carriers, messengers and warehouse pickup.
//
// The package includes:
//   - Order: the aggregate root and unit of atomic read-modify-write
//   - Status: the closed lifecycle enum with validated transitions
//   - DeliveryMethod, PaymentMethod: closed enums parsed at the boundary
//   - Item, ChecklistLine: order lines and their verification progress
//   - ScanEvent: the append-only audit record of accepted scans
//
// Cash-on-delivery reconciliation lives in the cod package; the COD gate on
// the terminal transition is enforced by the transition command handler,
// which coordinates both aggregates inside one unit of work.
package order
