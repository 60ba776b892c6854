// Package cod holds the cash-on-delivery (contraentrega) reconciliation
// aggregates: the Payment that tracks one COD order from collection through
// close-out, and the append-only LedgerEntry movements from which each
// messenger's cash balance is derived.
package cod
