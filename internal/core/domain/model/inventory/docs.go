// Package inventory provides the per-product stock ledger.
//
// Stock quantities never go negative: Deduct rejects any amount above what is available,
// and the storage layer backs this with a CHECK constraint. Stock only changes inside the
// order confirmation transaction, while the row is locked.
package inventory
