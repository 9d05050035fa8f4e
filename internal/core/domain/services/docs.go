// Package services contains domain services that coordinate logic spanning
// multiple aggregates.
//
// InventoryLedger reserves and releases stock across all products referenced
// by an order's line items. It is stateless; callers load the affected
// products, invoke the ledger, and persist the changed products within the
// same transaction as the order status change.
package services
