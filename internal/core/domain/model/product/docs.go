// Package product contains the product aggregate of the backoffice catalog.
//
// A product carries a unique SKU, a price in minor currency units, and a
// stock quantity that is never negative. Stock changes go exclusively through
// Deduct and Restock so the non-negativity invariant cannot be bypassed;
// reservation across several products at once is coordinated by the
// services.InventoryLedger domain service.
package product
