// Package audit contains the immutable audit trail of the backoffice.
//
// Every state-changing action produces exactly one Entry, written in the same
// transaction as the change it documents: if the audit write fails, the whole
// operation rolls back, so a committed change always has its log entry.
// Entries are append-only and are never updated or deleted by normal
// operation. Denied permission checks are logged to the application log as
// security events but produce no Entry, because no state changed.
package audit
