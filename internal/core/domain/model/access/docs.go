// Package access implements the role and capability model of the backoffice.
//
// Every actor carries exactly one Role (Viewer, Staff, or Admin). A Role maps
// to a fixed set of Capabilities through a static table: Viewer can read
// products and orders, Staff additionally manages them, Admin additionally
// manages users and settings. There are no per-object or dynamic overrides;
// the table is checked synchronously before any mutating operation.
package access
