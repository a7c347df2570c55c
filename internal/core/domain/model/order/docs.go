// Package order implements the order aggregate of the marketplace domain.
//
// An order freezes an immutable PackageSnapshot of the purchased offer package
// at creation time and then moves through a small, closed status graph:
//
//	Pending ──┬──> InProgress ──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal. The snapshot invariant is the heart of
// the subsystem: once an order is placed, edits or deletions of the source
// package are never observable through the order, so an offer author changing
// price or features tomorrow cannot change what a customer agreed to pay
// yesterday.
//
// Who may drive which transition is decided outside this package by the
// transition policy domain service; this package only enforces that the
// requested edge exists in the graph.
package order
