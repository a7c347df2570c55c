// Package offer contains the catalog side of the marketplace domain as seen
// by the order workflow: the Tier ladder and the Package snapshot source.
//
// Offer authoring (creation, editing, search) is owned by an external
// collaborator. This package only models what the purchase flow needs to
// read: a validated package with its purchasable terms at a point in time.
// Orders never hold references into this package after creation; they embed
// an immutable copy instead.
package offer
