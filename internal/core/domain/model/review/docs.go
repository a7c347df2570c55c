// Package review implements the review ledger of the marketplace domain.
//
// A review is a customer's rating of a business, justified by at least one
// completed order between the two. The ledger is append-only in the sense
// that a review's identity and relation (customer, business, order) never
// change; only the authoring customer may replace its rating and comment.
// At most one review exists per (customer, business) pair.
//
// Reviews feed the aggregate stats engine: every successful create or update
// invalidates the cached statistics of the affected business.
package review
