// Package services contains domain services implementing business logic
// that spans multiple domain aggregates.
//
// The central service is the TransitionPolicy: an explicit authorization
// table deciding which caller relation may drive which order status
// transition. Keeping the full (transition x relation) matrix in one table
// makes the rules exhaustively testable instead of scattering conditional
// checks across handlers.
package services
