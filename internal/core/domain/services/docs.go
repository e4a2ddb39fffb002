// Package services contains domain services implementing business logic that
// spans or sits outside a single aggregate.
//
// TransitionResolver decides which automatic transition the daily cutoff
// engine applies to an order based on its lifecycle status. It is a pure
// decision service: selection of candidates and the actual state mutation
// live elsewhere, so the mapping from status to outcome can be tested on
// its own.
package services
