// Package domain defines the entities of a live ten-seat game show:
// players, game sessions, seats, and the session event log.
//
// The package holds pure data types, validation, and constructors. It has
// no storage or transport concerns; sequencing invariants (event order,
// elimination order, single active session) are enforced by the storage
// layer's transactions.
package domain
