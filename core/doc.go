// Package core defines the shared types used across MyGenericLogger.
//
// It provides the Level type for threshold filtering, the Destination
// type that selects the active sink, the Entry type that carries one
// formatted message from the logger to a handler, and the Value type
// that encodes a single heterogeneous argument of a variadic log call.
//
// Levels are ordered the other way round from most logging libraries:
// a lower number means a more severe message. A message at level L is
// emitted iff L <= threshold. AlwaysLevel sits below every threshold,
// DisableLevel (0) suppresses every leveled message and AllLevel lets
// everything through, including raw buffer dumps.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has written it.
//
// Value encodes numbers, booleans, times and durations into fixed-size
// fields so that rendering them does not go through fmt. The Any kind
// exists as a fallback for arbitrary types.
package core
