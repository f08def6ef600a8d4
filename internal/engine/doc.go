// Package engine is the financial aggregation and projection engine.
//
// Every function here is a pure function of its arguments: no I/O, no clock reads and no
// shared state. Callers pass "today" explicitly and own persistence of anything returned.
// Inputs are never mutated; transitions on recurring payments return new values.
package engine
