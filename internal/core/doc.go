// Package core defines the types shared by every part of the Secret Santa
// draw: participants, assignments, the error taxonomy, and the derangement
// invariant that every generated AssignmentSet must satisfy.
//
// Identity of a participant is its position in the roster it came from.
// Two participants with identical names are still distinct givers and
// receivers; only the name-based reconciliation in package engine treats
// names as keys.
package core
