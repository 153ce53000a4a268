package service

import "errors"

// Domain errors surfaced to the caller. Both are precondition failures
// detected before any attempt record is written; store faults propagate as
// wrapped opaque errors instead.
var (
	// ErrProfileNotFound means no learning profile exists for the
	// (user, pattern) pair. Profile creation is an upstream concern; the
	// engine never retries.
	ErrProfileNotFound = errors.New("learning profile not found")

	// ErrNoQuestionsForPattern means the question bank has no items linked
	// to the requested pattern.
	ErrNoQuestionsForPattern = errors.New("no questions linked to pattern")
)
