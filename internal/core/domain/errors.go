package domain

import "errors"

// Failure kinds surfaced by orchestrator operations. Callers discriminate
// with errors.Is; the boundary layer maps them 1:1 onto response codes.
var (
	// ErrNotFound: an email or proposal id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrPrecondition: wrong status for the requested transition, missing
	// recipient, or missing rendered document with rendering also failing.
	ErrPrecondition = errors.New("precondition failed")
	// ErrProvider: transient network/auth failure from a mail provider.
	ErrProvider = errors.New("mail provider error")
	// ErrGeneration: the extraction or content-generation collaborator
	// returned empty or invalid output; the operation mutates nothing.
	ErrGeneration = errors.New("generation failed")
	// ErrPersistence: a write to the document store failed.
	ErrPersistence = errors.New("persistence error")
)
