package pdb

import "errors"

// Sentinel errors for the engine. All errors returned by this package wrap
// one of these, so callers can branch with errors.Is regardless of the
// contextual message attached at the failure site.
var (
	// ErrCostOverflow is returned when a cumulative g-value would exceed
	// the one-byte range during generation.
	ErrCostOverflow = errors.New("pdb: cumulative cost exceeds one byte")

	// ErrShapeMismatch is returned when a permutation does not match the
	// shape the ranker was initialized with, either in length or in the
	// number of preserved symbols it carries.
	ErrShapeMismatch = errors.New("pdb: permutation does not match ranker shape")

	// ErrPatternInvalid is returned for patterns containing characters
	// other than '-' and '*'.
	ErrPatternInvalid = errors.New("pdb: pattern may contain only '-' and '*'")

	// ErrGoalPatternLengthMismatch is returned when a goal and a pattern
	// differ in length.
	ErrGoalPatternLengthMismatch = errors.New("pdb: goal and pattern have different lengths")

	// ErrOutOfBounds is returned by bounds-checked table access.
	ErrOutOfBounds = errors.New("pdb: index out of bounds")

	// ErrEmptyBucket is returned when removing from an empty queue bucket.
	ErrEmptyBucket = errors.New("pdb: bucket is empty")

	// ErrCapacityExceeded is returned when the queue would need more
	// buckets than the implementation limit.
	ErrCapacityExceeded = errors.New("pdb: too many buckets")

	// Doctor verdicts. The doctor reports the first inconsistency found
	// in a freshly generated table.
	ErrAddressSpaceMismatch = errors.New("pdb: expansions do not cover the address space")
	ErrZeroEntry            = errors.New("pdb: empty entry left after generation")
	ErrOneCount             = errors.New("pdb: abstract goal entry is not unique")

	// Codec errors, file level.
	ErrFileMissing = errors.New("pdb: file does not exist")
	ErrNotRegular  = errors.New("pdb: not a regular file")
	ErrOpenFailed  = errors.New("pdb: file could not be opened")
	ErrSizeUnknown = errors.New("pdb: file size could not be determined")

	// Codec errors, field level.
	ErrHeaderMode     = errors.New("pdb: mode could not be read")
	ErrHeaderLength   = errors.New("pdb: permutation length could not be read")
	ErrHeaderGoal     = errors.New("pdb: goal could not be read")
	ErrHeaderPPattern = errors.New("pdb: p-pattern could not be read")
	ErrHeaderCPattern = errors.New("pdb: c-pattern could not be read")
	ErrSizeMismatch   = errors.New("pdb: file size does not match the header")
	ErrPayload        = errors.New("pdb: payload could not be read")

	// Facade errors.
	ErrIncompatiblePDBs  = errors.New("pdb: incompatible pattern databases")
	ErrPermutationShape  = errors.New("pdb: permutation length differs from the goal")
	ErrAddNotImplemented = errors.New("pdb: ADD combination not implemented")
)
