package release

import "errors"

// Terminal error kinds for a release run. The workflow stops at the first of
// these; there is no retry and no rollback of steps that already completed.
var (
	// ErrDuplicateTag reports a tag string appearing twice in the history.
	ErrDuplicateTag = errors.New("duplicate tag in history")

	// ErrOrdering reports a history that is not monotonically decreasing,
	// or a custom tag that is not greater than the latest release.
	ErrOrdering = errors.New("version ordering violation")

	// ErrSequencing reports a non-adjacent version step that was not
	// confirmed.
	ErrSequencing = errors.New("non-sequential version step")

	// ErrSelection reports an invalid bump menu choice.
	ErrSelection = errors.New("invalid selection")

	// ErrAborted reports that the user declined to proceed.
	ErrAborted = errors.New("release aborted")
)
