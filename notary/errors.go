package notary

import "github.com/pkg/errors"

var (
	// ErrNoSeasonForHeight is returned when a height falls beyond the
	// last configured season bound.
	ErrNoSeasonForHeight = errors.New("no notary season covers the given height")

	// ErrNoSeasonForTimestamp is returned when a timestamp falls beyond
	// the last configured season bound.
	ErrNoSeasonForTimestamp = errors.New("no notary season covers the given timestamp")

	// ErrNotInitialized is returned by the package-level accessors when
	// the process-wide registry failed to decode its season table.
	ErrNotInitialized = errors.New("notary season registry is not initialized")
)
