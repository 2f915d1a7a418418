package health

import "errors"

var (
	// ErrCheckTimeout indicates a check did not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckerNotFound indicates no checker is registered under a name.
	ErrCheckerNotFound = errors.New("health: checker not found")

	// ErrNilSource indicates a CacheChecker was built without a StatsSource.
	ErrNilSource = errors.New("health: stats source is nil")

	// ErrInvalidThreshold indicates hit ratio thresholds outside [0, 1] or
	// a critical threshold above the warning threshold.
	ErrInvalidThreshold = errors.New("health: invalid hit ratio threshold")
)
