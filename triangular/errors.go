package triangular

import "errors"

var (
	// ErrNonPositiveIndex indicates a series index below 1.
	ErrNonPositiveIndex = errors.New("triangular: index must be ≥ 1")
	// ErrIndexOverflow indicates an index whose term exceeds int64.
	ErrIndexOverflow = errors.New("triangular: index exceeds MaxIndex")
	// ErrBadRange indicates start < 1 or end < start in a range request.
	ErrBadRange = errors.New("triangular: range requires 1 ≤ start ≤ end")
)
