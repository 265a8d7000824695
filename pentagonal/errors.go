package pentagonal

import "errors"

var (
	// ErrNonPositiveIndex indicates a series index below 1.
	ErrNonPositiveIndex = errors.New("pentagonal: index must be ≥ 1")
	// ErrIndexOverflow indicates an index whose term exceeds int64.
	ErrIndexOverflow = errors.New("pentagonal: index exceeds MaxIndex")
	// ErrBadRange indicates start < 1 or end < start in a range request.
	ErrBadRange = errors.New("pentagonal: range requires 1 ≤ start ≤ end")
)
