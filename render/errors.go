package render

import "errors"

var (
	// ErrNilWriter indicates a nil output writer was supplied.
	ErrNilWriter = errors.New("render: output writer must be non-nil")
	// ErrNoFigures indicates an empty figure list was supplied.
	ErrNoFigures = errors.New("render: at least one figure is required")
	// ErrUnknownColor indicates a color name outside the supported table.
	ErrUnknownColor = errors.New("render: unknown color name")
	// ErrUnknownMarker indicates a marker outside the supported set.
	ErrUnknownMarker = errors.New("render: unknown marker style")
	// ErrBadDistance indicates a non-positive point spacing.
	ErrBadDistance = errors.New("render: distance must be > 0")
	// ErrBadMarkerSize indicates a non-positive marker size.
	ErrBadMarkerSize = errors.New("render: marker size must be > 0")
	// ErrBadColumns indicates a non-positive subplot column count.
	ErrBadColumns = errors.New("render: cols must be ≥ 1")
)
