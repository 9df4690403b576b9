package domain

import "errors"

// ErrNegativeVolume is returned when a vessel content below zero is supplied.
var ErrNegativeVolume = errors.New("negative water volume")

// ErrNonPositiveCapacity is returned when a vessel capacity is zero or negative.
var ErrNonPositiveCapacity = errors.New("vessel capacity must be positive")

// ErrNegativeTarget is returned when a solve is requested for a volume below zero.
var ErrNegativeTarget = errors.New("target volume must not be negative")

// ErrUnknownPreset is returned when a named puzzle preset cannot be found.
var ErrUnknownPreset = errors.New("unknown puzzle preset")
