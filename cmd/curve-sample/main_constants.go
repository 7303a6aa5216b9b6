package main

// Default command-line flag values
const (
	defaultSampleCount = 100 // Samples across the grid
)

// Info mode parameters
const (
	infoSampleCount = 256 // Samples used for shape statistics
)

// Grid limits
const (
	minSampleCount = 2 // A grid needs both endpoints
)
