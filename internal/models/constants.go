package models

const (
	// ObservationHorizon is the number of one-second buckets in an experiment,
	// indices 0 through 120. It is fixed by the experiment duration and never
	// derived from the length of a log.
	ObservationHorizon = 121

	// LastSecond is the highest relative second kept.
	LastSecond = ObservationHorizon - 1

	// LossWindowSize is the number of ping sequences in one loss estimate.
	LossWindowSize = 30

	// MbitPerByte converts a byte count into megabits.
	MbitPerByte = 8.0 / 1e6
)
