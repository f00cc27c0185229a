package models

// RawPingRecord is one timed reply of the ping log.
type RawPingRecord struct {
	SequenceNumber int
	RoundTripMs    float64
}
