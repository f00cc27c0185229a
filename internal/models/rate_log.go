package models

// RawRateRecord is one line of the interface rate log.
type RawRateRecord struct {
	AbsoluteSecond     int64   // wall-clock second as printed by the monitor
	InterfaceName      string  // e.g. s1-eth4
	BytesOutRate       float64 // bytes/s sent during the sample interval
	CumulativeBytesOut float64 // bytes sent during the sample interval, field 6
}

// RateLog is the ordered content of a rate log.
type RateLog struct {
	Records []RawRateRecord

	incompleteSecondDropped bool
}

// NewRateLog wraps records read from a log as-is.
func NewRateLog(records []RawRateRecord) *RateLog {
	return &RateLog{Records: records}
}

// DropIncompleteSecond removes every record sharing the absolute second of
// the last record. The monitor is stopped mid-interval, so that second holds
// partial samples for some interfaces and none for others.
//
// The removal happens at most once per RateLog; calling it again is a no-op.
func (l *RateLog) DropIncompleteSecond() *RateLog {
	if l.incompleteSecondDropped {
		return l
	}
	l.incompleteSecondDropped = true
	if len(l.Records) == 0 {
		return l
	}

	last := l.Records[len(l.Records)-1].AbsoluteSecond
	kept := make([]RawRateRecord, 0, len(l.Records))
	for _, record := range l.Records {
		if record.AbsoluteSecond != last {
			kept = append(kept, record)
		}
	}
	l.Records = kept
	return l
}

// IncompleteSecondDropped reports whether DropIncompleteSecond has run.
func (l *RateLog) IncompleteSecondDropped() bool {
	return l.incompleteSecondDropped
}

// FirstSecond returns the absolute second of the first record.
func (l *RateLog) FirstSecond() (int64, bool) {
	if len(l.Records) == 0 {
		return 0, false
	}
	return l.Records[0].AbsoluteSecond, true
}
