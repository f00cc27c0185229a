package aggregators

import (
	"experiment-analytics/internal/models"
)

// TimeBase maps absolute seconds of a rate log onto the relative seconds of
// the observation horizon. Every series built from one rate log must use the
// same TimeBase so that the charts count seconds identically.
type TimeBase struct {
	first int64
	valid bool
}

// NewTimeBase anchors relative second 0 at the first record of rateLog.
// An empty log yields a TimeBase that places nothing.
func NewTimeBase(rateLog *models.RateLog) TimeBase {
	first, ok := rateLog.FirstSecond()
	return TimeBase{first: first, valid: ok}
}

// RelativeSecond returns absoluteSecond - first and whether it falls inside 0..120.
func (tb TimeBase) RelativeSecond(absoluteSecond int64) (int, bool) {
	if !tb.valid {
		return 0, false
	}
	offset := absoluteSecond - tb.first
	if offset < 0 || offset > models.LastSecond {
		return 0, false
	}
	return int(offset), true
}

// FirstSecond returns the absolute second mapped to relative second 0.
func (tb TimeBase) FirstSecond() int64 {
	return tb.first
}
