package models

// TimeSeries maps every relative second (or ping sequence) in 0..120 to a
// value. Being an array, it is always fully populated: seconds that saw no
// data are zero.
type TimeSeries [ObservationHorizon]float64

// Add returns the element-wise sum of s and other.
func (s TimeSeries) Add(other TimeSeries) TimeSeries {
	var out TimeSeries
	for i := range s {
		out[i] = s[i] + other[i]
	}
	return out
}

// CumulativeSum returns the running prefix sum of s over 0..120, in index order.
func (s TimeSeries) CumulativeSum() TimeSeries {
	var out TimeSeries
	running := 0.0
	for i := 0; i < ObservationHorizon; i++ {
		running += s[i]
		out[i] = running
	}
	return out
}

// Values returns the series as a slice, e.g. for chart Y values.
func (s TimeSeries) Values() []float64 {
	out := make([]float64, ObservationHorizon)
	copy(out, s[:])
	return out
}

// NonZero returns the indices holding a non-zero value and those values.
// On a delay series these are the sequences that received a reply.
func (s TimeSeries) NonZero() (indices []int, values []float64) {
	for i, v := range s {
		if v != 0 {
			indices = append(indices, i)
			values = append(values, v)
		}
	}
	return indices, values
}

// Indices returns 0..120 as float64, the X axis shared by every chart.
func Indices() []float64 {
	out := make([]float64, ObservationHorizon)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
