package analytics

import "math"

// runningStats accumulates count, sum, min, max and sample variance in
// one pass (Welford's update for the variance terms).
type runningStats struct {
	count int
	sum   float64
	min   float64
	max   float64
	mean  float64
	m2    float64
}

func (s *runningStats) add(v float64) {
	s.count++
	s.sum += v
	if s.count == 1 {
		s.min = v
		s.max = v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	delta := v - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (v - s.mean)
}

func (s *runningStats) avg() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// stdDev returns the sample standard deviation, or nil when fewer than
// two samples were seen.
func (s *runningStats) stdDev() *float64 {
	if s.count < 2 {
		return nil
	}
	sd := math.Sqrt(s.m2 / float64(s.count-1))
	return &sd
}
