package lutmap

import (
	"fmt"
	"math"
)

// SampleSpan returns count integers evenly spaced from begin to end
// inclusive, each rounded half away from zero. count must be at least 2.
func SampleSpan(begin, end, count int) ([]int, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: too few samples: %d", ErrInvalidArgument, count)
	}
	step := float64(end-begin) * (1.0 / float64(count-1))
	ans := make([]int, 0, count)
	v := float64(begin)
	for range count {
		ans = append(ans, int(math.Round(v)))
		v += step
	}
	return ans, nil
}
