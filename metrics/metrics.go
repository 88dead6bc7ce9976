// Package metrics computes goodness-of-fit measures between simulated and
// observed daily series under a strict precondition contract.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/basinsim/gr4j"
)

// pairs drops records where either side is missing (NaN) and enforces the
// shared preconditions.
func pairs(obs, sim []float64) (o, s []float64, err error) {
	if len(obs) != len(sim) {
		return nil, nil, fmt.Errorf("%w: observed %d, simulated %d", gr4j.ErrLengthMismatch, len(obs), len(sim))
	}
	o, s = make([]float64, 0, len(obs)), make([]float64, 0, len(sim))
	for i := range obs {
		if math.IsNaN(obs[i]) || math.IsNaN(sim[i]) {
			continue
		}
		o = append(o, obs[i])
		s = append(s, sim[i])
	}
	if len(o) < 2 {
		return nil, nil, fmt.Errorf("%w: %d valid paired observations", gr4j.ErrInsufficientData, len(o))
	}
	return o, s, nil
}

// NSE returns the Nash-Sutcliffe efficiency: 1 is a perfect fit, 0 matches
// predicting the observed mean, negative is worse than the mean. NaN when
// the observed series has zero variance (efficiency undefined).
func NSE(obs, sim []float64) (float64, error) {
	o, s, err := pairs(obs, sim)
	if err != nil {
		return math.NaN(), err
	}
	om := stat.Mean(o, nil)
	num, den := 0., 0.
	for i := range o {
		num += (o[i] - s[i]) * (o[i] - s[i])
		den += (o[i] - om) * (o[i] - om)
	}
	if den == 0. {
		return math.NaN(), nil
	}
	return 1. - num/den, nil
}

// RMSE returns the root mean squared error [mm/d].
func RMSE(obs, sim []float64) (float64, error) {
	o, s, err := pairs(obs, sim)
	if err != nil {
		return math.NaN(), err
	}
	ss := 0.
	for i := range o {
		ss += (s[i] - o[i]) * (s[i] - o[i])
	}
	return math.Sqrt(ss / float64(len(o))), nil
}

// Bias returns the mean simulated-minus-observed error [mm/d].
func Bias(obs, sim []float64) (float64, error) {
	o, s, err := pairs(obs, sim)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Mean(s, nil) - stat.Mean(o, nil), nil
}

// R2 returns the squared Pearson correlation between simulated and
// observed. NaN when either series has zero variance (undefined).
func R2(obs, sim []float64) (float64, error) {
	o, s, err := pairs(obs, sim)
	if err != nil {
		return math.NaN(), err
	}
	r := stat.Correlation(o, s, nil)
	return r * r, nil
}
