package metrics

import (
	"fmt"

	"github.com/maseology/objfunc"
)

// Report bundles the fit measures for one simulation window.
type Report struct {
	NSE, RMSE, Bias, R2 float64
	KGE                 float64 // Kling-Gupta efficiency, reported for context
}

// NewReport evaluates all measures over one obs/sim pair; preconditions are
// shared, so either every measure is present or the error names the failed
// check.
func NewReport(obs, sim []float64) (*Report, error) {
	o, s, err := pairs(obs, sim)
	if err != nil {
		return nil, err
	}
	var r Report
	if r.NSE, err = NSE(o, s); err != nil {
		return nil, err
	}
	if r.RMSE, err = RMSE(o, s); err != nil {
		return nil, err
	}
	if r.Bias, err = Bias(o, s); err != nil {
		return nil, err
	}
	if r.R2, err = R2(o, s); err != nil {
		return nil, err
	}
	r.KGE = objfunc.KGE(o, s)
	return &r, nil
}

func (r *Report) String() string {
	return fmt.Sprintf("KGE: %.3f  NSE: %.3f  RMSE: %.3f  R²: %.3f  Bias: %.3f", r.KGE, r.NSE, r.RMSE, r.R2, r.Bias)
}
