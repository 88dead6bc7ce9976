package forcing

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maseology/mmio"
)

// Load reads a daily csv of the form
//
//	date,precipitation_mm,temperature_c[,streamflow_mmd]
//
// returning the forcing series and, when the fourth column is present, the
// aligned observed streamflow [mm/d]. Ep is left for DeriveEp.
func Load(fp string) (*Forcing, []float64, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, nil, fmt.Errorf("forcing.Load: file %s does not exist", fp)
	}
	f, err := os.Open(fp)
	if err != nil {
		return nil, nil, fmt.Errorf("forcing.Load: %v", err)
	}
	defer f.Close()

	frc, obs := &Forcing{}, []float64{}
	nobs := 0
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		dt, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, nil, fmt.Errorf("forcing.Load: %v", err)
		}
		p, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("forcing.Load: %v", err)
		}
		tm, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("forcing.Load: %v", err)
		}
		frc.T = append(frc.T, dt)
		frc.P = append(frc.P, p)
		frc.Tm = append(frc.Tm, tm)
		if len(rec) > 3 {
			v, err := strconv.ParseFloat(rec[3], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("forcing.Load: %v", err)
			}
			obs = append(obs, v)
			nobs++
		}
	}
	if nobs > 0 && nobs != frc.Len() {
		return nil, nil, fmt.Errorf("%w: %d streamflow records for %d forcing days", ErrInvalidInput, nobs, frc.Len())
	}
	if nobs == 0 {
		obs = nil
	}
	return frc, obs, nil
}
