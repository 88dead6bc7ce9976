// Package postpro exports simulation artifacts for external consumers:
// hydrograph csvs, comparison plots, calibrated parameter tables.
package postpro

import (
	"fmt"
	"os"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/mmPlot"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
)

// WriteHydrograph writes a date,obs,sim csv.
func WriteHydrograph(fp string, dts []time.Time, obs, sim []float64) {
	mmio.WriteCsvDateFloats(fp, "date,obs,sim", dts, obs, sim)
}

// WriteSim writes a date,sim csv for runs without observations.
func WriteSim(fp string, dts []time.Time, sim []float64) {
	mmio.WriteCsvDateFloats(fp, "date,sim", dts, sim)
}

// PlotHydrograph renders an observed-vs-simulated comparison png.
func PlotHydrograph(fp string, obs, sim []float64) {
	mmplt.ObsSim(fp, obs, sim)
}

// PlotForcing renders the forcing series to a png for quick inspection.
func PlotForcing(fp string, frc *forcing.Forcing) {
	ys := map[string][]float64{"precip": frc.P, "Ep": frc.Ep}
	if len(frc.Tm) == frc.Len() {
		ys["temp"] = frc.Tm
	}
	mmplt.Temporal(fp, frc.T, ys, 48.)
}

// WriteTrace writes the optimizer's best-objective-per-generation record.
func WriteTrace(fp string, trace []float64) {
	gen, obj := make([]interface{}, len(trace)), make([]interface{}, len(trace))
	for i, v := range trace {
		gen[i] = i
		obj[i] = v
	}
	mmio.WriteCSV(fp, "generation,objective", gen, obj)
}

// WriteParameters writes a parameter,value table of the calibrated set and
// its achieved efficiency.
func WriteParameters(fp string, par gr4j.ParameterSet, nse float64) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("postpro.WriteParameters: %v", err)
	}
	defer f.Close()
	fmt.Fprintln(f, "parameter,value")
	fmt.Fprintf(f, "X1,%f\n", par.X1)
	fmt.Fprintf(f, "X2,%f\n", par.X2)
	fmt.Fprintf(f, "X3,%f\n", par.X3)
	fmt.Fprintf(f, "X4,%f\n", par.X4)
	fmt.Fprintf(f, "NSE,%f\n", nse)
	return nil
}

// WriteForcing writes a forcing (and optional observed flow) csv in the
// layout forcing.Load reads back.
func WriteForcing(fp string, frc *forcing.Forcing, obs []float64) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("postpro.WriteForcing: %v", err)
	}
	defer f.Close()
	if obs == nil {
		fmt.Fprintln(f, "date,precipitation_mm,temperature_c")
	} else {
		fmt.Fprintln(f, "date,precipitation_mm,temperature_c,streamflow_mmd")
	}
	for j, t := range frc.T {
		if obs == nil {
			fmt.Fprintf(f, "%s,%f,%f\n", t.Format("2006-01-02"), frc.P[j], frc.Tm[j])
		} else {
			fmt.Fprintf(f, "%s,%f,%f,%f\n", t.Format("2006-01-02"), frc.P[j], frc.Tm[j], obs[j])
		}
	}
	return nil
}
