package main

import (
	"path/filepath"
	"time"

	"github.com/maseology/mmio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/calib"
	"github.com/basinsim/gr4j/forcing"
	"github.com/basinsim/gr4j/pet"
	"github.com/basinsim/gr4j/postpro"
)

var (
	cfgFile   string
	dataFile  string
	outDir    string
	paramFile string
	genYears  int
	genStart  string
	genSeed   int64
)

// loadData reads the forcing csv and derives Ep from temperature.
func loadData(fp string) (*forcing.Forcing, []float64) {
	frc, obs, err := forcing.Load(fp)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	if err := frc.DeriveEp(pet.HargreavesEstimator{}); err != nil {
		logrus.Fatalf("%v", err)
	}
	if err := frc.Check(); err != nil {
		logrus.Fatalf("%v", err)
	}
	return frc, obs
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic daily forcing and streamflow dataset",
	Run: func(cmd *cobra.Command, args []string) {
		start, err := time.Parse("2006-01-02", genStart)
		if err != nil {
			logrus.Fatalf("invalid start date: %v", err)
		}
		frc, obs := forcing.Synthetic(start, genYears, genSeed)
		mmio.MakeDir(filepath.Dir(dataFile))
		if err := postpro.WriteForcing(dataFile, frc, obs); err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := frc.DeriveEp(pet.HargreavesEstimator{}); err != nil {
			logrus.Fatalf("%v", err)
		}
		postpro.PlotForcing(dataFile+".png", frc)
		logrus.Infof("wrote %d days of synthetic forcing to %s", frc.Len(), dataFile)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate streamflow with a saved (or default) parameter set",
	Run: func(cmd *cobra.Command, args []string) {
		tt := mmio.NewTimer()
		frc, obs := loadData(dataFile)

		par := gr4j.Default()
		if paramFile != "" {
			var err error
			if par, err = gr4j.LoadGobParameterSet(paramFile); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		logrus.Infof("simulating with %s", par)

		sim, err := gr4j.Simulate(par, frc)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		mmio.MakeDir(outDir)
		if obs == nil {
			postpro.WriteSim(filepath.Join(outDir, "hdgrph.csv"), frc.T, sim)
		} else {
			postpro.WriteHydrograph(filepath.Join(outDir, "hdgrph.csv"), frc.T, obs, sim)
			postpro.PlotHydrograph(filepath.Join(outDir, "hdgrph.png"), obs, sim)
			rep, err := calib.Validate(par, frc, obs)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("fit: %s", rep)
		}
		tt.Print("simulation complete")
	},
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Tune the four parameters against observed streamflow",
	Run: func(cmd *cobra.Command, args []string) {
		tt := mmio.NewTimer()
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if dataFile != "" {
			cfg.DataFile = dataFile
		}
		if outDir != "" {
			cfg.OutDir = outDir
		}

		frc, obs := loadData(cfg.DataFile)
		if obs == nil {
			logrus.Fatalf("calibrate: %s carries no observed streamflow column", cfg.DataFile)
		}
		at, err := cfg.splitDate()
		if err != nil {
			logrus.Fatalf("invalid split date: %v", err)
		}
		isplit := frc.SplitIndex(at)
		cfrc, cobs := frc.Subset(0, isplit), obs[:isplit]
		logrus.Infof("calibration window: %d days, validation window: %d days", isplit, frc.Len()-isplit)

		var res *calib.Result
		switch cfg.Optimizer {
		case "sce":
			res, err = calib.CalibrateSCE(cfrc, cobs, cfg.bounds(), cfg.PopulationSize, cfg.Seed)
		default:
			res, err = calib.Calibrate(cfrc, cobs, cfg.bounds(), cfg.PopulationSize, cfg.MaxIterations, cfg.Seed)
		}
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("calibrated: %s  NSE: %.3f", res.Par, res.NSE)

		mmio.MakeDir(cfg.OutDir)
		if err := res.Par.SaveGob(filepath.Join(cfg.OutDir, "parameters.gob")); err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := postpro.WriteParameters(filepath.Join(cfg.OutDir, "parameters.csv"), res.Par, res.NSE); err != nil {
			logrus.Fatalf("%v", err)
		}
		if len(res.Trace) > 0 {
			postpro.WriteTrace(filepath.Join(cfg.OutDir, "trace.csv"), res.Trace)
		}

		sim, err := gr4j.Simulate(res.Par, cfrc)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		postpro.WriteHydrograph(filepath.Join(cfg.OutDir, "hdgrph.csv"), cfrc.T, cobs, sim)
		postpro.PlotHydrograph(filepath.Join(cfg.OutDir, "hdgrph.png"), cobs, sim)

		if isplit < frc.Len() {
			rep, err := calib.Validate(res.Par, frc.Subset(isplit, frc.Len()), obs[isplit:])
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("validation: %s", rep)
		}
		tt.Print("calibration complete")
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report fit of a frozen parameter set over an independent period",
	Run: func(cmd *cobra.Command, args []string) {
		frc, obs := loadData(dataFile)
		if obs == nil {
			logrus.Fatalf("validate: %s carries no observed streamflow column", dataFile)
		}
		par, err := gr4j.LoadGobParameterSet(paramFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rep, err := calib.Validate(par, frc, obs)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("validation of %s", par)
		logrus.Infof("  %s", rep)
	},
}

func init() {
	generateCmd.Flags().StringVar(&dataFile, "out", "forcing.csv", "output csv path")
	generateCmd.Flags().IntVar(&genYears, "years", 10, "years of daily record")
	generateCmd.Flags().StringVar(&genStart, "start", "2005-01-01", "first date (yyyy-mm-dd)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "random seed")

	runCmd.Flags().StringVar(&dataFile, "data", "forcing.csv", "forcing csv path")
	runCmd.Flags().StringVar(&paramFile, "params", "", "calibrated parameter gob (default parameters when empty)")
	runCmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory")

	calibrateCmd.Flags().StringVar(&cfgFile, "config", "", "yaml run configuration")
	calibrateCmd.Flags().StringVar(&dataFile, "data", "", "forcing csv path (overrides config)")
	calibrateCmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (overrides config)")

	validateCmd.Flags().StringVar(&dataFile, "data", "forcing.csv", "forcing csv path")
	validateCmd.Flags().StringVar(&paramFile, "params", "parameters.gob", "calibrated parameter gob")
	validateCmd.MarkFlagRequired("params")
}
