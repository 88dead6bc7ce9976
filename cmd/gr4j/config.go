package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/basinsim/gr4j"
)

// runConfig is the optional yaml surface for calibrate/validate runs;
// flags override nothing here, the file simply replaces typing them out.
type runConfig struct {
	DataFile       string `yaml:"data_file"`
	OutDir         string `yaml:"out_dir"`
	SplitDate      string `yaml:"split_date"`
	PopulationSize int    `yaml:"population_size"`
	MaxIterations  int    `yaml:"max_iterations"`
	Seed           int64  `yaml:"seed"`
	Optimizer      string `yaml:"optimizer"` // "de" (default) or "sce"
	Bounds         struct {
		X1 [2]float64 `yaml:"x1"`
		X2 [2]float64 `yaml:"x2"`
		X3 [2]float64 `yaml:"x3"`
		X4 [2]float64 `yaml:"x4"`
	} `yaml:"bounds"`
}

func defaultConfig() runConfig {
	cfg := runConfig{
		DataFile:       "forcing.csv",
		OutDir:         ".",
		SplitDate:      "2012-01-01",
		PopulationSize: 10,
		MaxIterations:  50,
		Seed:           42,
		Optimizer:      "de",
	}
	b := gr4j.DefaultBounds()
	cfg.Bounds.X1 = [2]float64{b.X1.Low, b.X1.High}
	cfg.Bounds.X2 = [2]float64{b.X2.Low, b.X2.High}
	cfg.Bounds.X3 = [2]float64{b.X3.Low, b.X3.High}
	cfg.Bounds.X4 = [2]float64{b.X4.Low, b.X4.High}
	return cfg
}

func loadConfig(fp string) (runConfig, error) {
	cfg := defaultConfig()
	if fp == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %v", fp, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %v", fp, err)
	}
	return cfg, nil
}

func (cfg runConfig) bounds() gr4j.Bounds {
	return gr4j.Bounds{
		X1: gr4j.Interval{Low: cfg.Bounds.X1[0], High: cfg.Bounds.X1[1]},
		X2: gr4j.Interval{Low: cfg.Bounds.X2[0], High: cfg.Bounds.X2[1]},
		X3: gr4j.Interval{Low: cfg.Bounds.X3[0], High: cfg.Bounds.X3[1]},
		X4: gr4j.Interval{Low: cfg.Bounds.X4[0], High: cfg.Bounds.X4[1]},
	}
}

func (cfg runConfig) splitDate() (time.Time, error) {
	return time.Parse("2006-01-02", cfg.SplitDate)
}
