// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of the defaults below,
// an optional settings.yaml, and command line flags bound by /cmd.
type Config struct {
	// monovalent cation concentration, mM
	NaMM float64 `mapstructure:"na"`

	// magnesium concentration, mM
	MgMM float64 `mapstructure:"mg"`

	// total primer concentration, nM
	PrimerNM float64 `mapstructure:"primer-conc"`

	// target melting temperature, °C
	TmTarget float64 `mapstructure:"tm-target"`

	// allowed deviation from the target Tm, °C
	TmTolerance float64 `mapstructure:"tm-tolerance"`

	// tighter Tm tolerance used when searching binding sites, °C
	BindTmTolerance float64 `mapstructure:"bind-tm-tolerance"`

	// primer length bounds, nt
	MinLen int `mapstructure:"min-len"`
	MaxLen int `mapstructure:"max-len"`

	// a homopolymer run this long disqualifies a primer
	HomopolymerMax int `mapstructure:"homopolymer-max"`

	// cross-dimers at or below this ΔG conflict, kcal/mol
	ConflictThreshold float64 `mapstructure:"conflict-threshold"`

	// product sizes closer than this collide on a gel, bp
	SizeTolerance int `mapstructure:"size-tolerance"`

	// exact-match 3' seed length for binding-site search, nt
	SeedLen int `mapstructure:"seed-len"`

	// tolerated mismatch fraction in the 5' remainder of a primer
	MaxMismatchRatio float64 `mapstructure:"max-mismatch-ratio"`

	Verbose bool `mapstructure:"verbose"`
}

func setDefaults() {
	viper.SetDefault("na", 50.0)
	viper.SetDefault("mg", 0.0)
	viper.SetDefault("primer-conc", 500.0)
	viper.SetDefault("tm-target", 60.0)
	viper.SetDefault("tm-tolerance", 5.0)
	viper.SetDefault("bind-tm-tolerance", 2.5)
	viper.SetDefault("min-len", 15)
	viper.SetDefault("max-len", 40)
	viper.SetDefault("homopolymer-max", 4)
	viper.SetDefault("conflict-threshold", -6.0)
	viper.SetDefault("size-tolerance", 20)
	viper.SetDefault("seed-len", 10)
	viper.SetDefault("max-mismatch-ratio", 0.2)
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings.yaml) and/or command line arguments.
func New() *Config {
	setDefaults()

	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return &c
}
