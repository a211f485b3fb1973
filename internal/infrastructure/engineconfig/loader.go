package engineconfig

import (
	"arquitetura_xpto/internal/domain/engine"

	"github.com/spf13/viper"
)

// Load reads a pricing override file (YAML, JSON or TOML, decided by the
// extension) and applies it over the stock configuration. An empty path
// returns the stock configuration untouched.
//
// Overrides merge per key: a discipline rate row, a typology multiplier
// table or a complexity entry in the file replaces that key wholesale while
// the remaining keys keep their stock values. The defaults section, when
// present, replaces all four composition fractions at once.
func Load(path string) (engine.Configuration, error) {
	cfg := engine.DefaultConfiguration()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return engine.Configuration{}, err
	}

	var override engine.Configuration
	if err := v.Unmarshal(&override); err != nil {
		return engine.Configuration{}, err
	}

	if v.IsSet("hourly_rates") {
		for discipline, rates := range override.HourlyRates {
			cfg.HourlyRates[discipline] = rates
		}
	}
	if v.IsSet("typology_multipliers") {
		for typology, multipliers := range override.TypologyMultipliers {
			cfg.TypologyMultipliers[typology] = multipliers
		}
	}
	if v.IsSet("complexity_params") {
		for complexity, params := range override.ComplexityParams {
			cfg.ComplexityParams[complexity] = params
		}
	}
	if v.IsSet("defaults") {
		cfg.Defaults = override.Defaults
	}

	return cfg, nil
}
