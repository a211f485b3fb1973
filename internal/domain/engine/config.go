package engine

import "arquitetura_xpto/internal/domain/entities"

// SubtypeBase is the reserved multiplier key holding a typology's base
// multiplier, used whenever the briefing's subtype has no entry of its own.
const SubtypeBase = "base"

// TierRates holds the hourly rate per seniority tier for one discipline.
type TierRates struct {
	Senior     float64 `json:"senior" mapstructure:"senior"`
	Pleno      float64 `json:"pleno" mapstructure:"pleno"`
	Junior     float64 `json:"junior" mapstructure:"junior"`
	Estagiario float64 `json:"estagiario" mapstructure:"estagiario"`
}

// ComplexityParams tunes the hour formula for one complexity tier.
type ComplexityParams struct {
	Multiplier     float64 `json:"multiplier" mapstructure:"multiplier"`
	BaseHoursPerM2 float64 `json:"base_hours_per_m2" mapstructure:"base_hours_per_m2"`
}

// FinancialDefaults are the composition fractions applied over the technical
// cost. All four are fractions in [0,1]; the engine does not clamp them, so
// an out-of-range configuration is the configuration owner's problem.
type FinancialDefaults struct {
	ProfitMargin     float64 `json:"profit_margin" mapstructure:"profit_margin"`
	TaxRate          float64 `json:"tax_rate" mapstructure:"tax_rate"`
	IndirectCostRate float64 `json:"indirect_cost_rate" mapstructure:"indirect_cost_rate"`
	ContingencyRate  float64 `json:"contingency_rate" mapstructure:"contingency_rate"`
}

// Configuration is the per-office pricing table consumed by every
// calculation. It is read-only input: the engine never mutates it, which
// keeps concurrent calculations against a shared instance safe.
type Configuration struct {
	HourlyRates         map[entities.Discipline]TierRates        `json:"hourly_rates" mapstructure:"hourly_rates"`
	TypologyMultipliers map[entities.Typology]map[string]float64 `json:"typology_multipliers" mapstructure:"typology_multipliers"`
	ComplexityParams    map[entities.Complexity]ComplexityParams `json:"complexity_params" mapstructure:"complexity_params"`
	Defaults            FinancialDefaults                        `json:"defaults" mapstructure:"defaults"`
}

// DefaultConfiguration returns the stock pricing table used when an office
// has not stored an override. Rates are BRL per hour.
func DefaultConfiguration() Configuration {
	return Configuration{
		HourlyRates: map[entities.Discipline]TierRates{
			entities.DisciplineArquitetura:       {Senior: 180, Pleno: 120, Junior: 80, Estagiario: 40},
			entities.DisciplineEstrutural:        {Senior: 160, Pleno: 110, Junior: 75, Estagiario: 40},
			entities.DisciplineEletrica:          {Senior: 150, Pleno: 100, Junior: 70, Estagiario: 40},
			entities.DisciplineHidraulica:        {Senior: 150, Pleno: 100, Junior: 70, Estagiario: 40},
			entities.DisciplineHVAC:              {Senior: 155, Pleno: 105, Junior: 72, Estagiario: 40},
			entities.DisciplineSistemasEspeciais: {Senior: 165, Pleno: 115, Junior: 78, Estagiario: 42},
			entities.DisciplineSeguranca:         {Senior: 150, Pleno: 100, Junior: 70, Estagiario: 40},
			entities.DisciplinePaisagismo:        {Senior: 140, Pleno: 95, Junior: 65, Estagiario: 38},
			entities.DisciplineInteriores:        {Senior: 150, Pleno: 105, Junior: 72, Estagiario: 40},
		},
		TypologyMultipliers: map[entities.Typology]map[string]float64{
			entities.TypologyResidencial: {
				SubtypeBase:   1.0,
				"casa":        1.0,
				"apartamento": 1.1,
				"sobrado":     1.15,
				"cobertura":   1.2,
			},
			entities.TypologyComercial: {
				SubtypeBase:   1.05,
				"loja":        1.0,
				"escritorio":  1.05,
				"restaurante": 1.15,
			},
			entities.TypologyIndustrial: {
				SubtypeBase: 0.75,
				"galpao":    0.6,
				"fabrica":   0.85,
			},
			entities.TypologyInstitucional: {
				SubtypeBase: 1.1,
				"escola":    1.05,
				"hospital":  1.3,
			},
		},
		ComplexityParams: map[entities.Complexity]ComplexityParams{
			entities.ComplexityBaixa:     {Multiplier: 0.95, BaseHoursPerM2: 0.5},
			entities.ComplexityMedia:     {Multiplier: 1.0, BaseHoursPerM2: 0.6},
			entities.ComplexityAlta:      {Multiplier: 1.05, BaseHoursPerM2: 0.7},
			entities.ComplexityMuitoAlta: {Multiplier: 1.15, BaseHoursPerM2: 0.8},
		},
		Defaults: FinancialDefaults{
			ProfitMargin:     0.20,
			TaxRate:          0.10,
			IndirectCostRate: 0.15,
			ContingencyRate:  0.05,
		},
	}
}

// fallbackRates is used when a discipline has no configured rate row.
var fallbackRates = TierRates{Senior: 150, Pleno: 100, Junior: 70, Estagiario: 40}
