package engine

import "arquitetura_xpto/internal/domain/entities"

// ComposeFinancials aggregates the disciplines' technical cost and applies
// the configured fractions for indirect costs, taxes, contingency and
// profit. The fractions are applied as configured; out-of-range values are
// the configuration owner's responsibility.
func ComposeFinancials(cfg Configuration, disciplines []entities.DisciplineEstimate) entities.FinancialComposition {
	technical := 0.0
	for _, d := range disciplines {
		technical += d.TotalValue
	}

	comp := entities.FinancialComposition{
		TechnicalCost: technical,
		IndirectCosts: technical * cfg.Defaults.IndirectCostRate,
		Taxes:         technical * cfg.Defaults.TaxRate,
		Contingency:   technical * cfg.Defaults.ContingencyRate,
		Profit:        technical * cfg.Defaults.ProfitMargin,
	}
	comp.Total = comp.TechnicalCost + comp.IndirectCosts + comp.Taxes + comp.Contingency + comp.Profit
	return comp
}
