package engine

import "arquitetura_xpto/internal/domain/entities"

// ResolveRate computes the weighted-average hourly rate of a discipline's
// team mix: Σ(tierHours × tierRate) / Σ(tierHours). Missing rate rows fall
// back to the stock rates with a configuration warning.
func ResolveRate(cfg Configuration, d entities.Discipline, team entities.TeamDistribution) (float64, []ConfigurationWarning) {
	var warnings []ConfigurationWarning

	rates, ok := cfg.HourlyRates[d]
	if !ok {
		rates = fallbackRates
		warnings = append(warnings, configWarning("hourly_rates",
			"no hourly rates configured for discipline %q, using fallback rates", d))
	}

	totalHours := team.Total()
	if totalHours == 0 {
		return 0, warnings
	}

	weighted := float64(team.Senior)*rates.Senior +
		float64(team.Pleno)*rates.Pleno +
		float64(team.Junior)*rates.Junior +
		float64(team.Estagiario)*rates.Estagiario

	return weighted / float64(totalHours), warnings
}
