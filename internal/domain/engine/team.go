package engine

import "arquitetura_xpto/internal/domain/entities"

// tierRatios split a discipline's hours across the seniority tiers.
// Architecture and structural skew toward senior/mid staff; the remaining
// disciplines push more hours to junior/intern.
type tierRatios struct {
	Senior     float64
	Pleno      float64
	Junior     float64
	Estagiario float64
}

var (
	seniorSkewedRatios = tierRatios{Senior: 0.30, Pleno: 0.40, Junior: 0.20, Estagiario: 0.10}
	juniorSkewedRatios = tierRatios{Senior: 0.20, Pleno: 0.30, Junior: 0.30, Estagiario: 0.20}
)

func ratiosFor(d entities.Discipline) tierRatios {
	switch d {
	case entities.DisciplineArquitetura, entities.DisciplineEstrutural:
		return seniorSkewedRatios
	default:
		return juniorSkewedRatios
	}
}

// DistributeTeam splits estimatedHours across the four tiers. Each tier is
// rounded up independently, so the tier sum can exceed estimatedHours by up
// to 3 (one per tier). The slack is bounded and kept rather than reconciled.
func DistributeTeam(d entities.Discipline, estimatedHours int) entities.TeamDistribution {
	r := ratiosFor(d)
	h := float64(estimatedHours)
	return entities.TeamDistribution{
		Senior:     roundUp(h * r.Senior),
		Pleno:      roundUp(h * r.Pleno),
		Junior:     roundUp(h * r.Junior),
		Estagiario: roundUp(h * r.Estagiario),
	}
}
