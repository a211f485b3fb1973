package engine

import (
	"math"

	"arquitetura_xpto/internal/domain/entities"
)

const minTotalWeeks = 8

// prazoMultipliers stretch the schedule per complexity tier.
var prazoMultipliers = map[entities.Complexity]float64{
	entities.ComplexityBaixa:     0.8,
	entities.ComplexityMedia:     1.0,
	entities.ComplexityAlta:      1.3,
	entities.ComplexityMuitoAlta: 1.6,
}

// etapaSpec defines the fixed phase split. The executive project absorbs the
// rounding remainder, so percentages always add back up to totalWeeks.
type etapaSpec struct {
	name    string
	code    string
	percent float64
}

var etapaSpecs = []etapaSpec{
	{"Levantamento", "LV", 0.10},
	{"Estudo Preliminar", "EP", 0.25},
	{"Anteprojeto", "AP", 0.25},
	{"Projeto Executivo", "PE", 0.40},
}

// EtapaPercent returns the fixed hour/value share of the named phase code,
// used for the per-discipline phase breakdown. Unknown codes return 0.
func EtapaPercent(code string) float64 {
	for _, spec := range etapaSpecs {
		if spec.code == code {
			return spec.percent
		}
	}
	return 0
}

// BuildSchedule derives the phased timeline:
//
//	totalWeeks = max(8, ceil(sqrt(area)/5 × prazoMult(complexity)))
//
// Phases are strictly sequential and contiguous, each at least one week, and
// every phase lists all resolved disciplines; per-phase discipline subsets
// are not modeled.
func BuildSchedule(builtArea float64, complexity entities.Complexity, disciplines []entities.Discipline) entities.Schedule {
	mult, ok := prazoMultipliers[complexity]
	if !ok {
		mult = prazoMultipliers[entities.ComplexityMedia]
	}

	totalWeeks := roundUp(math.Sqrt(builtArea) / 5 * mult)
	if totalWeeks < minTotalWeeks {
		totalWeeks = minTotalWeeks
	}

	etapas := make([]entities.Etapa, 0, len(etapaSpecs))
	start := 0
	for i, spec := range etapaSpecs {
		duration := int(math.Floor(float64(totalWeeks) * spec.percent))
		if duration < 1 {
			duration = 1
		}
		if i == len(etapaSpecs)-1 {
			// Remainder after rounding goes to the executive project.
			duration = totalWeeks - start
			if duration < 1 {
				duration = 1
			}
		}
		etapas = append(etapas, entities.Etapa{
			Name:          spec.name,
			Code:          spec.code,
			StartWeek:     start,
			DurationWeeks: duration,
			EndWeek:       start + duration,
			Disciplines:   append([]entities.Discipline(nil), disciplines...),
		})
		start += duration
	}

	return entities.Schedule{TotalWeeks: etapas[len(etapas)-1].EndWeek, Etapas: etapas}
}
