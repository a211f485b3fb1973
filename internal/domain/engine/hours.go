package engine

import (
	"math"

	"arquitetura_xpto/internal/domain/entities"
)

// disciplineWeights scale the base hour formula per specialty. Architecture
// is the reference discipline at 1.0.
var disciplineWeights = map[entities.Discipline]float64{
	entities.DisciplineArquitetura: 1.0,
	entities.DisciplineEstrutural:  0.7,
	entities.DisciplineEletrica:    0.5,
	entities.DisciplineHidraulica:  0.5,
	entities.DisciplinePaisagismo:  0.4,
	entities.DisciplineInteriores:  0.6,
}

const defaultDisciplineWeight = 0.5

// roundUp rounds a fractional hour count up. The tiny subtraction keeps
// binary representation noise (e.g. 57.000000000000007 for an exact 57.0)
// from bumping the result an hour too high.
func roundUp(x float64) int {
	return int(math.Ceil(x - 1e-9))
}

func disciplineWeight(d entities.Discipline) float64 {
	if w, ok := disciplineWeights[d]; ok {
		return w
	}
	return defaultDisciplineWeight
}

// scaleFactor applies economies of scale for large areas. A step function,
// not interpolated.
func scaleFactor(builtArea float64) float64 {
	switch {
	case builtArea > 5000:
		return 0.7
	case builtArea > 2000:
		return 0.8
	case builtArea > 1000:
		return 0.9
	default:
		return 1.0
	}
}

// typologyMultiplier looks up the subtype multiplier, falling back to the
// typology base entry and finally to 1.0. Fallbacks are reported as
// configuration warnings, never as errors.
func typologyMultiplier(cfg Configuration, typology entities.Typology, subtype string) (float64, []ConfigurationWarning) {
	table, ok := cfg.TypologyMultipliers[typology]
	if !ok {
		return 1.0, []ConfigurationWarning{
			configWarning("typology_multipliers", "no multipliers configured for typology %q, using 1.0", typology),
		}
	}
	if subtype != "" {
		if m, ok := table[subtype]; ok {
			return m, nil
		}
	}
	if m, ok := table[SubtypeBase]; ok {
		if subtype == "" {
			return m, nil
		}
		return m, []ConfigurationWarning{
			configWarning("typology_multipliers", "no multiplier for subtype %q of %q, using the typology base", subtype, typology),
		}
	}
	return 1.0, []ConfigurationWarning{
		configWarning("typology_multipliers", "no base multiplier for typology %q, using 1.0", typology),
	}
}

// EstimateHours computes the labor hours for one discipline:
//
//	ceil(area × baseHoursPerM2 × typologyMult × complexityMult × weight × scale)
//
// A missing or non-positive built area is the engine's single hard
// precondition and fails with AREA_REQUIRED.
func EstimateHours(cfg Configuration, attrs ExtractedAttributes, d entities.Discipline) (int, []ConfigurationWarning, error) {
	if attrs.BuiltArea == nil || *attrs.BuiltArea <= 0 {
		return 0, nil, newValidationError(CodeAreaRequired, "built area is required to estimate hours")
	}
	area := *attrs.BuiltArea

	var warnings []ConfigurationWarning

	params, ok := cfg.ComplexityParams[attrs.Complexity]
	if !ok {
		params = DefaultConfiguration().ComplexityParams[attrs.Complexity]
		warnings = append(warnings, configWarning("complexity_params",
			"no params configured for complexity %q, using stock values", attrs.Complexity))
	}

	typMult, w := typologyMultiplier(cfg, attrs.Typology, attrs.Subtype)
	warnings = append(warnings, w...)

	raw := area *
		params.BaseHoursPerM2 *
		typMult *
		params.Multiplier *
		disciplineWeight(d) *
		scaleFactor(area)

	return roundUp(raw), warnings, nil
}
