package engine

import "arquitetura_xpto/internal/domain/entities"

// baseDisciplines maps a typology to the disciplines every project of that
// kind carries. Architecture is always first; the resolver preserves order.
var baseDisciplines = map[entities.Typology][]entities.Discipline{
	entities.TypologyResidencial: {
		entities.DisciplineArquitetura,
		entities.DisciplineEstrutural,
		entities.DisciplineEletrica,
		entities.DisciplineHidraulica,
	},
	entities.TypologyComercial: {
		entities.DisciplineArquitetura,
		entities.DisciplineEstrutural,
		entities.DisciplineEletrica,
		entities.DisciplineHidraulica,
		entities.DisciplineHVAC,
	},
	entities.TypologyIndustrial: {
		entities.DisciplineArquitetura,
		entities.DisciplineEstrutural,
		entities.DisciplineEletrica,
		entities.DisciplineHidraulica,
		entities.DisciplineSistemasEspeciais,
	},
	entities.TypologyInstitucional: {
		entities.DisciplineArquitetura,
		entities.DisciplineEstrutural,
		entities.DisciplineEletrica,
		entities.DisciplineHidraulica,
		entities.DisciplineHVAC,
		entities.DisciplineSeguranca,
	},
}

// keyword-triggered additions on top of the typology base set.
var disciplineTriggers = []struct {
	discipline entities.Discipline
	keywords   []string
}{
	{entities.DisciplinePaisagismo, []string{"paisagismo", "jardim", "jardins", "landscaping", "garden"}},
	{entities.DisciplineInteriores, []string{"interiores", "decoração", "decoracao", "mobiliário", "mobiliario", "interior design"}},
}

// ResolveDisciplines returns the ordered, de-duplicated discipline list for a
// typology plus any keyword-triggered additions found in the corpus. The
// result always starts with architecture; an unknown typology still gets the
// residential base set rather than an empty list.
func ResolveDisciplines(typology entities.Typology, corpus string) []entities.Discipline {
	base, ok := baseDisciplines[typology]
	if !ok {
		base = baseDisciplines[entities.TypologyResidencial]
	}

	out := make([]entities.Discipline, 0, len(base)+len(disciplineTriggers))
	seen := make(map[entities.Discipline]bool, len(base)+len(disciplineTriggers))
	for _, d := range base {
		if !seen[d] {
			out = append(out, d)
			seen[d] = true
		}
	}

	for _, trigger := range disciplineTriggers {
		if seen[trigger.discipline] {
			continue
		}
		for _, kw := range trigger.keywords {
			if hasHit(corpus, kw) {
				out = append(out, trigger.discipline)
				seen[trigger.discipline] = true
				break
			}
		}
	}

	return out
}
