package engine

import (
	"testing"

	"arquitetura_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestResolveDisciplines(t *testing.T) {
	t.Run("residential base set", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyResidencial, "casa de 120 m²")
		assert.Equal(t, []entities.Discipline{
			entities.DisciplineArquitetura,
			entities.DisciplineEstrutural,
			entities.DisciplineEletrica,
			entities.DisciplineHidraulica,
		}, out)
	})

	t.Run("commercial adds hvac", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyComercial, "loja no centro")
		assert.Contains(t, out, entities.DisciplineHVAC)
		assert.Equal(t, entities.DisciplineArquitetura, out[0])
	})

	t.Run("institutional adds hvac and security", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyInstitucional, "hospital")
		assert.Contains(t, out, entities.DisciplineHVAC)
		assert.Contains(t, out, entities.DisciplineSeguranca)
	})

	t.Run("keyword triggers landscaping", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyResidencial, "casa com jardim amplo")
		assert.Equal(t, entities.DisciplinePaisagismo, out[len(out)-1])
	})

	t.Run("keyword triggers interiors", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyResidencial, "apartamento com projeto de decoração")
		assert.Contains(t, out, entities.DisciplineInteriores)
	})

	t.Run("unknown typology falls back to the residential base", func(t *testing.T) {
		out := ResolveDisciplines(entities.Typology("naval"), "")
		assert.Equal(t, baseDisciplines[entities.TypologyResidencial], out)
	})

	t.Run("no duplicates when trigger and base overlap", func(t *testing.T) {
		out := ResolveDisciplines(entities.TypologyIndustrial, "galpão com jardim")
		seen := map[entities.Discipline]int{}
		for _, d := range out {
			seen[d]++
		}
		for d, n := range seen {
			assert.Equal(t, 1, n, "discipline %s repeated", d)
		}
	})
}
