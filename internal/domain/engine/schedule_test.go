package engine

import (
	"testing"

	"arquitetura_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertContiguous(t *testing.T, s entities.Schedule) {
	t.Helper()
	start := 0
	for _, e := range s.Etapas {
		assert.Equal(t, start, e.StartWeek, "etapa %s start", e.Code)
		assert.Equal(t, e.StartWeek+e.DurationWeeks, e.EndWeek, "etapa %s end", e.Code)
		assert.GreaterOrEqual(t, e.DurationWeeks, 1, "etapa %s duration", e.Code)
		start = e.EndWeek
	}
	assert.Equal(t, s.TotalWeeks, start)
}

func TestBuildSchedule(t *testing.T) {
	disciplines := []entities.Discipline{entities.DisciplineArquitetura}

	t.Run("small project hits the eight week floor", func(t *testing.T) {
		// sqrt(120)/5 × 0.8 ≈ 1.75 weeks, clamped to 8.
		s := BuildSchedule(120, entities.ComplexityBaixa, disciplines)
		assert.Equal(t, 8, s.TotalWeeks)
		require.Len(t, s.Etapas, 4)
		assert.Equal(t, []string{"LV", "EP", "AP", "PE"}, []string{
			s.Etapas[0].Code, s.Etapas[1].Code, s.Etapas[2].Code, s.Etapas[3].Code,
		})
		assertContiguous(t, s)
	})

	t.Run("executive project absorbs the rounding remainder", func(t *testing.T) {
		// sqrt(2500)/5 × 1.0 = 10 weeks: LV 1, EP 2, AP 2, PE 5.
		s := BuildSchedule(2500, entities.ComplexityMedia, disciplines)
		assert.Equal(t, 10, s.TotalWeeks)
		assert.Equal(t, 1, s.Etapas[0].DurationWeeks)
		assert.Equal(t, 2, s.Etapas[1].DurationWeeks)
		assert.Equal(t, 2, s.Etapas[2].DurationWeeks)
		assert.Equal(t, 5, s.Etapas[3].DurationWeeks)
		assertContiguous(t, s)
	})

	t.Run("complexity stretches the timeline", func(t *testing.T) {
		base := BuildSchedule(10000, entities.ComplexityMedia, disciplines)
		stretched := BuildSchedule(10000, entities.ComplexityMuitoAlta, disciplines)
		assert.Greater(t, stretched.TotalWeeks, base.TotalWeeks)
		assertContiguous(t, stretched)
	})

	t.Run("unknown complexity behaves as medium", func(t *testing.T) {
		s := BuildSchedule(2500, entities.Complexity("extrema"), disciplines)
		assert.Equal(t, 10, s.TotalWeeks)
	})

	t.Run("every phase carries the full discipline list", func(t *testing.T) {
		all := []entities.Discipline{
			entities.DisciplineArquitetura,
			entities.DisciplineEstrutural,
			entities.DisciplineEletrica,
		}
		s := BuildSchedule(500, entities.ComplexityMedia, all)
		for _, e := range s.Etapas {
			assert.Equal(t, all, e.Disciplines)
		}
	})
}

func TestEtapaPercent(t *testing.T) {
	assert.Equal(t, 0.10, EtapaPercent("LV"))
	assert.Equal(t, 0.25, EtapaPercent("EP"))
	assert.Equal(t, 0.25, EtapaPercent("AP"))
	assert.Equal(t, 0.40, EtapaPercent("PE"))
	assert.Equal(t, 0.0, EtapaPercent("XX"))
}

func TestComposeFinancials(t *testing.T) {
	cfg := DefaultConfiguration()
	estimates := []entities.DisciplineEstimate{
		{Discipline: entities.DisciplineArquitetura, TotalValue: 700},
		{Discipline: entities.DisciplineEstrutural, TotalValue: 300},
	}

	comp := ComposeFinancials(cfg, estimates)
	assert.InDelta(t, 1000.0, comp.TechnicalCost, 1e-9)
	assert.InDelta(t, 150.0, comp.IndirectCosts, 1e-9)
	assert.InDelta(t, 100.0, comp.Taxes, 1e-9)
	assert.InDelta(t, 50.0, comp.Contingency, 1e-9)
	assert.InDelta(t, 200.0, comp.Profit, 1e-9)
	assert.InDelta(t, 1500.0, comp.Total, 1e-9)

	empty := ComposeFinancials(cfg, nil)
	assert.Zero(t, empty.Total)
}
