package engine

import (
	"testing"

	"arquitetura_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrsFor(area float64, typology entities.Typology, subtype string, complexity entities.Complexity) ExtractedAttributes {
	return ExtractedAttributes{
		BuiltArea:  &area,
		Typology:   typology,
		Subtype:    subtype,
		Complexity: complexity,
	}
}

func TestEstimateHours(t *testing.T) {
	cfg := DefaultConfiguration()

	t.Run("architecture on a small low complexity house", func(t *testing.T) {
		// 120 × 0.5 × 1.0 × 0.95 × 1.0 × 1.0 = 57. The exact-boundary product
		// must not pick up an extra hour from float noise.
		attrs := attrsFor(120, entities.TypologyResidencial, "casa", entities.ComplexityBaixa)
		hours, warnings, err := EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, 57, hours)
	})

	t.Run("structural weight applied", func(t *testing.T) {
		// 200 × 0.6 × 1.1 × 1.0 × 0.7 = 92.4 → 93.
		attrs := attrsFor(200, entities.TypologyResidencial, "apartamento", entities.ComplexityMedia)
		hours, _, err := EstimateHours(cfg, attrs, entities.DisciplineEstrutural)
		require.NoError(t, err)
		assert.Equal(t, 93, hours)
	})

	t.Run("missing area is a hard error", func(t *testing.T) {
		attrs := ExtractedAttributes{Typology: entities.TypologyResidencial, Complexity: entities.ComplexityMedia}
		_, _, err := EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		require.Error(t, err)
		assert.True(t, IsValidation(err, CodeAreaRequired))

		zero := 0.0
		attrs.BuiltArea = &zero
		_, _, err = EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		assert.True(t, IsValidation(err, CodeAreaRequired))
	})

	t.Run("unknown subtype falls back to the typology base with a warning", func(t *testing.T) {
		attrs := attrsFor(100, entities.TypologyComercial, "quiosque", entities.ComplexityMedia)
		hours, warnings, err := EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "typology_multipliers", warnings[0].Field)
		// 100 × 0.6 × 1.05 × 1.0 × 1.0 = 63.
		assert.Equal(t, 63, hours)
	})

	t.Run("empty subtype uses the base without warning", func(t *testing.T) {
		attrs := attrsFor(100, entities.TypologyComercial, "", entities.ComplexityMedia)
		hours, warnings, err := EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, 63, hours)
	})

	t.Run("unknown typology multiplies by one with a warning", func(t *testing.T) {
		attrs := attrsFor(100, entities.Typology("naval"), "", entities.ComplexityMedia)
		hours, warnings, err := EstimateHours(cfg, attrs, entities.DisciplineArquitetura)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, 60, hours)
	})

	t.Run("unlisted discipline uses the default weight", func(t *testing.T) {
		// hvac has no explicit weight entry: 100 × 0.6 × 1.0 × 1.0 × 0.5 = 30.
		attrs := attrsFor(100, entities.TypologyResidencial, "casa", entities.ComplexityMedia)
		hours, _, err := EstimateHours(cfg, attrs, entities.DisciplineHVAC)
		require.NoError(t, err)
		assert.Equal(t, 30, hours)
	})
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 1.0, scaleFactor(1000))
	assert.Equal(t, 0.9, scaleFactor(1000.5))
	assert.Equal(t, 0.9, scaleFactor(2000))
	assert.Equal(t, 0.8, scaleFactor(2500))
	assert.Equal(t, 0.8, scaleFactor(5000))
	assert.Equal(t, 0.7, scaleFactor(12000))
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 57, roundUp(57.0))
	assert.Equal(t, 57, roundUp(60*0.95)) // 57.000000000000007 in float64
	assert.Equal(t, 58, roundUp(57.01))
	assert.Equal(t, 2, roundUp(20*0.1)) // 2.0000000000000004 in float64
	assert.Equal(t, 0, roundUp(0))
}

func TestDistributeTeam(t *testing.T) {
	t.Run("senior skew for architecture", func(t *testing.T) {
		team := DistributeTeam(entities.DisciplineArquitetura, 100)
		assert.Equal(t, entities.TeamDistribution{Senior: 30, Pleno: 40, Junior: 20, Estagiario: 10}, team)
		assert.Equal(t, 100, team.Total())
	})

	t.Run("junior skew for electrical", func(t *testing.T) {
		team := DistributeTeam(entities.DisciplineEletrica, 50)
		assert.Equal(t, entities.TeamDistribution{Senior: 10, Pleno: 15, Junior: 15, Estagiario: 10}, team)
	})

	t.Run("rounding slack stays within one hour per tier", func(t *testing.T) {
		for _, hours := range []int{1, 7, 57, 93, 101, 144} {
			team := DistributeTeam(entities.DisciplineArquitetura, hours)
			assert.GreaterOrEqual(t, team.Total(), hours)
			assert.LessOrEqual(t, team.Total(), hours+3)
		}
	})
}

func TestResolveRate(t *testing.T) {
	cfg := DefaultConfiguration()

	t.Run("weighted average of the team mix", func(t *testing.T) {
		team := entities.TeamDistribution{Senior: 30, Pleno: 40, Junior: 20, Estagiario: 10}
		rate, warnings := ResolveRate(cfg, entities.DisciplineArquitetura, team)
		assert.Empty(t, warnings)
		// (30×180 + 40×120 + 20×80 + 10×40) / 100 = 122.
		assert.InDelta(t, 122.0, rate, 1e-9)
	})

	t.Run("missing discipline row falls back with a warning", func(t *testing.T) {
		custom := DefaultConfiguration()
		delete(custom.HourlyRates, entities.DisciplinePaisagismo)
		team := entities.TeamDistribution{Senior: 10, Pleno: 10, Junior: 10, Estagiario: 10}
		rate, warnings := ResolveRate(custom, entities.DisciplinePaisagismo, team)
		require.Len(t, warnings, 1)
		assert.Equal(t, "hourly_rates", warnings[0].Field)
		// (150 + 100 + 70 + 40) / 4 = 90.
		assert.InDelta(t, 90.0, rate, 1e-9)
	})

	t.Run("zero hours yields zero rate", func(t *testing.T) {
		rate, _ := ResolveRate(cfg, entities.DisciplineArquitetura, entities.TeamDistribution{})
		assert.Zero(t, rate)
	})
}
