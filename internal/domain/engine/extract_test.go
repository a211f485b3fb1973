package engine

import (
	"testing"

	"arquitetura_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func briefingWithText(description string) entities.Briefing {
	return entities.Briefing{ProjectName: "Projeto Teste", Description: description}
}

func TestExtractAttributes_BuiltArea(t *testing.T) {
	t.Run("explicit built area phrase", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("Casa com área construída de 250 m² em terreno plano"))
		require.NotNil(t, attrs.BuiltArea)
		assert.Equal(t, 250.0, *attrs.BuiltArea)
	})

	t.Run("unit before qualifier", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("serão 180 m² construídos no total"))
		require.NotNil(t, attrs.BuiltArea)
		assert.Equal(t, 180.0, *attrs.BuiltArea)
	})

	t.Run("generic number with unit", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("uma loja de 95 m2 no centro"))
		require.NotNil(t, attrs.BuiltArea)
		assert.Equal(t, 95.0, *attrs.BuiltArea)
	})

	t.Run("comma decimal", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("área construída de 120,5 m²"))
		require.NotNil(t, attrs.BuiltArea)
		assert.Equal(t, 120.5, *attrs.BuiltArea)
	})

	t.Run("no area present", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("uma casa confortável para a família"))
		assert.Nil(t, attrs.BuiltArea)
	})

	t.Run("out of range treated as not found", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("área construída de 100000.0001 m²"))
		assert.Nil(t, attrs.BuiltArea)
	})

	t.Run("land area separated from built area", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("área construída de 300 m² em terreno de 800 m²"))
		require.NotNil(t, attrs.BuiltArea)
		require.NotNil(t, attrs.LandArea)
		assert.Equal(t, 300.0, *attrs.BuiltArea)
		assert.Equal(t, 800.0, *attrs.LandArea)
	})
}

func TestExtractAttributes_StructuredAnswers(t *testing.T) {
	b := entities.Briefing{
		ProjectName: "Reforma",
		Description: "texto livre menciona 999 m²",
		StructuredAnswers: map[string]string{
			"area_construida": "420",
			"tipologia":       "comercial",
			"complexidade":    "alta",
			"subtipo":         "restaurante",
		},
	}

	attrs := ExtractAttributes(b)
	require.NotNil(t, attrs.BuiltArea)
	assert.Equal(t, 420.0, *attrs.BuiltArea)
	assert.Equal(t, entities.TypologyComercial, attrs.Typology)
	assert.True(t, attrs.TypologyResolved)
	assert.Equal(t, entities.ComplexityAlta, attrs.Complexity)
	assert.True(t, attrs.ComplexityResolved)
	assert.Equal(t, "restaurante", attrs.Subtype)
}

func TestExtractAttributes_Typology(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected entities.Typology
		resolved bool
	}{
		{"residential keywords", "sobrado para moradia da família", entities.TypologyResidencial, true},
		{"commercial keywords", "escritório comercial com recepção", entities.TypologyComercial, true},
		{"industrial keywords", "galpão para a fábrica", entities.TypologyIndustrial, true},
		{"institutional keywords", "escola infantil com creche", entities.TypologyInstitucional, true},
		{"zero hits defaults to residential", "estrutura nova no terreno", entities.TypologyResidencial, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := ExtractAttributes(briefingWithText(tc.text))
			assert.Equal(t, tc.expected, attrs.Typology)
			assert.Equal(t, tc.resolved, attrs.TypologyResolved)
		})
	}

	t.Run("tie breaks by declaration order", func(t *testing.T) {
		// One residential hit, one commercial hit: residential is declared
		// first and wins.
		attrs := ExtractAttributes(briefingWithText("casa com loja no térreo"))
		assert.Equal(t, entities.TypologyResidencial, attrs.Typology)
		assert.True(t, attrs.TypologyResolved)
	})

	t.Run("substring does not count as a hit", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("guardar o casaco no closet"))
		assert.False(t, attrs.TypologyResolved)
	})
}

func TestExtractAttributes_Complexity(t *testing.T) {
	t.Run("high signal wins", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("casa de alto padrão com acabamento de luxo"))
		assert.Equal(t, entities.ComplexityAlta, attrs.Complexity)
		assert.True(t, attrs.ComplexityResolved)
	})

	t.Run("low signal wins", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("projeto simples e econômico"))
		assert.Equal(t, entities.ComplexityBaixa, attrs.Complexity)
		assert.True(t, attrs.ComplexityResolved)
	})

	t.Run("all zero defaults to medium", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("uma casa para a família"))
		assert.Equal(t, entities.ComplexityMedia, attrs.Complexity)
		assert.False(t, attrs.ComplexityResolved)
	})

	t.Run("tie keeps the neutral default", func(t *testing.T) {
		attrs := ExtractAttributes(briefingWithText("projeto simples com acabamento de luxo"))
		assert.Equal(t, entities.ComplexityMedia, attrs.Complexity)
		assert.False(t, attrs.ComplexityResolved)
	})
}

func TestExtractAttributes_SpecialFeatures(t *testing.T) {
	attrs := ExtractAttributes(briefingWithText(
		"casa com piscina, elevador, energia solar e automação completa"))
	assert.Equal(t, []string{"piscina", "elevador", "energia_solar", "automacao"}, attrs.SpecialFeatures)

	attrs = ExtractAttributes(briefingWithText("apartamento sem extras"))
	assert.Empty(t, attrs.SpecialFeatures)
}

func TestExtractAttributes_Subtype(t *testing.T) {
	attrs := ExtractAttributes(briefingWithText("sobrado de alto padrão"))
	assert.Equal(t, "sobrado", attrs.Subtype)

	attrs = ExtractAttributes(briefingWithText("galpão logístico"))
	assert.Equal(t, "galpao", attrs.Subtype)

	attrs = ExtractAttributes(briefingWithText("residência nova"))
	assert.Equal(t, "", attrs.Subtype)
}

func TestNormalizeBriefing(t *testing.T) {
	b := entities.Briefing{
		ProjectName: "Casa  Nova",
		Description: "Sobrado COM piscina",
		StructuredAnswers: map[string]string{
			"b_chave": "segundo",
			"a_chave": "primeiro",
		},
	}
	corpus := NormalizeBriefing(b)
	assert.Equal(t, "casa nova sobrado com piscina primeiro segundo", corpus)
}

func TestScoreConfidence(t *testing.T) {
	area := 100.0
	full := ExtractedAttributes{
		BuiltArea:          &area,
		TypologyResolved:   true,
		ComplexityResolved: true,
	}
	assert.InDelta(t, 1.0, ScoreConfidence(full, 4), 1e-9)

	empty := ExtractedAttributes{}
	assert.InDelta(t, 0.30, ScoreConfidence(empty, 1), 1e-9)
	assert.InDelta(t, 0.0, ScoreConfidence(empty, 0), 1e-9)

	areaOnly := ExtractedAttributes{BuiltArea: &area}
	assert.InDelta(t, 0.55, ScoreConfidence(areaOnly, 1), 1e-9)
}
