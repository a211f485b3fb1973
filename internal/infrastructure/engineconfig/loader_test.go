package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEmptyPathReturnsStock(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfiguration(), cfg)
}

func TestLoadMergesOverrides(t *testing.T) {
	path := writeConfigFile(t, "params.yaml", `
hourly_rates:
  arquitetura:
    senior: 200
    pleno: 140
    junior: 90
    estagiario: 45
typology_multipliers:
  residencial:
    base: 1.0
    casa: 1.2
defaults:
  profit_margin: 0.25
  tax_rate: 0.12
  indirect_cost_rate: 0.15
  contingency_rate: 0.05
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, engine.TierRates{Senior: 200, Pleno: 140, Junior: 90, Estagiario: 45},
		cfg.HourlyRates[entities.DisciplineArquitetura])

	// Untouched disciplines keep their stock rates.
	stock := engine.DefaultConfiguration()
	assert.Equal(t, stock.HourlyRates[entities.DisciplineEstrutural],
		cfg.HourlyRates[entities.DisciplineEstrutural])

	// The overridden typology table replaces the stock one wholesale.
	assert.Equal(t, map[string]float64{"base": 1.0, "casa": 1.2},
		cfg.TypologyMultipliers[entities.TypologyResidencial])
	assert.Equal(t, stock.TypologyMultipliers[entities.TypologyComercial],
		cfg.TypologyMultipliers[entities.TypologyComercial])

	assert.Equal(t, 0.25, cfg.Defaults.ProfitMargin)
	assert.Equal(t, 0.12, cfg.Defaults.TaxRate)

	// Complexity params untouched when the section is absent.
	assert.Equal(t, stock.ComplexityParams, cfg.ComplexityParams)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "broken.yaml", "hourly_rates: [not, a, map")
	_, err := Load(path)
	assert.Error(t, err)
}
