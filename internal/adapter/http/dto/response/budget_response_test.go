package response

import (
	"testing"
	"time"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"
)

func sampleBudget() entities.Budget {
	return entities.Budget{
		ID:         "b-1",
		Code:       "ORC-2609-001",
		BriefingID: "brief-1",
		OfficeID:   "office-1",
		Name:       "Casa Nova",
		Status:     entities.BudgetStatusRascunho,
		BuiltArea:  120,
		Typology:   entities.TypologyResidencial,
		Subtype:    "casa",
		Complexity: entities.ComplexityBaixa,
		Confidence: 0.75,
		TotalValue: 10000,
		ValuePerM2: 83.33,
		Disciplines: []entities.DisciplineEstimate{{
			Discipline:     entities.DisciplineArquitetura,
			EstimatedHours: 57,
			HourlyRate:     122,
			TotalValue:     6954,
			PhaseBreakdown: []entities.PhaseShare{
				{Phase: "LV", HoursPercent: 0.10, Hours: 5.7, Value: 695.4},
			},
			TeamDistribution: entities.TeamDistribution{Senior: 18, Pleno: 23, Junior: 12, Estagiario: 6},
		}},
		Financial: entities.FinancialComposition{TechnicalCost: 6954, Total: 10000},
		Schedule: entities.Schedule{
			TotalWeeks: 8,
			Etapas: []entities.Etapa{
				{Name: "Levantamento", Code: "LV", StartWeek: 0, DurationWeeks: 1, EndWeek: 1,
					Disciplines: []entities.Discipline{entities.DisciplineArquitetura}},
			},
		},
		CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFromBudget(t *testing.T) {
	r := FromBudget(sampleBudget())

	if r.BudgetID != "b-1" || r.ID != "b-1" {
		t.Fatalf("expected duplicated id fields, got %+v", r)
	}
	if r.Code != "ORC-2609-001" || r.Status != "rascunho" || r.Typology != "residencial" {
		t.Fatalf("unexpected mapping: %+v", r)
	}
	if len(r.Disciplines) != 1 || r.Disciplines[0].Discipline != "arquitetura" {
		t.Fatalf("unexpected disciplines: %+v", r.Disciplines)
	}
	if r.Disciplines[0].TeamDistribution.Senior != 18 {
		t.Fatalf("unexpected team mapping: %+v", r.Disciplines[0].TeamDistribution)
	}
	if len(r.Schedule.Etapas) != 1 || r.Schedule.Etapas[0].Disciplines[0] != "arquitetura" {
		t.Fatalf("unexpected schedule mapping: %+v", r.Schedule)
	}
}

func TestFromCalculationResult(t *testing.T) {
	area := 120.0
	res := engine.Result{
		Budget: sampleBudget(),
		Attributes: engine.ExtractedAttributes{
			BuiltArea:        &area,
			Typology:         entities.TypologyResidencial,
			TypologyResolved: true,
			Complexity:       entities.ComplexityBaixa,
			SpecialFeatures:  []string{"piscina"},
			Confidence:       0.75,
		},
		Warnings: []engine.ConfigurationWarning{{Field: "hourly_rates", Message: "fallback"}},
	}

	r := FromCalculationResult(res)
	if r.Budget.ID != "b-1" {
		t.Fatalf("unexpected budget: %+v", r.Budget)
	}
	if r.Attributes.BuiltArea == nil || *r.Attributes.BuiltArea != 120 {
		t.Fatalf("unexpected attributes: %+v", r.Attributes)
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Field != "hourly_rates" {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}

	res.Warnings = nil
	if got := FromCalculationResult(res); got.Warnings != nil {
		t.Fatalf("expected nil warnings, got %+v", got.Warnings)
	}
}
