package response

import (
	"time"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"
)

type TeamDistributionResponse struct {
	Senior     int `json:"senior"`
	Pleno      int `json:"pleno"`
	Junior     int `json:"junior"`
	Estagiario int `json:"estagiario"`
}

type PhaseShareResponse struct {
	Phase        string  `json:"phase"`
	HoursPercent float64 `json:"hours_percent"`
	Hours        float64 `json:"hours"`
	Value        float64 `json:"value"`
}

type DisciplineEstimateResponse struct {
	Discipline       string                   `json:"discipline"`
	EstimatedHours   int                      `json:"estimated_hours"`
	HourlyRate       float64                  `json:"hourly_rate"`
	TotalValue       float64                  `json:"total_value"`
	PhaseBreakdown   []PhaseShareResponse     `json:"phase_breakdown"`
	TeamDistribution TeamDistributionResponse `json:"team_distribution"`
}

type FinancialCompositionResponse struct {
	TechnicalCost float64 `json:"technical_cost"`
	IndirectCosts float64 `json:"indirect_costs"`
	Taxes         float64 `json:"taxes"`
	Contingency   float64 `json:"contingency"`
	Profit        float64 `json:"profit"`
	Total         float64 `json:"total"`
}

type EtapaResponse struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	StartWeek     int      `json:"start_week"`
	DurationWeeks int      `json:"duration_weeks"`
	EndWeek       int      `json:"end_week"`
	Disciplines   []string `json:"disciplines"`
}

type ScheduleResponse struct {
	TotalWeeks int             `json:"total_weeks"`
	Etapas     []EtapaResponse `json:"etapas"`
}

type BudgetResponse struct {
	BudgetID    string                       `json:"budget_id"`
	ID          string                       `json:"id"`
	Code        string                       `json:"code"`
	BriefingID  string                       `json:"briefing_id"`
	OfficeID    string                       `json:"office_id"`
	Name        string                       `json:"name"`
	Status      string                       `json:"status"`
	BuiltArea   float64                      `json:"built_area"`
	Typology    string                       `json:"typology"`
	Subtype     string                       `json:"subtype,omitempty"`
	Complexity  string                       `json:"complexity"`
	Confidence  float64                      `json:"confidence"`
	TotalValue  float64                      `json:"total_value"`
	ValuePerM2  float64                      `json:"value_per_m2"`
	Disciplines []DisciplineEstimateResponse `json:"disciplines"`
	Financial   FinancialCompositionResponse `json:"financial_composition"`
	Schedule    ScheduleResponse             `json:"schedule"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	disciplines := make([]DisciplineEstimateResponse, 0, len(b.Disciplines))
	for _, d := range b.Disciplines {
		disciplines = append(disciplines, fromDisciplineEstimate(d))
	}

	return BudgetResponse{
		BudgetID:    b.ID,
		ID:          b.ID,
		Code:        b.Code,
		BriefingID:  b.BriefingID,
		OfficeID:    b.OfficeID,
		Name:        b.Name,
		Status:      string(b.Status),
		BuiltArea:   b.BuiltArea,
		Typology:    string(b.Typology),
		Subtype:     b.Subtype,
		Complexity:  string(b.Complexity),
		Confidence:  b.Confidence,
		TotalValue:  b.TotalValue,
		ValuePerM2:  b.ValuePerM2,
		Disciplines: disciplines,
		Financial:   fromFinancial(b.Financial),
		Schedule:    fromSchedule(b.Schedule),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func fromDisciplineEstimate(d entities.DisciplineEstimate) DisciplineEstimateResponse {
	phases := make([]PhaseShareResponse, 0, len(d.PhaseBreakdown))
	for _, p := range d.PhaseBreakdown {
		phases = append(phases, PhaseShareResponse{
			Phase:        p.Phase,
			HoursPercent: p.HoursPercent,
			Hours:        p.Hours,
			Value:        p.Value,
		})
	}
	return DisciplineEstimateResponse{
		Discipline:     string(d.Discipline),
		EstimatedHours: d.EstimatedHours,
		HourlyRate:     d.HourlyRate,
		TotalValue:     d.TotalValue,
		PhaseBreakdown: phases,
		TeamDistribution: TeamDistributionResponse{
			Senior:     d.TeamDistribution.Senior,
			Pleno:      d.TeamDistribution.Pleno,
			Junior:     d.TeamDistribution.Junior,
			Estagiario: d.TeamDistribution.Estagiario,
		},
	}
}

func fromFinancial(f entities.FinancialComposition) FinancialCompositionResponse {
	return FinancialCompositionResponse{
		TechnicalCost: f.TechnicalCost,
		IndirectCosts: f.IndirectCosts,
		Taxes:         f.Taxes,
		Contingency:   f.Contingency,
		Profit:        f.Profit,
		Total:         f.Total,
	}
}

func fromSchedule(s entities.Schedule) ScheduleResponse {
	etapas := make([]EtapaResponse, 0, len(s.Etapas))
	for _, e := range s.Etapas {
		disciplines := make([]string, 0, len(e.Disciplines))
		for _, d := range e.Disciplines {
			disciplines = append(disciplines, string(d))
		}
		etapas = append(etapas, EtapaResponse{
			Name:          e.Name,
			Code:          e.Code,
			StartWeek:     e.StartWeek,
			DurationWeeks: e.DurationWeeks,
			EndWeek:       e.EndWeek,
			Disciplines:   disciplines,
		})
	}
	return ScheduleResponse{TotalWeeks: s.TotalWeeks, Etapas: etapas}
}

// ConfigurationWarningResponse surfaces engine fallbacks to the client.
type ConfigurationWarningResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ExtractedAttributesResponse echoes what the engine understood from the
// briefing, so the office can review before sending to the client.
type ExtractedAttributesResponse struct {
	BuiltArea          *float64 `json:"built_area,omitempty"`
	LandArea           *float64 `json:"land_area,omitempty"`
	Typology           string   `json:"typology"`
	TypologyResolved   bool     `json:"typology_resolved"`
	Subtype            string   `json:"subtype,omitempty"`
	Complexity         string   `json:"complexity"`
	ComplexityResolved bool     `json:"complexity_resolved"`
	SpecialFeatures    []string `json:"special_features,omitempty"`
	Confidence         float64  `json:"confidence"`
}

// BudgetCalculationResponse is the full calculation outcome.
type BudgetCalculationResponse struct {
	Budget     BudgetResponse                 `json:"budget"`
	Attributes ExtractedAttributesResponse    `json:"extracted_attributes"`
	Warnings   []ConfigurationWarningResponse `json:"warnings,omitempty"`
}

func FromCalculationResult(r engine.Result) BudgetCalculationResponse {
	warnings := make([]ConfigurationWarningResponse, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		warnings = append(warnings, ConfigurationWarningResponse{Field: w.Field, Message: w.Message})
	}
	if len(warnings) == 0 {
		warnings = nil
	}

	return BudgetCalculationResponse{
		Budget: FromBudget(r.Budget),
		Attributes: ExtractedAttributesResponse{
			BuiltArea:          r.Attributes.BuiltArea,
			LandArea:           r.Attributes.LandArea,
			Typology:           string(r.Attributes.Typology),
			TypologyResolved:   r.Attributes.TypologyResolved,
			Subtype:            r.Attributes.Subtype,
			Complexity:         string(r.Attributes.Complexity),
			ComplexityResolved: r.Attributes.ComplexityResolved,
			SpecialFeatures:    r.Attributes.SpecialFeatures,
			Confidence:         r.Attributes.Confidence,
		},
		Warnings: warnings,
	}
}
