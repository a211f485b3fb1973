package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - The calculation engine only ever produces "rascunho".
//   - Transitions beyond draft are driven by the office workflow:
//     rascunho -> enviado -> aprovado|rejeitado.

type BudgetStatus string

const (
	BudgetStatusRascunho  BudgetStatus = "rascunho"
	BudgetStatusEnviado   BudgetStatus = "enviado"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
)

// Typology is the building category resolved from the briefing.
type Typology string

const (
	TypologyResidencial   Typology = "residencial"
	TypologyComercial     Typology = "comercial"
	TypologyIndustrial    Typology = "industrial"
	TypologyInstitucional Typology = "institucional"
)

// Complexity is the coarse tier scaling both hours and value.
type Complexity string

const (
	ComplexityBaixa     Complexity = "baixa"
	ComplexityMedia     Complexity = "media"
	ComplexityAlta      Complexity = "alta"
	ComplexityMuitoAlta Complexity = "muito_alta"
)

// Discipline is an engineering specialty contributing hours to a budget.
type Discipline string

const (
	DisciplineArquitetura       Discipline = "arquitetura"
	DisciplineEstrutural        Discipline = "estrutural"
	DisciplineEletrica          Discipline = "eletrica"
	DisciplineHidraulica        Discipline = "hidraulica"
	DisciplineHVAC              Discipline = "hvac"
	DisciplineSistemasEspeciais Discipline = "sistemas_especiais"
	DisciplineSeguranca         Discipline = "seguranca"
	DisciplinePaisagismo        Discipline = "paisagismo"
	DisciplineInteriores        Discipline = "interiores"
)

// Tier is a seniority staffing level with its own hourly rate.
type Tier string

const (
	TierSenior     Tier = "senior"
	TierPleno      Tier = "pleno"
	TierJunior     Tier = "junior"
	TierEstagiario Tier = "estagiario"
)

// TeamDistribution holds per-tier hour counts for one discipline.
//
// The tier sum may exceed the discipline's estimated hours by up to 3 because
// each tier is rounded up independently. Bounded slack, kept as-is.
type TeamDistribution struct {
	Senior     int `json:"senior"`
	Pleno      int `json:"pleno"`
	Junior     int `json:"junior"`
	Estagiario int `json:"estagiario"`
}

// Total returns the summed tier hours (>= the discipline estimate).
func (d TeamDistribution) Total() int {
	return d.Senior + d.Pleno + d.Junior + d.Estagiario
}

// PhaseShare is one schedule phase's slice of a discipline estimate.
type PhaseShare struct {
	Phase        string  `json:"phase"`
	HoursPercent float64 `json:"hours_percent"`
	Hours        float64 `json:"hours"`
	Value        float64 `json:"value"`
}

// DisciplineEstimate is the per-discipline hour/value breakdown.
type DisciplineEstimate struct {
	Discipline       Discipline       `json:"discipline"`
	EstimatedHours   int              `json:"estimated_hours"`
	HourlyRate       float64          `json:"hourly_rate"`
	TotalValue       float64          `json:"total_value"`
	PhaseBreakdown   []PhaseShare     `json:"phase_breakdown"`
	TeamDistribution TeamDistribution `json:"team_distribution"`
}

// FinancialComposition is the full financial breakdown of a budget.
//
// Invariant: Total == TechnicalCost+IndirectCosts+Taxes+Contingency+Profit.
type FinancialComposition struct {
	TechnicalCost float64 `json:"technical_cost"`
	IndirectCosts float64 `json:"indirect_costs"`
	Taxes         float64 `json:"taxes"`
	Contingency   float64 `json:"contingency"`
	Profit        float64 `json:"profit"`
	Total         float64 `json:"total"`
}

// Etapa is one schedule phase.
//
// Invariant: etapas are contiguous and non-overlapping,
// EndWeek == StartWeek+DurationWeeks, and the last etapa ends at TotalWeeks.
type Etapa struct {
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	StartWeek     int          `json:"start_week"`
	DurationWeeks int          `json:"duration_weeks"`
	EndWeek       int          `json:"end_week"`
	Disciplines   []Discipline `json:"disciplines"`
}

// Schedule is the phased project timeline.
type Schedule struct {
	TotalWeeks int     `json:"total_weeks"`
	Etapas     []Etapa `json:"etapas"`
}

// Budget is the aggregate produced by one calculation run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (briefing_id-index): briefing_id
//   - GSI2 (code-index): code
//
// A budget is created once per calculation and never edited in place; a
// "regeneration" is a brand-new Budget with a new code.
type Budget struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	BriefingID  string               `json:"briefing_id"`
	OfficeID    string               `json:"office_id"`
	Name        string               `json:"name"`
	Status      BudgetStatus         `json:"status"`
	BuiltArea   float64              `json:"built_area"`
	Typology    Typology             `json:"typology"`
	Subtype     string               `json:"subtype,omitempty"`
	Complexity  Complexity           `json:"complexity"`
	Confidence  float64              `json:"confidence"`
	TotalValue  float64              `json:"total_value"`
	ValuePerM2  float64              `json:"value_per_m2"`
	Disciplines []DisciplineEstimate `json:"disciplines"`
	Financial   FinancialComposition `json:"financial_composition"`
	Schedule    Schedule             `json:"schedule"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
