package engine

import (
	"fmt"
	"math"
	"time"

	"arquitetura_xpto/internal/domain/entities"
)

// financialTolerance is the floating-point slack accepted when re-checking
// the composition invariant during assembly.
const financialTolerance = 0.01

// CodeRef carries the externally supplied pieces of the budget code. The
// sequence comes from a counter service and the reference time from the
// caller's clock, so two calls with the same inputs produce the same budget.
type CodeRef struct {
	Sequence string
	IssuedAt time.Time
}

// Code renders the human-readable budget code, e.g. "ORC-2609-042".
func (r CodeRef) Code() string {
	return fmt.Sprintf("ORC-%s-%s", r.IssuedAt.Format("0601"), r.Sequence)
}

// Result is the full outcome of one calculation run.
type Result struct {
	Budget     entities.Budget
	Attributes ExtractedAttributes
	Warnings   []ConfigurationWarning
}

// Calculate runs the whole pipeline against a briefing: normalize, extract,
// resolve disciplines, estimate, price, compose and schedule. It performs no
// I/O and owns no state; identical inputs yield identical output.
func Calculate(b entities.Briefing, cfg Configuration, ref CodeRef) (Result, error) {
	corpus := NormalizeBriefing(b)
	attrs := extractWithCorpus(b, corpus)
	disciplines := ResolveDisciplines(attrs.Typology, corpus)
	attrs.Confidence = ScoreConfidence(attrs, len(disciplines))

	return assemble(b.ProjectName, attrs, disciplines, cfg, ref)
}

// CalculateFromAttributes skips extraction for callers that already hold a
// validated attribute set (e.g. after a manual review step). Unlike
// extraction, the supplied values are checked: a missing typology or an
// empty discipline list is a hard error here.
func CalculateFromAttributes(name string, attrs ExtractedAttributes, disciplines []entities.Discipline, cfg Configuration, ref CodeRef) (Result, error) {
	if attrs.Typology == "" {
		return Result{}, newValidationError(CodeTypologyRequired, "typology is required when bypassing extraction")
	}
	if len(disciplines) == 0 {
		return Result{}, newValidationError(CodeNoDisciplines, "at least one discipline is required")
	}
	attrs.Confidence = ScoreConfidence(attrs, len(disciplines))
	return assemble(name, attrs, disciplines, cfg, ref)
}

func assemble(name string, attrs ExtractedAttributes, disciplines []entities.Discipline, cfg Configuration, ref CodeRef) (Result, error) {
	var warnings []ConfigurationWarning

	estimates := make([]entities.DisciplineEstimate, 0, len(disciplines))
	for _, d := range disciplines {
		hours, w, err := EstimateHours(cfg, attrs, d)
		if err != nil {
			return Result{}, err
		}
		// Multiplier fallbacks repeat per discipline; keep only the first
		// occurrence of each warning.
		warnings = appendNewWarnings(warnings, w)

		team := DistributeTeam(d, hours)
		rate, w := ResolveRate(cfg, d, team)
		warnings = appendNewWarnings(warnings, w)

		value := rate * float64(hours)
		estimates = append(estimates, entities.DisciplineEstimate{
			Discipline:       d,
			EstimatedHours:   hours,
			HourlyRate:       rate,
			TotalValue:       value,
			PhaseBreakdown:   phaseBreakdown(hours, value),
			TeamDistribution: team,
		})
	}

	financial := ComposeFinancials(cfg, estimates)
	schedule := BuildSchedule(*attrs.BuiltArea, attrs.Complexity, disciplines)

	budget := entities.Budget{
		Code:        ref.Code(),
		Name:        name,
		Status:      entities.BudgetStatusRascunho,
		BuiltArea:   *attrs.BuiltArea,
		Typology:    attrs.Typology,
		Subtype:     attrs.Subtype,
		Complexity:  attrs.Complexity,
		Confidence:  attrs.Confidence,
		TotalValue:  financial.Total,
		ValuePerM2:  financial.Total / *attrs.BuiltArea,
		Disciplines: estimates,
		Financial:   financial,
		Schedule:    schedule,
	}

	if err := validateBudget(budget); err != nil {
		return Result{}, err
	}

	return Result{Budget: budget, Attributes: attrs, Warnings: warnings}, nil
}

func phaseBreakdown(hours int, value float64) []entities.PhaseShare {
	shares := make([]entities.PhaseShare, 0, len(etapaSpecs))
	for _, spec := range etapaSpecs {
		shares = append(shares, entities.PhaseShare{
			Phase:        spec.code,
			HoursPercent: spec.percent,
			Hours:        float64(hours) * spec.percent,
			Value:        value * spec.percent,
		})
	}
	return shares
}

func appendNewWarnings(acc, in []ConfigurationWarning) []ConfigurationWarning {
	for _, w := range in {
		dup := false
		for _, have := range acc {
			if have == w {
				dup = true
				break
			}
		}
		if !dup {
			acc = append(acc, w)
		}
	}
	return acc
}

// validateBudget re-checks the cross-cutting invariants before the aggregate
// leaves the engine. Unreachable given correct inputs; kept as a fail-fast
// guard for pipeline regressions.
func validateBudget(b entities.Budget) error {
	if len(b.Disciplines) == 0 || b.Disciplines[0].Discipline != entities.DisciplineArquitetura {
		return newValidationError(CodeNoDisciplines, "discipline list must start with architecture")
	}

	f := b.Financial
	sum := f.TechnicalCost + f.IndirectCosts + f.Taxes + f.Contingency + f.Profit
	if math.Abs(sum-f.Total) > financialTolerance {
		return newValidationError(CodeFinancialMismatch,
			"composition total %.2f does not match the summed parts %.2f", f.Total, sum)
	}

	expectedStart := 0
	for _, e := range b.Schedule.Etapas {
		if e.StartWeek != expectedStart || e.EndWeek != e.StartWeek+e.DurationWeeks {
			return newValidationError(CodeScheduleBroken,
				"etapa %s is not contiguous with its predecessor", e.Code)
		}
		expectedStart = e.EndWeek
	}
	if expectedStart != b.Schedule.TotalWeeks {
		return newValidationError(CodeScheduleBroken,
			"etapas cover %d weeks, schedule declares %d", expectedStart, b.Schedule.TotalWeeks)
	}

	return nil
}
