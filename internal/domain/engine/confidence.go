package engine

// Confidence weights. Each signal contributes its full weight only when the
// field was actually resolved, not defaulted.
const (
	weightArea        = 0.25
	weightTypology    = 0.25
	weightComplexity  = 0.20
	weightDisciplines = 0.30
)

// ScoreConfidence computes the weighted completeness of an extraction.
// Advisory only: a low score never blocks calculation, it is surfaced to the
// caller for UX and triage.
func ScoreConfidence(attrs ExtractedAttributes, disciplineCount int) float64 {
	score := 0.0
	if attrs.BuiltArea != nil {
		score += weightArea
	}
	if attrs.TypologyResolved {
		score += weightTypology
	}
	if attrs.ComplexityResolved {
		score += weightComplexity
	}
	if disciplineCount > 0 {
		score += weightDisciplines
	}
	return score
}
