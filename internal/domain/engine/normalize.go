package engine

import (
	"sort"
	"strings"

	"arquitetura_xpto/internal/domain/entities"
)

// NormalizeBriefing merges every textual field of the briefing into one
// lowercase corpus for pattern matching. Structured answer values are
// appended in key order so the corpus is stable across runs.
func NormalizeBriefing(b entities.Briefing) string {
	parts := make([]string, 0, 4+len(b.StructuredAnswers))
	parts = append(parts, b.ProjectName, b.Description, b.Objectives, b.BudgetHint)

	keys := make([]string, 0, len(b.StructuredAnswers))
	for k := range b.StructuredAnswers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, b.StructuredAnswers[k])
	}

	joined := strings.Join(parts, "\n")
	return strings.ToLower(strings.Join(strings.Fields(joined), " "))
}
