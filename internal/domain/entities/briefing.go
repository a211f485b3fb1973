package entities

import "time"

// BriefingStatus tracks how far a client intake record has progressed.
//
// Domain notes:
//   - The briefing is filled by the client (free text + optional structured
//     answers) and is the input for budget calculation.
//   - Calculation never mutates the briefing; a recalculation after the client
//     edits answers produces a brand-new budget.

type BriefingStatus string

const (
	BriefingStatusAberto    BriefingStatus = "aberto"
	BriefingStatusCalculado BriefingStatus = "calculado"
	BriefingStatusArquivado BriefingStatus = "arquivado"
)

// Briefing is the client intake record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Text fields are free-form; StructuredAnswers carries the questionnaire
// key/value pairs when the client used the guided form instead of free text.
type Briefing struct {
	ID                string            `json:"id"`
	OfficeID          string            `json:"office_id"`
	ProjectName       string            `json:"project_name"`
	Description       string            `json:"description"`
	Objectives        string            `json:"objectives"`
	BudgetHint        string            `json:"budget_hint"`
	StructuredAnswers map[string]string `json:"structured_answers,omitempty"`
	Status            BriefingStatus    `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
