package request

import (
	"strings"

	"arquitetura_xpto/internal/domain/entities"
)

// BriefingRequest is the intake payload for the "calcula orçamento" route.
//
// Free text carries most of the signal; structured_answers is the guided-form
// alternative and wins over text extraction field by field.

type BriefingRequest struct {
	OfficeID          string            `json:"office_id" binding:"required"`
	ProjectName       string            `json:"project_name" binding:"required"`
	Description       string            `json:"description"`
	Objectives        string            `json:"objectives"`
	BudgetHint        string            `json:"budget_hint"`
	StructuredAnswers map[string]string `json:"structured_answers"`
}

func (r BriefingRequest) ToEntity() entities.Briefing {
	return entities.Briefing{
		OfficeID:          strings.TrimSpace(r.OfficeID),
		ProjectName:       strings.TrimSpace(r.ProjectName),
		Description:       r.Description,
		Objectives:        r.Objectives,
		BudgetHint:        r.BudgetHint,
		StructuredAnswers: r.StructuredAnswers,
	}
}
