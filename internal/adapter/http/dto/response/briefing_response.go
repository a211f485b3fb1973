package response

import (
	"time"

	"arquitetura_xpto/internal/domain/entities"
)

type BriefingResponse struct {
	BriefingID        string            `json:"briefing_id"`
	ID                string            `json:"id"`
	OfficeID          string            `json:"office_id"`
	ProjectName       string            `json:"project_name"`
	Description       string            `json:"description"`
	Objectives        string            `json:"objectives"`
	BudgetHint        string            `json:"budget_hint"`
	StructuredAnswers map[string]string `json:"structured_answers,omitempty"`
	Status            string            `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func FromBriefing(b entities.Briefing) BriefingResponse {
	return BriefingResponse{
		BriefingID:        b.ID,
		ID:                b.ID,
		OfficeID:          b.OfficeID,
		ProjectName:       b.ProjectName,
		Description:       b.Description,
		Objectives:        b.Objectives,
		BudgetHint:        b.BudgetHint,
		StructuredAnswers: b.StructuredAnswers,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
