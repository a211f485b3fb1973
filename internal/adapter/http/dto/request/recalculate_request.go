package request

import "strings"

// RecalculateRequest points at an existing briefing whose answers changed.
type RecalculateRequest struct {
	BriefingID string `json:"briefing_id" binding:"required"`
}

func (r RecalculateRequest) ResolveBriefingID() string {
	return strings.TrimSpace(r.BriefingID)
}
