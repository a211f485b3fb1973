package interfaces

import (
	"context"

	"arquitetura_xpto/internal/domain/entities"
)

// IBriefingRepository abstracts DynamoDB persistence for Briefing.

type IBriefingRepository interface {
	Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error)
	GetByID(ctx context.Context, id string) (entities.Briefing, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BriefingStatus) (entities.Briefing, error)
}
