package interfaces

import (
	"context"

	"arquitetura_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The budget-service must be able to:
//   - persist a calculated budget aggregate
//   - fetch a budget by its ID or human-readable code
//   - list every budget version produced for a briefing
//   - move a budget through its status workflow

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByCode(ctx context.Context, code string) (entities.Budget, error)
	ListByBriefingID(ctx context.Context, briefingID string) ([]entities.Budget, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
}
