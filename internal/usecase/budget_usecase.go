package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrBriefingNotFound  = errors.New("briefing not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrInvalidBudgetCode = errors.New("invalid budget code")
	ErrInvalidBriefingID = errors.New("invalid briefing id")
	ErrBudgetNotDraft    = errors.New("budget is not a draft")
	ErrBudgetNotSent     = errors.New("budget was not sent")
	ErrBriefingArchived  = errors.New("briefing is archived")
)

// IBudgetUseCase exposes the budget lifecycle.
//
// The flow mirrors the office workflow:
//   - "Calcular Orçamento" => CalculateFromBriefing()
//   - "Reenviar para cálculo" após edição => RecalculateFromBriefing()
//   - envio ao cliente e decisão => SendByID() / ApproveByID() / RejectByID()

type IBudgetUseCase interface {
	CalculateFromBriefing(ctx context.Context, briefingID string) (engine.Result, error)
	RecalculateFromBriefing(ctx context.Context, briefingID string) (engine.Result, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByCode(ctx context.Context, code string) (entities.Budget, error)
	ListByBriefingID(ctx context.Context, briefingID string) ([]entities.Budget, error)
	SendByID(ctx context.Context, id string) (entities.Budget, error)
	ApproveByID(ctx context.Context, id string) (entities.Budget, error)
	RejectByID(ctx context.Context, id string) (entities.Budget, error)
}

type BudgetUseCase struct {
	budgets   interfaces.IBudgetRepository
	briefings interfaces.IBriefingRepository
	configs   interfaces.IEngineConfigRepository
	sequence  interfaces.ISequenceProvider
	now       func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	briefings interfaces.IBriefingRepository,
	configs interfaces.IEngineConfigRepository,
	sequence interfaces.ISequenceProvider,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgets:   budgets,
		briefings: briefings,
		configs:   configs,
		sequence:  sequence,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CalculateFromBriefing runs the engine over a briefing and persists the
// resulting draft budget. The office's configuration override is used when
// present; otherwise the stock configuration applies.
func (u *BudgetUseCase) CalculateFromBriefing(ctx context.Context, briefingID string) (engine.Result, error) {
	briefingID = strings.TrimSpace(briefingID)
	if briefingID == "" {
		return engine.Result{}, ErrInvalidBriefingID
	}

	briefing, err := u.briefings.GetByID(ctx, briefingID)
	if err != nil {
		return engine.Result{}, err
	}
	if briefing.ID == "" {
		return engine.Result{}, ErrBriefingNotFound
	}
	if briefing.Status == entities.BriefingStatusArquivado {
		return engine.Result{}, ErrBriefingArchived
	}

	cfg, found, err := u.configs.GetByOfficeID(ctx, briefing.OfficeID)
	if err != nil {
		return engine.Result{}, err
	}
	if !found {
		cfg = engine.DefaultConfiguration()
	}

	now := u.now()
	seq, err := u.sequence.Next(ctx, now)
	if err != nil {
		return engine.Result{}, err
	}

	result, err := engine.Calculate(briefing, cfg, engine.CodeRef{Sequence: seq, IssuedAt: now})
	if err != nil {
		return engine.Result{}, err
	}

	result.Budget.ID = uuid.NewString()
	result.Budget.BriefingID = briefing.ID
	result.Budget.OfficeID = briefing.OfficeID
	result.Budget.CreatedAt = now
	result.Budget.UpdatedAt = now

	stored, err := u.budgets.Create(ctx, result.Budget)
	if err != nil {
		return engine.Result{}, err
	}

	if _, err := u.briefings.UpdateStatusByID(ctx, briefing.ID, entities.BriefingStatusCalculado); err != nil {
		return engine.Result{}, err
	}

	result.Budget = stored
	return result, nil
}

// RecalculateFromBriefing produces a fresh budget for a briefing the client
// has edited. The previous budgets are kept untouched as version history.
func (u *BudgetUseCase) RecalculateFromBriefing(ctx context.Context, briefingID string) (engine.Result, error) {
	return u.CalculateFromBriefing(ctx, briefingID)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) GetByCode(ctx context.Context, code string) (entities.Budget, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Budget{}, ErrInvalidBudgetCode
	}

	b, err := u.budgets.GetByCode(ctx, code)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByBriefingID(ctx context.Context, briefingID string) ([]entities.Budget, error) {
	briefingID = strings.TrimSpace(briefingID)
	if briefingID == "" {
		return nil, ErrInvalidBriefingID
	}
	return u.budgets.ListByBriefingID(ctx, briefingID)
}

// SendByID moves a draft to "enviado". Only drafts can be sent.
func (u *BudgetUseCase) SendByID(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusEnviado)
}

// ApproveByID records the client's approval of a sent budget.
func (u *BudgetUseCase) ApproveByID(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusAprovado)
}

// RejectByID records the client's rejection of a sent budget.
func (u *BudgetUseCase) RejectByID(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) transition(ctx context.Context, id string, target entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	current, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	switch target {
	case entities.BudgetStatusEnviado:
		if current.Status != entities.BudgetStatusRascunho {
			return entities.Budget{}, ErrBudgetNotDraft
		}
	case entities.BudgetStatusAprovado, entities.BudgetStatusRejeitado:
		if current.Status != entities.BudgetStatusEnviado {
			return entities.Budget{}, ErrBudgetNotSent
		}
	}

	updated, err := u.budgets.UpdateStatusByID(ctx, id, target)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}
