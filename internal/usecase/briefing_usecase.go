package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrInvalidOfficeID    = errors.New("invalid office id")
)

// IBriefingUseCase exposes briefing intake operations.

type IBriefingUseCase interface {
	Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error)
	GetByID(ctx context.Context, id string) (entities.Briefing, error)
}

type BriefingUseCase struct {
	repo interfaces.IBriefingRepository
	now  func() time.Time
}

var _ IBriefingUseCase = (*BriefingUseCase)(nil)

func NewBriefingUseCase(repo interfaces.IBriefingRepository) *BriefingUseCase {
	return &BriefingUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *BriefingUseCase) Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error) {
	b.ProjectName = strings.TrimSpace(b.ProjectName)
	b.OfficeID = strings.TrimSpace(b.OfficeID)
	if b.ProjectName == "" {
		return entities.Briefing{}, ErrInvalidProjectName
	}
	if b.OfficeID == "" {
		return entities.Briefing{}, ErrInvalidOfficeID
	}

	now := u.now()
	b.ID = uuid.NewString()
	b.Status = entities.BriefingStatusAberto
	b.CreatedAt = now
	b.UpdatedAt = now

	return u.repo.Create(ctx, b)
}

func (u *BriefingUseCase) GetByID(ctx context.Context, id string) (entities.Briefing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Briefing{}, ErrInvalidBriefingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Briefing{}, err
	}
	if b.ID == "" {
		return entities.Briefing{}, ErrBriefingNotFound
	}
	return b, nil
}
