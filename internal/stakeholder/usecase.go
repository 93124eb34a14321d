package stakeholder

import (
	"context"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.Stakeholder, error)
	Verify(ctx context.Context, id string) (*model.Stakeholder, error)
	GetStakeholder(ctx context.Context, id string) (*model.Stakeholder, error)
	ListStakeholders(ctx context.Context, filters *dto.StakeholderFilters) ([]model.Stakeholder, int, error)
	TransferTargets(ctx context.Context, actorID string) ([]model.Stakeholder, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.Session, error)
}
