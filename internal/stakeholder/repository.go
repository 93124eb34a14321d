package stakeholder

import (
	"context"
	"time"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
)

type Repository interface {
	Create(ctx context.Context, s *model.Stakeholder) error
	// FindByID returns nil, nil when the stakeholder does not exist.
	FindByID(ctx context.Context, id string) (*model.Stakeholder, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Stakeholder, error)
	FindAll(ctx context.Context, filters *dto.StakeholderFilters) ([]model.Stakeholder, int, error)

	// MarkVerified flips is_verified once. It reports false when it was already set.
	MarkVerified(ctx context.Context, id string, at time.Time) (bool, error)
}
