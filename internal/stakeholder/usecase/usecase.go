package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minCredentialLength = 6

type stakeholderUseCase struct {
	repo   stakeholder.Repository
	hasher auth.CredentialHasher
	verify auth.CredentialVerifier
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewStakeholderUseCase(repo stakeholder.Repository, credentials auth.Argon2, tokens *auth.TokenManager, log logger.ZapLogger) stakeholder.UseCase {
	return &stakeholderUseCase{
		repo:   repo,
		hasher: credentials,
		verify: credentials,
		tokens: tokens,
		logger: log,
	}
}

func (uc *stakeholderUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.Stakeholder, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	if !input.Role.Valid() {
		return nil, apperr.New(apperr.KindInvalidArgument, "unknown role %q", input.Role)
	}
	if len(input.Credential) < minCredentialLength {
		return nil, apperr.New(apperr.KindInvalidArgument, "credential must be at least %d characters", minCredentialLength)
	}

	hash, err := uc.hasher.Hash(input.Credential)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &model.Stakeholder{
		BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:           name,
		Phone:          strings.TrimSpace(input.Phone),
		Location:       strings.TrimSpace(input.Location),
		Role:           input.Role,
		CredentialHash: hash,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("stakeholder registered", zap.String("stakeholder_id", s.ID), zap.String("role", s.Role.String()))
	return s, nil
}

// Verify is idempotent: verifying twice keeps the first verification time.
func (uc *stakeholderUseCase) Verify(ctx context.Context, id string) (*model.Stakeholder, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.New(apperr.KindNotFound, "stakeholder %s not found", id)
	}
	if s.IsVerified {
		return s, nil
	}

	now := time.Now().UTC()
	changed, err := uc.repo.MarkVerified(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if changed {
		uc.logger.Info("stakeholder verified", zap.String("stakeholder_id", id))
	}

	return uc.repo.FindByID(ctx, id)
}

func (uc *stakeholderUseCase) GetStakeholder(ctx context.Context, id string) (*model.Stakeholder, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.New(apperr.KindNotFound, "stakeholder %s not found", id)
	}
	return s, nil
}

func (uc *stakeholderUseCase) ListStakeholders(ctx context.Context, filters *dto.StakeholderFilters) ([]model.Stakeholder, int, error) {
	if filters.Role != "" && !filters.Role.Valid() {
		return nil, 0, apperr.New(apperr.KindInvalidArgument, "unknown role %q", filters.Role)
	}
	return uc.repo.FindAll(ctx, filters)
}

// TransferTargets lists the verified stakeholders the actor may hand products to.
func (uc *stakeholderUseCase) TransferTargets(ctx context.Context, actorID string) ([]model.Stakeholder, error) {
	actor, err := uc.GetStakeholder(ctx, actorID)
	if err != nil {
		return nil, err
	}

	next, ok := lifecycle.NextRole(actor.Role)
	if !ok {
		return []model.Stakeholder{}, nil
	}

	items, _, err := uc.repo.FindAll(ctx, &dto.StakeholderFilters{Role: next, VerifiedOnly: true})
	return items, err
}

func (uc *stakeholderUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.Session, error) {
	s, err := uc.repo.FindByID(ctx, input.StakeholderID)
	if err != nil {
		return nil, err
	}
	// unknown id and wrong credential look the same to the caller
	if s == nil {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	ok, err := uc.verify.Verify(input.Credential, s.CredentialHash)
	if err != nil {
		uc.logger.Error("credential verification failed", zap.String("stakeholder_id", s.ID), zap.Error(err))
		return nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}
	if !ok {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	token, expiresAt, err := uc.tokens.Issue(s.ID, s.Role)
	if err != nil {
		return nil, err
	}

	return &dto.Session{Token: token, ExpiresAt: expiresAt, Stakeholder: s}, nil
}
