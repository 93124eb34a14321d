package handler

import (
	"context"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type StakeholderHandler struct {
	agritracev1.UnimplementedStakeholderServiceServer

	uc     stakeholder.UseCase
	logger logger.ZapLogger
}

func NewStakeholderHandler(uc stakeholder.UseCase, log logger.ZapLogger) *StakeholderHandler {
	return &StakeholderHandler{
		uc:     uc,
		logger: log,
	}
}

// PublicMethods are reachable without a token.
var PublicMethods = []string{
	agritracev1.StakeholderService_Register_FullMethodName,
	agritracev1.StakeholderService_Login_FullMethodName,
}

func (h *StakeholderHandler) Register(ctx context.Context, req *agritracev1.RegisterRequest) (*agritracev1.Stakeholder, error) {
	role, err := lifecycle.ParseRole(req.Role)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "unknown role %q", req.Role)
	}

	s, err := h.uc.Register(ctx, &dto.RegisterInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Location:   req.Location,
		Role:       role,
		Credential: req.Credential,
	})
	if err != nil {
		return nil, h.fail(err, "failed to register stakeholder")
	}
	return mapStakeholder(s), nil
}

func (h *StakeholderHandler) Login(ctx context.Context, req *agritracev1.LoginRequest) (*agritracev1.LoginResponse, error) {
	session, err := h.uc.Login(ctx, &dto.LoginInput{
		StakeholderID: req.StakeholderId,
		Credential:    req.Credential,
	})
	if err != nil {
		return nil, h.fail(err, "failed to log in")
	}
	return &agritracev1.LoginResponse{
		Token:       session.Token,
		ExpiresAt:   timestamppb.New(session.ExpiresAt),
		Stakeholder: mapStakeholder(session.Stakeholder),
	}, nil
}

func (h *StakeholderHandler) GetStakeholder(ctx context.Context, req *agritracev1.GetStakeholderRequest) (*agritracev1.Stakeholder, error) {
	s, err := h.uc.GetStakeholder(ctx, req.Id)
	if err != nil {
		return nil, h.fail(err, "failed to get stakeholder", zap.String("stakeholder_id", req.Id))
	}
	return mapStakeholder(s), nil
}

func (h *StakeholderHandler) ListStakeholders(ctx context.Context, req *agritracev1.ListStakeholdersRequest) (*agritracev1.StakeholderList, error) {
	filters := &dto.StakeholderFilters{
		VerifiedOnly: req.VerifiedOnly,
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	}
	if req.Role != "" {
		role, err := lifecycle.ParseRole(req.Role)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "unknown role %q", req.Role)
		}
		filters.Role = role
	}

	items, total, err := h.uc.ListStakeholders(ctx, filters)
	if err != nil {
		return nil, h.fail(err, "failed to list stakeholders")
	}
	return &agritracev1.StakeholderList{Stakeholders: mapStakeholders(items), Total: int32(total)}, nil
}

// VerifyStakeholder is an administrator action.
func (h *StakeholderHandler) VerifyStakeholder(ctx context.Context, req *agritracev1.VerifyStakeholderRequest) (*agritracev1.Stakeholder, error) {
	if err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	s, err := h.uc.Verify(ctx, req.Id)
	if err != nil {
		return nil, h.fail(err, "failed to verify stakeholder", zap.String("stakeholder_id", req.Id))
	}
	return mapStakeholder(s), nil
}

func (h *StakeholderHandler) ListTransferTargets(ctx context.Context, _ *agritracev1.ListTransferTargetsRequest) (*agritracev1.StakeholderList, error) {
	caller, err := auth.RequireStakeholder(ctx)
	if err != nil {
		return nil, err
	}
	items, err := h.uc.TransferTargets(ctx, caller.StakeholderID)
	if err != nil {
		return nil, h.fail(err, "failed to list transfer targets", zap.String("stakeholder_id", caller.StakeholderID))
	}
	return &agritracev1.StakeholderList{Stakeholders: mapStakeholders(items), Total: int32(len(items))}, nil
}

// fail logs unexpected errors and hides their details from the caller.
func (h *StakeholderHandler) fail(err error, msg string, fields ...zap.Field) error {
	if apperr.KindOf(err) != apperr.KindInternal {
		return err
	}
	h.logger.Error(msg, append(fields, zap.Error(err))...)
	return apperr.Wrap(apperr.KindInternal, err, "internal error")
}

func mapStakeholder(s *model.Stakeholder) *agritracev1.Stakeholder {
	out := &agritracev1.Stakeholder{
		Id:         s.ID,
		Name:       s.Name,
		Phone:      s.Phone,
		Location:   s.Location,
		Role:       s.Role.String(),
		IsVerified: s.IsVerified,
		CreatedAt:  timestamppb.New(s.CreatedAt),
	}
	if s.VerifiedAt != nil {
		out.VerifiedAt = timestamppb.New(*s.VerifiedAt)
	}
	return out
}

func mapStakeholders(items []model.Stakeholder) []*agritracev1.Stakeholder {
	out := make([]*agritracev1.Stakeholder, 0, len(items))
	for i := range items {
		out = append(out, mapStakeholder(&items[i]))
	}
	return out
}
