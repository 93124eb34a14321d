package handler

import (
	"context"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/transfer"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type TransferHandler struct {
	agritracev1.UnimplementedTransferServiceServer

	uc     transfer.UseCase
	logger logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: log,
	}
}

// Transfer acts on behalf of the caller; the token decides who the actor is.
func (h *TransferHandler) Transfer(ctx context.Context, req *agritracev1.TransferRequest) (*agritracev1.Transfer, error) {
	caller, err := auth.RequireStakeholder(ctx)
	if err != nil {
		return nil, err
	}

	// an empty quantity is zero and fails the range check in order
	quantity := decimal.Zero
	if req.Quantity != "" {
		if quantity, err = decimal.NewFromString(req.Quantity); err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidQuantity, err, "quantity %q is not a decimal", req.Quantity)
		}
	}
	// an empty price keeps the current one
	var price *decimal.Decimal
	if req.Price != "" {
		p, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidPrice, err, "price %q is not a decimal", req.Price)
		}
		price = &p
	}

	rec, err := h.uc.Transfer(ctx, &dto.TransferInput{
		ProductID:       req.ProductId,
		ActorID:         caller.StakeholderID,
		ToStakeholderID: req.ToStakeholderId,
		Quantity:        quantity,
		Price:           price,
		Location:        req.Location,
		CredentialProof: req.CredentialProof,
	})
	if err != nil {
		return nil, h.fail(err, "failed to transfer product",
			zap.String("product_id", req.ProductId),
			zap.String("actor_id", caller.StakeholderID),
		)
	}
	return mapTransfer(rec), nil
}

func (h *TransferHandler) MarkSold(ctx context.Context, req *agritracev1.MarkSoldRequest) (*agritracev1.Transfer, error) {
	caller, err := auth.RequireStakeholder(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := h.uc.MarkSold(ctx, &dto.MarkSoldInput{
		ProductID:       req.ProductId,
		ActorID:         caller.StakeholderID,
		Location:        req.Location,
		CredentialProof: req.CredentialProof,
	})
	if err != nil {
		return nil, h.fail(err, "failed to mark product sold", zap.String("product_id", req.ProductId))
	}
	return mapTransfer(rec), nil
}

func (h *TransferHandler) GetTransfer(ctx context.Context, req *agritracev1.GetTransferRequest) (*agritracev1.Transfer, error) {
	rec, err := h.uc.GetTransfer(ctx, req.Id)
	if err != nil {
		return nil, h.fail(err, "failed to get transfer", zap.String("transfer_id", req.Id))
	}
	return mapTransfer(rec), nil
}

func (h *TransferHandler) ProductHistory(ctx context.Context, req *agritracev1.ProductHistoryRequest) (*agritracev1.TransferList, error) {
	items, err := h.uc.ProductHistory(ctx, req.ProductId)
	if err != nil {
		return nil, h.fail(err, "failed to load product history", zap.String("product_id", req.ProductId))
	}
	return &agritracev1.TransferList{Transfers: mapTransfers(items), Total: int32(len(items))}, nil
}

func (h *TransferHandler) ListTransfers(ctx context.Context, req *agritracev1.ListTransfersRequest) (*agritracev1.TransferList, error) {
	filters := &dto.TransferFilters{
		ProductID:     req.ProductId,
		StakeholderID: req.StakeholderId,
		Page:          int(req.Page),
		PageSize:      int(req.PageSize),
	}
	for _, s := range req.SyncStatuses {
		st := model.SyncStatus(s)
		switch st {
		case model.SyncPending, model.SyncSynced, model.SyncFailed, model.SyncSkipped:
			filters.SyncStatuses = append(filters.SyncStatuses, st)
		default:
			return nil, apperr.New(apperr.KindInvalidArgument, "unknown sync status %q", s)
		}
	}

	items, total, err := h.uc.ListTransfers(ctx, filters)
	if err != nil {
		return nil, h.fail(err, "failed to list transfers")
	}
	return &agritracev1.TransferList{Transfers: mapTransfers(items), Total: int32(total)}, nil
}

func (h *TransferHandler) fail(err error, msg string, fields ...zap.Field) error {
	if apperr.KindOf(err) != apperr.KindInternal {
		return err
	}
	h.logger.Error(msg, append(fields, zap.Error(err))...)
	return apperr.Wrap(apperr.KindInternal, err, "internal error")
}

func mapTransfer(t *model.Transfer) *agritracev1.Transfer {
	return &agritracev1.Transfer{
		Id:                   t.ID,
		ProductId:            t.ProductID,
		OriginId:             t.OriginID,
		DestinationProductId: deref(t.DestinationProductID),
		FromStakeholderId:    t.FromStakeholderID,
		ToStakeholderId:      t.ToStakeholderID,
		FromRole:             t.FromRole.String(),
		ToRole:               t.ToRole.String(),
		Quantity:             t.Quantity.String(),
		Price:                t.Price.String(),
		Location:             t.Location,
		StatusAfter:          t.StatusAfter.String(),
		TxType:               string(t.TxType),
		Timestamp:            timestamppb.New(t.Timestamp),
		SyncStatus:           string(t.SyncStatus),
		ConfirmationId:       deref(t.ConfirmationID),
	}
}

func mapTransfers(items []model.Transfer) []*agritracev1.Transfer {
	out := make([]*agritracev1.Transfer, 0, len(items))
	for i := range items {
		out = append(out, mapTransfer(&items[i]))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
