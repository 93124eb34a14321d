package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventStakeholderVerified = "StakeholderVerified"

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// VerificationListener applies administrator verification events published by the
// identity service.
type VerificationListener struct {
	consumer MessageReader
	uc       stakeholder.UseCase
	logger   logger.ZapLogger
}

func NewVerificationListener(consumer MessageReader, uc stakeholder.UseCase, logger logger.ZapLogger) *VerificationListener {
	return &VerificationListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *VerificationListener) Start(ctx context.Context) {
	l.logger.Info("Starting stakeholder verification listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping stakeholder verification listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type VerificationEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Payload   VerificationPayload `json:"payload"`
	Timestamp time.Time           `json:"timestamp"`
}

type VerificationPayload struct {
	StakeholderID string `json:"stakeholder_id"`
	VerifiedBy    string `json:"verified_by"`
}

func (l *VerificationListener) processMessage(ctx context.Context, value []byte) {
	var event VerificationEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventStakeholderVerified || event.Payload.StakeholderID == "" {
		return
	}

	if _, err := l.uc.Verify(ctx, event.Payload.StakeholderID); err != nil {
		l.logger.Error("Failed to verify stakeholder",
			zap.String("event_id", event.EventID),
			zap.String("stakeholder_id", event.Payload.StakeholderID),
			zap.Error(err),
		)
		return
	}

	l.logger.Info("Stakeholder verified from event",
		zap.String("stakeholder_id", event.Payload.StakeholderID),
		zap.String("verified_by", event.Payload.VerifiedBy),
	)
}
