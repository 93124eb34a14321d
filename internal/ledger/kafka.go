package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/google/uuid"
)

const EventTransferRecorded = "TransferRecorded"

// Publisher writes one keyed message. *broker.KafkaProducer implements it.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

type TransferRecordedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Payload   Entry     `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaLedger hands entries to the ledger relay topic. Messages are keyed by batch so
// custody steps of one batch stay ordered.
type KafkaLedger struct {
	producer Publisher
}

func NewKafkaLedger(producer Publisher) *KafkaLedger {
	return &KafkaLedger{producer: producer}
}

func (l *KafkaLedger) RecordTransfer(ctx context.Context, entry Entry) (string, error) {
	event := TransferRecordedEvent{
		EventID:   uuid.New().String(),
		EventType: EventTransferRecorded,
		Payload:   entry,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	if err := l.producer.Publish(ctx, []byte(entry.OriginID), data); err != nil {
		return "", apperr.Wrap(apperr.KindExternalLedgerUnavailable, err, "publish transfer %s", entry.TransferID)
	}
	return event.EventID, nil
}
