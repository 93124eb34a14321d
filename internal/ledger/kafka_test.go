package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	key, value []byte
	err        error
}

func (p *recordingPublisher) Publish(_ context.Context, key, value []byte) error {
	p.key, p.value = key, value
	return p.err
}

func sampleTransfer() *model.Transfer {
	return &model.Transfer{
		ID:                "t-1",
		ProductID:         "p-1",
		OriginID:          "p-1",
		FromStakeholderID: "farmer-1",
		ToStakeholderID:   "dist-1",
		FromRole:          lifecycle.RoleFarmer,
		ToRole:            lifecycle.RoleDistributor,
		Quantity:          decimal.NewFromInt(40),
		Price:             decimal.RequireFromString("55.50"),
		Location:          "Pune",
		StatusAfter:       lifecycle.StatusAtDistributor,
		TxType:            model.TxTypeTransfer,
		Timestamp:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaLedgerPublishesKeyedEvent(t *testing.T) {
	pub := &recordingPublisher{}
	l := NewKafkaLedger(pub)

	confirmation, err := l.RecordTransfer(context.Background(), EntryFromTransfer(sampleTransfer()))
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation)
	assert.Equal(t, "p-1", string(pub.key))

	var event TransferRecordedEvent
	require.NoError(t, json.Unmarshal(pub.value, &event))
	assert.Equal(t, confirmation, event.EventID)
	assert.Equal(t, EventTransferRecorded, event.EventType)
	assert.Equal(t, "t-1", event.Payload.TransferID)
	assert.Equal(t, "40", event.Payload.Quantity)
	assert.Equal(t, "55.5", event.Payload.Price)
	assert.Equal(t, lifecycle.StatusAtDistributor, event.Payload.StatusAfter)
}

func TestKafkaLedgerFailureIsLedgerUnavailable(t *testing.T) {
	l := NewKafkaLedger(&recordingPublisher{err: errors.New("dial tcp: connection refused")})

	_, err := l.RecordTransfer(context.Background(), EntryFromTransfer(sampleTransfer()))
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalLedgerUnavailable, apperr.KindOf(err))
}
