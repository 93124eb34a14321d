// Package chaincode is the Fabric contract that keeps the immutable copy of every custody step.
package chaincode

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/agritrace-service/internal/ledger"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/shopspring/decimal"
)

const (
	transferKeyPrefix = "TRANSFER_"
	historyIndex      = "origin~ts~transfer"
	keyTimeLayout     = "20060102T150405.000000000Z"
)

// TransferRecord is the on-chain form of a transfer.
type TransferRecord struct {
	TransferID  string `json:"transfer_id"`
	ProductID   string `json:"product_id"`
	OriginID    string `json:"origin_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	FromRole    string `json:"from_role"`
	ToRole      string `json:"to_role"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	StatusAfter string `json:"status_after"`
	TxType      string `json:"tx_type"`
	Timestamp   string `json:"timestamp"`
	RecordedTx  string `json:"recorded_tx"`
}

// TraceContract records custody steps submitted by the ledger relay.
type TraceContract struct {
	contractapi.Contract
}

// RecordTransfer stores one transfer given as the JSON ledger entry. Each transfer id is
// accepted once.
func (c *TraceContract) RecordTransfer(ctx contractapi.TransactionContextInterface, transferJSON string) error {
	var entry ledger.Entry
	if err := json.Unmarshal([]byte(transferJSON), &entry); err != nil {
		return fmt.Errorf("invalid transfer payload: %v", err)
	}
	if entry.TransferID == "" || entry.OriginID == "" || entry.ProductID == "" {
		return fmt.Errorf("transfer_id, origin_id and product_id are required")
	}

	if err := validateEntry(entry); err != nil {
		return err
	}

	stub := ctx.GetStub()
	key := transferKeyPrefix + entry.TransferID
	existing, err := stub.GetState(key)
	if err != nil {
		return fmt.Errorf("failed to read transfer %s: %v", entry.TransferID, err)
	}
	if existing != nil {
		return fmt.Errorf("transfer %s already recorded", entry.TransferID)
	}

	ts := entry.Timestamp.UTC()
	record := TransferRecord{
		TransferID:  entry.TransferID,
		ProductID:   entry.ProductID,
		OriginID:    entry.OriginID,
		From:        entry.From,
		To:          entry.To,
		FromRole:    entry.FromRole.String(),
		ToRole:      entry.ToRole.String(),
		Quantity:    entry.Quantity,
		Price:       entry.Price,
		Location:    entry.Location,
		StatusAfter: entry.StatusAfter.String(),
		TxType:      string(entry.TxType),
		Timestamp:   ts.Format(time.RFC3339Nano),
		RecordedTx:  stub.GetTxID(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer: %v", err)
	}
	if err := stub.PutState(key, data); err != nil {
		return fmt.Errorf("failed to store transfer: %v", err)
	}

	indexKey, err := stub.CreateCompositeKey(historyIndex, []string{entry.OriginID, ts.Format(keyTimeLayout), entry.TransferID})
	if err != nil {
		return fmt.Errorf("failed to create history key: %v", err)
	}
	return stub.PutState(indexKey, []byte{0x00})
}

func validateEntry(e ledger.Entry) error {
	qty, err := decimal.NewFromString(e.Quantity)
	if err != nil || !qty.IsPositive() {
		return fmt.Errorf("quantity must be positive")
	}
	if price, err := decimal.NewFromString(e.Price); err != nil || price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}

	if e.TxType == model.TxTypeMarkSold {
		if e.FromRole != lifecycle.RoleRetailer || e.ToRole != lifecycle.RoleRetailer || e.From != e.To {
			return fmt.Errorf("only a retailer can mark its own stock sold")
		}
		if e.StatusAfter != lifecycle.StatusSold {
			return fmt.Errorf("mark_sold must end in %s", lifecycle.StatusSold)
		}
		return nil
	}

	want, ok := lifecycle.TransferStatus(e.FromRole, e.ToRole)
	if !ok {
		return fmt.Errorf("%s cannot transfer to %s", e.FromRole, e.ToRole)
	}
	if e.StatusAfter != want {
		return fmt.Errorf("transfer to %s must end in %s, got %s", e.ToRole, want, e.StatusAfter)
	}
	return nil
}

// GetTransfer returns one recorded transfer.
func (c *TraceContract) GetTransfer(ctx contractapi.TransactionContextInterface, transferID string) (*TransferRecord, error) {
	data, err := ctx.GetStub().GetState(transferKeyPrefix + transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transfer %s: %v", transferID, err)
	}
	if data == nil {
		return nil, fmt.Errorf("transfer %s does not exist", transferID)
	}

	var record TransferRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfer: %v", err)
	}
	return &record, nil
}

// GetProductHistory returns every transfer of a batch in time order.
func (c *TraceContract) GetProductHistory(ctx contractapi.TransactionContextInterface, originID string) ([]*TransferRecord, error) {
	stub := ctx.GetStub()
	iter, err := stub.GetStateByPartialCompositeKey(historyIndex, []string{originID})
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %v", err)
	}
	defer iter.Close()

	history := []*TransferRecord{}
	for iter.HasNext() {
		kv, err := iter.Next()
		if err != nil {
			return nil, err
		}
		_, parts, err := stub.SplitCompositeKey(kv.Key)
		if err != nil {
			return nil, err
		}
		if len(parts) != 3 {
			continue
		}
		record, err := c.GetTransfer(ctx, parts[2])
		if err != nil {
			return nil, err
		}
		history = append(history, record)
	}
	return history, nil
}
