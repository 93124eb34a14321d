package dto

import "github.com/shopspring/decimal"

type TransferInput struct {
	ProductID       string
	ActorID         string
	ToStakeholderID string
	Quantity        decimal.Decimal
	Price           *decimal.Decimal // nil keeps the current price
	Location        string
	CredentialProof string
}

type MarkSoldInput struct {
	ProductID       string
	ActorID         string
	Location        string
	CredentialProof string
}
