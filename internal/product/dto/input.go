package dto

import (
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	FarmerID     string
	Name         string
	Variety      string
	FarmLocation string
	Quantity     decimal.Decimal
	QualityGrade model.QualityGrade
	IsOrganic    bool
	Price        decimal.Decimal
}
