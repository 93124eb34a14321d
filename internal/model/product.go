package model

import (
	"fmt"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/shopspring/decimal"
)

type QualityGrade string

const (
	GradePremium  QualityGrade = "premium"
	GradeA        QualityGrade = "grade_a"
	GradeB        QualityGrade = "grade_b"
	GradeStandard QualityGrade = "standard"
)

func ParseQualityGrade(s string) (QualityGrade, error) {
	switch g := QualityGrade(s); g {
	case GradePremium, GradeA, GradeB, GradeStandard:
		return g, nil
	case "":
		return GradeStandard, nil
	}
	return "", fmt.Errorf("unknown quality grade %q", s)
}

// Product is one record of a harvested batch held by a single owner. Transfers split a
// record; every split keeps the farmer's root record id in OriginID.
type Product struct {
	BaseModel
	OriginID     string           `db:"origin_id" json:"origin_id"`
	ParentID     *string          `db:"parent_id" json:"parent_id"`
	Name         string           `db:"name" json:"name"`
	Variety      string           `db:"variety" json:"variety"`
	FarmLocation string           `db:"farm_location" json:"farm_location"`
	Quantity     decimal.Decimal  `db:"quantity" json:"quantity"`
	QualityGrade QualityGrade     `db:"quality_grade" json:"quality_grade"`
	IsOrganic    bool             `db:"is_organic" json:"is_organic"`
	Price        decimal.Decimal  `db:"price" json:"price"`
	Status       lifecycle.Status `db:"status" json:"status"`
	OwnerID      string           `db:"owner_id" json:"owner_id"`
	FarmerID     string           `db:"farmer_id" json:"farmer_id"`
	BlockchainID *string          `db:"blockchain_id" json:"blockchain_id"`
	Version      int64            `db:"version" json:"version"`
}

// Active reports whether the record still has stock to move.
func (p *Product) Active() bool {
	return p.Quantity.IsPositive()
}
