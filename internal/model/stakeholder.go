package model

import (
	"time"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
)

type Stakeholder struct {
	BaseModel
	Name           string         `db:"name" json:"name"`
	Phone          string         `db:"phone" json:"phone"`
	Location       string         `db:"location" json:"location"`
	Role           lifecycle.Role `db:"role" json:"role"`
	IsVerified     bool           `db:"is_verified" json:"is_verified"`
	VerifiedAt     *time.Time     `db:"verified_at" json:"verified_at"`
	CredentialHash string         `db:"credential_hash" json:"-"`
}
