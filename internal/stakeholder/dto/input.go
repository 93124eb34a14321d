package dto

import (
	"time"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
)

type RegisterInput struct {
	Name       string
	Phone      string
	Location   string
	Role       lifecycle.Role
	Credential string
}

type LoginInput struct {
	StakeholderID string
	Credential    string
}

type Session struct {
	Token       string
	ExpiresAt   time.Time
	Stakeholder *model.Stakeholder
}
