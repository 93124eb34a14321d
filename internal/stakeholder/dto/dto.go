package dto

import "github.com/fekuna/agritrace-service/internal/lifecycle"

type StakeholderFilters struct {
	Role         lifecycle.Role // empty for all roles
	VerifiedOnly bool
	Page         int
	PageSize     int
}
