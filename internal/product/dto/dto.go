package dto

import "github.com/fekuna/agritrace-service/internal/lifecycle"

type ProductFilters struct {
	IDs        []string
	OwnerID    string
	FarmerID   string
	OriginID   string
	Statuses   []lifecycle.Status
	ActiveOnly bool // quantity > 0
	Page       int
	PageSize   int
}
