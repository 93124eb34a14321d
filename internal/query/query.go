// Package query derives the dashboard's role views from a product snapshot.
// Every function is pure and keeps the input order.
package query

import (
	"strings"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
)

// AvailableTo returns the records a stakeholder of role r can buy: records in the status
// just upstream of r that still hold stock. Farmers get nothing.
func AvailableTo(products []model.Product, r lifecycle.Role) []model.Product {
	want, ok := lifecycle.PurchasableStatus(r)
	if !ok {
		return []model.Product{}
	}
	return filter(products, func(p *model.Product) bool {
		return p.Status == want && p.Active()
	})
}

// OwnedBy returns the records currently held by stakeholderID, consumed ones included.
func OwnedBy(products []model.Product, stakeholderID string) []model.Product {
	return filter(products, func(p *model.Product) bool {
		return p.OwnerID == stakeholderID
	})
}

// Search matches term case-insensitively against name, variety, farm location and the
// farmer's name (looked up in farmerNames by FarmerID). A blank term returns products as is.
func Search(products []model.Product, term string, farmerNames map[string]string) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return products
	}
	return filter(products, func(p *model.Product) bool {
		return contains(p.Name, needle) ||
			contains(p.Variety, needle) ||
			contains(p.FarmLocation, needle) ||
			contains(farmerNames[p.FarmerID], needle)
	})
}

func contains(field, needle string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), needle)
}

func filter(products []model.Product, keep func(*model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(products))
	for i := range products {
		if keep(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
