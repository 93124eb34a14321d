package query

import (
	"testing"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(id, name, variety, location, farmer, owner string, st lifecycle.Status, qty int64) model.Product {
	return model.Product{
		BaseModel:    model.BaseModel{ID: id},
		Name:         name,
		Variety:      variety,
		FarmLocation: location,
		FarmerID:     farmer,
		OwnerID:      owner,
		Status:       st,
		Quantity:     decimal.NewFromInt(qty),
	}
}

func ids(ps []model.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

var snapshot = []model.Product{
	product("p1", "Tomato", "Roma", "Nashik", "f1", "f1", lifecycle.StatusHarvested, 100),
	product("p2", "Onion", "Red", "Pune", "f2", "d1", lifecycle.StatusAtDistributor, 40),
	product("p3", "Cherry TOMATO", "Sweet", "Satara", "f1", "r1", lifecycle.StatusAtRetailer, 10),
	product("p4", "Wheat", "Durum", "Tomatoville", "f2", "f2", lifecycle.StatusHarvested, 0),
	product("p5", "Rice", "Basmati", "Karnal", "f3", "c1", lifecycle.StatusSold, 5),
	product("p6", "Potato", "Kufri", "Agra", "f2", "f2", lifecycle.StatusHarvested, 20),
}

func TestAvailableTo(t *testing.T) {
	assert.Empty(t, AvailableTo(snapshot, lifecycle.RoleFarmer))
	assert.Equal(t, []string{"p1", "p6"}, ids(AvailableTo(snapshot, lifecycle.RoleDistributor)))
	assert.Equal(t, []string{"p2"}, ids(AvailableTo(snapshot, lifecycle.RoleRetailer)))
	assert.Equal(t, []string{"p3"}, ids(AvailableTo(snapshot, lifecycle.RoleConsumer)))
}

func TestAvailableToOnlyReturnsPurchasableStatus(t *testing.T) {
	for _, role := range lifecycle.Roles() {
		want, ok := lifecycle.PurchasableStatus(role)
		for _, p := range AvailableTo(snapshot, role) {
			assert.True(t, ok)
			assert.Equal(t, want, p.Status)
			assert.True(t, p.Quantity.IsPositive())
		}
	}
}

func TestOwnedBy(t *testing.T) {
	assert.Equal(t, []string{"p4", "p6"}, ids(OwnedBy(snapshot, "f2")))
	assert.Empty(t, OwnedBy(snapshot, "nobody"))
}

func TestSearchEmptyTermIsIdentity(t *testing.T) {
	assert.Equal(t, snapshot, Search(snapshot, "", nil))
	assert.Equal(t, snapshot, Search(snapshot, "   ", nil))
}

func TestSearchMatchesFieldsCaseInsensitively(t *testing.T) {
	names := map[string]string{"f1": "Ravi Patil", "f2": "Asha More", "f3": "Tomas Rao"}

	// name, name (upper case) and location; p5 via farmer name "Tomas" does not contain "tomato"
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(Search(snapshot, "tomato", names)))
	assert.Equal(t, []string{"p5"}, ids(Search(snapshot, "TOMAS", names)))
	assert.Equal(t, []string{"p2"}, ids(Search(snapshot, "red", names)))
	assert.Equal(t, []string{"p2", "p4", "p6"}, ids(Search(snapshot, "asha", names)))
	assert.Empty(t, Search(snapshot, "mango", names))
}

func TestSearchIsStable(t *testing.T) {
	names := map[string]string{"f1": "Ravi Patil"}
	first := Search(snapshot, "o", names)
	second := Search(snapshot, "o", names)
	assert.Equal(t, first, second)
}
