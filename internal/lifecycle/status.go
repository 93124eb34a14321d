package lifecycle

import (
	"fmt"
	"strings"
)

// Status is a product record's lifecycle state.
type Status string

const (
	StatusHarvested     Status = "harvested"
	StatusInTransit     Status = "in_transit"
	StatusAtDistributor Status = "at_distributor"
	StatusAtRetailer    Status = "at_retailer"
	StatusSold          Status = "sold"
)

var statusRank = map[Status]int{
	StatusHarvested:     0,
	StatusInTransit:     1,
	StatusAtDistributor: 2,
	StatusAtRetailer:    3,
	StatusSold:          4,
}

// transferStatus maps the recipient role of a legal transfer to the status its record enters.
// No transfer lands on InTransit; it stays in the order for shipment tracking.
var transferStatus = map[Role]Status{
	RoleDistributor: StatusAtDistributor,
	RoleRetailer:    StatusAtRetailer,
	RoleConsumer:    StatusSold,
}

// purchasable is the status a buyer of the given role can acquire from upstream.
var purchasable = map[Role]Status{
	RoleDistributor: StatusHarvested,
	RoleRetailer:    StatusAtDistributor,
	RoleConsumer:    StatusAtRetailer,
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank is the status' position in the total order (Harvested=0 .. Sold=4), -1 when unknown.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

func (s Status) Terminal() bool {
	return s == StatusSold
}

func (s Status) String() string {
	return string(s)
}

// CanAdvance reports whether a record may move from one status to another.
// Statuses only move forward.
func CanAdvance(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return to.Rank() > from.Rank()
}

// TransferStatus returns the status a transferred portion enters when a stakeholder of
// role from hands it to one of role to. It fails for same-role, skipping and backward moves.
func TransferStatus(from, to Role) (Status, bool) {
	next, ok := NextRole(from)
	if !ok || next != to {
		return "", false
	}
	st, ok := transferStatus[to]
	return st, ok
}

// PurchasableStatus returns the status of records a buyer of role r can acquire.
// Farmers buy nothing.
func PurchasableStatus(r Role) (Status, bool) {
	st, ok := purchasable[r]
	return st, ok
}

// HolderStatus reports whether a stakeholder of role r may hold a record in status s.
func HolderStatus(r Role, s Status) bool {
	switch r {
	case RoleFarmer:
		return s == StatusHarvested || s == StatusInTransit
	case RoleDistributor:
		return s == StatusAtDistributor
	case RoleRetailer:
		return s == StatusAtRetailer || s == StatusSold
	case RoleConsumer:
		return s == StatusSold
	}
	return false
}
