// Package lifecycle holds the chain-of-custody rules: stakeholder roles, product
// statuses and the table of legal transfers between them.
package lifecycle

import (
	"fmt"
	"strings"
)

// Role is a stakeholder's position in the supply chain.
type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleDistributor Role = "distributor"
	RoleRetailer    Role = "retailer"
	RoleConsumer    Role = "consumer"
)

// roleOrder is the custody chain, upstream first.
var roleOrder = []Role{RoleFarmer, RoleDistributor, RoleRetailer, RoleConsumer}

// nextRoles is the only source of truth for who may receive from whom.
var nextRoles = map[Role]Role{
	RoleFarmer:      RoleDistributor,
	RoleDistributor: RoleRetailer,
	RoleRetailer:    RoleConsumer,
}

// Roles returns the custody chain in order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	return r.Index() >= 0
}

// Index is the role's position in the chain (Farmer=0 .. Consumer=3), -1 when unknown.
func (r Role) Index() int {
	for i, role := range roleOrder {
		if role == r {
			return i
		}
	}
	return -1
}

func (r Role) String() string {
	return string(r)
}

// NextRole returns the role a stakeholder of role r may transfer to.
// Consumers are terminal and get false.
func NextRole(r Role) (Role, bool) {
	next, ok := nextRoles[r]
	return next, ok
}
