package entities

// Role identifies which side of the marketplace an actor acts for.
//
// Identity verification happens upstream; by the time a command reaches the
// workflow engine the (actorId, role) pair is trusted.

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleSupplier   Role = "supplier"
	RoleAdmin      Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleTechnician, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// ValidBuyerRole reports whether r may own a parts order.
func ValidBuyerRole(r Role) bool {
	return r == RoleCustomer || r == RoleTechnician
}
