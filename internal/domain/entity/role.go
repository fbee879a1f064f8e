// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a customer placing orders.
	RoleCustomer Role = "customer"
	// RoleDriver indicates a delivery driver.
	RoleDriver Role = "driver"
	// RoleStoreOwner indicates a store owner managing a store dashboard.
	RoleStoreOwner Role = "store_owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleStoreOwner:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
