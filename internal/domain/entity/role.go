// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level of an executor in the dispatch system.
type Role string

const (
	// RoleAdmin has full access, including the timesheet and executor management.
	RoleAdmin Role = "admin"
	// RoleUser is a regular field technician.
	RoleUser Role = "user"
	// RoleGuest can only read.
	RoleGuest Role = "guest"
	// RoleMaster is a senior technician allowed to edit subscribers.
	RoleMaster Role = "master"
	// RoleReserve is a technician kept in reserve.
	RoleReserve Role = "reserve"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest, RoleMaster, RoleReserve:
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
