package domain

import "time"

// Role of a staff member
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Permission an action a staff member may perform
type Permission string

const (
	PermissionRead    Permission = "read"
	PermissionWrite   Permission = "write"
	PermissionDelete  Permission = "delete"
	PermissionConfig  Permission = "config"
	PermissionReports Permission = "reports"
)

// Permissions the permission bundle stored with each user
type Permissions struct {
	Read    bool `json:"read"`
	Write   bool `json:"write"`
	Delete  bool `json:"delete"`
	Config  bool `json:"config"`
	Reports bool `json:"reports"`
}

// Allows reports whether the bundle grants p
func (p Permissions) Allows(perm Permission) bool {
	switch perm {
	case PermissionRead:
		return p.Read
	case PermissionWrite:
		return p.Write
	case PermissionDelete:
		return p.Delete
	case PermissionConfig:
		return p.Config
	case PermissionReports:
		return p.Reports
	default:
		return false
	}
}

// DefaultPermissions bundle used when a user row has none stored
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{Read: true, Write: true, Delete: true, Config: true, Reports: true}
	case RoleOperator:
		return Permissions{Read: true, Write: true, Reports: true}
	default:
		return Permissions{Read: true}
	}
}

// User a staff member of the back office
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Permissions  Permissions
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
