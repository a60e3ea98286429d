package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	default:
		return false
	}
}

// PermissionAll is the sentinel capability every admin carries.
const PermissionAll = "all"

// Permissions known to the back office, grouped by area.
var Permissions = []string{
	"trips.view", "trips.create", "trips.edit", "trips.delete",
	"inventory.view", "inventory.create", "inventory.edit", "inventory.delete",
	"reports.view", "reports.export",
	"users.view", "users.create", "users.edit", "users.delete",
}

// DefaultStaffPermissions is what a user demoted from admin starts with.
var DefaultStaffPermissions = []string{"trips.view", "inventory.view", "reports.view"}

func IsKnownPermission(p string) bool {
	if p == PermissionAll {
		return true
	}
	for _, known := range Permissions {
		if p == known {
			return true
		}
	}
	return false
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Department   string     `json:"department,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Permissions  []string   `json:"permissions"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

func (u User) Clone() User {
	u.Permissions = append([]string(nil), u.Permissions...)
	if u.LastLogin != nil {
		ts := *u.LastLogin
		u.LastLogin = &ts
	}
	return u
}

// UserInput is the create payload. Password is hashed before storage.
type UserInput struct {
	Username    string     `json:"username" binding:"required,min=3"`
	Email       string     `json:"email" binding:"required,email"`
	FullName    string     `json:"fullName" binding:"required"`
	Role        Role       `json:"role" binding:"omitempty,oneof=admin staff"`
	Status      UserStatus `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	Department  string     `json:"department"`
	Phone       string     `json:"phone"`
	Permissions []string   `json:"permissions"`
	Password    string     `json:"password" binding:"required,min=6"`
}

type UserPatch struct {
	Username    *string     `json:"username" binding:"omitempty,min=3"`
	Email       *string     `json:"email" binding:"omitempty,email"`
	FullName    *string     `json:"fullName"`
	Role        *Role       `json:"role" binding:"omitempty,oneof=admin staff"`
	Status      *UserStatus `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	Department  *string     `json:"department"`
	Phone       *string     `json:"phone"`
	Permissions []string    `json:"permissions"`
}

// NormalizePermissions applies the role rule: admins carry only "all",
// staff never carry "all".
func NormalizePermissions(role Role, perms []string) []string {
	if role == RoleAdmin {
		return []string{PermissionAll}
	}
	for _, p := range perms {
		if p == PermissionAll {
			return append([]string(nil), DefaultStaffPermissions...)
		}
	}
	return append([]string{}, perms...)
}

// Apply merges the patch onto a copy of u. Username is left alone; the
// service rejects attempts to change it.
func (u User) Apply(p UserPatch) User {
	u = u.Clone()
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Permissions != nil {
		u.Permissions = p.Permissions
	}
	u.Permissions = NormalizePermissions(u.Role, u.Permissions)
	return u
}
