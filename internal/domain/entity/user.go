package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what kind of account a user holds.
type Role string

const (
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
	RoleVendor       Role = "vendor"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleProfessional, RoleClient, RoleVendor:
		return true
	}

	return false
}

// Membership is the subscription tier attached to an account.
type Membership string

const (
	MembershipFree      Membership = "free"
	MembershipPro       Membership = "pro"
	MembershipBusiness  Membership = "business"
	MembershipCorporate Membership = "corporate"
)

// User is a registered account. Accounts live for the lifetime of the process
// only; the credential is stored as a bcrypt hash, never as plaintext.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Membership   Membership `json:"membership"`
	StoreID      string     `json:"storeId,omitempty"` // Owned store id; set only for vendors.
	CreatedAt    time.Time  `json:"createdAt"`
}
