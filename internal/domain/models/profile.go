package models

import "time"

// Role distinguishes administrators from farmers.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFarmer Role = "farmer"
)

// FarmerProfile is the identity record created on first sign-in.
// FarmerID is only populated for farmer roles and follows FC-<year>-<6 digits>.
type FarmerProfile struct {
	UserID    string    `bson:"user_id" json:"userId"`
	Email     string    `bson:"email" json:"email"`
	Role      Role      `bson:"role" json:"role"`
	FarmerID  string    `bson:"farmer_id,omitempty" json:"farmerId,omitempty"`
	HasCard   bool      `bson:"has_card" json:"hasCard"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Session is the explicit per-request identity passed into services, replacing
// ambient auth state. Created when the gateway-verified identity headers are
// resolved, discarded when the request completes.
type Session struct {
	UserID   string
	Email    string
	Role     Role
	FarmerID string
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
