package models

import "time"

// Role values checked by the gateway. Role is an open string set; only
// RoleAdmin carries special meaning and the comparison is exact (no
// hierarchy).
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is an application account keyed by the identity provider's subject id.
// The subject id itself is the store key and is intentionally not part of
// the payload.
type User struct {
	Username    string    `bson:"username" json:"username"`
	Email       string    `bson:"email" json:"email"`
	Role        string    `bson:"role" json:"role"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	Submissions []string  `bson:"submissions" json:"submissions"`
}

// IsAdmin reports whether the account may use admin-only routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
