package models

import "time"

// Roles the service assigns. There is no self-service promotion; the role
// arrives with the user record and is only read on the client.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// User is an account record. Password is write-only: it is sent on register
// and never echoed back by the service.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Password         string    `json:"password,omitempty"`
	StudentID        string    `json:"studentId,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Role             string    `json:"role"`
	MembershipStatus string    `json:"membershipStatus,omitempty"`
	JoinDate         time.Time `json:"joinDate,omitzero"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
