package domain

import "time"

// Role is the account type persisted with every user. It is immutable
// through this service; elevation happens through an administrative
// process outside the auth core.
type Role string

const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"
)

// Valid reports whether r is one of the known account types.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	PasswordHash  string
	AccountType   Role
	Approved      bool
	ProfileID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OTP is one append-only ledger entry. Only the most recent entry for an
// email is ever considered during verification; Consumed is set after a
// successful signup so the same entry cannot be redeemed twice.
type OTP struct {
	ID        string
	Email     string
	Code      string
	Consumed  bool
	CreatedAt time.Time
}
