package dto

import (
	"time"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
)

// UserOutput is the client-facing representation of a user. The password
// hash never appears here.
type UserOutput struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	AccountType   string    `json:"accountType"`
	Approved      bool      `json:"approved"`
	ProfileID     string    `json:"profileId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		AccountType:   string(u.AccountType),
		Approved:      u.Approved,
		ProfileID:     u.ProfileID,
		CreatedAt:     u.CreatedAt,
	}
}

type LoginOutput struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}
