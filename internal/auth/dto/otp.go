package dto

type SendOTPInput struct {
	Email string `json:"email"`
}
