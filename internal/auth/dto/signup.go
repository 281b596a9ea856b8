package dto

type SignupInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AccountType     string `json:"accountType"`
	ContactNumber   string `json:"contactNumber"`
	OTP             string `json:"otp"`
}
