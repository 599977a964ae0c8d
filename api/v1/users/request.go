package users

// UpdateProfileRequest represents a partial profile update. Every field is
// optional; empty fields leave the stored value untouched. Skills is a
// comma-separated list.
type UpdateProfileRequest struct {
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
}
