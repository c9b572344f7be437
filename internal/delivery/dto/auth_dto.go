package dto

// Request DTOs

type LoginRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=Admin Doctor Patient"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest is the public patient self-registration form.
type RegisterPatientRequest struct {
	FirstName string `json:"first_name" validate:"required,min=3"`
	LastName  string `json:"last_name" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=11"`
	NIC       string `json:"nic" validate:"required,len=13"`
	DOB       string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	Password  string `json:"password" validate:"required,min=8"`
}

// AddAdminRequest is the admin-only form for creating another admin.
type AddAdminRequest struct {
	FirstName string `json:"first_name" validate:"required,min=3"`
	LastName  string `json:"last_name" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=11"`
	NIC       string `json:"nic" validate:"required,len=13"`
	DOB       string `json:"dob" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	Password  string `json:"password" validate:"required,min=8"`
}

// AddDoctorRequest is the admin-only doctor onboarding form. It arrives as
// multipart form data, the avatar part is handled separately by the handler.
type AddDoctorRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=3"`
	LastName   string `json:"last_name" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,len=11"`
	NIC        string `json:"nic" validate:"required,len=13"`
	DOB        string `json:"dob" validate:"required"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required"`
}

// Response DTOs

// AuthResponse is returned by register and login, the token is also set as a
// role-scoped HTTP-only cookie.
type AuthResponse struct {
	User         *UserResponse `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresIn    int64         `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}
