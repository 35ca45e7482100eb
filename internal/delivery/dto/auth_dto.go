package dto

// Request DTOs

type RegisterPatientRequest struct {
	FullName    string `json:"fullname" validate:"required,fullname"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"` // YYYY-MM-DD or RFC 3339
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DoctorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response DTOs

type AuthResponse struct {
	User         *PatientResponse `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

type ProfileResponse struct {
	User interface{} `json:"user"`
}

type DoctorLoginResponse struct {
	Token      string `json:"token"`
	RedirectTo string `json:"redirectTo"`
}
