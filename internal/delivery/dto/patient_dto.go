package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientResponse is the public profile of a patient. It has no password field.
type PatientResponse struct {
	ID              uuid.UUID               `json:"id"`
	FullName        string                  `json:"fullname"`
	Email           string                  `json:"email"`
	Role            string                  `json:"role"`
	Gender          string                  `json:"gender"`
	DateOfBirth     string                  `json:"dateOfBirth"`
	IsActive        bool                    `json:"isActive"`
	IsEmailVerified bool                    `json:"isEmailVerified"`
	LastLogin       *time.Time              `json:"lastLogin,omitempty"`
	ProfileImage    string                  `json:"profileImage,omitempty"`
	Phone           string                  `json:"phone,omitempty"`
	Address         *AddressResponse        `json:"address,omitempty"`
	MedicalHistory  *MedicalHistoryResponse `json:"medicalHistory,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type AddressResponse struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type MedicalHistoryResponse struct {
	BloodType         string   `json:"bloodType,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	ChronicConditions []string `json:"chronicConditions,omitempty"`
}
