package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its public profile.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:              patient.ID,
		FullName:        patient.FullName,
		Email:           patient.Email,
		Role:            entity.RolePatient.String(),
		Gender:          string(patient.Gender),
		DateOfBirth:     patient.DateOfBirth.Format("2006-01-02"),
		IsActive:        patient.IsActive,
		IsEmailVerified: patient.IsEmailVerified,
		LastLogin:       patient.LastLogin,
		ProfileImage:    patient.ProfileImage,
		Phone:           patient.Phone,
		CreatedAt:       patient.CreatedAt,
		UpdatedAt:       patient.UpdatedAt,
	}

	if patient.Address != (entity.Address{}) {
		resp.Address = &dto.AddressResponse{
			Street:  patient.Address.Street,
			City:    patient.Address.City,
			State:   patient.Address.State,
			ZipCode: patient.Address.ZipCode,
		}
	}

	history := patient.MedicalHistory
	if history.BloodType != "" || len(history.Allergies) > 0 || len(history.ChronicConditions) > 0 {
		resp.MedicalHistory = &dto.MedicalHistoryResponse{
			BloodType:         history.BloodType,
			Allergies:         history.Allergies,
			ChronicConditions: history.ChronicConditions,
		}
	}

	return resp
}
