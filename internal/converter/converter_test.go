package converter

import (
	"encoding/json"
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPatientToResponse_OmitsDigest(t *testing.T) {
	patient := &entity.Patient{
		ID:          uuid.New(),
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Password:    "$2a$10$abcdefghijklmnopqrstuv",
		Gender:      entity.GenderFemale,
		DateOfBirth: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		Address:     entity.Address{City: "Springfield"},
		MedicalHistory: entity.MedicalHistory{
			Allergies: entity.StringList{"penicillin"},
		},
	}

	resp := PatientToResponse(patient)
	require.Equal(t, "1990-05-17", resp.DateOfBirth)
	require.Equal(t, "patient", resp.Role)
	require.Equal(t, "Springfield", resp.Address.City)
	require.Equal(t, []string{"penicillin"}, resp.MedicalHistory.Allergies)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(raw), patient.Password)
	require.NotContains(t, string(raw), "password")
}

func TestPatientToResponse_EmptyOptionalSections(t *testing.T) {
	resp := PatientToResponse(&entity.Patient{ID: uuid.New()})
	require.Nil(t, resp.Address)
	require.Nil(t, resp.MedicalHistory)
	require.Nil(t, PatientToResponse(nil))
}

func TestDoctorToResponse(t *testing.T) {
	doctor := &entity.Doctor{ID: uuid.New(), FullName: "Gregory House", Email: "house@example.com", Password: "digest", Status: entity.DoctorApproved}

	resp := DoctorToResponse(doctor)
	require.Equal(t, "doctor", resp.Role)
	require.Equal(t, "Approved", resp.Status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "digest")
}
