package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/validator"

	"github.com/stretchr/testify/require"
)

func validRequest() *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Password:    "Password1!",
		Gender:      "Female",
		DateOfBirth: "1990-05-17",
	}
}

func newTestRegistrationValidator(repo *memPatientRepo) *RegistrationValidator {
	return NewRegistrationValidator(quietLogger(), validator.NewValidator(), repo, func() time.Time { return fixedNow })
}

func TestRegistrationValidator_ReportsEveryMissingField(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())

	_, err := v.Validate(context.Background(), &dto.RegisterPatientRequest{})
	require.ErrorIs(t, err, apperror.ErrValidation)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, map[string]string{
		"fullname":    "Full name is required",
		"email":       "Email is required",
		"password":    "Password is required",
		"gender":      "Gender is required",
		"dateOfBirth": "Date of birth is required",
	}, appErr.Fields)
}

func TestRegistrationValidator_MalformedFields(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())
	req := validRequest()
	req.Email = "not-an-email"
	req.Gender = "Unknown"
	req.DateOfBirth = "17/05/1990"

	_, err := v.Validate(context.Background(), req)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindValidation, appErr.Kind)
	require.Contains(t, appErr.Fields, "email")
	require.Contains(t, appErr.Fields, "gender")
	require.Contains(t, appErr.Fields, "dateOfBirth")
	require.NotContains(t, appErr.Fields, "fullname")
}

func TestRegistrationValidator_DuplicateEmailIgnoresCase(t *testing.T) {
	repo := newMemPatientRepo()
	v := newTestRegistrationValidator(repo)
	ctx := context.Background()

	first := validRequest()
	first.Email = "A@x.com"
	validated, err := v.Validate(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", validated.Email)
	require.NoError(t, repo.Create(ctx, newPatientFrom(validated)))

	second := validRequest()
	second.Email = "a@x.com"
	_, err = v.Validate(ctx, second)
	require.ErrorIs(t, err, apperror.ErrDuplicateAccount)
}

func TestRegistrationValidator_AgeBoundary(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())

	exactly18 := validRequest()
	exactly18.DateOfBirth = fixedNow.AddDate(-18, 0, 0).Format("2006-01-02")
	_, err := v.Validate(context.Background(), exactly18)
	require.NoError(t, err)

	oneDayShort := validRequest()
	oneDayShort.DateOfBirth = fixedNow.AddDate(-18, 0, 1).Format("2006-01-02")
	_, err = v.Validate(context.Background(), oneDayShort)
	require.ErrorIs(t, err, apperror.ErrUnderage)
}

func TestRegistrationValidator_AcceptsRFC3339Date(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())
	req := validRequest()
	req.DateOfBirth = "1990-05-17T00:00:00.000Z"

	validated, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), validated.DateOfBirth)
}

func TestRegistrationValidator_PasswordComplexity(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"password", false},
		{"Password1", false},
		{"Password!", false},
		{"PASSWORD1!", false},
		{"Pass1!", false},
		{"Password1!", true},
		{`Pa"ss{w}0rd`, true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			v := newTestRegistrationValidator(newMemPatientRepo())
			req := validRequest()
			req.Password = tt.password

			_, err := v.Validate(context.Background(), req)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperror.ErrWeakPassword)
		})
	}
}

func TestRegistrationValidator_StopsAtFirstFailingStage(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())
	req := validRequest()
	req.DateOfBirth = fixedNow.AddDate(-10, 0, 0).Format("2006-01-02")
	req.Password = "weak"

	_, err := v.Validate(context.Background(), req)
	require.ErrorIs(t, err, apperror.ErrUnderage)
}

func TestRegistrationValidator_NormalisesInput(t *testing.T) {
	v := newTestRegistrationValidator(newMemPatientRepo())
	req := validRequest()
	req.FullName = "  Jane Doe  "
	req.Email = "  Jane@Example.COM "

	validated, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", validated.FullName)
	require.Equal(t, "jane@example.com", validated.Email)
	require.Equal(t, "  Jane@Example.COM ", req.Email)
}

func newPatientFrom(v *ValidatedRegistration) *entity.Patient {
	return &entity.Patient{
		FullName:    v.FullName,
		Email:       v.Email,
		Password:    "digest",
		Role:        entity.RolePatient,
		Gender:      v.Gender,
		DateOfBirth: v.DateOfBirth,
		IsActive:    true,
	}
}
