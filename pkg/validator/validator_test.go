package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `json:"fullname" validate:"required,fullname"`
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender" validate:"required,oneof=Male Female Other"`
}

func TestValidate_ReportsEveryFieldByJSONName(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	require.Len(t, fields, 3)
	require.Equal(t, "fullname is required", fields["fullname"])
	require.Equal(t, "email is required", fields["email"])
	require.Equal(t, "gender is required", fields["gender"])
}

func TestValidate_FullName(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"plain", "Jane Doe", true},
		{"tab between names", "Jane\tDoe", true},
		{"accented", "José Álvarez", false},
		{"non latin", "Анна Петрова", false},
		{"too short", "Jo", false},
		{"digits", "Jane Doe 2", false},
		{"punctuation", "Jane-Doe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&sample{FullName: tt.value, Email: "jane@example.com", Gender: "Female"})
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, v.FormatValidationErrors(err), "fullname")
		})
	}
}

func TestValidate_GenderEnum(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{FullName: "Jane Doe", Email: "jane@example.com", Gender: "female"})
	require.Error(t, err)
	require.Equal(t, "gender must be one of: Male, Female, Other", v.FormatValidationErrors(err)["gender"])
}

func TestRegisterMessage_OverridesDefault(t *testing.T) {
	v := NewValidator()
	v.RegisterMessage("email", "required", "Email is required")

	err := v.Validate(&sample{FullName: "Jane Doe", Gender: "Other"})
	require.Error(t, err)
	require.Equal(t, map[string]string{"email": "Email is required"}, v.FormatValidationErrors(err))
}
