package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

const (
	minimumAge        = 18
	minPasswordLength = 8
	passwordSymbols   = `!@#$%^&*(),.?":{}|<>`
)

var registrationMessages = map[string]string{
	"fullname":    "Full name is required",
	"email":       "Email is required",
	"password":    "Password is required",
	"gender":      "Gender is required",
	"dateOfBirth": "Date of birth is required",
}

// ValidatedRegistration is a registration request that passed every check,
// with email and name normalised.
type ValidatedRegistration struct {
	FullName    string
	Email       string
	Password    string
	Gender      entity.Gender
	DateOfBirth time.Time
}

// RegistrationValidator checks a patient registration in stages: field
// format, email uniqueness, age, then password strength. It stops at the
// first failing stage; the format stage reports every bad field.
type RegistrationValidator struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewRegistrationValidator(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	now func() time.Time,
) *RegistrationValidator {
	for field, msg := range registrationMessages {
		customValidator.RegisterMessage(field, "required", msg)
	}
	if now == nil {
		now = time.Now
	}
	return &RegistrationValidator{
		log:         log,
		validator:   customValidator,
		patientRepo: patientRepo,
		now:         now,
	}
}

func (v *RegistrationValidator) Validate(ctx context.Context, req *dto.RegisterPatientRequest) (*ValidatedRegistration, error) {
	normalized := *req
	normalized.FullName = strings.TrimSpace(req.FullName)
	normalized.Email = normalizeEmail(req.Email)

	fields := make(map[string]string)
	if err := v.validator.Validate(&normalized); err != nil {
		fields = v.validator.FormatValidationErrors(err)
	}
	var dob time.Time
	if _, missing := fields["dateOfBirth"]; !missing {
		parsed, err := parseDate(normalized.DateOfBirth)
		if err != nil {
			fields["dateOfBirth"] = "Date of birth must be a valid date (YYYY-MM-DD)"
		}
		dob = parsed
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	existing, err := v.patientRepo.FindByEmail(ctx, normalized.Email)
	if err != nil {
		v.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, apperror.Internal("Internal server error", err)
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateAccount
	}

	if !isAdult(dob, v.now()) {
		return nil, apperror.ErrUnderage
	}

	if !isStrongPassword(normalized.Password) {
		return nil, apperror.ErrWeakPassword
	}

	return &ValidatedRegistration{
		FullName:    normalized.FullName,
		Email:       normalized.Email,
		Password:    normalized.Password,
		Gender:      entity.Gender(normalized.Gender),
		DateOfBirth: dob,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns
// midnight UTC of the calendar date as written.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// isAdult compares calendar dates: the 18th birthday itself counts as adult.
func isAdult(dob, now time.Time) bool {
	return !dob.AddDate(minimumAge, 0, 0).After(now.UTC())
}

func isStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
