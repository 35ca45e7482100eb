package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient is a self-registered account. Password holds the bcrypt digest and
// is only loaded by credential lookups.
type Patient struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	FullName        string         `gorm:"column:fullname;type:varchar(100);not null" bson:"fullname" json:"fullname"`
	Email           string         `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	Password        string         `gorm:"type:text;not null" bson:"password,omitempty" json:"-"`
	Role            Role           `gorm:"type:varchar(20);not null" bson:"role" json:"role"`
	Gender          Gender         `gorm:"type:varchar(10);not null" bson:"gender" json:"gender"`
	DateOfBirth     time.Time      `gorm:"type:date;not null" bson:"dateOfBirth" json:"dateOfBirth"`
	IsActive        bool           `gorm:"not null" bson:"isActive" json:"isActive"`
	IsEmailVerified bool           `gorm:"not null" bson:"isEmailVerified" json:"isEmailVerified"`
	LastLogin       *time.Time     `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	ProfileImage    string         `gorm:"type:text" bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Phone           string         `gorm:"type:varchar(30)" bson:"phone,omitempty" json:"phone,omitempty"`
	Address         Address        `gorm:"embedded;embeddedPrefix:address_" bson:"address" json:"address"`
	MedicalHistory  MedicalHistory `gorm:"embedded;embeddedPrefix:medical_" bson:"medicalHistory" json:"medicalHistory"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) AccountID() uuid.UUID   { return p.ID }
func (p *Patient) AccountEmail() string   { return p.Email }
func (p *Patient) AccountRole() Role      { return RolePatient }
func (p *Patient) PasswordDigest() string { return p.Password }
func (p *Patient) Active() bool           { return p.IsActive }

type Address struct {
	Street  string `gorm:"type:varchar(255)" bson:"street,omitempty" json:"street,omitempty"`
	City    string `gorm:"type:varchar(100)" bson:"city,omitempty" json:"city,omitempty"`
	State   string `gorm:"type:varchar(100)" bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `gorm:"type:varchar(20)" bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

type MedicalHistory struct {
	BloodType         string     `gorm:"type:varchar(5)" bson:"bloodType,omitempty" json:"bloodType,omitempty"`
	Allergies         StringList `gorm:"type:jsonb" bson:"allergies,omitempty" json:"allergies,omitempty"`
	ChronicConditions StringList `gorm:"type:jsonb" bson:"chronicConditions,omitempty" json:"chronicConditions,omitempty"`
}

// PatientPatch lists the fields update may change. Nil fields are left alone.
type PatientPatch struct {
	LastLogin       *time.Time
	IsActive        *bool
	IsEmailVerified *bool
}

// Columns returns the patch as a column map, for stores that take one.
func (p PatientPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.LastLogin != nil {
		cols["last_login"] = *p.LastLogin
	}
	if p.IsActive != nil {
		cols["is_active"] = *p.IsActive
	}
	if p.IsEmailVerified != nil {
		cols["is_email_verified"] = *p.IsEmailVerified
	}
	return cols
}

// Apply copies the set fields onto patient.
func (p PatientPatch) Apply(patient *Patient) {
	if p.LastLogin != nil {
		t := *p.LastLogin
		patient.LastLogin = &t
	}
	if p.IsActive != nil {
		patient.IsActive = *p.IsActive
	}
	if p.IsEmailVerified != nil {
		patient.IsEmailVerified = *p.IsEmailVerified
	}
}

// StringList stores a string slice in a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}
