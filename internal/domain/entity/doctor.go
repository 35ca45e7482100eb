package entity

import (
	"time"

	"github.com/google/uuid"
)

type DoctorStatus string

const (
	DoctorPending  DoctorStatus = "Pending"
	DoctorApproved DoctorStatus = "Approved"
	DoctorRejected DoctorStatus = "Rejected"
)

// Doctor accounts are provisioned outside this service and log in only once approved.
type Doctor struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	FullName  string       `gorm:"type:varchar(100);not null" bson:"fullName" json:"fullName"`
	Email     string       `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	Password  string       `gorm:"column:password_hash;type:text;not null" bson:"passwordHash,omitempty" json:"-"`
	Status    DoctorStatus `gorm:"type:varchar(20);not null" bson:"status" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) AccountID() uuid.UUID   { return d.ID }
func (d *Doctor) AccountEmail() string   { return d.Email }
func (d *Doctor) AccountRole() Role      { return RoleDoctor }
func (d *Doctor) PasswordDigest() string { return d.Password }

// Active is false only for rejected doctors; pending ones are gated at login.
func (d *Doctor) Active() bool { return d.Status != DoctorRejected }

func (d *Doctor) Approved() bool { return d.Status == DoctorApproved }
