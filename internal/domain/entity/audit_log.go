package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records an authentication event for an account
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	AccountID *uuid.UUID `gorm:"type:uuid;index" bson:"accountId,omitempty" json:"accountId,omitempty"`
	Role      Role       `gorm:"type:varchar(20)" bson:"role" json:"role"`
	Action    string     `gorm:"type:varchar(100);not null;index" bson:"action" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" bson:"createdAt" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
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

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

const (
	AuditActionAccountRegister = "account.register"
	AuditActionAccountLogin    = "account.login"
	AuditActionDoctorLogin     = "doctor.login"
)
