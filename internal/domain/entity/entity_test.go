package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientPatch(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	inactive := false
	patch := PatientPatch{LastLogin: &now, IsActive: &inactive}

	assert.Equal(t, map[string]interface{}{"last_login": now, "is_active": false}, patch.Columns())

	patient := &Patient{IsActive: true, IsEmailVerified: true}
	patch.Apply(patient)
	require.NotNil(t, patient.LastLogin)
	assert.Equal(t, now, *patient.LastLogin)
	assert.False(t, patient.IsActive)
	assert.True(t, patient.IsEmailVerified)

	assert.Empty(t, PatientPatch{}.Columns())
}

func TestDoctorStatus(t *testing.T) {
	tests := []struct {
		status   DoctorStatus
		active   bool
		approved bool
	}{
		{DoctorPending, true, false},
		{DoctorApproved, true, true},
		{DoctorRejected, false, false},
	}

	for _, tt := range tests {
		d := &Doctor{Status: tt.status}
		assert.Equal(t, tt.active, d.Active(), tt.status)
		assert.Equal(t, tt.approved, d.Approved(), tt.status)
	}
}

func TestStringList_ScanValue(t *testing.T) {
	v, err := StringList{"penicillin", "latex"}.Value()
	require.NoError(t, err)

	var l StringList
	require.NoError(t, l.Scan(v))
	assert.Equal(t, StringList{"penicillin", "latex"}, l)

	empty, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	require.Error(t, l.Scan(42))
}
