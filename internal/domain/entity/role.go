package entity

// Role tags an account kind. It is fixed at creation.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) String() string {
	return string(r)
}
