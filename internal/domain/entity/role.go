package entity

// Role represents a user role in the system
type Role struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
)

// Role name constants, as they appear in login requests and token claims
const (
	RoleAdmin   = "Admin"
	RoleDoctor  = "Doctor"
	RolePatient = "Patient"
)

// RoleID maps a role name to its ID, 0 when unknown.
func RoleID(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleDoctor:
		return RoleIDDoctor
	case RolePatient:
		return RoleIDPatient
	}
	return 0
}

// RoleName maps a role ID back to its name, "" when unknown.
func RoleName(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	}
	return ""
}
