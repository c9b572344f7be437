package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data. A user is a doctor
// exactly when this row exists, there is no role flag duplicated here.
type DoctorProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Department string    `gorm:"type:varchar(100);not null;index" json:"department"`
	AvatarURL  string    `gorm:"type:text" json:"avatar_url,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
