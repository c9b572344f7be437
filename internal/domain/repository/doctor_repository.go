package repository

import (
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	// FindByNameAndDepartment returns every doctor matching the given name
	// and department. Callers decide what zero or multiple matches mean.
	FindByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error)
}
