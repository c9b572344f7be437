package repository

import (
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	domainRepo "github.com/shivam77kk/healthcare-online/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").Order("department ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorRepository) FindByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.first_name = ? AND users.last_name = ? AND users.role_id = ? AND doctor_profiles.department = ?",
			firstName, lastName, entity.RoleIDDoctor, department).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
