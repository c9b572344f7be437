package repository

import (
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindAll(db *gorm.DB) ([]entity.Message, error)
}
