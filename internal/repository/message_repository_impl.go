package repository

import (
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	domainRepo "github.com/shivam77kk/healthcare-online/internal/domain/repository"

	"gorm.io/gorm"
)

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindAll(db *gorm.DB) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
