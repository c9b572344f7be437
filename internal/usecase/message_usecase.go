package usecase

import (
	"context"

	"github.com/shivam77kk/healthcare-online/internal/converter"
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	"github.com/shivam77kk/healthcare-online/internal/domain/repository"
	"github.com/shivam77kk/healthcare-online/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MessageUsecase interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetAllMessages(ctx context.Context) (*dto.MessageListResponse, error)
}

type messageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	messageRepo  repository.MessageRepository
	auditService service.AuditService
}

func NewMessageUsecase(db *gorm.DB, log *logrus.Logger, messageRepo repository.MessageRepository, auditService service.AuditService) MessageUsecase {
	return &messageUsecase{
		db:           db,
		log:          log,
		messageRepo:  messageRepo,
		auditService: auditService,
	}
}

// SendMessage persists a public contact-form submission. No authentication,
// so the audit row carries no user.
func (u *messageUsecase) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	message := &entity.Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	if err := u.messageRepo.Create(tx, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionMessageCreate, "message", message.Email, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

func (u *messageUsecase) GetAllMessages(ctx context.Context) (*dto.MessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find messages: %+v", err)
		return nil, err
	}

	return &dto.MessageListResponse{
		Messages: converter.MessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}
