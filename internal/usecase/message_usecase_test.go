package usecase

import (
	"context"
	"testing"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMessageRepo struct {
	CreateFn  func(db *gorm.DB, message *entity.Message) error
	FindAllFn func(db *gorm.DB) ([]entity.Message, error)
}

func (f *fakeMessageRepo) Create(db *gorm.DB, message *entity.Message) error {
	if f.CreateFn != nil {
		return f.CreateFn(db, message)
	}
	message.ID = 1
	return nil
}

func (f *fakeMessageRepo) FindAll(db *gorm.DB) ([]entity.Message, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(db)
	}
	return nil, nil
}

func TestSendMessagePersistsSubmission(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	audit := &fakeAuditService{}
	u := NewMessageUsecase(db, newTestLogger(), &fakeMessageRepo{}, audit)

	resp, err := u.SendMessage(context.Background(), &dto.SendMessageRequest{
		FirstName: "Jane",
		LastName:  "Moore",
		Email:     "jane@example.com",
		Phone:     "01234567890",
		Message:   "I would like a second opinion.",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, 1, audit.entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllMessagesCountsTotal(t *testing.T) {
	db, _ := newTestDB(t)

	repo := &fakeMessageRepo{
		FindAllFn: func(db *gorm.DB) ([]entity.Message, error) {
			return []entity.Message{{ID: 1}, {ID: 2}}, nil
		},
	}
	u := NewMessageUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	resp, err := u.GetAllMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Messages, 2)
}
