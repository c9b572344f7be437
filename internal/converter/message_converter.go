package converter

import (
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
)

// MessageToResponse converts a Message entity to its DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:        message.ID,
		FirstName: message.FirstName,
		LastName:  message.LastName,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// MessagesToResponses converts a list of messages
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *MessageToResponse(&messages[i]))
	}
	return responses
}
