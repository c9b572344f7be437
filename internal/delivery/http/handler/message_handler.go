package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/usecase"
	"github.com/shivam77kk/healthcare-online/pkg/response"
	"github.com/shivam77kk/healthcare-online/pkg/validator"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

// SendMessage accepts the public contact form
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.SendMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.Success(w, http.StatusOK, "Message sent successfully", message)
}

// GetAllMessages lists contact messages for the admin dashboard
func (h *MessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUsecase.GetAllMessages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}
