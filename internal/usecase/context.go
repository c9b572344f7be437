package usecase

import (
	"context"

	"github.com/shivam77kk/healthcare-online/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// userIDFromContext returns the acting user's ID as a nullable pointer for
// audit rows, nil when the request is unauthenticated.
func userIDFromContext(ctx context.Context) (*uuid.UUID, bool) {
	id, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, false
	}
	return &id, true
}
