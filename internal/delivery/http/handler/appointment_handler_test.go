package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/usecase"
	"github.com/shivam77kk/healthcare-online/pkg/response"
	"github.com/shivam77kk/healthcare-online/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentUsecase struct {
	BookAppointmentFn   func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentFn func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointmentFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAppointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if f.BookAppointmentFn != nil {
		return f.BookAppointmentFn(ctx, req)
	}
	return nil, nil
}

func (f *fakeAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (f *fakeAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (f *fakeAppointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if f.UpdateAppointmentFn != nil {
		return f.UpdateAppointmentFn(ctx, id, req)
	}
	return nil, usecase.ErrAppointmentNotFound
}

func (f *fakeAppointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if f.DeleteAppointmentFn != nil {
		return f.DeleteAppointmentFn(ctx, id)
	}
	return usecase.ErrAppointmentNotFound
}

func newAppointmentHandler(u usecase.AppointmentUsecase) *AppointmentHandler {
	return NewAppointmentHandler(u, validator.NewValidator())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestBookAppointmentDoctorNotFoundMapsTo404(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{
		BookAppointmentFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	})

	raw, err := json.Marshal(validBooking())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/appointment/post", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.BookAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Doctor not found", decodeEnvelope(t, rec).Message)
}

func TestBookAppointmentAmbiguousDoctorMapsTo404(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{
		BookAppointmentFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrDoctorConflict
		},
	})

	raw, err := json.Marshal(validBooking())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/appointment/post", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.BookAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Message, "Doctor conflict")
}

func TestBookAppointmentSuccessMessage(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{
		BookAppointmentFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{ID: uuid.New(), Status: "pending"}, nil
		},
	})

	raw, err := json.Marshal(validBooking())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/appointment/post", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.BookAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Appointment sent successfully", decodeEnvelope(t, rec).Message)
}

func TestUpdateAppointmentInvalidID(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{})

	req := httptest.NewRequest(http.MethodPut, "/appointment/update/not-a-uuid", strings.NewReader("{}"))
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/appointment/update/"+id.String(), strings.NewReader(`{"status":"cancelled"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", decodeEnvelope(t, rec).Message)
}

func TestUpdateAppointmentNotFoundMapsTo404(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/appointment/update/"+id.String(), strings.NewReader(`{"status":"approved"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Appointment not found", decodeEnvelope(t, rec).Message)
}

func TestDeleteAppointmentSuccess(t *testing.T) {
	h := newAppointmentHandler(&fakeAppointmentUsecase{
		DeleteAppointmentFn: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/appointment/delete/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.DeleteAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Appointment deleted successfully", decodeEnvelope(t, rec).Message)
}

func validBooking() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		FirstName:       "Jane",
		LastName:        "Moore",
		Email:           "jane@example.com",
		Phone:           "01234567890",
		NIC:             "1234567890123",
		DOB:             "1990-04-12",
		Gender:          "female",
		AppointmentDate: "2026-09-15",
		Department:      "Cardiology",
		DoctorFirstName: "Gregory",
		DoctorLastName:  "House",
		Address:         "221B Baker Street",
	}
}
