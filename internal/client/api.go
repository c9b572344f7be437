package client

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
)

// Public endpoints.

func (s *Session) Doctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	var out dto.DoctorListResponse
	if err := s.client.do(ctx, http.MethodGet, "/user/doctors", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := s.client.do(ctx, http.MethodPost, "/message/send", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patient endpoints.

func (s *Session) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := s.do(ctx, http.MethodPost, "/appointment/post", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) MyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	var out dto.AppointmentListResponse
	if err := s.do(ctx, http.MethodGet, "/appointment/my", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Admin endpoints.

func (s *Session) AddAdmin(ctx context.Context, req *dto.AddAdminRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := s.do(ctx, http.MethodPost, "/user/admin/addnew", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDoctor onboards a doctor, optionally uploading an avatar image.
func (s *Session) AddDoctor(ctx context.Context, req *dto.AddDoctorRequest, avatarName string, avatar io.Reader) (*dto.UserResponse, error) {
	fields := map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
		"nic":        req.NIC,
		"dob":        req.DOB,
		"gender":     req.Gender,
		"password":   req.Password,
		"department": req.Department,
	}

	var out dto.UserResponse
	if err := s.client.doMultipart(ctx, "/user/doctor/addnew", fields, "avatar", avatarName, avatar, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) AllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	var out dto.AppointmentListResponse
	if err := s.do(ctx, http.MethodGet, "/appointment/getall", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := s.do(ctx, http.MethodPut, "/appointment/update/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.do(ctx, http.MethodDelete, "/appointment/delete/"+id.String(), nil, nil)
}

func (s *Session) AllMessages(ctx context.Context) (*dto.MessageListResponse, error) {
	var out dto.MessageListResponse
	if err := s.do(ctx, http.MethodGet, "/message/getall", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
