package converter

import (
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		FirstName:       appointment.FirstName,
		LastName:        appointment.LastName,
		Email:           appointment.Email,
		Phone:           appointment.Phone,
		NIC:             appointment.NIC,
		DOB:             appointment.DOB.Format("2006-01-02"),
		Gender:          appointment.Gender,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		Department:      appointment.Department,
		DoctorFirstName: appointment.DoctorFirstName,
		DoctorLastName:  appointment.DoctorLastName,
		Address:         appointment.Address,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		HasVisited:      appointment.HasVisited,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a list of appointments
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
