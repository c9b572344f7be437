package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shivam77kk/healthcare-online/internal/converter"
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	"github.com/shivam77kk/healthcare-online/internal/domain/repository"
	"github.com/shivam77kk/healthcare-online/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorConflict      = errors.New("doctor conflict please contact through email or phone")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotInContext = errors.New("patient not found in request context")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// BookAppointment resolves the named doctor and creates the appointment.
//
// The doctor lookup returns a list on purpose: zero matches is a missing
// doctor, more than one is an ambiguous booking that the patient has to
// resolve out of band. Lookup and insert share one transaction so a doctor
// deleted mid-booking cannot produce a dangling reference.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, ErrPatientNotInContext
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctors, err := u.doctorRepo.FindByNameAndDepartment(tx, req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		u.log.Warnf("Failed to look up doctor %s %s (%s): %+v", req.DoctorFirstName, req.DoctorLastName, req.Department, err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorNotFound
	}
	if len(doctors) > 1 {
		return nil, ErrDoctorConflict
	}

	appointment := &entity.Appointment{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NIC:             req.NIC,
		DOB:             dob,
		Gender:          req.Gender,
		AppointmentDate: appointmentDate,
		Department:      req.Department,
		DoctorFirstName: req.DoctorFirstName,
		DoctorLastName:  req.DoctorLastName,
		Address:         req.Address,
		DoctorID:        doctors[0].UserID,
		PatientID:       *patientID,
		HasVisited:      req.HasVisited,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment.Department); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, patient=%s", appointment.ID, appointment.DoctorID, appointment.PatientID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetMyAppointments returns the logged-in patient's own appointments
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, ErrPatientNotInContext
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), *patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	if req.HasVisited != nil {
		appointment.HasVisited = *req.HasVisited
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	actorID, _ := userIDFromContext(ctx)
	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionAppointmentUpdate, "appointment", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affectedRows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	actorID, _ := userIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionAppointmentDelete, "appointment", id.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
