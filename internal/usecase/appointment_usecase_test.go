package usecase

import (
	"context"
	"testing"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/delivery/http/middleware"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type appointmentTestDeps struct {
	mock            sqlmock.Sqlmock
	appointmentRepo *fakeAppointmentRepo
	doctorRepo      *fakeDoctorRepo
	audit           *fakeAuditService
	usecase         AppointmentUsecase
}

func newAppointmentTestDeps(t *testing.T) *appointmentTestDeps {
	db, mock := newTestDB(t)
	deps := &appointmentTestDeps{
		mock:            mock,
		appointmentRepo: &fakeAppointmentRepo{},
		doctorRepo:      &fakeDoctorRepo{},
		audit:           &fakeAuditService{},
	}
	deps.usecase = NewAppointmentUsecase(db, newTestLogger(), deps.appointmentRepo, deps.doctorRepo, deps.audit)
	return deps
}

func patientContext(patientID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, patientID)
}

func bookingRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		FirstName:       "Jane",
		LastName:        "Moore",
		Email:           "jane@example.com",
		Phone:           "01234567890",
		NIC:             "1234567890123",
		DOB:             "1990-04-12",
		Gender:          entity.GenderFemale,
		AppointmentDate: "2026-09-15",
		Department:      "Cardiology",
		DoctorFirstName: "Gregory",
		DoctorLastName:  "House",
		Address:         "221B Baker Street",
	}
}

func TestBookAppointmentSuccess(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	patientID := uuid.New()
	doctorID := uuid.New()
	deps.doctorRepo.FindByNameAndDepartmentFn = func(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error) {
		assert.Equal(t, "Gregory", firstName)
		assert.Equal(t, "House", lastName)
		assert.Equal(t, "Cardiology", department)
		return []entity.DoctorProfile{{UserID: doctorID, Department: department}}, nil
	}

	resp, err := deps.usecase.BookAppointment(patientContext(patientID), bookingRequest())

	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, patientID, resp.PatientID)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestBookAppointmentDoctorNotFound(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	_, err := deps.usecase.BookAppointment(patientContext(uuid.New()), bookingRequest())

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Zero(t, deps.appointmentRepo.createCalls)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestBookAppointmentAmbiguousDoctor(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	deps.doctorRepo.FindByNameAndDepartmentFn = func(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error) {
		return []entity.DoctorProfile{
			{UserID: uuid.New(), Department: department},
			{UserID: uuid.New(), Department: department},
		}, nil
	}

	_, err := deps.usecase.BookAppointment(patientContext(uuid.New()), bookingRequest())

	assert.ErrorIs(t, err, ErrDoctorConflict)
	assert.Zero(t, deps.appointmentRepo.createCalls)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestBookAppointmentWithoutSession(t *testing.T) {
	deps := newAppointmentTestDeps(t)

	_, err := deps.usecase.BookAppointment(context.Background(), bookingRequest())

	assert.ErrorIs(t, err, ErrPatientNotInContext)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestBookAppointmentInvalidDate(t *testing.T) {
	deps := newAppointmentTestDeps(t)

	req := bookingRequest()
	req.AppointmentDate = "15/09/2026"
	_, err := deps.usecase.BookAppointment(patientContext(uuid.New()), req)

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatus(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	id := uuid.New()
	deps.appointmentRepo.FindByIDFn = func(db *gorm.DB, appointmentID uuid.UUID) (*entity.Appointment, error) {
		return &entity.Appointment{ID: appointmentID, Status: entity.AppointmentStatusPending}, nil
	}

	var updated *entity.Appointment
	deps.appointmentRepo.UpdateFn = func(db *gorm.DB, appointment *entity.Appointment) error {
		updated = appointment
		return nil
	}

	resp, err := deps.usecase.UpdateAppointment(patientContext(uuid.New()), id, &dto.UpdateAppointmentRequest{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, updated)
	assert.Equal(t, entity.AppointmentStatusApproved, updated.Status)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	_, err := deps.usecase.UpdateAppointment(context.Background(), uuid.New(), &dto.UpdateAppointmentRequest{Status: "approved"})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestDeleteAppointmentSuccess(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	id := uuid.New()
	deps.appointmentRepo.FindByIDFn = func(db *gorm.DB, appointmentID uuid.UUID) (*entity.Appointment, error) {
		return &entity.Appointment{ID: appointmentID}, nil
	}

	err := deps.usecase.DeleteAppointment(context.Background(), id)

	require.NoError(t, err)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	deps := newAppointmentTestDeps(t)
	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err := deps.usecase.DeleteAppointment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestGetMyAppointmentsFiltersByPatient(t *testing.T) {
	deps := newAppointmentTestDeps(t)

	patientID := uuid.New()
	deps.appointmentRepo.FindByPatientIDFn = func(db *gorm.DB, id uuid.UUID) ([]entity.Appointment, error) {
		assert.Equal(t, patientID, id)
		return []entity.Appointment{{ID: uuid.New(), PatientID: patientID}}, nil
	}

	resp, err := deps.usecase.GetMyAppointments(patientContext(patientID))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}
