package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	"github.com/shivam77kk/healthcare-online/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB opens a gorm.DB backed by sqlmock so transaction boundaries can
// be asserted without a real database.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	CreateFn      func(db *gorm.DB, user *entity.User) error
	FindByEmailFn func(db *gorm.DB, email string) (*entity.User, error)
	FindByIDFn    func(db *gorm.DB, id uuid.UUID) (*entity.User, error)

	createCalls int
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	f.createCalls++
	if f.CreateFn != nil {
		return f.CreateFn(db, user)
	}
	user.ID = uuid.New()
	return nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(db, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(db, id)
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	CreateFn                  func(db *gorm.DB, profile *entity.DoctorProfile) error
	FindAllFn                 func(db *gorm.DB) ([]entity.DoctorProfile, error)
	FindByNameAndDepartmentFn func(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error)
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	if f.CreateFn != nil {
		return f.CreateFn(db, profile)
	}
	profile.UserID = uuid.New()
	return nil
}

func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(db)
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.DoctorProfile, error) {
	if f.FindByNameAndDepartmentFn != nil {
		return f.FindByNameAndDepartmentFn(db, firstName, lastName, department)
	}
	return nil, nil
}

type fakeAppointmentRepo struct {
	CreateFn          func(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFn        func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAllFn         func(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientIDFn func(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	UpdateFn          func(db *gorm.DB, appointment *entity.Appointment) error
	DeleteFn          func(db *gorm.DB, id uuid.UUID) (int64, error)

	createCalls int
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	f.createCalls++
	if f.CreateFn != nil {
		return f.CreateFn(db, appointment)
	}
	appointment.ID = uuid.New()
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(db, id)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(db)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if f.FindByPatientIDFn != nil {
		return f.FindByPatientIDFn(db, patientID)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(db, appointment)
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(db, id)
	}
	return 1, nil
}

type fakeTokenStore struct {
	StoreFn     func(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	IsValidFn   func(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	RevokeFn    func(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	RevokeAllFn func(ctx context.Context, userID uuid.UUID) error

	storeCalls     int
	revokeCalls    int
	revokeAllCalls int
}

func (f *fakeTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	f.storeCalls++
	if f.StoreFn != nil {
		return f.StoreFn(ctx, userID, tokenID, tokenType, ttl)
	}
	return nil
}

func (f *fakeTokenStore) IsValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	if f.IsValidFn != nil {
		return f.IsValidFn(ctx, userID, tokenID, tokenType)
	}
	return true, nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	f.revokeCalls++
	if f.RevokeFn != nil {
		return f.RevokeFn(ctx, userID, tokenID, tokenType)
	}
	return nil
}

func (f *fakeTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	f.revokeAllCalls++
	if f.RevokeAllFn != nil {
		return f.RevokeAllFn(ctx, userID)
	}
	return nil
}

type fakeAuditService struct {
	entries int
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	f.entries++
	return nil
}

func (f *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	f.entries++
	return nil
}

func (f *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	f.entries++
	return nil
}

type fakeAvatarStorage struct {
	UploadFn func(ctx context.Context, filename, contentType string, file io.Reader, size int64) (string, error)

	uploadCalls int
}

func (f *fakeAvatarStorage) Upload(ctx context.Context, filename, contentType string, file io.Reader, size int64) (string, error) {
	f.uploadCalls++
	if f.UploadFn != nil {
		return f.UploadFn(ctx, filename, contentType, file, size)
	}
	return "http://minio/avatars/" + filename, nil
}
