package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/shivam77kk/healthcare-online/internal/converter"
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	"github.com/shivam77kk/healthcare-online/internal/domain/repository"
	"github.com/shivam77kk/healthcare-online/internal/service"
	"github.com/shivam77kk/healthcare-online/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("user with this role not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

// AvatarFile carries an uploaded avatar image from the multipart form into
// the storage layer.
type AvatarFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	AddNewAdmin(ctx context.Context, req *dto.AddAdminRequest) (*dto.UserResponse, error)
	AddNewDoctor(ctx context.Context, req *dto.AddDoctorRequest, avatar *AvatarFile) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	doctorRepo    repository.DoctorRepository
	jwtService    *jwt.JWTService
	tokenStore    service.TokenStore
	auditService  service.AuditService
	avatarStorage service.AvatarStorage
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
	avatarStorage service.AvatarStorage,
) AuthUsecase {
	return &authUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		auditService:  auditService,
		avatarStorage: avatarStorage,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		RoleID:    entity.RoleIDPatient,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		NIC:       req.NIC,
		DOB:       dob,
		Gender:    req.Gender,
		Password:  string(hashedPassword),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: entity.RoleIDPatient, RoleName: entity.RolePatient}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) AddNewAdmin(ctx context.Context, req *dto.AddAdminRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	admin := &entity.User{
		RoleID:    entity.RoleIDAdmin,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		NIC:       req.NIC,
		DOB:       dob,
		Gender:    req.Gender,
		Password:  string(hashedPassword),
	}

	if err := u.userRepo.Create(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	actorID, _ := userIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionAdminCreate, "user", admin.ID.String(), admin.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	admin.Role = entity.Role{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin}

	return converter.UserToResponse(admin), nil
}

func (u *authUsecase) AddNewDoctor(ctx context.Context, req *dto.AddDoctorRequest, avatar *AvatarFile) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Upload first so a storage failure never leaves a half-created doctor.
	avatarURL := ""
	if avatar != nil {
		avatarURL, err = u.avatarStorage.Upload(ctx, avatar.Filename, avatar.ContentType, avatar.Reader, avatar.Size)
		if err != nil {
			u.log.Warnf("Failed to upload doctor avatar: %+v", err)
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Create user with doctor profile in single insert using GORM association
	profile := &entity.DoctorProfile{
		Department: req.Department,
		AvatarURL:  avatarURL,
		User: entity.User{
			RoleID:    entity.RoleIDDoctor,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			NIC:       req.NIC,
			DOB:       dob,
			Gender:    req.Gender,
			Password:  string(hashedPassword),
		},
	}

	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actorID, _ := userIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionDoctorCreate, "doctor_profile", profile.UserID.String(), profile.User.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User.Role = entity.Role{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Valid credentials are not enough, the session must be opened for the
	// role the caller asked for.
	if req.Role != user.RoleName() {
		return nil, ErrRoleMismatch
	}

	resp, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return resp, nil
}

// issueTokens generates an access/refresh token pair for the user, records
// both in the Redis allow-list, and builds the auth response.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	role := user.RoleName()

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, user.ID, accessTokenID, jwt.AccessToken, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.tokenStore.Store(ctx, user.ID, refreshTokenID, jwt.RefreshToken, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         converter.UserToResponse(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error {
	// Dropping every token ID for the user kills the refresh token too, so a
	// kept refresh token body cannot resurrect the session after logout.
	if err := u.tokenStore.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, "user", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenStore.IsValid(ctx, claims.UserID, claims.TokenID, jwt.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token must not be replayable.
	if err := u.tokenStore.Revoke(ctx, claims.UserID, claims.TokenID, jwt.RefreshToken); err != nil {
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.UserID, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, claims.UserID, accessTokenID, jwt.AccessToken, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.tokenStore.Store(ctx, claims.UserID, refreshTokenID, jwt.RefreshToken, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		Role:         claims.Role,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
