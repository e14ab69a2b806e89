package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/domain/repository"
	"github.com/medilab/lab-api/internal/service"
	"github.com/medilab/lab-api/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

type AuthUsecase interface {
	// Login verifies credentials for the given role and opens a
	// session. Returns the session user and the signed session token.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionUser, string, error)
	Logout(ctx context.Context, userID int, role, tokenID string) error
}

type authUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	secretaryRepo  repository.SecretaryRepository
	sessionService *jwt.SessionService
	redisClient    *redis.Client
	auditService   service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	secretaryRepo repository.SecretaryRepository,
	sessionService *jwt.SessionService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		secretaryRepo:  secretaryRepo,
		sessionService: sessionService,
		redisClient:    redisClient,
		auditService:   auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionUser, string, error) {
	var user *dto.SessionUser

	switch req.Role {
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
		if err != nil {
			u.log.Warnf("Failed to find doctor by username: %+v", err)
			return nil, "", err
		}
		if doctor == nil {
			return nil, "", ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
			return nil, "", ErrInvalidCredentials
		}
		user = &dto.SessionUser{
			UserID: doctor.DoctorID,
			Name:   doctor.Name,
			Role:   entity.RoleDoctor,
		}

	case entity.RoleSecretary:
		// Secretaries log in by name only. The name match is
		// case-insensitive and no password is checked.
		secretary, err := u.secretaryRepo.FindByName(u.db.WithContext(ctx), req.Username)
		if err != nil {
			u.log.Warnf("Failed to find secretary by name: %+v", err)
			return nil, "", err
		}
		if secretary == nil {
			return nil, "", ErrInvalidCredentials
		}
		user = &dto.SessionUser{
			UserID: secretary.SecretaryID,
			Name:   secretary.Name,
			Role:   entity.RoleSecretary,
		}

	default:
		return nil, "", ErrUnknownRole
	}

	token, tokenID, err := u.sessionService.GenerateSessionToken(user.UserID, user.Name, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, "", err
	}

	sessionKey := middleware.SessionKey(user.UserID, tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.sessionService.GetExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, "", err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.UserID, user.Role, entity.AuditActionUserLogin, "session", tokenID, user); err != nil {
		u.log.Warnf("Failed to audit login: %+v", err)
	}

	return user, token, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, role, tokenID string) error {
	sessionKey := middleware.SessionKey(userID, tokenID)
	if err := u.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		u.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, role, entity.AuditActionUserLogout, "session", tokenID, strconv.Itoa(userID)); err != nil {
		u.log.Warnf("Failed to audit logout: %+v", err)
	}

	return nil
}
