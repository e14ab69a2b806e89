package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medilab/lab-api/config"
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/internal/service"
	"github.com/medilab/lab-api/pkg/jwt"
)

func TestDoctorLogin(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	log := newTestLogger()
	sessionService := jwt.NewSessionService(config.SessionConfig{Secret: "test", Expiry: time.Hour, CookieName: "lab_session"})
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repository.NewDoctorRepository(), repository.NewSecretaryRepository(), sessionService, redisClient, auditService)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	doctor := &entity.Doctor{Username: "drhouse", Password: string(hash), Name: "Dr. House"}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}

	user, token, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "drhouse",
		Password: "secret123",
		Role:     entity.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != entity.RoleDoctor || user.Name != "Dr. House" {
		t.Fatalf("unexpected session user: %+v", user)
	}

	claims, err := sessionService.ValidateToken(token)
	if err != nil {
		t.Fatalf("expected a valid session token: %v", err)
	}

	// Login must register the session in the revocation store.
	exists, err := redisClient.Exists(context.Background(), middleware.SessionKey(user.UserID, claims.TokenID)).Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists != 1 {
		t.Fatal("expected session key in redis after login")
	}
}

func TestDoctorLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	log := newTestLogger()
	sessionService := jwt.NewSessionService(config.SessionConfig{Secret: "test", Expiry: time.Hour})
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repository.NewDoctorRepository(), repository.NewSecretaryRepository(), sessionService, redisClient, auditService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err := db.Create(&entity.Doctor{Username: "drhouse", Password: string(hash), Name: "Dr. House"}).Error; err != nil {
		t.Fatal(err)
	}

	_, _, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "drhouse", Password: "wrong", Role: entity.RoleDoctor})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = uc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "x", Role: entity.RoleDoctor})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown doctor, got %v", err)
	}
}

func TestSecretaryLoginCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	log := newTestLogger()
	sessionService := jwt.NewSessionService(config.SessionConfig{Secret: "test", Expiry: time.Hour})
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repository.NewDoctorRepository(), repository.NewSecretaryRepository(), sessionService, redisClient, auditService)

	if err := db.Create(&entity.Secretary{Name: "Mona"}).Error; err != nil {
		t.Fatal(err)
	}

	user, token, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "mona", Role: entity.RoleSecretary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Mona" || user.Role != entity.RoleSecretary {
		t.Fatalf("unexpected session user: %+v", user)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	_, _, err = uc.Login(context.Background(), &dto.LoginRequest{Username: "unknown", Role: entity.RoleSecretary})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown secretary, got %v", err)
	}
}

func TestLoginUnknownRole(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	log := newTestLogger()
	sessionService := jwt.NewSessionService(config.SessionConfig{Secret: "test", Expiry: time.Hour})
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repository.NewDoctorRepository(), repository.NewSecretaryRepository(), sessionService, redisClient, auditService)

	_, _, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "anyone", Role: "admin"})
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	log := newTestLogger()
	sessionService := jwt.NewSessionService(config.SessionConfig{Secret: "test", Expiry: time.Hour})
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repository.NewDoctorRepository(), repository.NewSecretaryRepository(), sessionService, redisClient, auditService)

	if err := db.Create(&entity.Secretary{Name: "Mona"}).Error; err != nil {
		t.Fatal(err)
	}

	user, token, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "Mona", Role: entity.RoleSecretary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := sessionService.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Logout(context.Background(), user.UserID, user.Role, claims.TokenID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := redisClient.Exists(context.Background(), middleware.SessionKey(user.UserID, claims.TokenID)).Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists != 0 {
		t.Fatal("expected session key to be removed after logout")
	}
}
