package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/converter"
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/domain/repository"
	"github.com/medilab/lab-api/internal/service"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrSecretaryNotFound = errors.New("secretary not found")
	ErrPatientHasReports = errors.New("patient has existing reports")
)

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
	ApplyPayment(ctx context.Context, id int, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	reportRepo   repository.ReportRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	reportRepo repository.ReportRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		reportRepo:   reportRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		Name:         req.Name,
		Age:          req.Age,
		Phone:        req.Phone,
		TotalPayment: req.TotalPayment,
		// A new patient has paid nothing yet.
		Remaining:   req.TotalPayment,
		SecretaryID: req.SecretaryID,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isForeignKeyError(err, "secertary") {
			return nil, ErrSecretaryNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// Reload with the secretary relation for the response.
	created, err := u.patientRepo.FindByID(tx, patient.PatientID)
	if err != nil {
		u.log.Warnf("Failed to reload created patient: %+v", err)
		return nil, err
	}

	userID, role := actingUser(ctx)
	if err := u.auditService.LogCreate(ctx, tx, userID, role, entity.AuditActionPatientCreate, "patient", strconv.Itoa(patient.PatientID), converter.PatientToResponse(created)); err != nil {
		u.log.Warnf("Failed to audit patient create: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(created), nil
}

// UpdatePatient edits the patient and recomputes remaining so that the
// amount already paid is preserved: remaining = newTotal - paid.
func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)
	paid := patient.TotalPayment.Sub(patient.Remaining)

	patient.Name = req.Name
	patient.Age = req.Age
	patient.Phone = req.Phone
	patient.TotalPayment = req.TotalPayment
	patient.Remaining = req.TotalPayment.Sub(paid)

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	userID, role := actingUser(ctx)
	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, userID, role, entity.AuditActionPatientUpdate, "patient", strconv.Itoa(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to audit patient update: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeletePatient removes a patient. Deletion is refused while reports
// reference the patient, so report rows can never be orphaned.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	reportCount, err := u.reportRepo.CountByPatientID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count patient reports: %+v", err)
		return err
	}
	if reportCount > 0 {
		return ErrPatientHasReports
	}

	if _, err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	userID, role := actingUser(ctx)
	if err := u.auditService.LogDelete(ctx, tx, userID, role, entity.AuditActionPatientDelete, "patient", strconv.Itoa(id), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to audit patient delete: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ApplyPayment subtracts the amount from remaining with a single atomic
// UPDATE expression. Remaining may go negative, overpayments are kept
// visible instead of being clamped.
func (u *patientUsecase) ApplyPayment(ctx context.Context, id int, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.patientRepo.ApplyPayment(tx, id, req.Amount)
	if err != nil {
		u.log.Warnf("Failed to apply payment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload patient after payment: %+v", err)
		return nil, err
	}

	userID, role := actingUser(ctx)
	metadata := map[string]interface{}{
		"amount":        req.Amount.String(),
		"new_remaining": patient.Remaining.String(),
	}
	if err := u.auditService.LogUpdate(ctx, tx, userID, role, entity.AuditActionPayment, "patient", strconv.Itoa(id), nil, metadata); err != nil {
		u.log.Warnf("Failed to audit payment: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.PaymentResponse{
		PatientID:    id,
		NewRemaining: patient.Remaining,
	}, nil
}

// actingUser pulls the audit identity out of the request context.
func actingUser(ctx context.Context) (*int, string) {
	role, _ := middleware.GetRoleFromContext(ctx)
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID, role
	}
	return nil, role
}

// isForeignKeyError checks for a PostgreSQL foreign key violation on
// the named constraint.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
