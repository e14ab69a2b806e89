package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/converter"
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/domain/repository"
	"github.com/medilab/lab-api/internal/service"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

type ReportUsecase interface {
	GetAllReports(ctx context.Context) (*dto.ReportListResponse, error)
	GetReportByPatient(ctx context.Context, patientID int) (*dto.ReportResponse, error)
	// GetPendingPatients lists patients that still have no report.
	GetPendingPatients(ctx context.Context) (*dto.PatientListResponse, error)
	CreateReport(ctx context.Context, req *dto.ReportCreateRequest) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reportRepo   repository.ReportRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		db:           db,
		log:          log,
		reportRepo:   reportRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *reportUsecase) GetAllReports(ctx context.Context) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all reports: %+v", err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) GetReportByPatient(ctx context.Context, patientID int) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find report by patient: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) GetPendingPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindWithoutReports(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients without reports: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *reportUsecase) CreateReport(ctx context.Context, req *dto.ReportCreateRequest) (*dto.ReportResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient for report: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	report := &entity.Report{
		PatientID: req.PatientID,
		WBC:       req.WBC,
		RBC:       req.RBC,
		HGB:       req.HGB,
		HCT:       req.HCT,
		MCV:       req.MCV,
		MCH:       req.MCH,
		MCHC:      req.MCHC,
		PLT:       req.PLT,
		Diagnosis: req.Diagnosis,
	}

	if err := u.reportRepo.Create(tx, report); err != nil {
		u.log.Warnf("Failed to create report: %+v", err)
		return nil, err
	}
	report.Patient = patient

	userID, role := actingUser(ctx)
	resp := converter.ReportToResponse(report)
	if err := u.auditService.LogCreate(ctx, tx, userID, role, entity.AuditActionReportCreate, "report", strconv.Itoa(report.ReportID), resp); err != nil {
		u.log.Warnf("Failed to audit report create: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}
