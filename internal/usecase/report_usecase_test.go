package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/internal/service"
)

func newReportUsecase(t *testing.T) (ReportUsecase, PatientUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	patientRepo := repository.NewPatientRepository()
	reportRepo := repository.NewReportRepository()
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())

	reportUC := NewReportUsecase(db, log, reportRepo, patientRepo, auditService)
	patientUC := NewPatientUsecase(db, log, patientRepo, reportRepo, auditService)
	return reportUC, patientUC, db
}

func TestCreateReportMovesPatientOutOfPending(t *testing.T) {
	reportUC, patientUC, _ := newReportUsecase(t)
	ctx := sessionContext(1, entity.RoleDoctor)

	first, err := patientUC.CreatePatient(ctx, &dto.PatientCreateRequest{Name: "First", Age: 30, TotalPayment: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := patientUC.CreatePatient(ctx, &dto.PatientCreateRequest{Name: "Second", Age: 40, TotalPayment: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := reportUC.GetPendingPatients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Total != 2 {
		t.Fatalf("expected 2 pending patients, got %d", pending.Total)
	}

	created, err := reportUC.CreateReport(ctx, &dto.ReportCreateRequest{
		PatientID: first.PatientID,
		WBC:       7.2, RBC: 4.8, HGB: 14.1, HCT: 42.0,
		MCV: 88.0, MCH: 29.5, MCHC: 33.5, PLT: 260,
		Diagnosis: "Healthy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PatientName != "First" {
		t.Fatalf("expected patient name on report response, got %q", created.PatientName)
	}

	pending, err = reportUC.GetPendingPatients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Total != 1 || pending.Patients[0].PatientID != second.PatientID {
		t.Fatalf("expected only the second patient pending, got %+v", pending.Patients)
	}
}

func TestCreateReportUnknownPatient(t *testing.T) {
	reportUC, _, _ := newReportUsecase(t)
	ctx := sessionContext(1, entity.RoleDoctor)

	_, err := reportUC.CreateReport(ctx, &dto.ReportCreateRequest{PatientID: 9999, Diagnosis: "Healthy"})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestGetReportByPatient(t *testing.T) {
	reportUC, patientUC, _ := newReportUsecase(t)
	ctx := sessionContext(1, entity.RoleDoctor)

	patient, err := patientUC.CreatePatient(ctx, &dto.PatientCreateRequest{Name: "Carol", Age: 55, TotalPayment: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := reportUC.GetReportByPatient(ctx, patient.PatientID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound before any report, got %v", err)
	}

	if _, err := reportUC.CreateReport(ctx, &dto.ReportCreateRequest{
		PatientID: patient.PatientID,
		WBC:       12.5, HGB: 11.0, PLT: 140,
		Diagnosis: "Anemia Detected",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := reportUC.GetReportByPatient(ctx, patient.PatientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Diagnosis != "Anemia Detected" || report.WBC != 12.5 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestGetAllReports(t *testing.T) {
	reportUC, patientUC, _ := newReportUsecase(t)
	ctx := sessionContext(1, entity.RoleDoctor)

	patient, err := patientUC.CreatePatient(ctx, &dto.PatientCreateRequest{Name: "Dave", Age: 33, TotalPayment: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reportUC.CreateReport(ctx, &dto.ReportCreateRequest{PatientID: patient.PatientID, HGB: 15.0, Diagnosis: "Healthy"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := reportUC.GetAllReports(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 1 || list.Reports[0].PatientID != patient.PatientID {
		t.Fatalf("unexpected report list: %+v", list)
	}
}

func TestCreateReportWritesAuditLog(t *testing.T) {
	reportUC, patientUC, db := newReportUsecase(t)
	ctx := sessionContext(9, entity.RoleDoctor)

	patient, err := patientUC.CreatePatient(ctx, &dto.PatientCreateRequest{Name: "Erin", Age: 28, TotalPayment: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reportUC.CreateReport(ctx, &dto.ReportCreateRequest{PatientID: patient.PatientID, HGB: 13.0, Diagnosis: "Anemia Detected"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionReportCreate).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 report audit entry, got %d", count)
	}
}
