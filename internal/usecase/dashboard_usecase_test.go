package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/repository"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	mr, redisClient := newTestRedis(t)
	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewReportRepository(), redisClient)

	patients := []entity.Patient{{Name: "A", Age: 20}, {Name: "B", Age: 30}}
	if err := db.Create(&patients).Error; err != nil {
		t.Fatalf("failed to seed patients: %v", err)
	}
	report := &entity.Report{PatientID: patients[0].PatientID, HGB: 14.0, Diagnosis: "Healthy"}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}

	stats, err := uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPatients != 2 || stats.TotalReports != 1 || stats.PendingReports != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	// A second call inside the TTL serves the cached snapshot.
	if err := db.Create(&entity.Patient{Name: "C", Age: 40}).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	stats, err = uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPatients != 2 {
		t.Fatalf("expected cached total of 2 patients, got %d", stats.TotalPatients)
	}

	// After the TTL expires the counters are recomputed.
	mr.FastForward(31 * time.Second)
	stats, err = uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPatients != 3 || stats.PendingReports != 2 {
		t.Fatalf("expected recomputed stats, got %+v", stats)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	_, redisClient := newTestRedis(t)
	uc := NewDashboardUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewReportRepository(), redisClient)

	stats, err := uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPatients != 0 || stats.TotalReports != 0 || stats.PendingReports != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}
