package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/repository"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardUsecase interface {
	// GetStats returns the three dashboard counters computed inside a
	// single transaction so the triple is a consistent snapshot.
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	reportRepo  repository.ReportRepository
	redisClient *redis.Client
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	reportRepo repository.ReportRepository,
	redisClient *redis.Client,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		reportRepo:  reportRepo,
		redisClient: redisClient,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	// Serve from cache when fresh. Cache failures are never fatal, the
	// counts can always be recomputed.
	if cached, err := u.redisClient.Get(ctx, dashboardStatsKey).Result(); err == nil {
		var stats dto.DashboardStatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read dashboard stats cache: %+v", err)
	}

	stats := &dto.DashboardStatsResponse{}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if stats.TotalPatients, err = u.patientRepo.CountAll(tx); err != nil {
			return err
		}
		if stats.TotalReports, err = u.reportRepo.CountAll(tx); err != nil {
			return err
		}
		if stats.PendingReports, err = u.patientRepo.CountWithoutReports(tx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to compute dashboard stats: %+v", err)
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := u.redisClient.Set(ctx, dashboardStatsKey, payload, dashboardCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache dashboard stats: %+v", err)
		}
	}

	return stats, nil
}
