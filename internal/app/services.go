package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
	"github.com/lineboard/lineboard-backend/internal/services"
)

type Services struct {
	Lock      services.KeyLock
	Dashboard services.DashboardService
	Trend     services.TrendService
	Notes     services.NoteService
}

func wireServices(db *gorm.DB, log *logger.Logger, rdb redis.UniversalClient, repoSet Repos) Services {
	log.Info("Wiring services...")
	lock := services.NewKeyLock(rdb, log)
	return Services{
		Lock: lock,
		Dashboard: services.NewDashboardService(
			db, log, lock,
			repoSet.DailyRecord,
			repoSet.TrendPoint,
			repoSet.CustomerTrend,
			repoSet.Note,
		),
		Trend: services.NewTrendService(
			db, log, lock,
			repoSet.TrendPoint,
			repoSet.CustomerTrend,
		),
		Notes: services.NewNoteService(db, log, repoSet.Note),
	}
}
