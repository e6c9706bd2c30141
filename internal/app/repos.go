package app

import (
	"gorm.io/gorm"

	repos "github.com/lineboard/lineboard-backend/internal/data/repos/dashboard"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type Repos struct {
	DailyRecord   repos.DailyRecordRepo
	TrendPoint    repos.TrendPointRepo
	CustomerTrend repos.CustomerTrendRepo
	Note          repos.NoteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DailyRecord:   repos.NewDailyRecordRepo(db, log),
		TrendPoint:    repos.NewTrendPointRepo(db, log),
		CustomerTrend: repos.NewCustomerTrendRepo(db, log),
		Note:          repos.NewNoteRepo(db, log),
	}
}
