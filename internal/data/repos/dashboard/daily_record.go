package dashboard

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type DailyRecordRepo interface {
	GetByPeriodKey(ctx context.Context, tx *gorm.DB, periodKey string) (*domain.DailyRecord, error)
	ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.DailyRecord, error)
	Upsert(ctx context.Context, tx *gorm.DB, rec *domain.DailyRecord) (*domain.DailyRecord, error)
}

type dailyRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDailyRecordRepo(db *gorm.DB, baseLog *logger.Logger) DailyRecordRepo {
	return &dailyRecordRepo{db: db, log: baseLog.With("repo", "DailyRecordRepo")}
}

func (r *dailyRecordRepo) GetByPeriodKey(ctx context.Context, tx *gorm.DB, periodKey string) (*domain.DailyRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out domain.DailyRecord
	if err := t.WithContext(ctx).Where("period_key = ?", periodKey).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *dailyRecordRepo) ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.DailyRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.DailyRecord
	if err := t.WithContext(ctx).
		Where("period_key LIKE ?", monthKey+"-%").
		Order("period_key ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes the record for its period key, replacing every stored
// section on conflict. Derived figures are never stored, so a full section
// overwrite is always safe here; merge policy lives above the repo.
func (r *dailyRecordRepo) Upsert(ctx context.Context, tx *gorm.DB, rec *domain.DailyRecord) (*domain.DailyRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	err := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "period_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"daily_values", "monthly_totals", "shift_breakdown",
				"cuts_averages", "breakdown_time", "updated_at",
			}),
		}).
		Create(rec).Error
	if err != nil {
		return nil, err
	}
	return rec, nil
}
