package dashboard

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type TrendPointRepo interface {
	GetByDate(ctx context.Context, tx *gorm.DB, date string) (*domain.TrendPoint, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.TrendPoint, error)
	UpsertByDate(ctx context.Context, tx *gorm.DB, point *domain.TrendPoint) (*domain.TrendPoint, error)
	ReplaceAll(ctx context.Context, tx *gorm.DB, points []*domain.TrendPoint) error
}

type trendPointRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrendPointRepo(db *gorm.DB, baseLog *logger.Logger) TrendPointRepo {
	return &trendPointRepo{db: db, log: baseLog.With("repo", "TrendPointRepo")}
}

func (r *trendPointRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) (*domain.TrendPoint, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out domain.TrendPoint
	if err := t.WithContext(ctx).Where("date = ?", date).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *trendPointRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.TrendPoint, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.TrendPoint
	if err := t.WithContext(ctx).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trendPointRepo) UpsertByDate(ctx context.Context, tx *gorm.DB, point *domain.TrendPoint) (*domain.TrendPoint, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	err := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"lv_production_value", "msf_p2", "msf_p7",
				"assembly_p2", "assembly_p7",
				"auto_crimp_avg", "semi_crimp_avg", "soldering_avg",
				"productivity_value", "schedule_average", "updated_at",
			}),
		}).
		Create(point).Error
	if err != nil {
		return nil, err
	}
	return point, nil
}

// ReplaceAll swaps the whole series for the given points. Callers run this
// inside a transaction so a failed insert never leaves the series empty.
func (r *trendPointRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, points []*domain.TrendPoint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Where("1 = 1").Delete(&domain.TrendPoint{}).Error; err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&points).Error
}
