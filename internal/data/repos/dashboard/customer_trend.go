package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type CustomerTrendRepo interface {
	ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.CustomerTrendEntry, error)
	ReplaceMonth(ctx context.Context, tx *gorm.DB, monthKey string, entries []*domain.CustomerTrendEntry) error
}

type customerTrendRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerTrendRepo(db *gorm.DB, baseLog *logger.Logger) CustomerTrendRepo {
	return &customerTrendRepo{db: db, log: baseLog.With("repo", "CustomerTrendRepo")}
}

func (r *customerTrendRepo) ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.CustomerTrendEntry, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.CustomerTrendEntry
	if err := t.WithContext(ctx).
		Where("month_key = ?", monthKey).
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceMonth swaps the month's customer breakdown wholesale. Entry order
// and name uniqueness are settled by the caller before the write; callers
// run this inside a transaction.
func (r *customerTrendRepo) ReplaceMonth(ctx context.Context, tx *gorm.DB, monthKey string, entries []*domain.CustomerTrendEntry) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).
		Where("month_key = ?", monthKey).
		Delete(&domain.CustomerTrendEntry{}).Error; err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&entries).Error
}
