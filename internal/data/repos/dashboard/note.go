package dashboard

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, note *domain.Note) (*domain.Note, error)
	ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.Note, error)
	FullDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int, error)
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	return &noteRepo{db: db, log: baseLog.With("repo", "NoteRepo")}
}

func (r *noteRepo) Create(ctx context.Context, tx *gorm.DB, note *domain.Note) (*domain.Note, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepo) ListByMonth(ctx context.Context, tx *gorm.DB, monthKey string) ([]*domain.Note, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Note
	if err := t.WithContext(ctx).
		Where("month_key = ?", monthKey).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *noteRepo) FullDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	res := t.WithContext(ctx).Where("id = ?", id).Delete(&domain.Note{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
