package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	repos "github.com/lineboard/lineboard-backend/internal/data/repos/dashboard"
	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/pkg/apierr"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type NoteService interface {
	ListNotes(ctx context.Context, monthKey string) ([]*domain.Note, error)
	AddNote(ctx context.Context, monthKey, text string, metadata datatypes.JSON) (*domain.Note, error)
	DeleteNote(ctx context.Context, monthKey string, id uuid.UUID) error
}

type noteService struct {
	db    *gorm.DB
	log   *logger.Logger
	notes repos.NoteRepo
}

func NewNoteService(db *gorm.DB, baseLog *logger.Logger, noteRepo repos.NoteRepo) NoteService {
	return &noteService{
		db:    db,
		log:   baseLog.With("service", "NoteService"),
		notes: noteRepo,
	}
}

func (s *noteService) ListNotes(ctx context.Context, monthKey string) ([]*domain.Note, error) {
	if err := validMonthKey(monthKey); err != nil {
		return nil, err
	}
	notes, err := s.notes.ListByMonth(ctx, nil, monthKey)
	if err != nil {
		return nil, fmt.Errorf("list notes for %s: %w", monthKey, err)
	}
	return notes, nil
}

func (s *noteService) AddNote(ctx context.Context, monthKey, text string, metadata datatypes.JSON) (*domain.Note, error) {
	if err := validMonthKey(monthKey); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apierr.BadRequest("empty_note", fmt.Errorf("note requires a text field"))
	}

	note := &domain.Note{
		ID:        uuid.New(),
		MonthKey:  monthKey,
		Text:      text,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.notes.Create(ctx, nil, note); err != nil {
		return nil, fmt.Errorf("create note for %s: %w", monthKey, err)
	}
	s.log.Info("Added note", "month_key", monthKey, "note_id", note.ID)
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, monthKey string, id uuid.UUID) error {
	if err := validMonthKey(monthKey); err != nil {
		return err
	}
	n, err := s.notes.FullDeleteByID(ctx, nil, id)
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	if n == 0 {
		return apierr.NotFound("note_not_found", fmt.Errorf("no note %s in %s", id, monthKey))
	}
	s.log.Info("Deleted note", "month_key", monthKey, "note_id", id)
	return nil
}
