package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/dashboard"
	repos "github.com/lineboard/lineboard-backend/internal/data/repos/dashboard"
	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
	"github.com/lineboard/lineboard-backend/internal/pkg/apierr"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

// RecordView is a daily record as served to clients: the stored sections
// plus the derived block recomputed for this read.
type RecordView struct {
	PeriodKey string                `json:"period_key"`
	Values    domain.DailyValues    `json:"daily_values"`
	Totals    domain.MonthlyTotals  `json:"monthly_totals"`
	Shifts    domain.ShiftBreakdown `json:"shift_breakdown"`
	Cuts      domain.CutsAverages   `json:"cuts_averages"`
	Downtime  domain.BreakdownTime  `json:"breakdown_time"`
	Derived   dashboard.Derived     `json:"derived"`
	Stored    bool                  `json:"stored"`
}

// Snapshot is the composite read backing the dashboard landing view.
type Snapshot struct {
	Today     *RecordView                  `json:"today"`
	Yesterday *RecordView                  `json:"yesterday"`
	Customers []*domain.CustomerTrendEntry `json:"customer_trend"`
	Series    []*domain.TrendPoint         `json:"trend_chart"`
	Notes     []*domain.Note               `json:"notes"`
}

type DashboardService interface {
	GetRecord(ctx context.Context, dayKey string) (*RecordView, error)
	GetSnapshot(ctx context.Context, dayKey string) (*Snapshot, error)
	SaveRecord(ctx context.Context, dayKey string, patch dashboard.SectionPatch) (*RecordView, error)
	IngestDailyUpload(ctx context.Context, dayKey string, upload io.Reader, filename string) (*RecordView, error)
}

type dashboardService struct {
	db        *gorm.DB
	log       *logger.Logger
	lock      KeyLock
	records   repos.DailyRecordRepo
	trend     repos.TrendPointRepo
	customers repos.CustomerTrendRepo
	notes     repos.NoteRepo
}

func NewDashboardService(
	db *gorm.DB,
	baseLog *logger.Logger,
	lock KeyLock,
	recordRepo repos.DailyRecordRepo,
	trendRepo repos.TrendPointRepo,
	customerRepo repos.CustomerTrendRepo,
	noteRepo repos.NoteRepo,
) DashboardService {
	return &dashboardService{
		db:        db,
		log:       baseLog.With("service", "DashboardService"),
		lock:      lock,
		records:   recordRepo,
		trend:     trendRepo,
		customers: customerRepo,
		notes:     noteRepo,
	}
}

func (s *dashboardService) GetRecord(ctx context.Context, dayKey string) (*RecordView, error) {
	monthKey, err := validDayKey(dayKey)
	if err != nil {
		return nil, err
	}

	rec, err := s.getStored(ctx, nil, dayKey)
	if err != nil {
		return nil, err
	}
	entries, err := s.customers.ListByMonth(ctx, nil, monthKey)
	if err != nil {
		return nil, fmt.Errorf("list customer entries for %s: %w", monthKey, err)
	}
	return buildView(dayKey, rec, entries), nil
}

func (s *dashboardService) GetSnapshot(ctx context.Context, dayKey string) (*Snapshot, error) {
	monthKey, err := validDayKey(dayKey)
	if err != nil {
		return nil, err
	}
	prevKey, err := domain.PrevDay(dayKey)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	var today, yesterday *domain.DailyRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = s.getStored(gctx, nil, dayKey)
		return err
	})
	g.Go(func() error {
		var err error
		yesterday, err = s.getStored(gctx, nil, prevKey)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Customers, err = s.customers.ListByMonth(gctx, nil, monthKey)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Series, err = s.trend.ListAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Notes, err = s.notes.ListByMonth(gctx, nil, monthKey)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshot for %s: %w", dayKey, err)
	}

	snap.Today = buildView(dayKey, today, snap.Customers)
	// Yesterday's meter uses its own month when the day crosses a boundary.
	prevMonth, _ := domain.MonthOf(prevKey)
	if prevMonth == monthKey {
		snap.Yesterday = buildView(prevKey, yesterday, snap.Customers)
	} else {
		prevEntries, err := s.customers.ListByMonth(ctx, nil, prevMonth)
		if err != nil {
			return nil, fmt.Errorf("list customer entries for %s: %w", prevMonth, err)
		}
		snap.Yesterday = buildView(prevKey, yesterday, prevEntries)
	}
	return snap, nil
}

func (s *dashboardService) SaveRecord(ctx context.Context, dayKey string, patch dashboard.SectionPatch) (*RecordView, error) {
	if _, err := validDayKey(dayKey); err != nil {
		return nil, err
	}
	return s.save(ctx, dayKey, func(existing *domain.DailyRecord) domain.DailyRecord {
		return dashboard.MergeSections(existing, patch)
	})
}

func (s *dashboardService) IngestDailyUpload(ctx context.Context, dayKey string, upload io.Reader, filename string) (*RecordView, error) {
	if _, err := validDayKey(dayKey); err != nil {
		return nil, err
	}

	rows, err := ingestion.DecodeUpload(upload, filename)
	if err != nil {
		return nil, uploadError(err)
	}
	recs, err := ingestion.NormalizeRows(rows, ingestion.DailySchema())
	if err != nil {
		return nil, uploadError(err)
	}
	// A daily workbook carries one data row; extras are ignored.
	rec := recs[0]

	return s.save(ctx, dayKey, func(existing *domain.DailyRecord) domain.DailyRecord {
		return dashboard.MergeDaily(existing, rec)
	})
}

// save runs the serialized read-merge-write cycle for a day and keeps the
// chart point for that date in step, all in one transaction.
func (s *dashboardService) save(ctx context.Context, dayKey string, merge func(*domain.DailyRecord) domain.DailyRecord) (*RecordView, error) {
	release, err := s.lock.Acquire(ctx, dayKey)
	if err != nil {
		return nil, fmt.Errorf("acquire period lock %s: %w", dayKey, err)
	}
	defer release()

	var saved domain.DailyRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.getStored(ctx, tx, dayKey)
		if err != nil {
			return err
		}

		saved = merge(existing)
		saved.PeriodKey = dayKey
		if existing == nil {
			saved.ID = uuid.New()
			saved.CreatedAt = time.Now().UTC()
		}
		saved.UpdatedAt = time.Now().UTC()
		if _, err := s.records.Upsert(ctx, tx, &saved); err != nil {
			return fmt.Errorf("upsert daily record %s: %w", dayKey, err)
		}

		pointExists := true
		if _, err := s.trend.GetByDate(ctx, tx, dayKey); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("check chart point %s: %w", dayKey, err)
			}
			pointExists = false
		}
		if dashboard.DeriveOnFirstOfMonth(dayKey, pointExists) {
			if _, err := s.trend.UpsertByDate(ctx, tx, dashboard.PointFromDaily(&saved)); err != nil {
				return fmt.Errorf("upsert chart point %s: %w", dayKey, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Saved daily record", "period_key", dayKey)

	monthKey, _ := domain.MonthOf(dayKey)
	entries, err := s.customers.ListByMonth(ctx, nil, monthKey)
	if err != nil {
		return nil, fmt.Errorf("list customer entries for %s: %w", monthKey, err)
	}
	return buildView(dayKey, &saved, entries), nil
}

// getStored fetches a day's record, mapping not-found to nil so callers can
// serve the zero-valued defaults.
func (s *dashboardService) getStored(ctx context.Context, tx *gorm.DB, dayKey string) (*domain.DailyRecord, error) {
	rec, err := s.records.GetByPeriodKey(ctx, tx, dayKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily record %s: %w", dayKey, err)
	}
	return rec, nil
}

func buildView(dayKey string, rec *domain.DailyRecord, entries []*domain.CustomerTrendEntry) *RecordView {
	view := &RecordView{
		PeriodKey: dayKey,
		Derived:   dashboard.ComputeDerived(rec, entries),
		Stored:    rec != nil,
	}
	if rec != nil {
		view.Values = rec.Values
		view.Totals = rec.Totals
		view.Shifts = rec.Shifts
		view.Cuts = rec.Cuts
		view.Downtime = rec.Downtime
	}
	return view
}

func validDayKey(dayKey string) (string, error) {
	monthKey, err := domain.MonthOf(dayKey)
	if err != nil {
		return "", apierr.BadRequest("invalid_period_key", err)
	}
	return monthKey, nil
}

// uploadError maps ingestion failures to a client-facing 400 with the
// sentinel preserved for errors.Is.
func uploadError(err error) error {
	switch {
	case errors.Is(err, ingestion.ErrEmptyUpload):
		return apierr.BadRequest("empty_upload", err)
	case errors.Is(err, ingestion.ErrMalformedSchema):
		return apierr.BadRequest("unrecognized_columns", err)
	case errors.Is(err, ingestion.ErrNoValidRows):
		return apierr.BadRequest("no_valid_rows", err)
	default:
		return apierr.BadRequest("unreadable_upload", err)
	}
}
