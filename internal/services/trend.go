package services

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/dashboard"
	repos "github.com/lineboard/lineboard-backend/internal/data/repos/dashboard"
	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
	"github.com/lineboard/lineboard-backend/internal/pkg/apierr"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

// CustomerEntryInput is the structured-JSON form of one customer row, used
// when the client edits the breakdown list directly instead of uploading.
type CustomerEntryInput struct {
	CustomerName    string   `json:"customer_name"`
	OverallOutput   float64  `json:"overall_output"`
	PercentageInput *float64 `json:"percentage_input"`
}

type TrendService interface {
	GetMonthEntries(ctx context.Context, monthKey string) ([]*domain.CustomerTrendEntry, error)
	ReplaceMonthEntries(ctx context.Context, monthKey string, inputs []CustomerEntryInput) ([]*domain.CustomerTrendEntry, error)
	IngestMonthUpload(ctx context.Context, monthKey string, upload io.Reader, filename string) ([]*domain.CustomerTrendEntry, error)

	GetSeries(ctx context.Context) ([]*domain.TrendPoint, error)
	ReplaceSeries(ctx context.Context, points []*domain.TrendPoint) ([]*domain.TrendPoint, error)
	IngestSeriesUpload(ctx context.Context, upload io.Reader, filename string) ([]*domain.TrendPoint, error)
}

type trendService struct {
	db        *gorm.DB
	log       *logger.Logger
	lock      KeyLock
	trend     repos.TrendPointRepo
	customers repos.CustomerTrendRepo
}

func NewTrendService(
	db *gorm.DB,
	baseLog *logger.Logger,
	lock KeyLock,
	trendRepo repos.TrendPointRepo,
	customerRepo repos.CustomerTrendRepo,
) TrendService {
	return &trendService{
		db:        db,
		log:       baseLog.With("service", "TrendService"),
		lock:      lock,
		trend:     trendRepo,
		customers: customerRepo,
	}
}

func (s *trendService) GetMonthEntries(ctx context.Context, monthKey string) ([]*domain.CustomerTrendEntry, error) {
	if err := validMonthKey(monthKey); err != nil {
		return nil, err
	}
	entries, err := s.customers.ListByMonth(ctx, nil, monthKey)
	if err != nil {
		return nil, fmt.Errorf("list customer entries for %s: %w", monthKey, err)
	}
	return entries, nil
}

func (s *trendService) ReplaceMonthEntries(ctx context.Context, monthKey string, inputs []CustomerEntryInput) ([]*domain.CustomerTrendEntry, error) {
	recs := make([]ingestion.Record, 0, len(inputs))
	for _, in := range inputs {
		rec := ingestion.Record{
			"customer_name":  in.CustomerName,
			"overall_output": in.OverallOutput,
		}
		if in.PercentageInput != nil {
			rec["percentage_input"] = *in.PercentageInput
		}
		if in.CustomerName == "" {
			delete(rec, "customer_name")
		}
		recs = append(recs, rec)
	}
	return s.replaceMonth(ctx, monthKey, recs)
}

func (s *trendService) IngestMonthUpload(ctx context.Context, monthKey string, upload io.Reader, filename string) ([]*domain.CustomerTrendEntry, error) {
	if err := validMonthKey(monthKey); err != nil {
		return nil, err
	}
	rows, err := ingestion.DecodeUpload(upload, filename)
	if err != nil {
		return nil, uploadError(err)
	}
	recs, err := ingestion.NormalizeRows(rows, ingestion.CustomerSchema())
	if err != nil {
		return nil, uploadError(err)
	}
	return s.replaceMonth(ctx, monthKey, recs)
}

func (s *trendService) replaceMonth(ctx context.Context, monthKey string, recs []ingestion.Record) ([]*domain.CustomerTrendEntry, error) {
	if err := validMonthKey(monthKey); err != nil {
		return nil, err
	}
	entries := dashboard.CustomerEntriesFromRecords(monthKey, recs)
	if len(entries) == 0 {
		return nil, uploadError(ingestion.ErrNoValidRows)
	}

	release, err := s.lock.Acquire(ctx, monthKey)
	if err != nil {
		return nil, fmt.Errorf("acquire period lock %s: %w", monthKey, err)
	}
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.customers.ReplaceMonth(ctx, tx, monthKey, entries)
	})
	if err != nil {
		return nil, fmt.Errorf("replace customer entries for %s: %w", monthKey, err)
	}
	s.log.Info("Replaced customer breakdown", "month_key", monthKey, "entries", len(entries))
	return entries, nil
}

func (s *trendService) GetSeries(ctx context.Context) ([]*domain.TrendPoint, error) {
	points, err := s.trend.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list chart series: %w", err)
	}
	return points, nil
}

func (s *trendService) ReplaceSeries(ctx context.Context, points []*domain.TrendPoint) ([]*domain.TrendPoint, error) {
	recs := make([]ingestion.Record, 0, len(points))
	for _, p := range points {
		recs = append(recs, ingestion.Record{
			"date":                p.Date,
			"lv_production_value": p.LVProductionValue,
			"msf_p2":              p.MSFP2,
			"msf_p7":              p.MSFP7,
			"assembly_p2":         p.AssemblyP2,
			"assembly_p7":         p.AssemblyP7,
			"auto_crimp_avg":      p.AutoCrimpAvg,
			"semi_crimp_avg":      p.SemiCrimpAvg,
			"soldering_avg":       p.SolderingAvg,
			"productivity_value":  p.ProductivityValue,
			"schedule_average":    p.ScheduleAverage,
		})
	}
	return s.replaceSeriesRecords(ctx, recs)
}

func (s *trendService) IngestSeriesUpload(ctx context.Context, upload io.Reader, filename string) ([]*domain.TrendPoint, error) {
	rows, err := ingestion.DecodeUpload(upload, filename)
	if err != nil {
		return nil, uploadError(err)
	}
	recs, err := ingestion.NormalizeRows(rows, ingestion.SeriesSchema())
	if err != nil {
		return nil, uploadError(err)
	}
	return s.replaceSeriesRecords(ctx, recs)
}

func (s *trendService) replaceSeriesRecords(ctx context.Context, recs []ingestion.Record) ([]*domain.TrendPoint, error) {
	// Re-validate dates here: the structured path skips NormalizeRows.
	var valid []ingestion.Record
	for _, rec := range recs {
		if _, err := domain.ParseDayKey(rec.Text("date")); err == nil {
			valid = append(valid, rec)
		}
	}
	points := dashboard.SeriesFromRecords(valid)
	if len(points) == 0 {
		return nil, uploadError(ingestion.ErrNoValidRows)
	}

	release, err := s.lock.Acquire(ctx, "trend_chart")
	if err != nil {
		return nil, fmt.Errorf("acquire series lock: %w", err)
	}
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.trend.ReplaceAll(ctx, tx, points)
	})
	if err != nil {
		return nil, fmt.Errorf("replace chart series: %w", err)
	}
	s.log.Info("Replaced chart series", "points", len(points))
	return points, nil
}

func validMonthKey(monthKey string) error {
	if _, err := domain.ParseMonthKey(monthKey); err != nil {
		return apierr.BadRequest("invalid_month_key", err)
	}
	return nil
}
