package dashboard

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/data/repos/testutil"
	"github.com/lineboard/lineboard-backend/internal/domain"
)

func TestTrendPointRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewTrendPointRepo(db, testutil.Logger(t))

	if _, err := repo.GetByDate(ctx, tx, "2025-01-01"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByDate on empty table: err=%v, want ErrRecordNotFound", err)
	}

	// Insert out of order; ListAll returns ascending by date.
	for _, date := range []string{"2025-03-01", "2025-01-01", "2025-02-01"} {
		if _, err := repo.UpsertByDate(ctx, tx, testutil.NewTrendPoint(date)); err != nil {
			t.Fatalf("UpsertByDate %s: %v", date, err)
		}
	}
	points, err := repo.ListAll(ctx, tx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("ListAll: len=%d, want 3", len(points))
	}
	for i, want := range []string{"2025-01-01", "2025-02-01", "2025-03-01"} {
		if points[i].Date != want {
			t.Fatalf("points[%d].Date = %s, want %s", i, points[i].Date, want)
		}
	}

	// Upsert on an existing date updates in place.
	p := testutil.NewTrendPoint("2025-02-01")
	p.LVProductionValue = 9999
	if _, err := repo.UpsertByDate(ctx, tx, p); err != nil {
		t.Fatalf("UpsertByDate (conflict): %v", err)
	}
	got, err := repo.GetByDate(ctx, tx, "2025-02-01")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.LVProductionValue != 9999 {
		t.Fatalf("LVProductionValue = %v, want 9999", got.LVProductionValue)
	}
	if points, err = repo.ListAll(ctx, tx); err != nil || len(points) != 3 {
		t.Fatalf("ListAll after conflict upsert: len=%d err=%v", len(points), err)
	}

	replacement := []*domain.TrendPoint{
		testutil.NewTrendPoint("2024-11-01"),
		testutil.NewTrendPoint("2024-12-01"),
	}
	if err := repo.ReplaceAll(ctx, tx, replacement); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	points, err = repo.ListAll(ctx, tx)
	if err != nil {
		t.Fatalf("ListAll after ReplaceAll: %v", err)
	}
	if len(points) != 2 || points[0].Date != "2024-11-01" {
		t.Fatalf("ReplaceAll left unexpected series: %+v", points)
	}
}
