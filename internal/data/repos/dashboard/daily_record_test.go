package dashboard

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/lineboard/lineboard-backend/internal/data/repos/testutil"
)

func TestDailyRecordRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewDailyRecordRepo(db, testutil.Logger(t))

	if _, err := repo.GetByPeriodKey(ctx, tx, "2025-06-15"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByPeriodKey on empty table: err=%v, want ErrRecordNotFound", err)
	}

	rec := testutil.NewDailyRecord("2025-06-15")
	if _, err := repo.Upsert(ctx, tx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.GetByPeriodKey(ctx, tx, "2025-06-15")
	if err != nil {
		t.Fatalf("GetByPeriodKey: %v", err)
	}
	if got.Values.LVProductionValue != 1250.5 || got.Shifts.AutoCrimp.ShiftA != 7000 {
		t.Fatalf("stored sections mismatch: %+v", got)
	}

	// Second upsert for the same key overwrites sections without a new row.
	rec2 := testutil.NewDailyRecord("2025-06-15")
	rec2.Values.LVProductionValue = 2000
	if _, err := repo.Upsert(ctx, tx, rec2); err != nil {
		t.Fatalf("Upsert (conflict): %v", err)
	}
	got, err = repo.GetByPeriodKey(ctx, tx, "2025-06-15")
	if err != nil {
		t.Fatalf("GetByPeriodKey after conflict: %v", err)
	}
	if got.Values.LVProductionValue != 2000 {
		t.Fatalf("LVProductionValue = %v, want 2000", got.Values.LVProductionValue)
	}
	if got.ID != rec.ID {
		t.Fatalf("upsert replaced the row instead of updating it")
	}

	for _, key := range []string{"2025-06-01", "2025-07-01"} {
		if _, err := repo.Upsert(ctx, tx, testutil.NewDailyRecord(key)); err != nil {
			t.Fatalf("Upsert %s: %v", key, err)
		}
	}
	rows, err := repo.ListByMonth(ctx, tx, "2025-06")
	if err != nil {
		t.Fatalf("ListByMonth: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByMonth: len=%d, want 2", len(rows))
	}
	if rows[0].PeriodKey != "2025-06-01" || rows[1].PeriodKey != "2025-06-15" {
		t.Fatalf("ListByMonth order: %s, %s", rows[0].PeriodKey, rows[1].PeriodKey)
	}
}
