package service

import (
	"testing"

	"github.com/mandirseva/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTimingTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:timing_svc?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.PoojaTiming{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if err := gdb.Exec("DELETE FROM pooja_timings").Error; err != nil {
		t.Fatalf("failed to reset test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestTimingListOrdering(t *testing.T) {
	gdb, cleanup := setupTimingTestDB(t)
	defer cleanup()

	svc := NewTimingService(gdb)
	for _, order := range []int{3, 1, 2} {
		if _, err := svc.Create(TimingInput{
			NameEn:   "Mangala Aarti",
			NameHi:   "मंगला आरती",
			Category: db.TimingCategoryAarti,
			Order:    order,
		}); err != nil {
			t.Fatalf("failed to create timing: %v", err)
		}
	}

	items, err := svc.List("")
	if err != nil {
		t.Fatalf("failed to list timings: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 timings, got %d", len(items))
	}
	for i, want := range []int{1, 2, 3} {
		if items[i].Order != want {
			t.Fatalf("expected order %d at position %d, got %d", want, i, items[i].Order)
		}
	}
}

func TestTimingCategoryFilter(t *testing.T) {
	gdb, cleanup := setupTimingTestDB(t)
	defer cleanup()

	svc := NewTimingService(gdb)
	if _, err := svc.Create(TimingInput{NameEn: "Mangala Aarti", NameHi: "मंगला आरती", Category: "Aarti"}); err != nil {
		t.Fatalf("failed to create timing: %v", err)
	}
	if _, err := svc.Create(TimingInput{NameEn: "Morning Darshan", NameHi: "प्रातः दर्शन", Category: db.TimingCategoryDarshan}); err != nil {
		t.Fatalf("failed to create timing: %v", err)
	}

	aarti, err := svc.List(db.TimingCategoryAarti)
	if err != nil {
		t.Fatalf("failed to list aarti timings: %v", err)
	}
	if len(aarti) != 1 || aarti[0].Category != db.TimingCategoryAarti {
		t.Fatalf("expected one normalized aarti row, got %d", len(aarti))
	}

	if _, err := svc.List("bhajan"); err != ErrTimingCategoryInvalid {
		t.Fatalf("expected ErrTimingCategoryInvalid, got %v", err)
	}
	if _, err := svc.Create(TimingInput{NameEn: "X", NameHi: "य", Category: "bhajan"}); err != ErrTimingCategoryInvalid {
		t.Fatalf("expected ErrTimingCategoryInvalid on create, got %v", err)
	}
}

func TestTimingValidation(t *testing.T) {
	gdb, cleanup := setupTimingTestDB(t)
	defer cleanup()

	svc := NewTimingService(gdb)
	if _, err := svc.Create(TimingInput{NameEn: "Only English", Category: db.TimingCategoryAarti}); err != ErrTimingNameMissing {
		t.Fatalf("expected ErrTimingNameMissing, got %v", err)
	}

	summer := "05:00 AM"
	if _, err := svc.Update("missing-id", TimingUpdate{SummerTime: &summer}); err != ErrTimingNotFound {
		t.Fatalf("expected ErrTimingNotFound, got %v", err)
	}
}
