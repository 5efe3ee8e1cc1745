package service

import (
	"testing"
	"time"

	"github.com/mandirseva/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupVivaahTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:vivaah_svc?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.VivaahPageInfo{}, &db.VivaahSammelan{}, &db.VivaahParticipant{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	for _, table := range []string{"vivaah_participants", "vivaah_sammelans", "vivaah_page_infos"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset test db: %v", err)
		}
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestParticipantRequiresExistingSammelan(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	_, err := svc.CreateParticipant(ParticipantInput{
		SammelanID: "no-such-sammelan",
		Type:       db.ParticipantTypeBride,
		NameEn:     "Radha",
		NameHi:     "राधा",
	})
	if err != ErrParticipantSammelanNeeded {
		t.Fatalf("expected ErrParticipantSammelanNeeded, got %v", err)
	}

	sammelan, err := svc.CreateSammelan(SammelanInput{TitleEn: "Sammelan 2026", TitleHi: "सम्मेलन 2026"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}

	participant, err := svc.CreateParticipant(ParticipantInput{
		SammelanID: sammelan.ID,
		Type:       "Bride",
		NameEn:     "Radha",
		NameHi:     "राधा",
	})
	if err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}
	if participant.Type != db.ParticipantTypeBride {
		t.Fatalf("expected normalized type bride, got %s", participant.Type)
	}

	missing := "still-missing"
	if _, err := svc.UpdateParticipant(participant.ID, ParticipantUpdate{SammelanID: &missing}); err != ErrParticipantSammelanNeeded {
		t.Fatalf("expected ErrParticipantSammelanNeeded on move, got %v", err)
	}
}

func TestParticipantTypeFilter(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	sammelan, err := svc.CreateSammelan(SammelanInput{TitleEn: "Sammelan 2026", TitleHi: "सम्मेलन 2026"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}

	if _, err := svc.CreateParticipant(ParticipantInput{SammelanID: sammelan.ID, Type: db.ParticipantTypeBride, NameEn: "Radha", NameHi: "राधा"}); err != nil {
		t.Fatalf("failed to create bride: %v", err)
	}
	if _, err := svc.CreateParticipant(ParticipantInput{SammelanID: sammelan.ID, Type: db.ParticipantTypeGroom, NameEn: "Shyam", NameHi: "श्याम"}); err != nil {
		t.Fatalf("failed to create groom: %v", err)
	}

	brides, err := svc.Participants(sammelan.ID, db.ParticipantTypeBride)
	if err != nil {
		t.Fatalf("failed to list brides: %v", err)
	}
	if len(brides) != 1 || brides[0].Type != db.ParticipantTypeBride {
		t.Fatalf("expected one bride, got %d", len(brides))
	}

	all, err := svc.Participants(sammelan.ID, "")
	if err != nil {
		t.Fatalf("failed to list participants: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(all))
	}

	if _, err := svc.Participants(sammelan.ID, "child"); err != ErrParticipantTypeInvalid {
		t.Fatalf("expected ErrParticipantTypeInvalid, got %v", err)
	}
}

func TestSammelanDeleteCascadesParticipants(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	sammelan, err := svc.CreateSammelan(SammelanInput{TitleEn: "Sammelan 2026", TitleHi: "सम्मेलन 2026"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}
	if _, err := svc.CreateParticipant(ParticipantInput{SammelanID: sammelan.ID, Type: db.ParticipantTypeBride, NameEn: "Radha", NameHi: "राधा"}); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	if err := svc.DeleteSammelan(sammelan.ID); err != nil {
		t.Fatalf("failed to delete sammelan: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.VivaahParticipant{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count participants: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected participants to be removed with their sammelan, got %d", count)
	}

	if err := svc.DeleteSammelan(sammelan.ID); err != nil {
		t.Fatalf("expected repeated delete to succeed, got %v", err)
	}
}

func TestSammelansListedInCreationOrder(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	first, err := svc.CreateSammelan(SammelanInput{TitleEn: "Sammelan 2025", TitleHi: "सम्मेलन 2025"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	second, err := svc.CreateSammelan(SammelanInput{TitleEn: "Sammelan 2026", TitleHi: "सम्मेलन 2026"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}

	items, err := svc.Sammelans()
	if err != nil {
		t.Fatalf("failed to list sammelans: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 sammelans, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Fatalf("expected creation order, got %s first", items[0].TitleEn)
	}
}

func TestActiveSammelan(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	active, err := svc.ActiveSammelan()
	if err != nil {
		t.Fatalf("failed to load active sammelan: %v", err)
	}
	if active != nil {
		t.Fatalf("expected nil when nothing is active")
	}

	inactive := false
	if _, err := svc.CreateSammelan(SammelanInput{TitleEn: "Old", TitleHi: "पुराना", IsActive: &inactive}); err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}
	current, err := svc.CreateSammelan(SammelanInput{TitleEn: "Current", TitleHi: "वर्तमान"})
	if err != nil {
		t.Fatalf("failed to create sammelan: %v", err)
	}

	active, err = svc.ActiveSammelan()
	if err != nil {
		t.Fatalf("failed to load active sammelan: %v", err)
	}
	if active == nil || active.ID != current.ID {
		t.Fatalf("expected the active sammelan to be returned")
	}
}

func TestVivaahPageInfoUpsert(t *testing.T) {
	gdb, cleanup := setupVivaahTestDB(t)
	defer cleanup()

	svc := NewVivaahService(gdb)
	info, err := svc.PageInfo()
	if err != nil {
		t.Fatalf("failed to load page info: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil before first write")
	}

	if _, err := svc.UpsertPageInfo(VivaahPageInfoInput{TitleEn: "Vivaah"}); err != ErrVivaahPageInfoMissing {
		t.Fatalf("expected ErrVivaahPageInfoMissing, got %v", err)
	}

	first, err := svc.UpsertPageInfo(VivaahPageInfoInput{
		TitleEn:       "Vivaah Sammelan",
		TitleHi:       "विवाह सम्मेलन",
		DescriptionEn: "Community weddings.",
		DescriptionHi: "सामूहिक विवाह।",
	})
	if err != nil {
		t.Fatalf("failed to upsert page info: %v", err)
	}

	second, err := svc.UpsertPageInfo(VivaahPageInfoInput{
		TitleEn:       "Vivaah Sammelan 2026",
		TitleHi:       "विवाह सम्मेलन 2026",
		DescriptionEn: "Updated.",
		DescriptionHi: "अद्यतन।",
	})
	if err != nil {
		t.Fatalf("failed to upsert page info twice: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected writes to land on the same row")
	}
}
