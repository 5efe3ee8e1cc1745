package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrSettingKeyMissing = errors.New("setting key is required")
)

// SettingService manages the bilingual key-value escape hatch. Writes go
// through Upsert so a key always maps to exactly one row.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// List returns every setting, oldest first.
func (s *SettingService) List() ([]db.SiteSetting, error) {
	var items []db.SiteSetting
	if err := s.db.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a setting by key.
func (s *SettingService) Get(key string) (*db.SiteSetting, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSettingKeyMissing
	}

	var item db.SiteSetting
	if err := s.db.First(&item, "key = ?", trimmed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Upsert writes both language values for a key, creating the row when the
// key is new.
func (s *SettingService) Upsert(key, valueEn, valueHi string) (*db.SiteSetting, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSettingKeyMissing
	}

	setting := db.SiteSetting{Key: trimmed, ValueEn: valueEn, ValueHi: valueHi}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value_en":   valueEn,
			"value_hi":   valueHi,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}

	return s.Get(trimmed)
}

// Delete removes a setting by key, quietly succeeding when it is already
// gone.
func (s *SettingService) Delete(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ErrSettingKeyMissing
	}
	return s.db.Delete(&db.SiteSetting{}, "key = ?", trimmed).Error
}
