package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTimingNotFound        = errors.New("pooja timing not found")
	ErrTimingNameMissing     = errors.New("timing name is required in both languages")
	ErrTimingCategoryInvalid = errors.New("timing category must be aarti or darshan")
)

// TimingService handles aarti and darshan schedule rows.
type TimingService struct {
	db *gorm.DB
}

// NewTimingService creates a TimingService instance.
func NewTimingService(gdb *gorm.DB) *TimingService {
	return &TimingService{db: gdb}
}

// TimingInput represents fields accepted when creating a timing row.
type TimingInput struct {
	NameEn       string
	NameHi       string
	SummerTime   string
	WinterTime   string
	MonsoonTime  string
	FestivalTime string
	Category     string
	Order        int
}

// TimingUpdate carries a partial update; nil fields are left untouched.
type TimingUpdate struct {
	NameEn       *string
	NameHi       *string
	SummerTime   *string
	WinterTime   *string
	MonsoonTime  *string
	FestivalTime *string
	Category     *string
	Order        *int
}

// List returns timing rows ordered for display, optionally narrowed to one
// category. An empty category returns everything.
func (s *TimingService) List(category string) ([]db.PoojaTiming, error) {
	query := s.db.Model(&db.PoojaTiming{})
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		normalized, err := normalizeTimingCategory(trimmed)
		if err != nil {
			return nil, err
		}
		query = query.Where("category = ?", normalized)
	}

	var items []db.PoojaTiming
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new timing row.
func (s *TimingService) Create(input TimingInput) (*db.PoojaTiming, error) {
	if strings.TrimSpace(input.NameEn) == "" || strings.TrimSpace(input.NameHi) == "" {
		return nil, ErrTimingNameMissing
	}
	category, err := normalizeTimingCategory(input.Category)
	if err != nil {
		return nil, err
	}

	item := db.PoojaTiming{
		NameEn:       strings.TrimSpace(input.NameEn),
		NameHi:       strings.TrimSpace(input.NameHi),
		SummerTime:   strings.TrimSpace(input.SummerTime),
		WinterTime:   strings.TrimSpace(input.WinterTime),
		MonsoonTime:  strings.TrimSpace(input.MonsoonTime),
		FestivalTime: strings.TrimSpace(input.FestivalTime),
		Category:     category,
		Order:        input.Order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto an existing timing row.
func (s *TimingService) Update(id string, input TimingUpdate) (*db.PoojaTiming, error) {
	var item db.PoojaTiming
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimingNotFound
		}
		return nil, err
	}

	if input.NameEn != nil {
		item.NameEn = strings.TrimSpace(*input.NameEn)
	}
	if input.NameHi != nil {
		item.NameHi = strings.TrimSpace(*input.NameHi)
	}
	if input.SummerTime != nil {
		item.SummerTime = strings.TrimSpace(*input.SummerTime)
	}
	if input.WinterTime != nil {
		item.WinterTime = strings.TrimSpace(*input.WinterTime)
	}
	if input.MonsoonTime != nil {
		item.MonsoonTime = strings.TrimSpace(*input.MonsoonTime)
	}
	if input.FestivalTime != nil {
		item.FestivalTime = strings.TrimSpace(*input.FestivalTime)
	}
	if input.Category != nil {
		category, err := normalizeTimingCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		item.Category = category
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a timing row, quietly succeeding when it is already gone.
func (s *TimingService) Delete(id string) error {
	return s.db.Delete(&db.PoojaTiming{}, "id = ?", id).Error
}

func normalizeTimingCategory(category string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if normalized != db.TimingCategoryAarti && normalized != db.TimingCategoryDarshan {
		return "", ErrTimingCategoryInvalid
	}
	return normalized, nil
}
