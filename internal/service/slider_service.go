package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSliderNotFound     = errors.New("slider image not found")
	ErrSliderImageMissing = errors.New("slider image url is required")
	ErrSliderTitleMissing = errors.New("slider title is required in both languages")
)

// SliderService handles homepage hero slides.
type SliderService struct {
	db *gorm.DB
}

// NewSliderService creates a SliderService instance.
func NewSliderService(gdb *gorm.DB) *SliderService {
	return &SliderService{db: gdb}
}

// SliderInput represents fields accepted when creating a slide.
type SliderInput struct {
	ImageURL string
	TitleEn  string
	TitleHi  string
	Order    int
	IsActive *bool
}

// SliderUpdate carries a partial update; nil fields are left untouched.
type SliderUpdate struct {
	ImageURL *string
	TitleEn  *string
	TitleHi  *string
	Order    *int
	IsActive *bool
}

// List returns slides ordered for display. Inactive slides are excluded
// unless includeInactive is set.
func (s *SliderService) List(includeInactive bool) ([]db.SliderImage, error) {
	query := s.db.Model(&db.SliderImage{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var items []db.SliderImage
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new slide. Active defaults to true.
func (s *SliderService) Create(input SliderInput) (*db.SliderImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrSliderImageMissing
	}
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" {
		return nil, ErrSliderTitleMissing
	}

	item := db.SliderImage{
		ImageURL: strings.TrimSpace(input.ImageURL),
		TitleEn:  strings.TrimSpace(input.TitleEn),
		TitleHi:  strings.TrimSpace(input.TitleHi),
		Order:    input.Order,
		IsActive: true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto an existing slide.
func (s *SliderService) Update(id string, input SliderUpdate) (*db.SliderImage, error) {
	var item db.SliderImage
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSliderNotFound
		}
		return nil, err
	}

	if input.ImageURL != nil {
		trimmed := strings.TrimSpace(*input.ImageURL)
		if trimmed == "" {
			return nil, ErrSliderImageMissing
		}
		item.ImageURL = trimmed
	}
	if input.TitleEn != nil {
		item.TitleEn = strings.TrimSpace(*input.TitleEn)
	}
	if input.TitleHi != nil {
		item.TitleHi = strings.TrimSpace(*input.TitleHi)
	}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a slide. Deleting an id that is already gone is a no-op.
func (s *SliderService) Delete(id string) error {
	return s.db.Delete(&db.SliderImage{}, "id = ?", id).Error
}
