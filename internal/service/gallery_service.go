package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound    = errors.New("gallery item not found")
	ErrGalleryURLMissing  = errors.New("gallery url is required")
	ErrGalleryTypeInvalid = errors.New("gallery type must be photo or video")
)

// GalleryService handles the temple photo and video gallery.
type GalleryService struct {
	db *gorm.DB
}

// GalleryFilter describes filters for listing gallery items.
type GalleryFilter struct {
	Type            string
	IncludeInactive bool
}

// GalleryInput represents fields accepted when creating a gallery item.
type GalleryInput struct {
	Type         string
	URL          string
	ThumbnailURL string
	TitleEn      string
	TitleHi      string
	Order        int
	IsActive     *bool
}

// GalleryUpdate carries a partial update; nil fields are left untouched.
// The item type is immutable after creation.
type GalleryUpdate struct {
	URL          *string
	ThumbnailURL *string
	TitleEn      *string
	TitleHi      *string
	Order        *int
	IsActive     *bool
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns gallery items matching the filter, ordered for display.
// Inactive items are excluded unless the filter opts in.
func (s *GalleryService) List(filter GalleryFilter) ([]db.GalleryItem, error) {
	query := s.db.Model(&db.GalleryItem{})
	if trimmed := strings.TrimSpace(filter.Type); trimmed != "" {
		normalized, err := normalizeGalleryType(trimmed)
		if err != nil {
			return nil, err
		}
		query = query.Where("type = ?", normalized)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var items []db.GalleryItem
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new gallery item. Active defaults to true.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryItem, error) {
	kind, err := normalizeGalleryType(input.Type)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, ErrGalleryURLMissing
	}

	item := db.GalleryItem{
		Type:         kind,
		URL:          strings.TrimSpace(input.URL),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		TitleEn:      strings.TrimSpace(input.TitleEn),
		TitleHi:      strings.TrimSpace(input.TitleHi),
		Order:        input.Order,
		IsActive:     true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto an existing gallery item.
func (s *GalleryService) Update(id string, input GalleryUpdate) (*db.GalleryItem, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	if input.URL != nil {
		trimmed := strings.TrimSpace(*input.URL)
		if trimmed == "" {
			return nil, ErrGalleryURLMissing
		}
		item.URL = trimmed
	}
	if input.ThumbnailURL != nil {
		item.ThumbnailURL = strings.TrimSpace(*input.ThumbnailURL)
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

// Delete removes a gallery item, quietly succeeding when it is already gone.
func (s *GalleryService) Delete(id string) error {
	return s.db.Delete(&db.GalleryItem{}, "id = ?", id).Error
}

func normalizeGalleryType(kind string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if normalized != db.GalleryTypePhoto && normalized != db.GalleryTypeVideo {
		return "", ErrGalleryTypeInvalid
	}
	return normalized, nil
}
