package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGaushalaSliderNotFound  = errors.New("gaushala slider not found")
	ErrGaushalaServiceNotFound = errors.New("gaushala service not found")
	ErrGaushalaGalleryNotFound = errors.New("gaushala gallery item not found")
	ErrGaushalaAboutMissing    = errors.New("gaushala about title and content are required in both languages")
)

// GaushalaService covers the gaushala sub-site: its own slider, about
// block, service cards and gallery, mirroring the main-site collections.
type GaushalaService struct {
	db *gorm.DB
}

// NewGaushalaService creates a GaushalaService instance.
func NewGaushalaService(gdb *gorm.DB) *GaushalaService {
	return &GaushalaService{db: gdb}
}

// GaushalaAboutInput is the full replacement about block.
type GaushalaAboutInput struct {
	TitleEn   string
	TitleHi   string
	ContentEn string
	ContentHi string
	ImageURL  string
}

// Sliders returns gaushala slides ordered for display.
func (s *GaushalaService) Sliders(includeInactive bool) ([]db.GaushalaSlider, error) {
	query := s.db.Model(&db.GaushalaSlider{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var items []db.GaushalaSlider
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateSlider inserts a gaushala slide; validation matches the main-site
// slider.
func (s *GaushalaService) CreateSlider(input SliderInput) (*db.GaushalaSlider, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrSliderImageMissing
	}
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" {
		return nil, ErrSliderTitleMissing
	}

	item := db.GaushalaSlider{
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

// UpdateSlider merges the supplied fields onto an existing gaushala slide.
func (s *GaushalaService) UpdateSlider(id string, input SliderUpdate) (*db.GaushalaSlider, error) {
	var item db.GaushalaSlider
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGaushalaSliderNotFound
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

// DeleteSlider removes a gaushala slide, quietly succeeding when it is
// already gone.
func (s *GaushalaService) DeleteSlider(id string) error {
	return s.db.Delete(&db.GaushalaSlider{}, "id = ?", id).Error
}

// About returns the gaushala about block, or nil when nothing has been
// saved yet.
func (s *GaushalaService) About() (*db.GaushalaAbout, error) {
	var content db.GaushalaAbout
	err := s.db.Order("created_at asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// UpsertAbout replaces the gaushala about block, creating it on first
// write.
func (s *GaushalaService) UpsertAbout(input GaushalaAboutInput) (*db.GaushalaAbout, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" ||
		strings.TrimSpace(input.ContentEn) == "" || strings.TrimSpace(input.ContentHi) == "" {
		return nil, ErrGaushalaAboutMissing
	}

	var content db.GaushalaAbout
	err := s.db.Order("created_at asc").First(&content).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content.TitleEn = strings.TrimSpace(input.TitleEn)
	content.TitleHi = strings.TrimSpace(input.TitleHi)
	content.ContentEn = input.ContentEn
	content.ContentHi = input.ContentHi
	content.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// Services returns gaushala service cards ordered for display.
func (s *GaushalaService) Services() ([]db.GaushalaService, error) {
	var items []db.GaushalaService
	if err := s.db.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateService inserts a gaushala service card.
func (s *GaushalaService) CreateService(input ServiceInput) (*db.GaushalaService, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" {
		return nil, ErrServiceTitleMissing
	}

	item := db.GaushalaService{
		TitleEn:       strings.TrimSpace(input.TitleEn),
		TitleHi:       strings.TrimSpace(input.TitleHi),
		DescriptionEn: input.DescriptionEn,
		DescriptionHi: input.DescriptionHi,
		ButtonTextEn:  strings.TrimSpace(input.ButtonTextEn),
		ButtonTextHi:  strings.TrimSpace(input.ButtonTextHi),
		ButtonLink:    strings.TrimSpace(input.ButtonLink),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Order:         input.Order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateService merges the supplied fields onto an existing gaushala
// service card.
func (s *GaushalaService) UpdateService(id string, input ServiceUpdate) (*db.GaushalaService, error) {
	var item db.GaushalaService
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGaushalaServiceNotFound
		}
		return nil, err
	}

	if input.TitleEn != nil {
		item.TitleEn = strings.TrimSpace(*input.TitleEn)
	}
	if input.TitleHi != nil {
		item.TitleHi = strings.TrimSpace(*input.TitleHi)
	}
	if input.DescriptionEn != nil {
		item.DescriptionEn = *input.DescriptionEn
	}
	if input.DescriptionHi != nil {
		item.DescriptionHi = *input.DescriptionHi
	}
	if input.ButtonTextEn != nil {
		item.ButtonTextEn = strings.TrimSpace(*input.ButtonTextEn)
	}
	if input.ButtonTextHi != nil {
		item.ButtonTextHi = strings.TrimSpace(*input.ButtonTextHi)
	}
	if input.ButtonLink != nil {
		item.ButtonLink = strings.TrimSpace(*input.ButtonLink)
	}
	if input.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteService removes a gaushala service card, quietly succeeding when
// it is already gone.
func (s *GaushalaService) DeleteService(id string) error {
	return s.db.Delete(&db.GaushalaService{}, "id = ?", id).Error
}

// Gallery returns gaushala gallery items matching the filter.
func (s *GaushalaService) Gallery(filter GalleryFilter) ([]db.GaushalaGalleryItem, error) {
	query := s.db.Model(&db.GaushalaGalleryItem{})
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

	var items []db.GaushalaGalleryItem
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateGalleryItem inserts a gaushala gallery item. Active defaults to
// true.
func (s *GaushalaService) CreateGalleryItem(input GalleryInput) (*db.GaushalaGalleryItem, error) {
	kind, err := normalizeGalleryType(input.Type)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, ErrGalleryURLMissing
	}

	item := db.GaushalaGalleryItem{
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

// UpdateGalleryItem merges the supplied fields onto an existing gaushala
// gallery item.
func (s *GaushalaService) UpdateGalleryItem(id string, input GalleryUpdate) (*db.GaushalaGalleryItem, error) {
	var item db.GaushalaGalleryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGaushalaGalleryNotFound
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

// DeleteGalleryItem removes a gaushala gallery item, quietly succeeding
// when it is already gone.
func (s *GaushalaService) DeleteGalleryItem(id string) error {
	return s.db.Delete(&db.GaushalaGalleryItem{}, "id = ?", id).Error
}
