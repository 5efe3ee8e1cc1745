package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceTitleMissing = errors.New("service title is required in both languages")
)

// ServiceService handles the offering cards on the services page.
type ServiceService struct {
	db *gorm.DB
}

// NewServiceService creates a ServiceService instance.
func NewServiceService(gdb *gorm.DB) *ServiceService {
	return &ServiceService{db: gdb}
}

// ServiceInput represents fields accepted when creating a service card.
type ServiceInput struct {
	TitleEn       string
	TitleHi       string
	DescriptionEn string
	DescriptionHi string
	ButtonTextEn  string
	ButtonTextHi  string
	ButtonLink    string
	ImageURL      string
	Order         int
}

// ServiceUpdate carries a partial update; nil fields are left untouched.
type ServiceUpdate struct {
	TitleEn       *string
	TitleHi       *string
	DescriptionEn *string
	DescriptionHi *string
	ButtonTextEn  *string
	ButtonTextHi  *string
	ButtonLink    *string
	ImageURL      *string
	Order         *int
}

// List returns service cards ordered for display.
func (s *ServiceService) List() ([]db.Service, error) {
	var items []db.Service
	if err := s.db.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new service card.
func (s *ServiceService) Create(input ServiceInput) (*db.Service, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" {
		return nil, ErrServiceTitleMissing
	}

	item := db.Service{
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

// Update merges the supplied fields onto an existing service card.
func (s *ServiceService) Update(id string, input ServiceUpdate) (*db.Service, error) {
	var item db.Service
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
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

// Delete removes a service card, quietly succeeding when it is already gone.
func (s *ServiceService) Delete(id string) error {
	return s.db.Delete(&db.Service{}, "id = ?", id).Error
}
