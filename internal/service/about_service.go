package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var ErrAboutContentMissing = errors.New("about title and content are required in both languages")

// AboutService manages the singleton about-page content. The collection is
// upsert-only: writes always land on the same row, so at most one row can
// ever be created through the API.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// AboutInput is the full replacement body for the about page.
type AboutInput struct {
	TitleEn   string
	TitleHi   string
	ContentEn string
	ContentHi string
	ImageURL  string
}

// Get returns the about content, or nil when nothing has been saved yet.
// With legacy data holding several rows, the oldest row wins.
func (s *AboutService) Get() (*db.AboutContent, error) {
	var content db.AboutContent
	err := s.db.Order("created_at asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the about content, creating the row on first write.
func (s *AboutService) Upsert(input AboutInput) (*db.AboutContent, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" ||
		strings.TrimSpace(input.ContentEn) == "" || strings.TrimSpace(input.ContentHi) == "" {
		return nil, ErrAboutContentMissing
	}

	var content db.AboutContent
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
