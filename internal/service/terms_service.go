package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var ErrTermsContentMissing = errors.New("terms title and content are required in both languages")

// TermsService manages the singleton terms-and-conditions content.
type TermsService struct {
	db *gorm.DB
}

func NewTermsService(gdb *gorm.DB) *TermsService {
	return &TermsService{db: gdb}
}

// TermsInput is the full replacement body for the terms page.
type TermsInput struct {
	TitleEn   string
	TitleHi   string
	ContentEn string
	ContentHi string
}

// Get returns the terms content, or nil when nothing has been saved yet.
func (s *TermsService) Get() (*db.TermsContent, error) {
	var content db.TermsContent
	err := s.db.Order("created_at asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the terms content, creating the row on first write.
func (s *TermsService) Upsert(input TermsInput) (*db.TermsContent, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" ||
		strings.TrimSpace(input.ContentEn) == "" || strings.TrimSpace(input.ContentHi) == "" {
		return nil, ErrTermsContentMissing
	}

	var content db.TermsContent
	err := s.db.Order("created_at asc").First(&content).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content.TitleEn = strings.TrimSpace(input.TitleEn)
	content.TitleHi = strings.TrimSpace(input.TitleHi)
	content.ContentEn = input.ContentEn
	content.ContentHi = input.ContentHi

	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}
