package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var ErrTrustContentMissing = errors.New("trust title and content are required in both languages")

// TrustService manages the singleton trust-page content, upsert-only like
// the other singletons.
type TrustService struct {
	db *gorm.DB
}

func NewTrustService(gdb *gorm.DB) *TrustService {
	return &TrustService{db: gdb}
}

// TrustInput is the full replacement body for the trust page. Subtitles
// may be blank.
type TrustInput struct {
	TitleEn    string
	TitleHi    string
	SubtitleEn string
	SubtitleHi string
	ContentEn  string
	ContentHi  string
}

// Get returns the trust content, or nil when nothing has been saved yet.
func (s *TrustService) Get() (*db.TrustContent, error) {
	var content db.TrustContent
	err := s.db.Order("created_at asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the trust content, creating the row on first write.
func (s *TrustService) Upsert(input TrustInput) (*db.TrustContent, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" ||
		strings.TrimSpace(input.ContentEn) == "" || strings.TrimSpace(input.ContentHi) == "" {
		return nil, ErrTrustContentMissing
	}

	var content db.TrustContent
	err := s.db.Order("created_at asc").First(&content).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content.TitleEn = strings.TrimSpace(input.TitleEn)
	content.TitleHi = strings.TrimSpace(input.TitleHi)
	content.SubtitleEn = strings.TrimSpace(input.SubtitleEn)
	content.SubtitleHi = strings.TrimSpace(input.SubtitleHi)
	content.ContentEn = input.ContentEn
	content.ContentHi = input.ContentHi

	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}
