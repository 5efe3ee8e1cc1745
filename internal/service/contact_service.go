package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var ErrContactInfoMissing = errors.New("primary phone and address are required")

// ContactService manages the singleton contact block.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput is the full replacement contact block. Secondary phone and
// email are optional.
type ContactInput struct {
	Phone1    string
	Phone2    string
	Email1    string
	Email2    string
	AddressEn string
	AddressHi string
}

// Get returns the contact info, or nil when nothing has been saved yet.
func (s *ContactService) Get() (*db.ContactInfo, error) {
	var info db.ContactInfo
	err := s.db.Order("created_at asc").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert replaces the contact info, creating the row on first write.
func (s *ContactService) Upsert(input ContactInput) (*db.ContactInfo, error) {
	if strings.TrimSpace(input.Phone1) == "" ||
		strings.TrimSpace(input.AddressEn) == "" || strings.TrimSpace(input.AddressHi) == "" {
		return nil, ErrContactInfoMissing
	}

	var info db.ContactInfo
	err := s.db.Order("created_at asc").First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	info.Phone1 = strings.TrimSpace(input.Phone1)
	info.Phone2 = strings.TrimSpace(input.Phone2)
	info.Email1 = strings.TrimSpace(input.Email1)
	info.Email2 = strings.TrimSpace(input.Email2)
	info.AddressEn = strings.TrimSpace(input.AddressEn)
	info.AddressHi = strings.TrimSpace(input.AddressHi)

	if err := s.db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
