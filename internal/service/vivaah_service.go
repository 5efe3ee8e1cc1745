package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrVivaahPageInfoMissing     = errors.New("vivaah page title and description are required in both languages")
	ErrSammelanNotFound          = errors.New("sammelan not found")
	ErrSammelanTitleMissing      = errors.New("sammelan title is required in both languages")
	ErrParticipantNotFound       = errors.New("participant not found")
	ErrParticipantNameMissing    = errors.New("participant name is required in both languages")
	ErrParticipantTypeInvalid    = errors.New("participant type must be bride or groom")
	ErrParticipantSammelanNeeded = errors.New("participant must reference an existing sammelan")
)

// VivaahService covers the vivaah sammelan page: its intro block, the
// sammelan summaries and the matrimonial participant listings.
type VivaahService struct {
	db *gorm.DB
}

// NewVivaahService creates a VivaahService instance.
func NewVivaahService(gdb *gorm.DB) *VivaahService {
	return &VivaahService{db: gdb}
}

// VivaahPageInfoInput is the full replacement intro block.
type VivaahPageInfoInput struct {
	TitleEn       string
	TitleHi       string
	DescriptionEn string
	DescriptionHi string
}

// SammelanInput represents fields accepted when creating a sammelan.
type SammelanInput struct {
	TitleEn        string
	TitleHi        string
	OverallIncome  string
	OverallExpense string
	AsOfDate       string
	IsActive       *bool
}

// SammelanUpdate carries a partial update; nil fields are left untouched.
type SammelanUpdate struct {
	TitleEn        *string
	TitleHi        *string
	OverallIncome  *string
	OverallExpense *string
	AsOfDate       *string
	IsActive       *bool
}

// ParticipantInput represents fields accepted when creating a participant.
type ParticipantInput struct {
	SammelanID        string
	Type              string
	NameEn            string
	NameHi            string
	FatherNameEn      string
	FatherNameHi      string
	MotherNameEn      string
	MotherNameHi      string
	GrandparentNameEn string
	GrandparentNameHi string
	LocationEn        string
	LocationHi        string
	Order             int
}

// ParticipantUpdate carries a partial update. The type is immutable; moving
// a participant to another sammelan re-checks that the target exists.
type ParticipantUpdate struct {
	SammelanID        *string
	NameEn            *string
	NameHi            *string
	FatherNameEn      *string
	FatherNameHi      *string
	MotherNameEn      *string
	MotherNameHi      *string
	GrandparentNameEn *string
	GrandparentNameHi *string
	LocationEn        *string
	LocationHi        *string
	Order             *int
}

// PageInfo returns the intro block, or nil when nothing has been saved yet.
func (s *VivaahService) PageInfo() (*db.VivaahPageInfo, error) {
	var info db.VivaahPageInfo
	err := s.db.Order("created_at asc").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// UpsertPageInfo replaces the intro block, creating it on first write.
func (s *VivaahService) UpsertPageInfo(input VivaahPageInfoInput) (*db.VivaahPageInfo, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" ||
		strings.TrimSpace(input.DescriptionEn) == "" || strings.TrimSpace(input.DescriptionHi) == "" {
		return nil, ErrVivaahPageInfoMissing
	}

	var info db.VivaahPageInfo
	err := s.db.Order("created_at asc").First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	info.TitleEn = strings.TrimSpace(input.TitleEn)
	info.TitleHi = strings.TrimSpace(input.TitleHi)
	info.DescriptionEn = input.DescriptionEn
	info.DescriptionHi = input.DescriptionHi

	if err := s.db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Sammelans returns every sammelan in creation order, matching the other
// list collections. Only donations list newest first.
func (s *VivaahService) Sammelans() ([]db.VivaahSammelan, error) {
	var items []db.VivaahSammelan
	if err := s.db.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ActiveSammelan returns the first active sammelan, or nil when none is
// marked active.
func (s *VivaahService) ActiveSammelan() (*db.VivaahSammelan, error) {
	var item db.VivaahSammelan
	err := s.db.Where("is_active = ?", true).Order("created_at asc").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateSammelan inserts a new sammelan summary. Active defaults to true.
func (s *VivaahService) CreateSammelan(input SammelanInput) (*db.VivaahSammelan, error) {
	if strings.TrimSpace(input.TitleEn) == "" || strings.TrimSpace(input.TitleHi) == "" {
		return nil, ErrSammelanTitleMissing
	}

	item := db.VivaahSammelan{
		TitleEn:        strings.TrimSpace(input.TitleEn),
		TitleHi:        strings.TrimSpace(input.TitleHi),
		OverallIncome:  strings.TrimSpace(input.OverallIncome),
		OverallExpense: strings.TrimSpace(input.OverallExpense),
		AsOfDate:       strings.TrimSpace(input.AsOfDate),
		IsActive:       true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateSammelan merges the supplied fields onto an existing sammelan.
func (s *VivaahService) UpdateSammelan(id string, input SammelanUpdate) (*db.VivaahSammelan, error) {
	var item db.VivaahSammelan
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSammelanNotFound
		}
		return nil, err
	}

	if input.TitleEn != nil {
		item.TitleEn = strings.TrimSpace(*input.TitleEn)
	}
	if input.TitleHi != nil {
		item.TitleHi = strings.TrimSpace(*input.TitleHi)
	}
	if input.OverallIncome != nil {
		item.OverallIncome = strings.TrimSpace(*input.OverallIncome)
	}
	if input.OverallExpense != nil {
		item.OverallExpense = strings.TrimSpace(*input.OverallExpense)
	}
	if input.AsOfDate != nil {
		item.AsOfDate = strings.TrimSpace(*input.AsOfDate)
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteSammelan removes a sammelan together with its participants, so no
// listing can end up pointing at a missing gathering. Deleting an id that
// is already gone succeeds.
func (s *VivaahService) DeleteSammelan(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db.VivaahParticipant{}, "sammelan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db.VivaahSammelan{}, "id = ?", id).Error
	})
}

// Participants returns the listings of one sammelan ordered for display,
// optionally narrowed to bride or groom entries.
func (s *VivaahService) Participants(sammelanID, participantType string) ([]db.VivaahParticipant, error) {
	query := s.db.Where("sammelan_id = ?", strings.TrimSpace(sammelanID))
	if trimmed := strings.TrimSpace(participantType); trimmed != "" {
		normalized, err := normalizeParticipantType(trimmed)
		if err != nil {
			return nil, err
		}
		query = query.Where("type = ?", normalized)
	}

	var items []db.VivaahParticipant
	if err := query.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateParticipant inserts a listing after verifying its sammelan exists.
func (s *VivaahService) CreateParticipant(input ParticipantInput) (*db.VivaahParticipant, error) {
	kind, err := normalizeParticipantType(input.Type)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.NameEn) == "" || strings.TrimSpace(input.NameHi) == "" {
		return nil, ErrParticipantNameMissing
	}
	if err := s.requireSammelan(input.SammelanID); err != nil {
		return nil, err
	}

	item := db.VivaahParticipant{
		SammelanID:        strings.TrimSpace(input.SammelanID),
		Type:              kind,
		NameEn:            strings.TrimSpace(input.NameEn),
		NameHi:            strings.TrimSpace(input.NameHi),
		FatherNameEn:      strings.TrimSpace(input.FatherNameEn),
		FatherNameHi:      strings.TrimSpace(input.FatherNameHi),
		MotherNameEn:      strings.TrimSpace(input.MotherNameEn),
		MotherNameHi:      strings.TrimSpace(input.MotherNameHi),
		GrandparentNameEn: strings.TrimSpace(input.GrandparentNameEn),
		GrandparentNameHi: strings.TrimSpace(input.GrandparentNameHi),
		LocationEn:        strings.TrimSpace(input.LocationEn),
		LocationHi:        strings.TrimSpace(input.LocationHi),
		Order:             input.Order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateParticipant merges the supplied fields onto an existing listing.
func (s *VivaahService) UpdateParticipant(id string, input ParticipantUpdate) (*db.VivaahParticipant, error) {
	var item db.VivaahParticipant
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	if input.SammelanID != nil {
		if err := s.requireSammelan(*input.SammelanID); err != nil {
			return nil, err
		}
		item.SammelanID = strings.TrimSpace(*input.SammelanID)
	}
	if input.NameEn != nil {
		item.NameEn = strings.TrimSpace(*input.NameEn)
	}
	if input.NameHi != nil {
		item.NameHi = strings.TrimSpace(*input.NameHi)
	}
	if input.FatherNameEn != nil {
		item.FatherNameEn = strings.TrimSpace(*input.FatherNameEn)
	}
	if input.FatherNameHi != nil {
		item.FatherNameHi = strings.TrimSpace(*input.FatherNameHi)
	}
	if input.MotherNameEn != nil {
		item.MotherNameEn = strings.TrimSpace(*input.MotherNameEn)
	}
	if input.MotherNameHi != nil {
		item.MotherNameHi = strings.TrimSpace(*input.MotherNameHi)
	}
	if input.GrandparentNameEn != nil {
		item.GrandparentNameEn = strings.TrimSpace(*input.GrandparentNameEn)
	}
	if input.GrandparentNameHi != nil {
		item.GrandparentNameHi = strings.TrimSpace(*input.GrandparentNameHi)
	}
	if input.LocationEn != nil {
		item.LocationEn = strings.TrimSpace(*input.LocationEn)
	}
	if input.LocationHi != nil {
		item.LocationHi = strings.TrimSpace(*input.LocationHi)
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteParticipant removes a listing, quietly succeeding when it is
// already gone.
func (s *VivaahService) DeleteParticipant(id string) error {
	return s.db.Delete(&db.VivaahParticipant{}, "id = ?", id).Error
}

func (s *VivaahService) requireSammelan(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ErrParticipantSammelanNeeded
	}
	var count int64
	if err := s.db.Model(&db.VivaahSammelan{}).Where("id = ?", trimmed).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrParticipantSammelanNeeded
	}
	return nil
}

func normalizeParticipantType(kind string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if normalized != db.ParticipantTypeBride && normalized != db.ParticipantTypeGroom {
		return "", ErrParticipantTypeInvalid
	}
	return normalized, nil
}
