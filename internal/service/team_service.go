package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound    = errors.New("team member not found")
	ErrTeamMemberNameMissing = errors.New("team member name and designation are required in both languages")
)

// TeamService handles the trustees and staff listing.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService creates a TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// TeamMemberInput represents fields accepted when creating a team member.
type TeamMemberInput struct {
	NameEn        string
	NameHi        string
	DesignationEn string
	DesignationHi string
	Phone         string
	Email         string
	ImageURL      string
	Order         int
}

// TeamMemberUpdate carries a partial update; nil fields are left untouched.
type TeamMemberUpdate struct {
	NameEn        *string
	NameHi        *string
	DesignationEn *string
	DesignationHi *string
	Phone         *string
	Email         *string
	ImageURL      *string
	Order         *int
}

// List returns team members ordered for display.
func (s *TeamService) List() ([]db.TeamMember, error) {
	var items []db.TeamMember
	if err := s.db.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new team member.
func (s *TeamService) Create(input TeamMemberInput) (*db.TeamMember, error) {
	if strings.TrimSpace(input.NameEn) == "" || strings.TrimSpace(input.NameHi) == "" ||
		strings.TrimSpace(input.DesignationEn) == "" || strings.TrimSpace(input.DesignationHi) == "" {
		return nil, ErrTeamMemberNameMissing
	}

	item := db.TeamMember{
		NameEn:        strings.TrimSpace(input.NameEn),
		NameHi:        strings.TrimSpace(input.NameHi),
		DesignationEn: strings.TrimSpace(input.DesignationEn),
		DesignationHi: strings.TrimSpace(input.DesignationHi),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Order:         input.Order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto an existing team member.
func (s *TeamService) Update(id string, input TeamMemberUpdate) (*db.TeamMember, error) {
	var item db.TeamMember
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}

	if input.NameEn != nil {
		item.NameEn = strings.TrimSpace(*input.NameEn)
	}
	if input.NameHi != nil {
		item.NameHi = strings.TrimSpace(*input.NameHi)
	}
	if input.DesignationEn != nil {
		item.DesignationEn = strings.TrimSpace(*input.DesignationEn)
	}
	if input.DesignationHi != nil {
		item.DesignationHi = strings.TrimSpace(*input.DesignationHi)
	}
	if input.Phone != nil {
		item.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		item.Email = strings.TrimSpace(*input.Email)
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

// Delete removes a team member, quietly succeeding when it is already gone.
func (s *TeamService) Delete(id string) error {
	return s.db.Delete(&db.TeamMember{}, "id = ?", id).Error
}
