package service

import (
	"errors"
	"strings"

	"github.com/mandirseva/internal/db"
	"gorm.io/gorm"
)

var ErrDonationIncomplete = errors.New("donor name, phone, donation type and amount are required")

// DonationService records donation intent from the public form. Records are
// append-only: there is no update path, only create, list and delete.
type DonationService struct {
	db *gorm.DB
}

// NewDonationService creates a DonationService instance.
func NewDonationService(gdb *gorm.DB) *DonationService {
	return &DonationService{db: gdb}
}

// DonationInput represents the public donation form body. The amount is
// free text; no currency validation is applied.
type DonationInput struct {
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	State        string
	City         string
	Pincode      string
	Address      string
	DonationType string
	Amount       string
}

// List returns donations newest first.
func (s *DonationService) List() ([]db.Donation, error) {
	var items []db.Donation
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create persists one donation intent record.
func (s *DonationService) Create(input DonationInput) (*db.Donation, error) {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.DonationType) == "" ||
		strings.TrimSpace(input.Amount) == "" {
		return nil, ErrDonationIncomplete
	}

	item := db.Donation{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		State:        strings.TrimSpace(input.State),
		City:         strings.TrimSpace(input.City),
		Pincode:      strings.TrimSpace(input.Pincode),
		Address:      strings.TrimSpace(input.Address),
		DonationType: strings.TrimSpace(input.DonationType),
		Amount:       strings.TrimSpace(input.Amount),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a donation record, quietly succeeding when it is already
// gone.
func (s *DonationService) Delete(id string) error {
	return s.db.Delete(&db.Donation{}, "id = ?", id).Error
}
