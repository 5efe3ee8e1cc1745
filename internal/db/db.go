package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the global database handle.
var DB *gorm.DB

// Init opens the database and migrates every content collection.
// An empty databasePath falls back to mandirseva.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "mandirseva.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates or updates the table for every collection.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&AdminUser{},
		&SliderImage{},
		&AboutContent{},
		&PoojaTiming{},
		&Service{},
		&GalleryItem{},
		&SiteSetting{},
		&TrustContent{},
		&ContactInfo{},
		&TermsContent{},
		&Donation{},
		&TeamMember{},
		&VivaahPageInfo{},
		&VivaahSammelan{},
		&VivaahParticipant{},
		&GaushalaSlider{},
		&GaushalaAbout{},
		&GaushalaService{},
		&GaushalaGalleryItem{},
	)
}

// SeedAdmin creates the admin account when no user exists yet. A blank
// password skips seeding, leaving login disabled until one is configured.
func SeedAdmin(gdb *gorm.DB, username, password string) error {
	if strings.TrimSpace(password) == "" {
		return nil
	}

	var count int64
	if err := gdb.Model(&AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	name := strings.TrimSpace(username)
	if name == "" {
		name = "admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return gdb.Create(&AdminUser{Username: name, Password: string(hashed)}).Error
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
