package handler

import (
	"github.com/mandirseva/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	sliders   *service.SliderService
	about     *service.AboutService
	timings   *service.TimingService
	services  *service.ServiceService
	gallery   *service.GalleryService
	settings  *service.SettingService
	trust     *service.TrustService
	contact   *service.ContactService
	terms     *service.TermsService
	donations *service.DonationService
	team      *service.TeamService
	vivaah    *service.VivaahService
	gaushala  *service.GaushalaService
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		sliders:   service.NewSliderService(gdb),
		about:     service.NewAboutService(gdb),
		timings:   service.NewTimingService(gdb),
		services:  service.NewServiceService(gdb),
		gallery:   service.NewGalleryService(gdb),
		settings:  service.NewSettingService(gdb),
		trust:     service.NewTrustService(gdb),
		contact:   service.NewContactService(gdb),
		terms:     service.NewTermsService(gdb),
		donations: service.NewDonationService(gdb),
		team:      service.NewTeamService(gdb),
		vivaah:    service.NewVivaahService(gdb),
		gaushala:  service.NewGaushalaService(gdb),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
