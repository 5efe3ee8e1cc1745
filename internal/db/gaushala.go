package db

// The gaushala sub-site mirrors the main site's slider, about, services and
// gallery collections in its own tables so both can be edited independently.

// GaushalaSlider is a hero slide on the gaushala sub-site.
type GaushalaSlider struct {
	Record
	ImageURL string `gorm:"size:500;not null" json:"imageUrl"`
	TitleEn  string `gorm:"size:255" json:"titleEn"`
	TitleHi  string `gorm:"size:255" json:"titleHi"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive bool   `json:"isActive"`
}

// GaushalaAbout is the singleton about block of the gaushala sub-site.
type GaushalaAbout struct {
	Record
	TitleEn   string `gorm:"size:255" json:"titleEn"`
	TitleHi   string `gorm:"size:255" json:"titleHi"`
	ContentEn string `gorm:"type:text" json:"contentEn"`
	ContentHi string `gorm:"type:text" json:"contentHi"`
	ImageURL  string `gorm:"size:500" json:"imageUrl"`
}

// TableName avoids the default "gaushala_abouts" pluralisation.
func (GaushalaAbout) TableName() string {
	return "gaushala_about"
}

// GaushalaService is one offering card on the gaushala services page.
type GaushalaService struct {
	Record
	TitleEn       string `gorm:"size:255" json:"titleEn"`
	TitleHi       string `gorm:"size:255" json:"titleHi"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionHi string `gorm:"type:text" json:"descriptionHi"`
	ButtonTextEn  string `gorm:"size:100" json:"buttonTextEn"`
	ButtonTextHi  string `gorm:"size:100" json:"buttonTextHi"`
	ButtonLink    string `gorm:"size:500" json:"buttonLink"`
	ImageURL      string `gorm:"size:500" json:"imageUrl"`
	Order         int    `gorm:"column:sort_order;default:0" json:"order"`
}

// GaushalaGalleryItem is one photo or video in the gaushala gallery.
type GaushalaGalleryItem struct {
	Record
	Type         string `gorm:"size:10;index" json:"type"`
	URL          string `gorm:"size:500;not null" json:"url"`
	ThumbnailURL string `gorm:"size:500" json:"thumbnailUrl"`
	TitleEn      string `gorm:"size:255" json:"titleEn"`
	TitleHi      string `gorm:"size:255" json:"titleHi"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive     bool   `json:"isActive"`
}
